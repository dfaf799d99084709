package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leadflow/internal/services"
)

type LeadHandler struct {
	Service *services.LeadService
}

func NewLeadHandler(service *services.LeadService) *LeadHandler {
	return &LeadHandler{Service: service}
}

// List supports ?duplicate=&quality=&ad_id=&sort_by=&order=&page=&size=.
func (h *LeadHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	leads, err := h.Service.Filter(
		boolQuery(c, "duplicate"),
		boolQuery(c, "quality"),
		c.Query("ad_id"),
		c.DefaultQuery("sort_by", "created_at"),
		c.DefaultQuery("order", "desc"),
		limit, offset,
	)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list leads", err)
		return
	}
	c.JSON(http.StatusOK, leads)
}

func (h *LeadHandler) Duplicates(c *gin.Context) {
	limit, offset := pagination(c)
	leads, err := h.Service.Duplicates(limit, offset)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list duplicates", err)
		return
	}
	c.JSON(http.StatusOK, leads)
}

// Fields lists the distinct unmapped column headers seen across uploads.
func (h *LeadHandler) Fields(c *gin.Context) {
	fields, err := h.Service.FieldNames()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list fields", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fields": fields})
}
