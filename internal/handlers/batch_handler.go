package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"leadflow/internal/services"
)

type BatchHandler struct {
	Service *services.HistoryService
}

func NewBatchHandler(service *services.HistoryService) *BatchHandler {
	return &BatchHandler{Service: service}
}

func (h *BatchHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	batches, err := h.Service.List(limit, offset)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list uploads", err)
		return
	}
	c.JSON(http.StatusOK, batches)
}

func (h *BatchHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	batch, err := h.Service.GetByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load upload", err)
		return
	}
	if batch == nil {
		respondError(c, http.StatusNotFound, "upload not found", nil)
		return
	}
	c.JSON(http.StatusOK, batch)
}

type updateBatchRequest struct {
	UploadedBy string  `json:"uploaded_by"`
	Budget     float64 `json:"budget"`
}

func (h *BatchHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	var req updateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid body", err)
		return
	}
	batch, err := h.Service.Update(id, req.UploadedBy, req.Budget)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			respondError(c, http.StatusNotFound, "upload not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to update upload", err)
		return
	}
	c.JSON(http.StatusOK, batch)
}

// Delete removes the batch and cascades to its leads.
func (h *BatchHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	deleted, err := h.Service.Delete(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			respondError(c, http.StatusNotFound, "upload not found", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete upload", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deleted_leads": deleted})
}
