package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"leadflow/internal/services"
)

type UploadHandler struct {
	Service   *services.IngestionService
	MaxSizeMB int64
}

func NewUploadHandler(service *services.IngestionService, maxSizeMB int64) *UploadHandler {
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	return &UploadHandler{Service: service, MaxSizeMB: maxSizeMB}
}

// @Summary      Upload a lead spreadsheet
// @Description  Ingests one spreadsheet: extracts rows, flags duplicates, matches phones against customer profiles and records an upload batch
// @Tags         Uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file         formData  file    true   "Lead export (.xlsx)"
// @Param        uploaded_by  formData  string  false  "Uploader name"
// @Param        budget       formData  number  false  "Campaign budget"
// @Success      200  {object}  services.UploadSummary
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, http.StatusBadRequest, "expected multipart form with a file", err)
		return
	}
	files := form.File["file"]
	if len(files) != 1 {
		respondError(c, http.StatusBadRequest, "exactly one file must be attached", nil)
		return
	}
	file := files[0]

	if file.Size > h.MaxSizeMB*1024*1024 {
		respondError(c, http.StatusBadRequest,
			fmt.Sprintf("file exceeds the %d MB limit", h.MaxSizeMB), nil)
		return
	}
	contentType := file.Header.Get("Content-Type")
	if !services.LooksLikeSpreadsheet(file.Filename, contentType) {
		respondError(c, http.StatusBadRequest, "file does not look like a spreadsheet", nil)
		return
	}

	tmpPath := filepath.Join(os.TempDir(),
		fmt.Sprintf("upload_%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename)))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to store uploaded file", err)
		return
	}

	budget, _ := strconv.ParseFloat(c.DefaultPostForm("budget", "0"), 64)
	summary, err := h.Service.ProcessUpload(services.UploadInput{
		FilePath:    tmpPath,
		FileName:    file.Filename,
		ContentType: contentType,
		UploadedBy:  c.PostForm("uploaded_by"),
		Budget:      budget,
	})
	if err != nil {
		// file problems are the client's, everything else is ours
		if errors.Is(err, services.ErrInvalidUpload) {
			respondError(c, http.StatusBadRequest, "upload could not be processed", err)
		} else {
			respondError(c, http.StatusInternalServerError, "upload failed", err)
		}
		return
	}
	c.JSON(http.StatusOK, summary)
}
