package ration

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// Reference tables (form population, guest-visible)
// --------------------------------------------------
func (h *Handler) ListStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"statuses": h.service.Statuses()})
}

func (h *Handler) ListFeeds(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"feeds": h.service.Feeds()})
}

// --------------------------------------------------
// Calculate ration
// --------------------------------------------------
func (h *Handler) Calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.service.Calculate(req)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// --------------------------------------------------
// Export ration plan as a workbook download
// --------------------------------------------------
func (h *Handler) Export(c *gin.Context) {
	var req CalculateRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.service.Calculate(req)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	f, err := BuildWorkbook(req, result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("ration-plan-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if _, err := f.WriteTo(c.Writer); err != nil {
		// Headers are already out; nothing useful left to send.
		c.Abort()
	}
}

// --------------------------------------------------
// PDF export (stub)
// --------------------------------------------------
func (h *Handler) ExportPDF(c *gin.Context) {
	// PDF generation is not implemented; the workbook export above is the
	// supported download format.
	c.JSON(http.StatusNotImplemented, gin.H{"error": "PDF export is not available, use the xlsx export"})
}
