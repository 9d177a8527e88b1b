package animal

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type animalRequest struct {
	TagID     string   `json:"tag_id"`
	Species   string   `json:"species"`
	Breed     string   `json:"breed"`
	AgeMonths int      `json:"age_months"`
	Gender    string   `json:"gender"`
	Status    string   `json:"status"`
	WeightKg  *float64 `json:"weight_kg"`
	Notes     string   `json:"notes"`
}

func actor(c *gin.Context) (userID, role string) {
	return c.GetString("userID"), c.GetString("userRole")
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// --------------------------------------------------
// Register animal
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	userID, _ := actor(c)

	var req animalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	a, err := h.service.Register(c.Request.Context(), userID, &Animal{
		TagID:     req.TagID,
		Species:   req.Species,
		Breed:     req.Breed,
		AgeMonths: req.AgeMonths,
		Gender:    req.Gender,
		Status:    req.Status,
		WeightKg:  req.WeightKg,
		Notes:     req.Notes,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, a)
}

// --------------------------------------------------
// List animals (farmers see their own, staff see all)
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	userID, role := actor(c)

	animals, err := h.service.List(c.Request.Context(), userID, role, c.Query("species"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if animals == nil {
		animals = []*Animal{}
	}

	c.JSON(http.StatusOK, gin.H{"animals": animals})
}

// --------------------------------------------------
// Single animal
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	userID, role := actor(c)

	a, err := h.service.Get(c.Request.Context(), userID, role, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, a)
}

func (h *Handler) Update(c *gin.Context) {
	userID, role := actor(c)

	var req animalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	a, err := h.service.Update(c.Request.Context(), userID, role, &Animal{
		ID:        c.Param("id"),
		TagID:     req.TagID,
		Species:   req.Species,
		Breed:     req.Breed,
		AgeMonths: req.AgeMonths,
		Gender:    req.Gender,
		Status:    req.Status,
		WeightKg:  req.WeightKg,
		Notes:     req.Notes,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, a)
}

func (h *Handler) Delete(c *gin.Context) {
	userID, role := actor(c)

	if err := h.service.Delete(c.Request.Context(), userID, role, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "animal deleted"})
}
