package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	apperrors "pc-builder-backend/internal/errors"
	"pc-builder-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PartHandler handles HTTP requests for the part catalog
type PartHandler struct {
	partService service.PartServiceInterface
}

// NewPartHandler creates a new part handler
func NewPartHandler(partService service.PartServiceInterface) *PartHandler {
	return &PartHandler{partService: partService}
}

// ListParts handles GET /parts
// @Summary Browse the part catalog
// @Description List parts with compound filtering (kind, brand, name, price range) and sorting
// @Tags parts
// @Accept json
// @Produce json
// @Param kind query string false "Part kind (cpu, gpu, motherboard, memory, storage, cooler, case, psu)"
// @Param brand query string false "Brand substring, case-insensitive"
// @Param name query string false "Name substring, case-insensitive"
// @Param min_price query int false "Minimum price in cents"
// @Param max_price query int false "Maximum price in cents"
// @Param sort query string false "Comma-separated sort keys: price_asc, price_desc, brand_asc, brand_desc"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} service.PartListResponse "Successfully retrieved parts"
// @Failure 400 {object} ErrorResponse "Invalid filter parameters"
// @Router /parts [get]
func (h *PartHandler) ListParts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	query := &service.PartListQuery{
		Kind:     c.Query("kind"),
		Brand:    c.Query("brand"),
		Name:     c.Query("name"),
		Page:     page,
		PageSize: pageSize,
	}

	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
			return
		}
		query.MinPrice = &v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
			return
		}
		query.MaxPrice = &v
	}
	if raw := c.Query("sort"); raw != "" {
		query.Sort = strings.Split(raw, ",")
	}

	resp, err := h.partService.List(query)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidPartKind),
			errors.Is(err, apperrors.ErrInvalidSortKey),
			errors.Is(err, apperrors.ErrInvalidPriceRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list parts"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPart handles GET /parts/:id
// @Summary Get part by ID
// @Tags parts
// @Accept json
// @Produce json
// @Param id path string true "Part ID (UUID)"
// @Success 200 {object} service.PartResponse "Successfully retrieved part"
// @Failure 400 {object} ErrorResponse "Invalid part ID"
// @Failure 404 {object} ErrorResponse "Part not found"
// @Router /parts/{id} [get]
func (h *PartHandler) GetPart(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid part ID: invalid UUID format"})
		return
	}

	part, err := h.partService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPartNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get part"})
		return
	}

	c.JSON(http.StatusOK, part)
}

// CreatePart handles POST /parts
// @Summary Add a part to the catalog
// @Description Seeding/admin action; requires authentication
// @Tags parts
// @Accept json
// @Produce json
// @Param part body service.CreatePartRequest true "Part data"
// @Success 201 {object} service.PartResponse "Successfully created part"
// @Failure 400 {object} ErrorResponse "Malformed input"
// @Failure 422 {object} ErrorResponse "Validation failure"
// @Security BearerAuth
// @Router /parts [post]
func (h *PartHandler) CreatePart(c *gin.Context) {
	var req service.CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	part, err := h.partService.Create(&req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case apperrors.IsMalformedInput(err), errors.Is(err, apperrors.ErrInvalidPartKind):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create part"})
		}
		return
	}

	c.JSON(http.StatusCreated, part)
}
