package handlers

import (
	"net/http"
	"strconv"

	"pc-builder-backend/internal/auth"
	apperrors "pc-builder-backend/internal/errors"
	"pc-builder-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BuildHandler handles HTTP requests for builds and their item slots
type BuildHandler struct {
	buildService service.BuildServiceInterface
}

// NewBuildHandler creates a new build handler
func NewBuildHandler(buildService service.BuildServiceInterface) *BuildHandler {
	return &BuildHandler{buildService: buildService}
}

// AddPartRequest represents the payload for occupying a build slot
type AddPartRequest struct {
	PartID uuid.UUID `json:"part_id" binding:"required"`
}

// ListBuilds handles GET /builds
// @Summary List builds
// @Description Get builds newest-first with pagination
// @Tags builds
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(50)
// @Success 200 {object} service.BuildListResponse "Successfully retrieved builds"
// @Router /builds [get]
func (h *BuildHandler) ListBuilds(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	resp, err := h.buildService.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get builds"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateBuild handles POST /builds
// @Summary Create a build
// @Description Create a named build; stamped with the caller as owner when authenticated
// @Tags builds
// @Accept json
// @Produce json
// @Param build body service.CreateBuildRequest true "Build data"
// @Success 201 {object} service.BuildResponse "Successfully created build"
// @Failure 422 {object} ErrorResponse "Validation failure"
// @Router /builds [post]
func (h *BuildHandler) CreateBuild(c *gin.Context) {
	var req service.CreateBuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	build, err := h.buildService.Create(&req, auth.CurrentUserID(c))
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create build"})
		return
	}

	c.JSON(http.StatusCreated, build)
}

// GetBuild handles GET /builds/:id
// @Summary Get build by ID
// @Description Get a build with its items and freshly computed totals
// @Tags builds
// @Accept json
// @Produce json
// @Param id path string true "Build ID (UUID)"
// @Success 200 {object} service.BuildDetailResponse "Successfully retrieved build"
// @Failure 404 {object} ErrorResponse "Build not found"
// @Router /builds/{id} [get]
func (h *BuildHandler) GetBuild(c *gin.Context) {
	id, ok := parseBuildID(c)
	if !ok {
		return
	}

	build, err := h.buildService.GetByID(id)
	if err != nil {
		h.respondError(c, err, "Failed to get build")
		return
	}

	c.JSON(http.StatusOK, build)
}

// DeleteBuild handles DELETE /builds/:id
// @Summary Delete a build
// @Description Destroy a build and all its items; owner-gated
// @Tags builds
// @Accept json
// @Produce json
// @Param id path string true "Build ID (UUID)"
// @Success 204 "Successfully deleted"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Not the build owner"
// @Failure 404 {object} ErrorResponse "Build not found"
// @Security BearerAuth
// @Router /builds/{id} [delete]
func (h *BuildHandler) DeleteBuild(c *gin.Context) {
	id, ok := parseBuildID(c)
	if !ok {
		return
	}

	if err := h.buildService.Delete(id, auth.CurrentUserID(c)); err != nil {
		h.respondError(c, err, "Failed to delete build")
		return
	}

	c.Status(http.StatusNoContent)
}

// AddPart handles POST /builds/:id/items
// @Summary Add or replace a part in a build
// @Description Occupies the slot for the part's kind; an occupied slot is replaced in place
// @Tags builds
// @Accept json
// @Produce json
// @Param id path string true "Build ID (UUID)"
// @Param item body AddPartRequest true "Part reference"
// @Success 200 {object} service.AddPartResult "Slot updated"
// @Failure 404 {object} ErrorResponse "Build or part not found"
// @Router /builds/{id}/items [post]
func (h *BuildHandler) AddPart(c *gin.Context) {
	id, ok := parseBuildID(c)
	if !ok {
		return
	}

	var req AddPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.buildService.AddOrReplacePart(id, req.PartID, auth.CurrentUserID(c))
	if err != nil {
		h.respondError(c, err, "Failed to add part to build")
		return
	}

	c.JSON(http.StatusOK, result)
}

// RemovePart handles DELETE /builds/:id/items/:item_id
// @Summary Remove a part from a build
// @Description Deletes one build item; items of other builds are not reachable
// @Tags builds
// @Accept json
// @Produce json
// @Param id path string true "Build ID (UUID)"
// @Param item_id path string true "Build item ID (UUID)"
// @Success 200 {object} service.RemovePartResult "Part removed"
// @Failure 404 {object} ErrorResponse "Build or item not found"
// @Router /builds/{id}/items/{item_id} [delete]
func (h *BuildHandler) RemovePart(c *gin.Context) {
	id, ok := parseBuildID(c)
	if !ok {
		return
	}
	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid build item ID: invalid UUID format"})
		return
	}

	result, err := h.buildService.RemovePart(id, itemID, auth.CurrentUserID(c))
	if err != nil {
		h.respondError(c, err, "Failed to remove part")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSummary handles GET /builds/:id/summary
// @Summary Get build totals
// @Description Get the build's total cost, total wattage and per-kind part counts
// @Tags builds
// @Accept json
// @Produce json
// @Param id path string true "Build ID (UUID)"
// @Success 200 {object} map[string]interface{} "Build totals"
// @Failure 404 {object} ErrorResponse "Build not found"
// @Router /builds/{id}/summary [get]
func (h *BuildHandler) GetSummary(c *gin.Context) {
	id, ok := parseBuildID(c)
	if !ok {
		return
	}

	totalCost, err := h.buildService.TotalCost(id)
	if err != nil {
		h.respondError(c, err, "Failed to get build totals")
		return
	}
	totalWattage, err := h.buildService.TotalWattage(id)
	if err != nil {
		h.respondError(c, err, "Failed to get build totals")
		return
	}
	summary, err := h.buildService.PartsSummary(id)
	if err != nil {
		h.respondError(c, err, "Failed to get build totals")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_cost":    totalCost,
		"total_wattage": totalWattage,
		"parts_summary": summary,
	})
}

func (h *BuildHandler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func parseBuildID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid build ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}
