package handlers

import (
	"encoding/json"
	"net/http"

	"pc-builder-backend/internal/auth"
	apperrors "pc-builder-backend/internal/errors"
	"pc-builder-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShareHandler handles HTTP requests for build sharing
type ShareHandler struct {
	shareService service.ShareServiceInterface
}

// NewShareHandler creates a new share handler
func NewShareHandler(shareService service.ShareServiceInterface) *ShareHandler {
	return &ShareHandler{shareService: shareService}
}

// ShareBuildRequest represents the payload for creating a share snapshot.
// Components carries the client-rendered component breakdown verbatim.
type ShareBuildRequest struct {
	Components json.RawMessage `json:"components"`
}

// ShareBuild handles POST /builds/:id/share
// @Summary Share a build
// @Description Freeze the build into a signed snapshot and return the share URL
// @Tags sharing
// @Accept json
// @Produce json
// @Param id path string true "Build ID (UUID)"
// @Param snapshot body ShareBuildRequest false "Component breakdown to embed in the snapshot"
// @Success 200 {object} service.ShareResult "Share snapshot created"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Not the build owner"
// @Failure 404 {object} ErrorResponse "Build not found"
// @Router /builds/{id}/share [post]
func (h *ShareHandler) ShareBuild(c *gin.Context) {
	id, ok := parseBuildID(c)
	if !ok {
		return
	}

	var req ShareBuildRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
	}

	result, err := h.shareService.CreateShareSnapshot(id, req.Components, auth.CurrentUserID(c))
	if err != nil {
		h.respondError(c, err, "Failed to share build")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSharedBuild handles GET /builds/:id/shared
// @Summary View a shared build
// @Description Resolve a shared snapshot by token; no authentication required
// @Tags sharing
// @Accept json
// @Produce json
// @Param id path string true "Build ID (UUID)"
// @Param token query string false "Share token"
// @Success 200 {object} service.SharePayload "Shared build snapshot"
// @Failure 404 {object} ErrorResponse "No shared view available"
// @Router /builds/{id}/shared [get]
func (h *ShareHandler) GetSharedBuild(c *gin.Context) {
	id, ok := parseBuildID(c)
	if !ok {
		return
	}

	payload, err := h.shareService.ResolveSharedView(id, c.Query("token"))
	if err != nil {
		h.respondError(c, err, "Failed to resolve shared build")
		return
	}

	c.JSON(http.StatusOK, payload)
}

// UnshareBuild handles DELETE /builds/:id/share
// @Summary Stop sharing a build
// @Description Clear the build's share state so old links stop resolving
// @Tags sharing
// @Accept json
// @Produce json
// @Param id path string true "Build ID (UUID)"
// @Success 204 "Share state cleared"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Not the build owner"
// @Failure 404 {object} ErrorResponse "Build not found"
// @Router /builds/{id}/share [delete]
func (h *ShareHandler) UnshareBuild(c *gin.Context) {
	id, ok := parseBuildID(c)
	if !ok {
		return
	}

	if err := h.shareService.Unshare(id, auth.CurrentUserID(c)); err != nil {
		h.respondError(c, err, "Failed to unshare build")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ShareHandler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case apperrors.IsMalformedInput(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
