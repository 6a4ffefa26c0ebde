package handlers

import (
	"net/http"
	"strconv"

	"neighborhood-stories/helper"
	"neighborhood-stories/middleware"
	"neighborhood-stories/models"
	"neighborhood-stories/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the moderation dashboard. Unlike the public surface it
// speaks plain JSON: a raw story array on GET, the updated row on PUT, and
// {"error": ...} objects on failure.
type AdminHandler struct {
	moderationService services.ModerationService
	Helper            *helper.HTTPHelper
}

func NewAdminHandler(moderationService services.ModerationService) *AdminHandler {
	return &AdminHandler{
		moderationService: moderationService,
		Helper:            &helper.HTTPHelper{},
	}
}

func (h *AdminHandler) ListStories(c *gin.Context) {
	stories, err := h.moderationService.ListAll(adminPassword(c))
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, stories)
}

func (h *AdminHandler) UpdateStoryStatus(c *gin.Context) {
	var req models.UpdateStoryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	story, err := h.moderationService.UpdateStatus(adminPassword(c), req.ID, req.Status)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, story)
}

func (h *AdminHandler) UpdateStory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid story ID"})
		return
	}

	var req models.UpdateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	story, err := h.moderationService.UpdateStory(adminPassword(c), uint(id), req)
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, story)
}

func (h *AdminHandler) ListStoryInterests(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid story ID"})
		return
	}

	interests, err := h.moderationService.ListInterests(adminPassword(c), uint(id))
	if err != nil {
		h.sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, interests)
}

func (h *AdminHandler) sendError(c *gin.Context, err error) {
	statusCode := h.Helper.GetStatusCode(err)
	if statusCode == http.StatusUnauthorized {
		// Uniform body regardless of why the credential failed.
		c.JSON(statusCode, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(statusCode, gin.H{"error": err.Error()})
}

func adminPassword(c *gin.Context) string {
	password, _ := c.Get(middleware.ContextKeyAdminPassword)
	if s, ok := password.(string); ok {
		return s
	}
	return ""
}
