package handlers

import (
	"strconv"

	"neighborhood-stories/helper"
	"neighborhood-stories/models"
	"neighborhood-stories/services"

	"github.com/gin-gonic/gin"
)

type StoryHandler struct {
	storyService services.StoryService
	Helper       *helper.HTTPHelper
}

func NewStoryHandler(storyService services.StoryService) *StoryHandler {
	return &StoryHandler{
		storyService: storyService,
		Helper:       &helper.HTTPHelper{},
	}
}

func (h *StoryHandler) SubmitStory(c *gin.Context) {
	var req models.SubmitStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	story, err := h.storyService.Submit(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	// Submitters get their own record back, contact fields included.
	h.Helper.SendCreated(c, "Story submitted for review", story)
}

func (h *StoryHandler) GetStories(c *gin.Context) {
	var params models.StoryListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 12
	}

	stories, total, err := h.storyService.ListPublic(params)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", gin.H{
		"stories": stories,
		"paging":  h.Helper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *StoryHandler) GetStory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid story ID", h.Helper.EmptyJsonMap())
		return
	}

	story, err := h.storyService.GetPublic(uint(id))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", story)
}

func (h *StoryHandler) LikeStory(c *gin.Context) {
	h.bumpCounter(c, h.storyService.Like)
}

func (h *StoryHandler) RespondToStory(c *gin.Context) {
	h.bumpCounter(c, h.storyService.Respond)
}

func (h *StoryHandler) bumpCounter(c *gin.Context, bump func(uint) error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid story ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := bump(uint(id)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", h.Helper.EmptyJsonMap())
}
