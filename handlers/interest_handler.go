package handlers

import (
	"strconv"

	"neighborhood-stories/helper"
	"neighborhood-stories/models"
	"neighborhood-stories/services"

	"github.com/gin-gonic/gin"
)

type InterestHandler struct {
	interestService services.InterestService
	Helper          *helper.HTTPHelper
}

func NewInterestHandler(interestService services.InterestService) *InterestHandler {
	return &InterestHandler{
		interestService: interestService,
		Helper:          &helper.HTTPHelper{},
	}
}

func (h *InterestHandler) ExpressInterest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid story ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.ExpressInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	result, err := h.interestService.ExpressInterest(uint(id), req.ContactInfo)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Interest recorded", result)
}

func (h *InterestHandler) ExpressInterestBatch(c *gin.Context) {
	var req models.BatchInterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	results := h.interestService.ExpressInterestBatch(req)

	h.Helper.SendSuccess(c, "Interest processed", gin.H{"results": results})
}
