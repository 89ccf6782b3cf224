package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/hectoorperezz/goviral-backend/internal/api/dto"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/response"
	"github.com/hectoorperezz/goviral-backend/internal/service"
)

type TrialHandler struct {
	trialSvc service.TrialService
}

func NewTrialHandler(trialSvc service.TrialService) *TrialHandler {
	return &TrialHandler{
		trialSvc: trialSvc,
	}
}

func (s *TrialHandler) Request(c *gin.Context) {
	var req dto.TrialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.trialSvc.RequestTrial(c.Request.Context(), req.Name, req.Email, req.ReelURL); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *TrialHandler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	trial, err := s.trialSvc.VerifyCode(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, trial)
}
