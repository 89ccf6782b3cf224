package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/hectoorperezz/goviral-backend/internal/api/dto"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/response"
	"github.com/hectoorperezz/goviral-backend/internal/service"
)

type EngagementHandler struct {
	engagementSvc service.EngagementService
}

func NewEngagementHandler(engagementSvc service.EngagementService) *EngagementHandler {
	return &EngagementHandler{
		engagementSvc: engagementSvc,
	}
}

func (s *EngagementHandler) Analyze(c *gin.Context) {
	var req dto.EngagementAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	analysis, err := s.engagementSvc.AnalyzeProfile(c.Request.Context(), req.Username)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, analysis)
}
