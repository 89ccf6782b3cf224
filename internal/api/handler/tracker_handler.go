package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/hectoorperezz/goviral-backend/internal/api/dto"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/response"
	"github.com/hectoorperezz/goviral-backend/internal/service"
)

type TrackerHandler struct {
	trackerSvc service.TrackerService
}

func NewTrackerHandler(trackerSvc service.TrackerService) *TrackerHandler {
	return &TrackerHandler{
		trackerSvc: trackerSvc,
	}
}

func (s *TrackerHandler) Track(c *gin.Context) {
	var req dto.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	info, err := s.trackerSvc.TrackUser(c.Request.Context(), req.Username)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, info)
}

func (s *TrackerHandler) Growth(c *gin.Context) {
	stats, err := s.trackerSvc.GetGrowthStats(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

func (s *TrackerHandler) History(c *gin.Context) {
	history, err := s.trackerSvc.GetHistory(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, history)
}

// DailyUpdate triggers the batch refresh out of schedule; admin only.
func (s *TrackerHandler) DailyUpdate(c *gin.Context) {
	summary, err := s.trackerSvc.PerformDailyUpdate(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summary)
}
