package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/hectoorperezz/goviral-backend/internal/service"
)

type HashtagHandler struct {
	hashtagSvc service.HashtagService
}

func NewHashtagHandler(hashtagSvc service.HashtagService) *HashtagHandler {
	return &HashtagHandler{
		hashtagSvc: hashtagSvc,
	}
}

// Analyze streams progress over SSE and finishes with either a result
// or an error event.
func (s *HashtagHandler) Analyze(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	progress := func(stage string, percent int) {
		c.SSEvent("progress", gin.H{"stage": stage, "percent": percent})
		c.Writer.Flush()
	}

	analysis, err := s.hashtagSvc.Analyze(c.Request.Context(), c.Query("tag"), progress)
	if err != nil {
		c.SSEvent("error", gin.H{"error": err.Error()})
		c.Writer.Flush()
		return
	}

	c.SSEvent("result", analysis)
	c.Writer.Flush()
}
