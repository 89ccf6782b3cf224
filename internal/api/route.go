package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hectoorperezz/goviral-backend/internal/api/middleware"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/logger"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		blogGroup := apiGroup.Group("/blog")
		{
			blogGroup.GET("/posts", group.BlogHandler.ListPosts)
			blogGroup.GET("/posts/:slug", group.BlogHandler.GetPost)
			blogGroup.GET("/categories", group.BlogHandler.ListCategories)
		}

		engagementGroup := apiGroup.Group("/engagement")
		{
			engagementGroup.POST("/analyze", group.EngagementHandler.Analyze)
		}

		trackerGroup := apiGroup.Group("/tracker")
		{
			trackerGroup.POST("/track", group.TrackerHandler.Track)
			trackerGroup.GET("/:username/growth", group.TrackerHandler.Growth)
			trackerGroup.GET("/:username/history", group.TrackerHandler.History)
		}

		hashtagGroup := apiGroup.Group("/hashtag")
		{
			hashtagGroup.GET("/analyze", group.HashtagHandler.Analyze)
		}

		trialGroup := apiGroup.Group("/trial")
		{
			trialGroup.POST("/request", group.TrialHandler.Request)
			trialGroup.POST("/verify", group.TrialHandler.Verify)
		}

		adminGroup := apiGroup.Group("/admin")
		adminGroup.Use(middleware.AdminMiddleware())
		{
			adminGroup.POST("/articles", group.AdminHandler.CreateArticle)
			adminGroup.POST("/articles/batch", group.AdminHandler.CreateArticleBatch)
			adminGroup.POST("/tracker/daily-update", group.TrackerHandler.DailyUpdate)
		}
	}

	return r
}
