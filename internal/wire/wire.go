package wire

import (
	"github.com/gin-gonic/gin"
	"github.com/hectoorperezz/goviral-backend/internal/api"
	"github.com/hectoorperezz/goviral-backend/internal/api/config"
	"github.com/hectoorperezz/goviral-backend/internal/api/handler"
	"github.com/hectoorperezz/goviral-backend/internal/job"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/cron"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/instagram"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/llm"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/mailer"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/storage"
	"github.com/hectoorperezz/goviral-backend/internal/repository"
	"github.com/hectoorperezz/goviral-backend/internal/service"
	"gorm.io/gorm"
)

// ApplicationContainer bundles the top-level components main runs.
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, store storage.Store, llmClient *llm.Client, cfg *config.Config) (*ApplicationContainer, error) {
	igClient := instagram.NewClient(cfg.SocialAPI)
	mail := mailer.New(cfg.Mail)

	trackedUserRepo := repository.NewTrackedUserRepository(db)
	followerHistoryRepo := repository.NewFollowerHistoryRepository(db)
	engagementRepo := repository.NewEngagementRepository(db)
	blogRepo := repository.NewBlogRepository(db)

	engagementSvc := service.NewEngagementService(engagementRepo, igClient)
	trackerSvc := service.NewTrackerService(trackedUserRepo, followerHistoryRepo, igClient, cfg.Tracker.RatePerSecond)
	blogSvc := service.NewBlogService(blogRepo)
	articleSvc := service.NewArticleService(blogSvc, blogRepo, llmClient, cfg.LLM.PromptsPath)
	trialSvc := service.NewTrialService(store, mail)
	hashtagSvc := service.NewHashtagService(igClient)

	handlers := &api.HandlersGroup{
		BlogHandler:       handler.NewBlogHandler(blogSvc),
		EngagementHandler: handler.NewEngagementHandler(engagementSvc),
		TrackerHandler:    handler.NewTrackerHandler(trackerSvc),
		HashtagHandler:    handler.NewHashtagHandler(hashtagSvc),
		TrialHandler:      handler.NewTrialHandler(trialSvc),
		AdminHandler:      handler.NewAdminHandler(articleSvc),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewFollowerUpdateJob(trackerSvc))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
