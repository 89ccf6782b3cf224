package api

import "github.com/hectoorperezz/goviral-backend/internal/api/handler"

// HandlersGroup bundles all initialized handler instances.
type HandlersGroup struct {
	BlogHandler       *handler.BlogHandler
	EngagementHandler *handler.EngagementHandler
	TrackerHandler    *handler.TrackerHandler
	HashtagHandler    *handler.HashtagHandler
	TrialHandler      *handler.TrialHandler
	AdminHandler      *handler.AdminHandler
}
