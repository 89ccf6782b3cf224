package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/hectoorperezz/goviral-backend/internal/api/dto"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/response"
	"github.com/hectoorperezz/goviral-backend/internal/service"
)

type AdminHandler struct {
	articleSvc service.ArticleService
}

func NewAdminHandler(articleSvc service.ArticleService) *AdminHandler {
	return &AdminHandler{
		articleSvc: articleSvc,
	}
}

func (s *AdminHandler) CreateArticle(c *gin.Context) {
	var req dto.ArticleGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	slug, err := s.articleSvc.GenerateArticle(c.Request.Context(), req.Topic, req.CategorySlug)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ArticleResult{Topic: req.Topic, Slug: slug})
}

func (s *AdminHandler) CreateArticleBatch(c *gin.Context) {
	var req dto.ArticleBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.articleSvc.GenerateBatch(c.Request.Context(), req.Topics, req.CategorySlug)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
