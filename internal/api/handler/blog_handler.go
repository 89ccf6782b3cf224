package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/response"
	"github.com/hectoorperezz/goviral-backend/internal/service"
)

type BlogHandler struct {
	blogSvc service.BlogService
}

func NewBlogHandler(blogSvc service.BlogService) *BlogHandler {
	return &BlogHandler{
		blogSvc: blogSvc,
	}
}

func (s *BlogHandler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "12"))

	list, err := s.blogSvc.ListPosts(c.Request.Context(), c.Query("category"), page, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *BlogHandler) GetPost(c *gin.Context) {
	detail, err := s.blogSvc.GetPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, detail)
}

func (s *BlogHandler) ListCategories(c *gin.Context) {
	categories, err := s.blogSvc.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, categories)
}
