package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

type StoryHandler struct {
	catalogSvc service.CatalogService
}

func NewStoryHandler(catalogSvc service.CatalogService) *StoryHandler {
	return &StoryHandler{
		catalogSvc: catalogSvc,
	}
}

// ListPublished 公开的故事列表，只含已发布条目
func (s *StoryHandler) ListPublished(c *gin.Context) {
	stories, err := s.catalogSvc.ListPublished(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stories)
}

// ListAll 管理端故事列表，包含草稿
func (s *StoryHandler) ListAll(c *gin.Context) {
	stories, err := s.catalogSvc.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stories)
}

// GetStory 故事详情，草稿也可通过直链访问
func (s *StoryHandler) GetStory(c *gin.Context) {
	storyID := c.Param("story_id")
	if storyID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	story, err := s.catalogSvc.GetByID(c.Request.Context(), storyID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, story)
}

func (s *StoryHandler) CreateStory(c *gin.Context) {
	var req dto.StoryCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	story, err := s.catalogSvc.CreateStory(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, story)
}

func (s *StoryHandler) UpdateStory(c *gin.Context) {
	storyID := c.Param("story_id")
	if storyID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.StoryUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	story, err := s.catalogSvc.UpdateStory(c.Request.Context(), storyID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, story)
}

func (s *StoryHandler) DeleteStory(c *gin.Context) {
	storyID := c.Param("story_id")
	if storyID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.catalogSvc.DeleteStory(c.Request.Context(), storyID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}
