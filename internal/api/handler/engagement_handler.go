package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	engagementSvc service.EngagementService
}

func NewEngagementHandler(engagementSvc service.EngagementService) *EngagementHandler {
	return &EngagementHandler{
		engagementSvc: engagementSvc,
	}
}

// GetLikeState 点赞数与当前会话是否已点赞
func (s *EngagementHandler) GetLikeState(c *gin.Context) {
	storyID := c.Param("story_id")
	if storyID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	sessionID := c.GetString(consts.SessionIDKey)

	state, err := s.engagementSvc.GetLikeState(c.Request.Context(), storyID, sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, state)
}

// Like 点赞。对已点赞的会话重复调用不产生第二条记录。
func (s *EngagementHandler) Like(c *gin.Context) {
	s.toggleLike(c, false)
}

// Unlike 取消点赞。记录不存在时同样返回成功。
func (s *EngagementHandler) Unlike(c *gin.Context) {
	s.toggleLike(c, true)
}

func (s *EngagementHandler) toggleLike(c *gin.Context, hasLiked bool) {
	storyID := c.Param("story_id")
	if storyID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	sessionID := c.GetString(consts.SessionIDKey)

	if err := s.engagementSvc.ToggleLike(c.Request.Context(), storyID, sessionID, hasLiked); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ListComments 评论列表，最新在前
func (s *EngagementHandler) ListComments(c *gin.Context) {
	storyID := c.Param("story_id")
	if storyID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	comments, err := s.engagementSvc.ListComments(c.Request.Context(), storyID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

// CreateComment 发布评论，无需登录
func (s *EngagementHandler) CreateComment(c *gin.Context) {
	storyID := c.Param("story_id")
	if storyID == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.engagementSvc.CreateComment(c.Request.Context(), storyID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, comment)
}
