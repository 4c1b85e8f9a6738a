package repository

import (
	"Inkwell/internal/model"
	"context"

	"gorm.io/gorm"
)

type EngagementRepo interface {
	CreateLike(ctx context.Context, like *model.Like) error
	DeleteLike(ctx context.Context, storyID, sessionID string) error
	CheckLikeExists(ctx context.Context, storyID, sessionID string) (bool, error)
	GetLikeCountByStoryID(ctx context.Context, storyID string) (int64, error)

	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentsByStoryID(ctx context.Context, storyID string) ([]*model.Comment, error)
}

type EngagementRepoImpl struct {
	db *gorm.DB
}

func NewEngagementRepo(db *gorm.DB) EngagementRepo {
	return &EngagementRepoImpl{db}
}

func (s *EngagementRepoImpl) CreateLike(ctx context.Context, like *model.Like) error {
	return s.db.WithContext(ctx).Create(like).Error
}

// DeleteLike 删除点赞记录，记录不存在时不视为错误
func (s *EngagementRepoImpl) DeleteLike(ctx context.Context, storyID, sessionID string) error {
	return s.db.WithContext(ctx).
		Where("story_id = ? AND session_id = ?", storyID, sessionID).
		Delete(&model.Like{}).Error
}

func (s *EngagementRepoImpl) CheckLikeExists(ctx context.Context, storyID, sessionID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("story_id = ? AND session_id = ?", storyID, sessionID).
		Count(&count).Error
	return count > 0, err
}

func (s *EngagementRepoImpl) GetLikeCountByStoryID(ctx context.Context, storyID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("story_id = ?", storyID).
		Count(&count).Error
	return count, err
}

func (s *EngagementRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

// GetCommentsByStoryID 按创建时间倒序返回评论，id 作为同一时刻的稳定次序
func (s *EngagementRepoImpl) GetCommentsByStoryID(ctx context.Context, storyID string) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Where("story_id = ?", storyID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	return comments, err
}
