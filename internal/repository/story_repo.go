package repository

import (
	"Inkwell/internal/model"
	"context"

	"gorm.io/gorm"
)

type StoryRepo interface {
	CreateStory(ctx context.Context, story *model.Story) error
	GetStory(ctx context.Context, id string) (*model.Story, error)
	GetPublishedStories(ctx context.Context) ([]*model.Story, error)
	GetAllStories(ctx context.Context) ([]*model.Story, error)
	UpdateStory(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteStory(ctx context.Context, id string) (int64, error)
}

type StoryRepoImpl struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) StoryRepo {
	return &StoryRepoImpl{
		db: db,
	}
}

func (s StoryRepoImpl) CreateStory(ctx context.Context, story *model.Story) error {
	return s.db.WithContext(ctx).Create(story).Error
}

func (s StoryRepoImpl) GetStory(ctx context.Context, id string) (*model.Story, error) {
	var story model.Story
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&story).Error
	if err != nil {
		return nil, err
	}
	return &story, nil
}

func (s StoryRepoImpl) GetPublishedStories(ctx context.Context) ([]*model.Story, error) {
	var stories []*model.Story
	err := s.db.WithContext(ctx).
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&stories).Error
	return stories, err
}

func (s StoryRepoImpl) GetAllStories(ctx context.Context) ([]*model.Story, error) {
	var stories []*model.Story
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&stories).Error
	return stories, err
}

// UpdateStory 按列更新，fields 由调用方裁剪，id 与 created_at 永远不进入 fields
func (s StoryRepoImpl) UpdateStory(ctx context.Context, id string, fields map[string]interface{}) error {
	return s.db.WithContext(ctx).Model(&model.Story{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (s StoryRepoImpl) DeleteStory(ctx context.Context, id string) (int64, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Story{})
	return res.RowsAffected, res.Error
}
