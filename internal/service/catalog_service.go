package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/cache"
	"Inkwell/internal/pkg/util"
	"Inkwell/internal/repository"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type CatalogService interface {
	ListPublished(ctx context.Context) ([]*dto.StoryDTO, error)
	ListAll(ctx context.Context) ([]*dto.StoryDTO, error)
	GetByID(ctx context.Context, id string) (*dto.StoryDetailDTO, error)
	CreateStory(ctx context.Context, req *dto.StoryCreateDTO) (*dto.StoryDetailDTO, error)
	UpdateStory(ctx context.Context, id string, req *dto.StoryUpdateDTO) (*dto.StoryDetailDTO, error)
	DeleteStory(ctx context.Context, id string) error
}

type catalogServiceImpl struct {
	storyRepo  repository.StoryRepo
	queryCache *cache.QueryCache
}

func NewCatalogService(storyRepo repository.StoryRepo, queryCache *cache.QueryCache) CatalogService {
	return &catalogServiceImpl{
		storyRepo:  storyRepo,
		queryCache: queryCache,
	}
}

func (s *catalogServiceImpl) ListPublished(ctx context.Context) ([]*dto.StoryDTO, error) {
	var cached []*dto.StoryDTO
	if s.queryCache.Get(ctx, cache.KeyPublishedStories, &cached) {
		return cached, nil
	}

	stories, err := s.storyRepo.GetPublishedStories(ctx)
	if err != nil {
		return nil, transient(err, "list published stories")
	}

	list := s.toStoryList(stories)
	s.queryCache.Set(ctx, cache.KeyPublishedStories, list)
	return list, nil
}

func (s *catalogServiceImpl) ListAll(ctx context.Context) ([]*dto.StoryDTO, error) {
	var cached []*dto.StoryDTO
	if s.queryCache.Get(ctx, cache.KeyAllStories, &cached) {
		return cached, nil
	}

	stories, err := s.storyRepo.GetAllStories(ctx)
	if err != nil {
		return nil, transient(err, "list all stories")
	}

	list := s.toStoryList(stories)
	s.queryCache.Set(ctx, cache.KeyAllStories, list)
	return list, nil
}

// GetByID 不过滤 published：详情页允许通过直链访问草稿，收紧与否由路由层决定
func (s *catalogServiceImpl) GetByID(ctx context.Context, id string) (*dto.StoryDetailDTO, error) {
	var cached dto.StoryDetailDTO
	if s.queryCache.Get(ctx, cache.StoryKey(id), &cached) {
		return &cached, nil
	}

	story, err := s.storyRepo.GetStory(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoryNotFound
		}
		return nil, transient(err, "get story")
	}

	detail := s.toStoryDetail(story)
	s.queryCache.Set(ctx, cache.StoryKey(id), detail)
	return detail, nil
}

func (s *catalogServiceImpl) CreateStory(ctx context.Context, req *dto.StoryCreateDTO) (*dto.StoryDetailDTO, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	authorName := strings.TrimSpace(req.AuthorName)
	if title == "" || content == "" || authorName == "" {
		return nil, ErrParamInvalid
	}

	now := time.Now()
	story := &model.Story{
		ID:         uuid.NewString(),
		Title:      title,
		Content:    req.Content,
		Excerpt:    normalizeOptional(req.Excerpt),
		CoverImage: normalizeOptional(req.CoverImage),
		AuthorName: authorName,
		Published:  true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if req.Published != nil {
		story.Published = *req.Published
	}

	if err := s.storyRepo.CreateStory(ctx, story); err != nil {
		return nil, transient(err, "create story")
	}

	s.queryCache.Invalidate(ctx, cache.MutationCreateStory, story.ID)
	return s.toStoryDetail(story), nil
}

func (s *catalogServiceImpl) UpdateStory(ctx context.Context, id string, req *dto.StoryUpdateDTO) (*dto.StoryDetailDTO, error) {
	if _, err := s.storyRepo.GetStory(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoryNotFound
		}
		return nil, transient(err, "get story for update")
	}

	fields, err := updateFields(req)
	if err != nil {
		return nil, err
	}

	if err = s.storyRepo.UpdateStory(ctx, id, fields); err != nil {
		return nil, transient(err, "update story")
	}

	s.queryCache.Invalidate(ctx, cache.MutationUpdateStory, id)

	story, err := s.storyRepo.GetStory(ctx, id)
	if err != nil {
		// 更新与回读之间故事可能已被删除
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoryNotFound
		}
		return nil, transient(err, "reload story")
	}
	return s.toStoryDetail(story), nil
}

// DeleteStory 硬删除。点赞与评论不做级联清理，故事消失后它们不再被任何可见视图引用。
func (s *catalogServiceImpl) DeleteStory(ctx context.Context, id string) error {
	rows, err := s.storyRepo.DeleteStory(ctx, id)
	if err != nil {
		return transient(err, "delete story")
	}
	if rows == 0 {
		return ErrStoryNotFound
	}

	s.queryCache.Invalidate(ctx, cache.MutationDeleteStory, id)
	return nil
}

// updateFields 只收录提交的字段；id 与 created_at 不可变，从不进入更新集
func updateFields(req *dto.StoryUpdateDTO) (map[string]interface{}, error) {
	fields := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, ErrParamInvalid
		}
		fields["title"] = title
	}
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, ErrParamInvalid
		}
		fields["content"] = *req.Content
	}
	if req.AuthorName != nil {
		authorName := strings.TrimSpace(*req.AuthorName)
		if authorName == "" {
			return nil, ErrParamInvalid
		}
		fields["author_name"] = authorName
	}
	if req.Excerpt != nil {
		fields["excerpt"] = normalizeOptional(req.Excerpt)
	}
	if req.CoverImage != nil {
		fields["cover_image"] = normalizeOptional(req.CoverImage)
	}
	if req.Published != nil {
		fields["published"] = *req.Published
	}
	return fields, nil
}

// normalizeOptional 可选字段缺失或为空白时落库为 NULL，而不是空字符串
func normalizeOptional(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	return value
}

func (s *catalogServiceImpl) toStoryList(stories []*model.Story) []*dto.StoryDTO {
	list := make([]*dto.StoryDTO, 0, len(stories))
	for _, story := range stories {
		item := &dto.StoryDTO{}
		_ = copier.Copy(item, story)
		item.Excerpt = excerptOrDerived(story)
		item.CreatedAt = story.CreatedAt.Format(time.DateTime)
		list = append(list, item)
	}
	return list
}

func (s *catalogServiceImpl) toStoryDetail(story *model.Story) *dto.StoryDetailDTO {
	detail := &dto.StoryDetailDTO{}
	_ = copier.Copy(detail, story)
	detail.Excerpt = excerptOrDerived(story)
	detail.Paragraphs = util.SplitParagraphs(story.Content)
	detail.CreatedAt = story.CreatedAt.Format(time.DateTime)
	detail.UpdatedAt = story.UpdatedAt.Format(time.DateTime)
	return detail
}

func excerptOrDerived(story *model.Story) string {
	if story.Excerpt != nil && strings.TrimSpace(*story.Excerpt) != "" {
		return *story.Excerpt
	}
	return util.DeriveExcerpt(story.Content)
}
