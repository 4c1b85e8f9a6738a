package service

import (
	"Inkwell/internal/model"
	"context"
	"sort"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// 进程内假仓库，行为对齐 MySQL 实现：复合主键挡重复点赞，倒序排序，未命中返回 gorm.ErrRecordNotFound

type fakeStoryRepo struct {
	mu      sync.Mutex
	stories map[string]*model.Story

	// afterUpdate 在一次更新落库后执行，用于在更新与回读之间制造并发写
	afterUpdate func()
}

func newFakeStoryRepo() *fakeStoryRepo {
	return &fakeStoryRepo{stories: make(map[string]*model.Story)}
}

func (f *fakeStoryRepo) CreateStory(_ context.Context, story *model.Story) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *story
	f.stories[story.ID] = &cp
	return nil
}

func (f *fakeStoryRepo) GetStory(_ context.Context, id string) (*model.Story, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	story, ok := f.stories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *story
	return &cp, nil
}

func (f *fakeStoryRepo) GetPublishedStories(_ context.Context) ([]*model.Story, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Story
	for _, story := range f.stories {
		if story.Published {
			cp := *story
			out = append(out, &cp)
		}
	}
	sortStoriesDesc(out)
	return out, nil
}

func (f *fakeStoryRepo) GetAllStories(_ context.Context) ([]*model.Story, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Story
	for _, story := range f.stories {
		cp := *story
		out = append(out, &cp)
	}
	sortStoriesDesc(out)
	return out, nil
}

func (f *fakeStoryRepo) UpdateStory(_ context.Context, id string, fields map[string]interface{}) error {
	f.mu.Lock()
	if f.afterUpdate != nil {
		defer f.afterUpdate()
	}
	defer f.mu.Unlock()
	story, ok := f.stories[id]
	if !ok {
		return nil
	}
	for column, value := range fields {
		switch column {
		case "title":
			story.Title = value.(string)
		case "content":
			story.Content = value.(string)
		case "author_name":
			story.AuthorName = value.(string)
		case "excerpt":
			story.Excerpt = value.(*string)
		case "cover_image":
			story.CoverImage = value.(*string)
		case "published":
			story.Published = value.(bool)
		case "updated_at":
			story.UpdatedAt = value.(time.Time)
		}
	}
	return nil
}

func (f *fakeStoryRepo) DeleteStory(_ context.Context, id string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.stories[id]; !ok {
		return 0, nil
	}
	delete(f.stories, id)
	return 1, nil
}

func sortStoriesDesc(stories []*model.Story) {
	sort.SliceStable(stories, func(i, j int) bool {
		return stories[i].CreatedAt.After(stories[j].CreatedAt)
	})
}

type fakeEngagementRepo struct {
	mu       sync.Mutex
	likes    map[string]map[string]time.Time
	comments []*model.Comment
}

func newFakeEngagementRepo() *fakeEngagementRepo {
	return &fakeEngagementRepo{likes: make(map[string]map[string]time.Time)}
}

func (f *fakeEngagementRepo) CreateLike(_ context.Context, like *model.Like) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	sessions, ok := f.likes[like.StoryID]
	if !ok {
		sessions = make(map[string]time.Time)
		f.likes[like.StoryID] = sessions
	}
	if _, exists := sessions[like.SessionID]; exists {
		return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	}
	sessions[like.SessionID] = like.CreatedAt
	return nil
}

func (f *fakeEngagementRepo) DeleteLike(_ context.Context, storyID, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if sessions, ok := f.likes[storyID]; ok {
		delete(sessions, sessionID)
	}
	return nil
}

func (f *fakeEngagementRepo) CheckLikeExists(_ context.Context, storyID, sessionID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sessions, ok := f.likes[storyID]
	if !ok {
		return false, nil
	}
	_, exists := sessions[sessionID]
	return exists, nil
}

func (f *fakeEngagementRepo) GetLikeCountByStoryID(_ context.Context, storyID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.likes[storyID])), nil
}

func (f *fakeEngagementRepo) CreateComment(_ context.Context, comment *model.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *comment
	f.comments = append(f.comments, &cp)
	return nil
}

func (f *fakeEngagementRepo) GetCommentsByStoryID(_ context.Context, storyID string) ([]*model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Comment
	for _, comment := range f.comments {
		if comment.StoryID == storyID {
			cp := *comment
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeEngagementRepo) commentCount(storyID string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, comment := range f.comments {
		if comment.StoryID == storyID {
			count++
		}
	}
	return count
}
