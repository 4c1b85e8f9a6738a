package job

import (
	"Inkwell/internal/pkg/cache"
	"Inkwell/internal/pkg/logger"
	"Inkwell/internal/repository"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// EngagementCountsJob 周期性用存储中的真实计数重写点赞缓存，修正缓存漂移
type EngagementCountsJob struct {
	storyRepo      repository.StoryRepo
	engagementRepo repository.EngagementRepo
	queryCache     *cache.QueryCache
}

func NewEngagementCountsJob(
	storyRepo repository.StoryRepo,
	engagementRepo repository.EngagementRepo,
	queryCache *cache.QueryCache,
) *EngagementCountsJob {
	return &EngagementCountsJob{
		storyRepo:      storyRepo,
		engagementRepo: engagementRepo,
		queryCache:     queryCache,
	}
}

func (s *EngagementCountsJob) Run() {
	traceID := "job-engagement-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	stories, err := s.storyRepo.GetAllStories(ctx)
	if err != nil {
		log.ErrorContext(ctx, "list stories for count refresh error", "err", err)
		return
	}

	refreshed := 0
	for _, story := range stories {
		count, err := s.engagementRepo.GetLikeCountByStoryID(ctx, story.ID)
		if err != nil {
			log.ErrorContext(ctx, "refresh like count error", "storyID", story.ID, "err", err)
			continue
		}
		s.queryCache.Set(ctx, cache.LikeStateKey(story.ID), count)
		refreshed++
	}

	log.InfoContext(ctx, "refresh engagement counts success",
		"story_count", len(stories),
		"refreshed", refreshed)
}
