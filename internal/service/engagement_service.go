package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/cache"
	"Inkwell/internal/repository"
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

type EngagementService interface {
	ToggleLike(ctx context.Context, storyID, sessionID string, hasLiked bool) error
	GetLikeState(ctx context.Context, storyID, sessionID string) (*dto.LikeStateDTO, error)
	CreateComment(ctx context.Context, storyID string, req *dto.CommentCreateDTO) (*dto.CommentDTO, error)
	ListComments(ctx context.Context, storyID string) ([]*dto.CommentDTO, error)
}

type engagementServiceImpl struct {
	engagementRepo repository.EngagementRepo
	queryCache     *cache.QueryCache

	// likeLocks 按 (story, session) 串行化点赞切换，抵御同一会话的连点
	likeLocks likeLocker
}

func NewEngagementService(engagementRepo repository.EngagementRepo, queryCache *cache.QueryCache) EngagementService {
	return &engagementServiceImpl{
		engagementRepo: engagementRepo,
		queryCache:     queryCache,
		likeLocks:      likeLocker{locks: make(map[string]*likeLock)},
	}
}

// ToggleLike hasLiked 为调用方观察到的当前状态：true 则取消点赞，false 则点赞。
// 两个方向都是幂等的：删除不存在的记录不报错，重复插入被唯一键挡下后同样视为成功。
func (s *engagementServiceImpl) ToggleLike(ctx context.Context, storyID, sessionID string, hasLiked bool) error {
	unlock := s.lockLike(storyID, sessionID)
	defer unlock()

	if hasLiked {
		if err := s.engagementRepo.DeleteLike(ctx, storyID, sessionID); err != nil {
			return transient(err, "delete like")
		}
	} else {
		err := s.engagementRepo.CreateLike(ctx, &model.Like{
			StoryID:   storyID,
			SessionID: sessionID,
			CreatedAt: time.Now(),
		})
		if err != nil && !isDuplicateError(err) {
			return transient(err, "create like")
		}
	}

	s.queryCache.Invalidate(ctx, cache.MutationToggleLike, storyID)
	return nil
}

func (s *engagementServiceImpl) GetLikeState(ctx context.Context, storyID, sessionID string) (*dto.LikeStateDTO, error) {
	state := &dto.LikeStateDTO{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.getLikeCount(gCtx, storyID)
		if err != nil {
			return err
		}
		state.Count = count
		return nil
	})
	g.Go(func() error {
		// hasLiked 以会话为维度，不能挂在故事级缓存键下，始终回源查询
		if sessionID == "" {
			return nil
		}
		hasLiked, err := s.engagementRepo.CheckLikeExists(gCtx, storyID, sessionID)
		if err != nil {
			return transient(err, "check like exists")
		}
		state.HasLiked = hasLiked
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *engagementServiceImpl) CreateComment(ctx context.Context, storyID string, req *dto.CommentCreateDTO) (*dto.CommentDTO, error) {
	authorName := strings.TrimSpace(req.AuthorName)
	content := strings.TrimSpace(req.Content)
	if authorName == "" || content == "" {
		return nil, ErrParamInvalid
	}

	comment := &model.Comment{
		ID:         uuid.NewString(),
		StoryID:    storyID,
		AuthorName: authorName,
		Content:    content,
		CreatedAt:  time.Now(),
	}

	if err := s.engagementRepo.CreateComment(ctx, comment); err != nil {
		return nil, transient(err, "create comment")
	}

	s.queryCache.Invalidate(ctx, cache.MutationCreateComment, storyID)
	return toCommentDTO(comment), nil
}

func (s *engagementServiceImpl) ListComments(ctx context.Context, storyID string) ([]*dto.CommentDTO, error) {
	var cached []*dto.CommentDTO
	if s.queryCache.Get(ctx, cache.CommentsKey(storyID), &cached) {
		return cached, nil
	}

	comments, err := s.engagementRepo.GetCommentsByStoryID(ctx, storyID)
	if err != nil {
		return nil, transient(err, "list comments")
	}

	list := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		list = append(list, toCommentDTO(comment))
	}

	s.queryCache.Set(ctx, cache.CommentsKey(storyID), list)
	return list, nil
}

func (s *engagementServiceImpl) getLikeCount(ctx context.Context, storyID string) (int64, error) {
	key := cache.LikeStateKey(storyID)
	var cached int64
	if s.queryCache.Get(ctx, key, &cached) {
		return cached, nil
	}

	count, err := s.engagementRepo.GetLikeCountByStoryID(ctx, storyID)
	if err != nil {
		return 0, transient(err, "count likes")
	}
	s.queryCache.Set(ctx, key, count)
	return count, nil
}

func (s *engagementServiceImpl) lockLike(storyID, sessionID string) func() {
	return s.likeLocks.lock(storyID + ":" + sessionID)
}

type likeLock struct {
	mu   sync.Mutex
	refs int
}

// likeLocker 按键互斥，引用计数归零即回收条目，锁池不随键空间增长
type likeLocker struct {
	mu    sync.Mutex
	locks map[string]*likeLock
}

func (l *likeLocker) lock(key string) func() {
	l.mu.Lock()
	entry, ok := l.locks[key]
	if !ok {
		entry = &likeLock{}
		l.locks[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return false
}

func toCommentDTO(comment *model.Comment) *dto.CommentDTO {
	item := &dto.CommentDTO{}
	_ = copier.Copy(item, comment)
	item.CreatedAt = comment.CreatedAt.Format(time.DateTime)
	return item
}
