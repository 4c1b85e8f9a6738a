package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/cache"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngagementService(repo *fakeEngagementRepo) EngagementService {
	return NewEngagementService(repo, cache.NewQueryCache(cache.NewMemoryStore(), time.Minute))
}

func TestToggleLike_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newEngagementService(newFakeEngagementRepo())

	// 点赞
	require.NoError(t, svc.ToggleLike(ctx, "s1", "sess-a", false))

	state, err := svc.GetLikeState(ctx, "s1", "sess-a")
	require.NoError(t, err)
	assert.Equal(t, &dto.LikeStateDTO{Count: 1, HasLiked: true}, state)

	// 其他会话看到计数但不算已赞
	state, err = svc.GetLikeState(ctx, "s1", "sess-b")
	require.NoError(t, err)
	assert.Equal(t, &dto.LikeStateDTO{Count: 1, HasLiked: false}, state)

	// 取消点赞
	require.NoError(t, svc.ToggleLike(ctx, "s1", "sess-a", true))

	state, err = svc.GetLikeState(ctx, "s1", "sess-a")
	require.NoError(t, err)
	assert.Equal(t, &dto.LikeStateDTO{Count: 0, HasLiked: false}, state)
}

func TestToggleLike_UnlikeWithoutLikeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEngagementRepo()
	svc := newEngagementService(repo)

	require.NoError(t, svc.ToggleLike(ctx, "s1", "sess-a", true))

	count, err := repo.GetLikeCountByStoryID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

// 同一会话并发连点，最终只落一行
func TestToggleLike_ConcurrentDoubleSubmit(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEngagementRepo()
	svc := newEngagementService(repo)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.ToggleLike(ctx, "s1", "sess-a", false))
		}()
	}
	wg.Wait()

	count, err := repo.GetLikeCountByStoryID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

// 锁池条目在最后一个持有者释放后回收，不随 (story, session) 键空间增长
func TestToggleLike_ReleasesLockEntries(t *testing.T) {
	ctx := context.Background()
	svc := newEngagementService(newFakeEngagementRepo()).(*engagementServiceImpl)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		sessionID := "sess-" + string(rune('a'+i))
		for j := 0; j < 5; j++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, svc.ToggleLike(ctx, "s1", sessionID, false))
			}()
		}
	}
	wg.Wait()

	svc.likeLocks.mu.Lock()
	remaining := len(svc.likeLocks.locks)
	svc.likeLocks.mu.Unlock()
	assert.Zero(t, remaining)
}

func TestGetLikeState_EmptySessionNeverHasLiked(t *testing.T) {
	ctx := context.Background()
	svc := newEngagementService(newFakeEngagementRepo())

	require.NoError(t, svc.ToggleLike(ctx, "s1", "sess-a", false))

	state, err := svc.GetLikeState(ctx, "s1", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), state.Count)
	assert.False(t, state.HasLiked)
}

// 命中缓存的计数读之后再写，写方必须让读方看到新值
func TestToggleLike_InvalidatesCachedCount(t *testing.T) {
	ctx := context.Background()
	svc := newEngagementService(newFakeEngagementRepo())

	state, err := svc.GetLikeState(ctx, "s1", "sess-a")
	require.NoError(t, err)
	require.Equal(t, int64(0), state.Count)

	require.NoError(t, svc.ToggleLike(ctx, "s1", "sess-a", false))

	state, err = svc.GetLikeState(ctx, "s1", "sess-a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), state.Count)
}

func TestCreateComment_Validation(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEngagementRepo()
	svc := newEngagementService(repo)

	tests := []struct {
		name string
		req  *dto.CommentCreateDTO
	}{
		{"empty author", &dto.CommentCreateDTO{AuthorName: "", Content: "hi"}},
		{"whitespace author", &dto.CommentCreateDTO{AuthorName: "   ", Content: "hi"}},
		{"empty content", &dto.CommentCreateDTO{AuthorName: "Ann", Content: ""}},
		{"whitespace content", &dto.CommentCreateDTO{AuthorName: "Ann", Content: " \n "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateComment(ctx, "s1", tt.req)
			assert.ErrorIs(t, err, ErrParamInvalid)
		})
	}

	assert.Equal(t, int64(0), repo.commentCount("s1"), "rejected comments must not be persisted")
}

func TestCreateComment_TrimsFields(t *testing.T) {
	ctx := context.Background()
	svc := newEngagementService(newFakeEngagementRepo())

	comment, err := svc.CreateComment(ctx, "s1", &dto.CommentCreateDTO{
		AuthorName: "  Ann  ",
		Content:    "  nice story  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ann", comment.AuthorName)
	assert.Equal(t, "nice story", comment.Content)
	assert.NotEmpty(t, comment.ID)
}

func TestListComments_NewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := newEngagementService(newFakeEngagementRepo())

	for _, content := range []string{"first", "second", "third"} {
		_, err := svc.CreateComment(ctx, "s1", &dto.CommentCreateDTO{AuthorName: "Ann", Content: content})
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	list, err := svc.ListComments(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Content)
	assert.Equal(t, "second", list[1].Content)
	assert.Equal(t, "first", list[2].Content)
}

func TestCreateComment_InvalidatesCachedList(t *testing.T) {
	ctx := context.Background()
	svc := newEngagementService(newFakeEngagementRepo())

	list, err := svc.ListComments(ctx, "s1")
	require.NoError(t, err)
	require.Empty(t, list)

	_, err = svc.CreateComment(ctx, "s1", &dto.CommentCreateDTO{AuthorName: "Ann", Content: "hello"})
	require.NoError(t, err)

	list, err = svc.ListComments(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "hello", list[0].Content)
}

func TestListComments_ScopedToStory(t *testing.T) {
	ctx := context.Background()
	svc := newEngagementService(newFakeEngagementRepo())

	_, err := svc.CreateComment(ctx, "s1", &dto.CommentCreateDTO{AuthorName: "Ann", Content: "for s1"})
	require.NoError(t, err)
	_, err = svc.CreateComment(ctx, "s2", &dto.CommentCreateDTO{AuthorName: "Ben", Content: "for s2"})
	require.NoError(t, err)

	list, err := svc.ListComments(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "for s1", list[0].Content)
}
