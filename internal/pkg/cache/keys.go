package cache

import "Inkwell/internal/pkg/consts"

// 查询缓存键：每个键对应一个 (操作, 参数) 组合
const (
	KeyPublishedStories = consts.StoryListKey + "published"
	KeyAllStories       = consts.StoryListKey + "all"
)

func StoryKey(id string) string {
	return consts.StoryDetailKey + id
}

func LikeStateKey(storyID string) string {
	return consts.StoryLikeKey + storyID
}

func CommentsKey(storyID string) string {
	return consts.StoryCommentKey + storyID
}

// Mutation 标识一次写操作的种类，用于查失效表
type Mutation int

const (
	MutationToggleLike Mutation = iota
	MutationCreateComment
	MutationCreateStory
	MutationUpdateStory
	MutationDeleteStory
)

// KeysFor 返回某次写操作后必须失效的全部缓存键（失效表）
func KeysFor(m Mutation, storyID string) []string {
	switch m {
	case MutationToggleLike:
		return []string{LikeStateKey(storyID)}
	case MutationCreateComment:
		return []string{CommentsKey(storyID)}
	case MutationCreateStory, MutationDeleteStory:
		return []string{KeyPublishedStories, KeyAllStories}
	case MutationUpdateStory:
		return []string{KeyPublishedStories, KeyAllStories, StoryKey(storyID)}
	}
	return nil
}
