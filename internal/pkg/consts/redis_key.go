package consts

const (
	StoryListKey    = "story:list:"
	StoryDetailKey  = "story:detail:"
	StoryLikeKey    = "story:like:"
	StoryCommentKey = "story:comment:"
)
