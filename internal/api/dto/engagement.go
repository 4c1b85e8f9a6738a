package dto

// LikeStateDTO 某个故事的点赞状态，hasLiked 以当前会话为准
type LikeStateDTO struct {
	Count    int64 `json:"count"`
	HasLiked bool  `json:"hasLiked"`
}

// CommentDTO 评论
type CommentDTO struct {
	ID         string `json:"id"`
	StoryID    string `json:"story_id"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}

// CommentCreateDTO 评论 - 新增，无需登录
type CommentCreateDTO struct {
	AuthorName string `json:"author_name" binding:"required" validate:"min=1,max=255"`
	Content    string `json:"content" binding:"required" validate:"min=1,max=2000"`
}
