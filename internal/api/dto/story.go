package dto

// StoryDTO 故事 - 列表项，excerpt 缺失时返回派生摘要
type StoryDTO struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Excerpt    string  `json:"excerpt"`
	CoverImage *string `json:"cover_image"`
	AuthorName string  `json:"author_name"`
	Published  bool    `json:"published"`
	CreatedAt  string  `json:"created_at"`
}

// StoryDetailDTO 故事 - 详情，附带按空行切分的段落
type StoryDetailDTO struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Excerpt    string   `json:"excerpt"`
	Paragraphs []string `json:"paragraphs"`
	CoverImage *string  `json:"cover_image"`
	AuthorName string   `json:"author_name"`
	Published  bool     `json:"published"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

// StoryCreateDTO 故事 - 新增
type StoryCreateDTO struct {
	Title      string  `json:"title" binding:"required" validate:"min=1,max=255"`
	Content    string  `json:"content" binding:"required" validate:"min=1"`
	Excerpt    *string `json:"excerpt" validate:"omitempty,max=512"`
	CoverImage *string `json:"cover_image" validate:"omitempty,max=512"`
	AuthorName string  `json:"author_name" binding:"required" validate:"min=1,max=255"`
	Published  *bool   `json:"published"`
}

// StoryUpdateDTO 故事 - 部分修改，仅提交的字段会被更新
type StoryUpdateDTO struct {
	Title      *string `json:"title" validate:"omitempty,max=255"`
	Content    *string `json:"content"`
	Excerpt    *string `json:"excerpt" validate:"omitempty,max=512"`
	CoverImage *string `json:"cover_image" validate:"omitempty,max=512"`
	AuthorName *string `json:"author_name" validate:"omitempty,max=255"`
	Published  *bool   `json:"published"`
}
