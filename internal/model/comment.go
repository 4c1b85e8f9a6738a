package model

import (
	"time"
)

type Comment struct {
	ID         string    `gorm:"type:char(36);primaryKey" json:"id"`
	StoryID    string    `gorm:"type:char(36);not null;index:idx_story_id" json:"story_id"`
	AuthorName string    `gorm:"type:varchar(255);not null" json:"author_name"`
	Content    string    `gorm:"type:varchar(2000);not null" json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}
