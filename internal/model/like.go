package model

import (
	"time"
)

// Like 的主键为 (story_id, session_id)，存储层保证同一会话对同一故事至多一条记录
type Like struct {
	StoryID   string    `gorm:"type:char(36);primaryKey" json:"story_id"`
	SessionID string    `gorm:"type:char(36);primaryKey" json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}
