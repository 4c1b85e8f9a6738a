package model

import (
	"time"
)

type Story struct {
	ID         string    `gorm:"type:char(36);primaryKey" json:"id"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Excerpt    *string   `gorm:"type:varchar(512)" json:"excerpt"`
	CoverImage *string   `gorm:"type:varchar(512)" json:"cover_image"`
	AuthorName string    `gorm:"type:varchar(255);not null" json:"author_name"`
	Published  bool      `gorm:"not null" json:"published"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Story) TableName() string {
	return "stories"
}
