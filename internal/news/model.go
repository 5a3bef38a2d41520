// Package news holds the public news feed shown on the portal home page.
package news

import (
	"time"

	"github.com/google/uuid"
)

type Article struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Summary     string    `json:"summary" gorm:"not null"`
	Content     string    `json:"content" gorm:"not null"`
	Category    string    `json:"category" gorm:"not null"`
	ImageURL    *string   `json:"imageUrl" gorm:"column:image_url"`
	PublishedAt time.Time `json:"publishedAt" gorm:"autoCreateTime"`
}

func (Article) TableName() string {
	return "news"
}
