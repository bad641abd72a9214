package entities

import (
	"time"

	"gorm.io/gorm"
)

// Bookmark links a user to a word. WordID is a weak reference: no foreign
// key is created, so deleting the word leaves Word nil on read.
type Bookmark struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	WordID    string    `gorm:"size:36;not null;uniqueIndex:idx_bookmarks_word_user,priority:1" json:"wordId"`
	Username  string    `gorm:"size:64;not null;index;uniqueIndex:idx_bookmarks_word_user,priority:2" json:"username"`
	Word      *Word     `gorm:"foreignKey:WordID" json:"word"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}

func (b *Bookmark) BeforeCreate(tx *gorm.DB) error {
	assignID(&b.ID)
	return nil
}
