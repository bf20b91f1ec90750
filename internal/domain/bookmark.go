package domain

import "time"

type Bookmark struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Link        string    `gorm:"size:2048;not null" json:"link"`
	Description *string   `gorm:"type:text" json:"description"`
	UserID      string    `gorm:"size:36;index;not null" json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Bookmark) TableName() string { return "bookmarks" }

type BookmarkPatch struct {
	Title       *string
	Link        *string
	Description *string
}

type BookmarkRepository interface {
	Create(b *Bookmark) error
	FindByID(id string) (*Bookmark, error)
	FindByIDAndOwner(id, userID string) (*Bookmark, error)
	ListByOwner(userID string) ([]Bookmark, error)
	Update(b *Bookmark) error
	Delete(id string) error
}
