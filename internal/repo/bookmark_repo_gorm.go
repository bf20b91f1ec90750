package repo

import (
	"errors"

	"gorm.io/gorm"

	"go-bookmarks-api/internal/domain"
)

type BookmarkRepo struct{ db *gorm.DB }

func NewBookmarkRepo(db *gorm.DB) *BookmarkRepo { return &BookmarkRepo{db: db} }

func (r *BookmarkRepo) Create(b *domain.Bookmark) error { return r.db.Create(b).Error }

func (r *BookmarkRepo) FindByID(id string) (*domain.Bookmark, error) {
	var b domain.Bookmark
	err := r.db.First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// FindByIDAndOwner 把属主条件放进查询本身，别人的书签等同于不存在
func (r *BookmarkRepo) FindByIDAndOwner(id, userID string) (*domain.Bookmark, error) {
	var b domain.Bookmark
	err := r.db.First(&b, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookmarkRepo) ListByOwner(userID string) ([]domain.Bookmark, error) {
	bs := make([]domain.Bookmark, 0)
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&bs).Error
	return bs, err
}

func (r *BookmarkRepo) Update(b *domain.Bookmark) error { return r.db.Save(b).Error }

func (r *BookmarkRepo) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&domain.Bookmark{}).Error
}
