package service

import (
	"go-bookmarks-api/internal/domain"
	"go-bookmarks-api/pkg/utils"
)

type Bookmarks struct {
	bookmarks domain.BookmarkRepository
}

func NewBookmarks(bookmarks domain.BookmarkRepository) *Bookmarks {
	return &Bookmarks{bookmarks: bookmarks}
}

func (s *Bookmarks) List(ownerID string) ([]domain.Bookmark, error) {
	return s.bookmarks.ListByOwner(ownerID)
}

func (s *Bookmarks) Create(ownerID, title, link string, description *string) (*domain.Bookmark, error) {
	b := &domain.Bookmark{
		ID:          utils.NewID(),
		Title:       title,
		Link:        link,
		Description: description,
		UserID:      ownerID,
	}
	if err := s.bookmarks.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

// GetByID 属主条件在查询里，别人的书签返回 (nil, nil)，不暴露其存在
func (s *Bookmarks) GetByID(ownerID, id string) (*domain.Bookmark, error) {
	return s.bookmarks.FindByIDAndOwner(id, ownerID)
}

// EditByID 与 GetByID 不同：先按 id 查，不存在 → ErrNotFound，
// 属主不符 → ErrForbidden。这个不对称沿用既有接口行为。
func (s *Bookmarks) EditByID(ownerID, id string, patch domain.BookmarkPatch) (*domain.Bookmark, error) {
	b, err := s.bookmarks.FindByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	if b.UserID != ownerID {
		return nil, ErrForbidden
	}
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Link != nil {
		b.Link = *patch.Link
	}
	if patch.Description != nil {
		b.Description = patch.Description
	}
	if err := s.bookmarks.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Bookmarks) DeleteByID(ownerID, id string) error {
	b, err := s.bookmarks.FindByID(id)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrNotFound
	}
	if b.UserID != ownerID {
		return ErrForbidden
	}
	return s.bookmarks.Delete(id)
}
