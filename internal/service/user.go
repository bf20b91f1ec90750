package service

import (
	"go-bookmarks-api/internal/domain"
	"go-bookmarks-api/internal/repo"
)

type Users struct {
	users domain.UserRepository
}

func NewUsers(users domain.UserRepository) *Users {
	return &Users{users: users}
}

func (s *Users) Me(id string) (*domain.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	u.PasswordHash = ""
	return u, nil
}

// Edit 只改传了的字段；改邮箱撞唯一索引 → ErrEmailTaken
func (s *Users) Edit(id string, patch domain.UserPatch) (*domain.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.FirstName != nil {
		u.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = patch.LastName
	}
	if err := s.users.Update(u); err != nil {
		if repo.IsDuplicateKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}
