package service_test

import (
	"errors"

	"go-bookmarks-api/internal/domain"
)

// in-memory repos with database-like copy semantics: what you store and what
// you read back never alias the caller's struct.

type fakeUserRepo struct {
	users map[string]domain.User // by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]domain.User{}}
}

func (r *fakeUserRepo) Create(u *domain.User) error {
	for _, ex := range r.users {
		if ex.Email == u.Email {
			return errors.New("duplicate key value violates unique constraint \"idx_users_email\"")
		}
	}
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		cp := u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *domain.User) error {
	for id, ex := range r.users {
		if id != u.ID && ex.Email == u.Email {
			return errors.New("duplicate key value violates unique constraint \"idx_users_email\"")
		}
	}
	r.users[u.ID] = *u
	return nil
}

type fakeBookmarkRepo struct {
	bookmarks map[string]domain.Bookmark // by id
}

func newFakeBookmarkRepo() *fakeBookmarkRepo {
	return &fakeBookmarkRepo{bookmarks: map[string]domain.Bookmark{}}
}

func (r *fakeBookmarkRepo) Create(b *domain.Bookmark) error {
	r.bookmarks[b.ID] = *b
	return nil
}

func (r *fakeBookmarkRepo) FindByID(id string) (*domain.Bookmark, error) {
	if b, ok := r.bookmarks[id]; ok {
		cp := b
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeBookmarkRepo) FindByIDAndOwner(id, userID string) (*domain.Bookmark, error) {
	if b, ok := r.bookmarks[id]; ok && b.UserID == userID {
		cp := b
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeBookmarkRepo) ListByOwner(userID string) ([]domain.Bookmark, error) {
	out := make([]domain.Bookmark, 0)
	for _, b := range r.bookmarks {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookmarkRepo) Update(b *domain.Bookmark) error {
	r.bookmarks[b.ID] = *b
	return nil
}

func (r *fakeBookmarkRepo) Delete(id string) error {
	delete(r.bookmarks, id)
	return nil
}
