package service

import (
	"time"

	"go-bookmarks-api/internal/core/auth"
	"go-bookmarks-api/internal/core/hash"
	"go-bookmarks-api/internal/domain"
	"go-bookmarks-api/internal/repo"
	"go-bookmarks-api/pkg/utils"
)

type Auth struct {
	users  domain.UserRepository
	hasher *hash.Hasher
	jwter  *auth.JWTer
}

func NewAuth(users domain.UserRepository, hasher *hash.Hasher, jwter *auth.JWTer) *Auth {
	return &Auth{users: users, hasher: hasher, jwter: jwter}
}

// SignUp 邮箱唯一冲突 → ErrEmailTaken；返回的用户不带哈希
func (s *Auth) SignUp(email, password, firstName string, lastName *string) (*domain.User, error) {
	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hashed,
	}
	if err := s.users.Create(u); err != nil {
		if repo.IsDuplicateKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // 秒
}

// SignIn 查无此人和密码错误返回同一个错误，防止枚举邮箱
func (s *Auth) SignIn(email, password string) (*Token, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	ok, err := s.hasher.Check(password, u.PasswordHash)
	if err != nil {
		return nil, err // 坏哈希是数据问题，按内部错误走
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}
	tok, err := s.jwter.Issue(u.ID)
	if err != nil {
		return nil, err
	}
	return &Token{
		AccessToken: tok,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.jwter.TTL / time.Second),
	}, nil
}
