package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-bookmarks-api/internal/core/auth"
	"go-bookmarks-api/internal/core/hash"
	"go-bookmarks-api/internal/service"
)

func testHasher() *hash.Hasher {
	return hash.New(hash.Options{Memory: 1024, Time: 1, Threads: 1, KeyLen: 32, SaltLen: 16})
}

func testJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: time.Hour}
}

func TestSignUp(t *testing.T) {
	users := newFakeUserRepo()
	svc := service.NewAuth(users, testHasher(), testJWTer())

	last := "Doe"
	u, err := svc.SignUp("a@x.com", "123456", "A", &last)
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "a@x.com", u.Email)
	assert.Equal(t, "A", u.FirstName)
	require.NotNil(t, u.LastName)
	assert.Equal(t, "Doe", *u.LastName)
	assert.Empty(t, u.PasswordHash, "hash must not leave the service")

	// the stored record still has the hash
	stored, err := users.FindByEmail("a@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "123456", stored.PasswordHash)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := service.NewAuth(users, testHasher(), testJWTer())

	_, err := svc.SignUp("a@x.com", "123456", "A", nil)
	require.NoError(t, err)

	// other fields differ, email decides
	_, err = svc.SignUp("a@x.com", "another-pw", "B", nil)
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestSignIn(t *testing.T) {
	users := newFakeUserRepo()
	jwter := testJWTer()
	svc := service.NewAuth(users, testHasher(), jwter)

	_, err := svc.SignUp("a@x.com", "123456", "A", nil)
	require.NoError(t, err)

	tok, err := svc.SignIn("a@x.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", tok.TokenType)
	assert.Equal(t, int64(3600), tok.ExpiresIn)

	claims, err := jwter.Parse(tok.AccessToken)
	require.NoError(t, err)
	stored, _ := users.FindByEmail("a@x.com")
	assert.Equal(t, stored.ID, claims.UID)
}

func TestSignInBadCredentials(t *testing.T) {
	users := newFakeUserRepo()
	svc := service.NewAuth(users, testHasher(), testJWTer())

	_, err := svc.SignUp("a@x.com", "123456", "A", nil)
	require.NoError(t, err)

	// wrong password and unknown email are indistinguishable
	_, errPw := svc.SignIn("a@x.com", "wrong")
	_, errEmail := svc.SignIn("nobody@x.com", "123456")

	assert.ErrorIs(t, errPw, service.ErrInvalidCredentials)
	assert.ErrorIs(t, errEmail, service.ErrInvalidCredentials)
}
