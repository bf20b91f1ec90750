package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-bookmarks-api/internal/domain"
	"go-bookmarks-api/internal/service"
)

func strptr(s string) *string { return &s }

func TestBookmarkCreateAndGetRoundTrip(t *testing.T) {
	svc := service.NewBookmarks(newFakeBookmarkRepo())

	created, err := svc.Create("owner-1", "B", "http://x.com", nil)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Nil(t, created.Description, "absent description stays absent, not empty string")

	got, err := svc.GetByID("owner-1", created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "B", got.Title)
	assert.Equal(t, "http://x.com", got.Link)
	assert.Nil(t, got.Description)
}

func TestBookmarkListOwnerScoped(t *testing.T) {
	svc := service.NewBookmarks(newFakeBookmarkRepo())

	// empty list is a valid result
	bs, err := svc.List("owner-1")
	require.NoError(t, err)
	assert.Empty(t, bs)
	assert.NotNil(t, bs)

	_, err = svc.Create("owner-1", "mine", "http://a.com", nil)
	require.NoError(t, err)
	_, err = svc.Create("owner-2", "theirs", "http://b.com", nil)
	require.NoError(t, err)

	bs, err = svc.List("owner-1")
	require.NoError(t, err)
	require.Len(t, bs, 1)
	assert.Equal(t, "mine", bs[0].Title)
}

func TestBookmarkOwnershipIsolation(t *testing.T) {
	svc := service.NewBookmarks(newFakeBookmarkRepo())

	b, err := svc.Create("owner-b", "B's bookmark", "http://b.com", nil)
	require.NoError(t, err)

	// getById hides existence
	got, err := svc.GetByID("owner-a", b.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// edit/delete disclose with Forbidden
	_, err = svc.EditByID("owner-a", b.ID, domain.BookmarkPatch{Title: strptr("stolen")})
	assert.ErrorIs(t, err, service.ErrForbidden)

	err = svc.DeleteByID("owner-a", b.ID)
	assert.ErrorIs(t, err, service.ErrForbidden)

	// owner still sees the untouched record
	got, err = svc.GetByID("owner-b", b.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "B's bookmark", got.Title)
}

func TestBookmarkEditPartialPatch(t *testing.T) {
	svc := service.NewBookmarks(newFakeBookmarkRepo())

	b, err := svc.Create("owner-1", "old title", "http://old.com", strptr("desc"))
	require.NoError(t, err)

	edited, err := svc.EditByID("owner-1", b.ID, domain.BookmarkPatch{Title: strptr("new title")})
	require.NoError(t, err)
	assert.Equal(t, "new title", edited.Title)
	assert.Equal(t, "http://old.com", edited.Link, "unset fields stay put")
	require.NotNil(t, edited.Description)
	assert.Equal(t, "desc", *edited.Description)
}

func TestBookmarkEditAndDeleteMissing(t *testing.T) {
	svc := service.NewBookmarks(newFakeBookmarkRepo())

	_, err := svc.EditByID("owner-1", "no-such-id", domain.BookmarkPatch{Title: strptr("x")})
	assert.ErrorIs(t, err, service.ErrNotFound)

	err = svc.DeleteByID("owner-1", "no-such-id")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestBookmarkDelete(t *testing.T) {
	svc := service.NewBookmarks(newFakeBookmarkRepo())

	b, err := svc.Create("owner-1", "B", "http://x.com", nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByID("owner-1", b.ID))

	got, err := svc.GetByID("owner-1", b.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "destruction is physical")
}
