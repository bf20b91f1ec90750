package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-bookmarks-api/internal/domain"
	"go-bookmarks-api/internal/service"
	mdw "go-bookmarks-api/internal/transport/http/middleware"
	resp "go-bookmarks-api/internal/transport/http/response"
)

type BookmarkHandler struct {
	bookmarks *service.Bookmarks
	log       *zap.Logger
}

func NewBookmarkHandler(bookmarks *service.Bookmarks, log *zap.Logger) *BookmarkHandler {
	return &BookmarkHandler{bookmarks: bookmarks, log: log}
}

func (h *BookmarkHandler) List(c *gin.Context) {
	bs, err := h.bookmarks.List(mdw.CurrentUserID(c))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(bs))
}

type createBookmarkIn struct {
	Title       string  `json:"title"       binding:"required,max=255"`
	Link        string  `json:"link"        binding:"required,max=2048"`
	Description *string `json:"description" binding:"omitempty"`
}

func (h *BookmarkHandler) Create(c *gin.Context) {
	var in createBookmarkIn
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	b, err := h.bookmarks.Create(mdw.CurrentUserID(c), in.Title, in.Link, in.Description)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, resp.OK(b))
}

func (h *BookmarkHandler) GetByID(c *gin.Context) {
	b, err := h.bookmarks.GetByID(mdw.CurrentUserID(c), c.Param("id"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	if b == nil {
		// 不存在和不属于自己长得一样
		c.JSON(http.StatusNotFound, resp.Error(resp.CodeNotFound, "resource not found"))
		return
	}
	c.JSON(http.StatusOK, resp.OK(b))
}

type editBookmarkIn struct {
	Title       *string `json:"title"       binding:"omitempty,max=255"`
	Link        *string `json:"link"        binding:"omitempty,max=2048"`
	Description *string `json:"description" binding:"omitempty"`
}

func (h *BookmarkHandler) EditByID(c *gin.Context) {
	var in editBookmarkIn
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	b, err := h.bookmarks.EditByID(mdw.CurrentUserID(c), c.Param("id"), domain.BookmarkPatch{
		Title:       in.Title,
		Link:        in.Link,
		Description: in.Description,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(b))
}

func (h *BookmarkHandler) DeleteByID(c *gin.Context) {
	if err := h.bookmarks.DeleteByID(mdw.CurrentUserID(c), c.Param("id")); err != nil {
		fail(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
