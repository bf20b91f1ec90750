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

type UserHandler struct {
	users *service.Users
	log   *zap.Logger
}

func NewUserHandler(users *service.Users, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

func (h *UserHandler) Me(c *gin.Context) {
	u, err := h.users.Me(mdw.CurrentUserID(c))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(u))
}

type editUserIn struct {
	Email     *string `json:"email"     binding:"omitempty,email"`
	FirstName *string `json:"firstName" binding:"omitempty,max=64"`
	LastName  *string `json:"lastName"  binding:"omitempty,max=64"`
}

func (h *UserHandler) Edit(c *gin.Context) {
	var in editUserIn
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	u, err := h.users.Edit(mdw.CurrentUserID(c), domain.UserPatch{
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	})
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(u))
}
