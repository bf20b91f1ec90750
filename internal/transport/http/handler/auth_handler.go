package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-bookmarks-api/internal/service"
	resp "go-bookmarks-api/internal/transport/http/response"
)

type AuthHandler struct {
	auth *service.Auth
	log  *zap.Logger
}

func NewAuthHandler(auth *service.Auth, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

type signUpIn struct {
	Email     string  `json:"email"     binding:"required,email"`
	Password  string  `json:"password"  binding:"required,min=6"`
	FirstName string  `json:"firstName" binding:"required,max=64"`
	LastName  *string `json:"lastName"  binding:"omitempty,max=64"`
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var in signUpIn
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	u, err := h.auth.SignUp(in.Email, in.Password, in.FirstName, in.LastName)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, resp.OK(u))
}

type signInIn struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var in signInIn
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	tok, err := h.auth.SignIn(in.Email, in.Password)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp.OK(tok))
}
