package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-bookmarks-api/internal/service"
	resp "go-bookmarks-api/internal/transport/http/response"
)

// fail 业务错误 → 固定状态码；认不出来的一律 500，不带内部细节
func fail(c *gin.Context, l *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusForbidden, resp.Error(resp.CodeForbidden, "credentials already taken"))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, "invalid credentials"))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, resp.Error(resp.CodeNotFound, "resource not found"))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, resp.Error(resp.CodeForbidden, "access to resource denied"))
	default:
		l.Error("handler", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, resp.Error(resp.CodeServerError, "internal error"))
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, resp.Error(resp.CodeBadRequest, err.Error()))
}
