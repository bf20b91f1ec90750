package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"go-bookmarks-api/internal/core/auth"
	"go-bookmarks-api/internal/core/cache"
	"go-bookmarks-api/internal/domain"
	resp "go-bookmarks-api/internal/transport/http/response"
)

const (
	KeyUser   = "authUser"
	KeyUserID = "userId"

	userCacheTTL = 30 * time.Second
)

// AuthJWT 解出 Bearer token 后回查用户表再放行，已删用户的存活 token 直接失效。
// cc 可为 nil；给了就走 redis 读穿缓存，按 uid 缓存 30s。
func AuthJWT(j *auth.JWTer, users domain.UserRepository, cc *cache.Cache) gin.HandlerFunc {
	resolve := func(c *gin.Context, uid string) (*domain.User, error) {
		if cc == nil {
			return users.FindByID(uid)
		}
		return cache.GetOrLoadJSON[domain.User](cc, c.Request.Context(), "user:"+uid, userCacheTTL,
			func(ctx context.Context) (*domain.User, error) { return users.FindByID(uid) })
	}

	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, "missing token"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, auth.ErrTokenExpired) {
				msg = "token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, msg))
			return
		}
		u, err := resolve(c, claims.UID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, resp.Error(resp.CodeServerError, "internal error"))
			return
		}
		if u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Error(resp.CodeUnauthorized, "invalid token"))
			return
		}
		c.Set(KeyUser, u)
		c.Set(KeyUserID, u.ID)
		c.Next()
	}
}

// CurrentUserID 取守卫注入的调用者 id
func CurrentUserID(c *gin.Context) string { return c.GetString(KeyUserID) }

// CurrentUser 取守卫注入的完整用户
func CurrentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(KeyUser); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}
