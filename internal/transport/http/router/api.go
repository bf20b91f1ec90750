package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-bookmarks-api/internal/core/auth"
	"go-bookmarks-api/internal/core/cache"
	"go-bookmarks-api/internal/core/hash"
	"go-bookmarks-api/internal/domain"
	"go-bookmarks-api/internal/repo"
	"go-bookmarks-api/internal/service"
	"go-bookmarks-api/internal/transport/http/handler"
	mdw "go-bookmarks-api/internal/transport/http/middleware"
)

func NewAPIEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer, hasher *hash.Hasher, cc *cache.Cache) *gin.Engine {
	return newEngine(l, repo.NewUserRepo(db), repo.NewBookmarkRepo(db), jwter, hasher, cc)
}

// newEngine 显式装配：repo → service → handler → 路由
func newEngine(l *zap.Logger, users domain.UserRepository, bookmarks domain.BookmarkRepository,
	jwter *auth.JWTer, hasher *hash.Hasher, cc *cache.Cache) *gin.Engine {

	r := gin.New()

	r.Use(
		mdw.RequestID(),
		cors.Default(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authH := handler.NewAuthHandler(service.NewAuth(users, hasher, jwter), l)
	userH := handler.NewUserHandler(service.NewUsers(users), l)
	bookmarkH := handler.NewBookmarkHandler(service.NewBookmarks(bookmarks), l)

	api := r.Group("/api/v1")

	api.POST("/auth/signup", authH.SignUp)
	api.POST("/auth/signin", authH.SignIn)

	// 鉴权分组
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter, users, cc))

	authed.GET("/users/me", userH.Me)
	authed.PATCH("/users", userH.Edit)

	authed.GET("/bookmarks", bookmarkH.List)
	authed.POST("/bookmarks", bookmarkH.Create)
	authed.GET("/bookmarks/:id", bookmarkH.GetByID)
	authed.PATCH("/bookmarks/:id", bookmarkH.EditByID)
	authed.DELETE("/bookmarks/:id", bookmarkH.DeleteByID)

	return r
}
