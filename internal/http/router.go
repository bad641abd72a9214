package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/buzzwords/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))
	router.Use(auth.SecurityHeadersMiddleware())
	router.Use(auth.StrictTransportSecurityMiddleware())
	router.Use(RequestTimeout(cfg.RequestTimeout))
	router.Use(NewReadOnly(cfg.ReadOnly).Handler())

	health := NewHealthController(cfg.Database, cfg.Version)
	authController := NewAuthController(cfg.AuthService, cfg.AuditService, logger)
	wordsController := NewWordsController(cfg.WordService, cfg.AuditService, logger)
	bookmarksController := NewBookmarksController(cfg.BookmarkService, cfg.AuditService, logger)
	statsController := NewStatsController(cfg.StatsService, logger)

	router.GET("/", introText("Buzzwords API"))

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", health.Ping)

	authGroup := router.Group("/auth")
	authGroup.GET("/", introText("Auth"))
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/signup", authController.Signup)

	submitGroup := router.Group("/submitWord")
	submitGroup.GET("/", introText("Word Submission API"))
	submitGroup.POST("/submit", wordsController.Submit)

	wordsGroup := router.Group("/getWords")
	wordsGroup.GET("/", introText("Word Retrieval API"))
	wordsGroup.GET("/all", wordsController.All)
	wordsGroup.GET("/alphabet/:letter", wordsController.ByLetter)
	wordsGroup.GET("/search/:term", wordsController.Search)
	wordsGroup.GET("/user/:username", wordsController.ByUser)

	bookmarksGroup := router.Group("/bookmarks")
	bookmarksGroup.GET("/", introText("Bookmarks API"))
	bookmarksGroup.POST("/add", bookmarksController.Add)
	bookmarksGroup.GET("/user/:username", bookmarksController.ListForUser)
	bookmarksGroup.DELETE("/remove/:bookmarkId", bookmarksController.Remove)

	statsGroup := router.Group("/stats")
	statsGroup.GET("/", introText("Stats API"))
	statsGroup.GET("/all", statsController.All)

	// Task management endpoints
	if cfg.TaskClient != nil {
		tasksController := NewTasksController(cfg.TaskClient, cfg.AuditService != nil, cfg.AuditRetentionDays, logger)
		router.GET("/tasks/types", tasksController.ListTaskTypes)
		router.GET("/tasks/:id", tasksController.GetTaskStatus)
		router.POST("/tasks/:type/run", tasksController.RunTask)
	}

	return router
}
