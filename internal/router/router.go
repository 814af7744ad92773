package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kim0hyeon/CRUDBoard/internal/handler"
	"github.com/kim0hyeon/CRUDBoard/internal/metrics"
	"github.com/kim0hyeon/CRUDBoard/internal/middleware"
	"github.com/kim0hyeon/CRUDBoard/internal/repository"
	"github.com/kim0hyeon/CRUDBoard/internal/service"
)

const (
	rateLimitMax    = 120
	rateLimitWindow = time.Minute
)

// Config carries the dependencies the router needs
type Config struct {
	DB          *gorm.DB
	Redis       *redis.Client
	Logger      *zap.Logger
	Metrics     *metrics.Metrics
	ImageClient service.ImageClient
	JWTSecret   string
	TokenTTL    time.Duration
	BcryptCost  int
	BasePath    string
	Env         string
	CORSOrigins []string
}

// Setup wires repositories, services and handlers into a gin engine
func Setup(cfg Config) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORSOrigins...))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}
	r.Use(middleware.RateLimit(cfg.Redis, rateLimitMax, rateLimitWindow))

	// Repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	boardRepo := repository.NewBoardRepository(cfg.DB)
	postRepo := repository.NewPostRepository(cfg.DB)
	commentRepo := repository.NewCommentRepository(cfg.DB)

	// Services
	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	tokenIssuer := service.NewJWTIssuer(cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, hasher, tokenIssuer, cfg.Metrics, cfg.Logger)
	boardService := service.NewBoardService(boardRepo, cfg.Metrics, cfg.Logger)
	postService := service.NewPostService(postRepo, boardRepo, userRepo, cfg.ImageClient, cfg.Metrics, cfg.Logger)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo, cfg.Metrics, cfg.Logger)

	// Mutating routes require a bearer token; reads stay public
	authRequired := middleware.Auth(tokenIssuer)

	// Handlers
	userHandler := handler.NewUserHandler(userService)
	boardHandler := handler.NewBoardHandler(boardService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)
	healthHandler := handler.NewHealthHandler(cfg.DB, cfg.Redis)

	// Health and metrics endpoints (no auth)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group(cfg.BasePath)
	{
		api.GET("/health", healthHandler.Health)
		api.GET("/ready", healthHandler.Ready)
		api.GET("/metrics", gin.WrapH(promhttp.Handler()))
		api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

		users := api.Group("/users")
		{
			users.POST("/signup", userHandler.SignUp)
			users.POST("/login", userHandler.Login)
			users.GET("/:userId", userHandler.GetUser)
			users.PUT("/:userId/password", authRequired, userHandler.UpdatePassword)
		}

		boards := api.Group("/boards")
		{
			boards.POST("", authRequired, boardHandler.CreateBoard)
			boards.GET("", boardHandler.ListBoards)
			boards.GET("/:boardId", boardHandler.GetBoard)
			boards.PUT("/:boardId", authRequired, boardHandler.RenameBoard)
			boards.DELETE("/:boardId", authRequired, boardHandler.DeleteBoard)
		}

		posts := api.Group("/posts")
		{
			posts.POST("", authRequired, postHandler.CreatePost)
			posts.GET("", postHandler.ListPosts)
			posts.GET("/search", postHandler.SearchPosts)
			posts.GET("/board/:boardId", postHandler.ListPostsByBoard)
			posts.POST("/images/presigned-url", authRequired, postHandler.GeneratePresignedUploadURL)
			posts.GET("/:postId", postHandler.GetPost)
			posts.PUT("/:postId", authRequired, postHandler.UpdatePost)
			posts.DELETE("/:postId", authRequired, postHandler.DeletePost)
			posts.POST("/:postId/like", authRequired, postHandler.AddLike)
			posts.DELETE("/:postId/like", authRequired, postHandler.RemoveLike)
			posts.POST("/:postId/hate", authRequired, postHandler.AddHate)
			posts.DELETE("/:postId/hate", authRequired, postHandler.RemoveHate)
		}

		comments := api.Group("/comments")
		{
			comments.POST("", authRequired, commentHandler.CreateComment)
			comments.GET("/post/:postId", commentHandler.ListCommentsByPost)
			comments.GET("/:commentId", commentHandler.GetComment)
			comments.PUT("/:commentId", authRequired, commentHandler.UpdateComment)
			comments.DELETE("/:commentId", authRequired, commentHandler.DeleteComment)
			comments.POST("/:commentId/like", authRequired, commentHandler.AddLike)
			comments.DELETE("/:commentId/like", authRequired, commentHandler.RemoveLike)
			comments.POST("/:commentId/hate", authRequired, commentHandler.AddHate)
			comments.DELETE("/:commentId/hate", authRequired, commentHandler.RemoveHate)
		}
	}

	return r
}
