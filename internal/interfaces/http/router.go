package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	assistantUC "helpdesk/internal/application/assistant/usecases"
	categoryUC "helpdesk/internal/application/category/usecases"
	ticketUC "helpdesk/internal/application/ticket/usecases"
	userUC "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/domain/shared/events"
	"helpdesk/internal/infrastructure/assistant"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/email"
	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/infrastructure/repository"
	categoryhandlers "helpdesk/internal/interfaces/http/handlers/category"
	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// Router wires repositories, use cases and handlers onto a Gin engine.
type Router struct {
	engine          *gin.Engine
	cfg             *config.Config
	ticketHandler   *tickethandlers.TicketHandler
	categoryHandler *categoryhandlers.CategoryHandler
	authMiddleware  *middleware.AuthMiddleware
	rateLimiter     *middleware.RateLimiter
	redisClient     *redis.Client
	logger          logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies.
func NewRouter(gdb *gorm.DB, dispatcher *events.InMemoryEventDispatcher, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(gdb)
	commentRepo := repository.NewCommentRepository(gdb)
	voteRepo := repository.NewVoteRepository(gdb)
	categoryRepo := repository.NewCategoryRepository(gdb)
	userRepo := repository.NewUserRepository(gdb)

	txManager := db.NewTransactionManager(gdb)

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	var voteBackend ratelimit.RateLimiter
	if redisClient != nil {
		voteBackend = ratelimit.NewRedisRateLimiter(redisClient)
	}
	voteLimiter := ratelimit.NewVoteLimiter(voteBackend, cfg.Votes.RateLimitPerMinute)

	var suggestionClient assistantUC.SuggestionClient
	if cfg.Assistant.Enabled {
		suggestionClient = assistant.NewHTTPClient(cfg.Assistant, log)
	}

	if cfg.Email.Enabled {
		emailService := email.NewSMTPEmailService(cfg.Email)
		notifier := email.NewTicketNotifier(emailService, userRepo, log)
		if err := notifier.Register(dispatcher); err != nil {
			return nil, err
		}
	}

	createTicketUC := ticketUC.NewCreateTicketUseCase(ticketRepo, categoryRepo, dispatcher, log)
	getTicketUC := ticketUC.NewGetTicketUseCase(ticketRepo, commentRepo, voteRepo, userRepo, log)
	listTicketsUC := ticketUC.NewListTicketsUseCase(ticketRepo, log)
	applyVoteUC := ticketUC.NewApplyVoteUseCase(ticketRepo, voteRepo, userRepo, txManager, voteLimiter, dispatcher, log)
	replyTicketUC := ticketUC.NewReplyTicketUseCase(ticketRepo, commentRepo, userRepo, txManager, dispatcher, log)
	closeTicketUC := ticketUC.NewCloseTicketUseCase(ticketRepo, userRepo, dispatcher, log)
	permissionsUC := ticketUC.NewResolvePermissionsUseCase(ticketRepo, userRepo, log)
	statsUC := ticketUC.NewGetTicketStatsUseCase(ticketRepo, log)
	suggestReplyUC := assistantUC.NewSuggestReplyUseCase(
		ticketRepo, userRepo, suggestionClient,
		time.Duration(cfg.Assistant.TimeoutSeconds)*time.Second, log)
	listCategoriesUC := categoryUC.NewListCategoriesUseCase(categoryRepo, log)
	provisionUserUC := userUC.NewProvisionUserUseCase(userRepo, log)

	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC,
		getTicketUC,
		listTicketsUC,
		applyVoteUC,
		replyTicketUC,
		closeTicketUC,
		permissionsUC,
		statsUC,
		suggestReplyUC,
	)
	categoryHandler := categoryhandlers.NewCategoryHandler(listCategoriesUC)

	verifier := auth.NewJWTVerifier(&cfg.Auth)
	authMiddleware := middleware.NewAuthMiddleware(verifier, provisionUserUC, log)
	rateLimiter := middleware.NewRateLimiter(redisClient, 60, time.Minute)

	return &Router{
		engine:          engine,
		cfg:             cfg,
		ticketHandler:   ticketHandler,
		categoryHandler: categoryHandler,
		authMiddleware:  authMiddleware,
		rateLimiter:     rateLimiter,
		redisClient:     redisClient,
		logger:          log,
	}, nil
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "ok", gin.H{"status": "healthy"})
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupCategoryRoutes(r.engine, &routes.CategoryRouteConfig{
		CategoryHandler: r.categoryHandler,
	})
}

// GetEngine returns the underlying Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Close releases resources held by the router.
func (r *Router) Close() error {
	if r.redisClient != nil {
		return r.redisClient.Close()
	}
	return nil
}
