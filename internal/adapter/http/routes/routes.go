package routes

import (
	_ "bidtrack/docs" // This will be auto-generated
	"bidtrack/internal/adapter/http/handlers"
	"bidtrack/internal/adapter/http/middleware"
	repository2 "bidtrack/internal/adapter/persistence/repository"
	"bidtrack/internal/infrastructure/auth"
	"bidtrack/internal/infrastructure/blob"
	"bidtrack/internal/infrastructure/database"
	"bidtrack/internal/infrastructure/events"
	"bidtrack/internal/infrastructure/realtime"
	"bidtrack/internal/observability"
	"bidtrack/internal/usecase"
	"bidtrack/internal/usecase/interfaces"
	"bidtrack/pkg/response"
	"context"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const PORT = 8080

// Run will start the server
func Run() {
	logger := newLogger()

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = strconv.Itoa(PORT)
	}

	logger.Info().Str("port", port).Msg("Starting HTTP server")
	if err := router.Run(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("Failed to startup the application")
	}
}

func getRoutes(logger zerolog.Logger) {
	ctx := context.Background()

	awsCfg, err := database.LoadAWSConfig(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load AWS configuration")
	}
	ddb := database.ConnectDynamoDB(awsCfg)
	blobStore := blob.NewS3Store(awsCfg)

	proposalRepo := repository2.NewProposalDynamoRepository(ddb)
	activityRepo := repository2.NewActivityDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)
	fileRepo := repository2.NewFileDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	// The bus is optional: without NATS_URL the service runs standalone and
	// transitions are simply not mirrored onto the bus.
	var eventPublisher interfaces.IEventPublisher
	natsPublisher, err := events.NewNatsPublisher(logger)
	if err != nil {
		logger.Warn().Err(err).Msg("Event publisher not configured")
	} else if natsPublisher != nil {
		eventPublisher = natsPublisher
	}

	hub := realtime.NewHub(logger)
	go hub.Run()

	verifier := auth.NewJWTVerifier()

	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, activityRepo, notificationRepo, fileRepo, blobStore, eventPublisher, hub, logger)
	fileUseCase := usecase.NewFileUseCase(fileRepo, proposalRepo, blobStore, logger)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, logger)
	activityUseCase := usecase.NewActivityUseCase(activityRepo, proposalRepo)

	proposalHandler := handlers.NewProposalHandler(proposalUseCase)
	fileHandler := handlers.NewFileHandler(fileUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)
	activityHandler := handlers.NewActivityHandler(activityUseCase)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "bidtrack-api"})
	})
	router.GET("/metrics", gin.WrapH(observability.Handler()))
	router.GET("/ws", realtime.ServeWS(hub, verifier))

	// Everything below requires a signed-in actor.
	authed := router.Group("", middleware.RequireAuth(verifier, userRepo, logger))
	addProposalRoutes(authed, proposalHandler, fileHandler)
	addFeedRoutes(authed, activityHandler, notificationHandler)
}

func setMiddlewares(logger zerolog.Logger) {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = allowedOrigins()
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.RequestLogger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().Interface("panic", recovered).Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error("INTERNAL_ERROR", "Internal server error"))
	}))

	router.HandleMethodNotAllowed = true
}

func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Str("service", "bidtrack-api").Logger()
	if gin.Mode() == gin.DebugMode {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	return logger
}

func allowedOrigins() []string {
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		return strings.Split(raw, ",")
	}
	return []string{"http://localhost:3000", "http://localhost:5173"}
}
