package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/toeic-practice-api/config"
	"github.com/lshigami/toeic-practice-api/database"
	_ "github.com/lshigami/toeic-practice-api/docs"
	"github.com/lshigami/toeic-practice-api/internal/ai"
	"github.com/lshigami/toeic-practice-api/internal/controller"
	adminctrl "github.com/lshigami/toeic-practice-api/internal/controller/admin"
	userctrl "github.com/lshigami/toeic-practice-api/internal/controller/user"
	"github.com/lshigami/toeic-practice-api/internal/logger"
	"github.com/lshigami/toeic-practice-api/internal/middleware"
	"github.com/lshigami/toeic-practice-api/internal/model"
	"github.com/lshigami/toeic-practice-api/internal/repository"
	"github.com/lshigami/toeic-practice-api/internal/service"
	"github.com/lshigami/toeic-practice-api/internal/storage"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var modules = fx.Options(
	fx.Provide(
		database.NewDatabase,
		NewGinEngine,
	),

	fx.Provide(
		repository.NewTestRepository,
		repository.NewQuestionRepository,
		repository.NewHistoryRepository,
		repository.NewUserRepository,
	),

	// Infrastructure adapters
	fx.Provide(
		fx.Annotate(storage.NewMediaStore, fx.As(new(service.MediaStore))),
		ai.NewTextGenerator,
		fx.Annotate(ai.NewClientFromConfig, fx.As(new(service.TextClient))),
	),

	fx.Provide(
		service.NewScoreConverterService,
		service.NewTokenService,
		service.NewMailService,
		service.NewAuthService,
		service.NewHistoryService,
		service.NewUserTestService,
		service.NewGeminiService,
		service.NewAdminTestService,
	),

	fx.Provide(
		controller.NewHealthController,
		userctrl.NewAuthController,
		userctrl.NewUserTestController,
		userctrl.NewHistoryController,
		userctrl.NewGeminiController,
		adminctrl.NewAdminTestController,
	),
)

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	r := gin.New()
	r.Use(logger.GinLogger())
	r.Use(gin.Recovery())

	origins := cfg.Server.CORSOrigins
	allowAll := len(origins) == 0 || (len(origins) == 1 && origins[0] == "*")
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", logger.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", logger.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if allowAll {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

type routeParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Router     *gin.Engine
	Config     *config.Config
	Tokens     service.TokenService
	Health     *controller.HealthController
	Auth       *userctrl.AuthController
	Tests      *userctrl.UserTestController
	History    *userctrl.HistoryController
	Gemini     *userctrl.GeminiController
	AdminTests *adminctrl.AdminTestController
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(p routeParams) {
	router := p.Router
	auth := middleware.JWTAuth(p.Tokens)

	router.GET("/health", p.Health.Health)

	api := router.Group("/api/v1")
	{
		api.GET("/health", p.Health.Health)
		api.POST("/gemini/health", p.Health.GeminiHealth)

		authGroup := api.Group("/auth")
		authGroup.POST("/register", p.Auth.Register)
		authGroup.POST("/login", p.Auth.Login)
		authGroup.POST("/refresh-token", p.Auth.RefreshToken)
		authGroup.POST("/otp/request", p.Auth.RequestOTP)
		authGroup.POST("/otp/verify", p.Auth.VerifyOTP)
		authGroup.PUT("/reset-password", p.Auth.ResetPassword)
		authGroup.GET("/me", auth, p.Auth.Me)

		tests := api.Group("/tests")
		tests.GET("", p.Tests.GetAllTests)
		tests.GET("/:test_id", p.Tests.GetTestDetails)
		tests.GET("/:test_id/parts/:part_id/audio/url", p.Tests.GetPartAudioURL)
		tests.GET("/:test_id/parts/:part_id/audio/stream", p.Tests.StreamPartAudio)

		gemini := tests.Group("/gemini")
		gemini.POST("/translate/question", p.Gemini.TranslateQuestion)
		gemini.POST("/explain/question", p.Gemini.ExplainQuestion)
		gemini.POST("/translate/image", p.Gemini.TranslateImage)
		gemini.POST("/translate/audio-script", p.Gemini.TranslateAudioScript)

		history := api.Group("/history", auth)
		history.POST("", p.History.UpsertProgress)
		history.GET("/save", p.History.GetSavedProgress)
		history.GET("/result/list", p.History.ListSubmittedHistory)
		history.GET("/result/detail", p.History.GetSubmittedDetail)

		admin := api.Group("/admin", auth, middleware.RequireRole(model.RoleAdmin))
		admin.POST("/tests", p.AdminTests.CreateTest)
	}

	server := &http.Server{
		Addr:              ":" + p.Config.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("TOEIC practice API server starting on port %s", p.Config.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", p.Config.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
