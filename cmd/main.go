package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/surveylite/config"
	"github.com/lshigami/surveylite/database"
	adminctrl "github.com/lshigami/surveylite/internal/controller/admin"
	authctrl "github.com/lshigami/surveylite/internal/controller/auth"
	publicctrl "github.com/lshigami/surveylite/internal/controller/public"
	surveyctrl "github.com/lshigami/surveylite/internal/controller/survey"
	"github.com/lshigami/surveylite/internal/logger"
	"github.com/lshigami/surveylite/internal/middleware"
	"github.com/lshigami/surveylite/internal/model"
	"github.com/lshigami/surveylite/internal/repository"
	"github.com/lshigami/surveylite/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title SurveyLite API
// @version 1.0
// @description Survey creation, sharing and response collection API.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewSurveyRepository,
			repository.NewQuestionRepository,
			repository.NewResponseRepository,
		),

		fx.Provide(
			func(userRepo repository.UserRepository, cfg *config.Config) service.AuthService {
				return service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
			},
			service.NewSurveyService,
			service.NewQuestionService,
			service.NewSubmissionService,
			service.NewResponseService,
			service.NewAnalyticsService,
			service.NewExportService,
			service.NewDashboardService,
			service.NewAdminUserService,
			service.NewAdminSurveyService,
		),

		fx.Provide(
			authctrl.NewAuthController,
			surveyctrl.NewSurveyController,
			surveyctrl.NewQuestionController,
			surveyctrl.NewResponseController,
			surveyctrl.NewAnalyticsController,
			publicctrl.NewPublicController,
			adminctrl.NewAdminUserController,
			adminctrl.NewAdminSurveyController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server
// lifecycle via fx hooks.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authService service.AuthService,
	authController *authctrl.AuthController,
	surveyController *surveyctrl.SurveyController,
	questionController *surveyctrl.QuestionController,
	responseController *surveyctrl.ResponseController,
	analyticsController *surveyctrl.AnalyticsController,
	publicController *publicctrl.PublicController,
	adminUserController *adminctrl.AdminUserController,
	adminSurveyController *adminctrl.AdminSurveyController,
) {
	api := router.Group("/api/v1")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authController.Register)
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/refresh", authController.Refresh)
	}

	publicGroup := api.Group("/s")
	{
		publicGroup.GET("/:token", publicController.GetPublicSurvey)
		publicGroup.POST("/:token/responses", publicController.SubmitResponse)
	}

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(authService))
	{
		authed.GET("/dashboard", analyticsController.GetDashboard)

		surveys := authed.Group("/surveys")
		surveys.POST("", surveyController.CreateSurvey)
		surveys.GET("", surveyController.ListSurveys)
		surveys.GET("/:id", surveyController.GetSurvey)
		surveys.PUT("/:id", surveyController.UpdateSurvey)
		surveys.DELETE("/:id", surveyController.DeleteSurvey)

		surveys.GET("/:id/questions", questionController.ListQuestions)
		surveys.POST("/:id/questions", questionController.AddQuestion)
		surveys.PUT("/:id/questions/reorder", questionController.ReorderQuestions)
		surveys.PUT("/:id/questions/:questionId", questionController.UpdateQuestion)
		surveys.DELETE("/:id/questions/:questionId", questionController.DeleteQuestion)

		surveys.GET("/:id/responses", responseController.ListResponses)
		surveys.GET("/:id/responses/export", analyticsController.ExportResponsesCSV)
		surveys.GET("/:id/responses/:responseId", responseController.GetResponse)

		surveys.GET("/:id/analytics", analyticsController.GetSurveyAnalytics)
		surveys.GET("/:id/export", analyticsController.ExportAnalytics)
	}

	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RequireAuth(authService), middleware.RequireAdmin())
	{
		adminGroup.GET("/users", adminUserController.SearchUsers)
		adminGroup.PUT("/users/:id/role", adminUserController.UpdateUserRole)
		adminGroup.PUT("/users/:id/suspend", adminUserController.SuspendUser)

		adminGroup.GET("/surveys", adminSurveyController.SearchSurveys)
		adminGroup.POST("/surveys/:id/clone", adminSurveyController.CloneSurvey)
		adminGroup.POST("/surveys/bulk-archive", adminSurveyController.BulkArchiveSurveys)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("SurveyLite API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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
	err := db.AutoMigrate(
		&model.User{},
		&model.Survey{},
		&model.Question{},
		&model.Response{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
