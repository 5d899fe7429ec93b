package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/careermind/interviewprep/config"
	"github.com/careermind/interviewprep/database"
	"github.com/careermind/interviewprep/internal/controller"
	adminctrl "github.com/careermind/interviewprep/internal/controller/admin"
	userctrl "github.com/careermind/interviewprep/internal/controller/user"
	"github.com/careermind/interviewprep/internal/middleware"
	"github.com/careermind/interviewprep/internal/observability"
	"github.com/careermind/interviewprep/internal/repository"
	"github.com/careermind/interviewprep/internal/seed"
	"github.com/careermind/interviewprep/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/fx"
)

// coreModule wires storage and services. It is shared by serve and seed.
func coreModule(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),

		// Repositories Layer
		fx.Provide(provideStores),

		// Services Layer
		fx.Provide(
			provideGradingClient,
			service.NewEvaluationService,
			service.NewInterviewService,
			service.NewQuestionAdminService,
		),
	)
}

type stores struct {
	fx.Out

	Questions repository.QuestionRepository
	Responses repository.ResponseRepository
}

// provideStores opens the backend chosen by DATABASE_DRIVER and, when
// REDIS_URL is set, puts the read-through cache in front of question lookups.
func provideStores(lc fx.Lifecycle, cfg *config.Config) (stores, error) {
	var out stores

	switch cfg.Database.Driver {
	case "mongo":
		client, db, err := database.NewMongoDatabase(context.Background(), cfg)
		if err != nil {
			return out, err
		}
		lc.Append(fx.Hook{OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		}})
		out.Questions = repository.NewMongoQuestionRepository(db)
		out.Responses = repository.NewMongoResponseRepository(db)
	default:
		db, err := database.NewDatabase(cfg)
		if err != nil {
			return out, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return out, err
		}
		lc.Append(fx.Hook{OnStop: func(ctx context.Context) error {
			return sqlDB.Close()
		}})
		out.Questions = repository.NewQuestionRepository(db)
		out.Responses = repository.NewResponseRepository(db)
	}

	rdb, err := database.NewRedisClient(cfg)
	if err != nil {
		return out, err
	}
	if rdb != nil {
		lc.Append(fx.Hook{OnStop: func(ctx context.Context) error {
			return rdb.Close()
		}})
		out.Questions = repository.NewCachedQuestionRepository(out.Questions, rdb, cfg.Redis.CacheTTL)
		log.Info().Dur("ttl", cfg.Redis.CacheTTL).Msg("Question cache enabled")
	}
	return out, nil
}

func provideGradingClient(lc fx.Lifecycle, cfg *config.Config) (service.GradingClient, error) {
	client, err := service.NewGradingClient(cfg)
	if err != nil {
		return nil, err
	}
	if closer, ok := client.(io.Closer); ok {
		lc.Append(fx.Hook{OnStop: func(ctx context.Context) error {
			return closer.Close()
		}})
	}
	return client, nil
}

func runServer(cfg *config.Config) error {
	app := fx.New(
		coreModule(cfg),

		// API Controllers Layer
		fx.Provide(
			NewGinEngine,
			func(cfg *config.Config) *middleware.IdentityMiddleware {
				return middleware.NewIdentityMiddleware(cfg.Auth.JWTSecret, cfg.Auth.TrustUserIDHeader)
			},
			userctrl.NewInterviewController,
			adminctrl.NewAdminQuestionController,
		),

		fx.Invoke(StartTracing),
		fx.Invoke(SeedOnStart),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		return err
	}
	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return app.Stop(stopCtx)
}

func runSeed(ctx context.Context, cfg *config.Config) error {
	var inserted int
	app := fx.New(
		coreModule(cfg),
		fx.NopLogger,
		fx.Invoke(func(admin service.QuestionAdminService) error {
			n, err := admin.SeedQuestions(ctx, seed.Questions())
			inserted = n
			return err
		}),
	)
	if err := app.Err(); err != nil {
		return err
	}
	// Start/Stop runs the OnStop hooks that close connections.
	if err := app.Start(ctx); err != nil {
		return err
	}
	log.Info().Int("inserted", inserted).Msg("Seed finished")
	return app.Stop(ctx)
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.Log.Mode == "production" || cfg.Log.Mode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())

	// Swagger UI
	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", controller.Healthz)

	return r
}

// StartTracing installs the OTel tracer provider and flushes it on shutdown.
func StartTracing(lc fx.Lifecycle, cfg *config.Config) {
	var shutdown func(context.Context) error
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			fn, err := observability.InitTracing(ctx, cfg.Tracing)
			if err != nil {
				return err
			}
			shutdown = fn
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if shutdown == nil {
				return nil
			}
			return shutdown(ctx)
		},
	})
}

// SeedOnStart fills an empty question bank so a fresh deployment is usable.
func SeedOnStart(lc fx.Lifecycle, admin service.QuestionAdminService) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if _, err := admin.SeedQuestions(ctx, seed.Questions()); err != nil {
				log.Warn().Err(err).Msg("Failed to seed question bank")
			}
			return nil
		},
	})
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	identity *middleware.IdentityMiddleware,
	interviewCtrl *userctrl.InterviewController,
	adminQuestionCtrl *adminctrl.AdminQuestionController,
) {
	api := router.Group("/api", identity.Resolve())
	{
		interviewCtrl.RegisterRoutes(api.Group("/interview"))

		adminGroup := api.Group("/admin")
		adminGroup.POST("/questions", adminQuestionCtrl.CreateQuestion)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Interview API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			return server.Shutdown(ctx)
		},
	})
}
