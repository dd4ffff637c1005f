package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	appanalytics "github.com/jhoicas/crm-kam-api/internal/application/analytics"
	"github.com/jhoicas/crm-kam-api/internal/application/auth"
	"github.com/jhoicas/crm-kam-api/internal/application/usecase"
	"github.com/jhoicas/crm-kam-api/internal/domain/routing"
	infrapdf "github.com/jhoicas/crm-kam-api/internal/infrastructure/pdf"
	"github.com/jhoicas/crm-kam-api/internal/infrastructure/postgres"
	"github.com/jhoicas/crm-kam-api/internal/infrastructure/session"
	httpRouter "github.com/jhoicas/crm-kam-api/internal/interfaces/http"
	"github.com/jhoicas/crm-kam-api/pkg/config"
	"github.com/jhoicas/crm-kam-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// La tabla canónica de rutas se construye una sola vez; un path duplicado
	// o una entrada malformada es un error fatal de arranque.
	routes, err := routing.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("tabla de rutas")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()

	sessions := session.NewStore(redisClient, cfg.Redis.SessionSlot,
		time.Duration(cfg.Redis.SessionTTL)*time.Minute)

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	salesPlanRepo := postgres.NewSalesPlanRepository(pool)
	amProfileRepo := postgres.NewAMProfileRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, sessions, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	contactUC := usecase.NewContactUseCase(contactRepo)
	activityUC := usecase.NewActivityUseCase(activityRepo)
	reportUC := usecase.NewReportUseCase(activityRepo, userRepo, infrapdf.NewMarotoReportGenerator())
	salesPlanUC := usecase.NewSalesPlanUseCase(salesPlanRepo)
	amProfileUC := usecase.NewAMProfileUseCase(amProfileRepo)
	approvalUC := usecase.NewApprovalUseCase(userRepo, txRunner)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM KAM API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Routes:      routes,
		Sessions:    sessions,
		AuthUC:      authUC,
		CustomerUC:  customerUC,
		ContactUC:   contactUC,
		ActivityUC:  activityUC,
		ReportUC:    reportUC,
		SalesPlanUC: salesPlanUC,
		AMProfileUC: amProfileUC,
		ApprovalUC:  approvalUC,
		DashboardUC: dashboardUC,
		UserRepo:    userRepo,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
