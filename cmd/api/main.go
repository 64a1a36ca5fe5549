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

	"github.com/jhoicas/inventario-admin/internal/application/catalog"
	"github.com/jhoicas/inventario-admin/internal/application/ports"
	"github.com/jhoicas/inventario-admin/internal/application/recommend"
	"github.com/jhoicas/inventario-admin/internal/application/report"
	"github.com/jhoicas/inventario-admin/internal/application/session"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
	infraai "github.com/jhoicas/inventario-admin/internal/infrastructure/ai"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/bboltstore"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/inventario-admin/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/restapi"
	httpRouter "github.com/jhoicas/inventario-admin/internal/interfaces/http"
	"github.com/jhoicas/inventario-admin/pkg/config"
	"github.com/jhoicas/inventario-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("storage", cfg.Storage.Mode).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// La sesión vive siempre en el archivo bbolt local, sin importar la
	// estrategia elegida para el catálogo.
	bolt, err := bboltstore.Open(cfg.Storage.BoltPath)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento local")
	}
	defer bolt.Close()
	sessionRepo := bboltstore.NewSessionRepository(bolt)

	// Estrategia de catálogo según STORAGE_MODE.
	var companyRepo repository.CompanyRepository
	var productRepo repository.ProductRepository
	switch cfg.Storage.Mode {
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		companyRepo = postgres.NewCompanyRepository(pool)
		productRepo = postgres.NewProductRepository(pool)
	case config.StorageRemote:
		client := restapi.NewClient(cfg.Storage.APIBaseURL)
		companyRepo = restapi.NewCompanyRepository(client)
		productRepo = restapi.NewProductRepository(client)
	default:
		companyRepo = bboltstore.NewCompanyRepository(bolt)
		productRepo = bboltstore.NewProductRepository(bolt)
	}

	sessionUC := session.NewStore(sessionRepo, session.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if err := sessionUC.Rehydrate(); err != nil {
		// Sesión corrupta o ilegible: se arranca como anónimo.
		log.Warn().Err(err).Msg("rehidratar sesión")
	}

	catalogUC := catalog.NewStore(companyRepo, productRepo)
	if err := catalogUC.Refresh(); err != nil {
		// El catálogo queda marcado stale; las vistas lo indican.
		log.Warn().Err(err).Msg("carga inicial del catálogo")
	}

	var mailer ports.Mailer
	switch cfg.Mail.Provider {
	case config.MailProviderSES:
		sesMailer, err := mail.NewSESMailer(ctx, cfg.Mail)
		if err != nil {
			log.Fatal().Err(err).Msg("configurar SES")
		}
		mailer = sesMailer
	case config.MailProviderSMTP:
		mailer = mail.NewSMTPMailer(cfg.Mail)
	default:
		log.Warn().Msg("envío de correo no configurado")
	}

	reportUC := report.NewUseCase(infrapdf.NewMarotoReportGenerator(), mailer)

	openAISvc := infraai.NewOpenAIService(cfg.AI.OpenAIAPIKey, cfg.AI.OpenAIModel)
	recommendUC := recommend.NewUseCase(openAISvc)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionUC:   sessionUC,
		CatalogUC:   catalogUC,
		ReportUC:    reportUC,
		RecommendUC: recommendUC,
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
