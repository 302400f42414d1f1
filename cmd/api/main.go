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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/nexus-crm/internal/application/analytics"
	"github.com/jhoicas/nexus-crm/internal/application/identity"
	"github.com/jhoicas/nexus-crm/internal/application/inventory"
	"github.com/jhoicas/nexus-crm/internal/application/ports"
	"github.com/jhoicas/nexus-crm/internal/application/quotation"
	"github.com/jhoicas/nexus-crm/internal/application/usecase"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
	"github.com/jhoicas/nexus-crm/internal/domain/repository"
	infraai "github.com/jhoicas/nexus-crm/internal/infrastructure/ai"
	"github.com/jhoicas/nexus-crm/internal/infrastructure/demo"
	infrapdf "github.com/jhoicas/nexus-crm/internal/infrastructure/pdf"
	"github.com/jhoicas/nexus-crm/internal/infrastructure/postgres"
	"github.com/jhoicas/nexus-crm/internal/infrastructure/remote"
	httpRouter "github.com/jhoicas/nexus-crm/internal/interfaces/http"
	"github.com/jhoicas/nexus-crm/pkg/config"
	"github.com/jhoicas/nexus-crm/pkg/logger"
	"github.com/jhoicas/nexus-crm/pkg/money"
)

const swaggerFile = "./docs/swagger.json"

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
		Str("catalog", cfg.Catalog.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()
	primary, closeStore := openCatalogStore(ctx, cfg, log)
	defer closeStore()
	store := demo.NewFallbackStore(primary, nil, cfg.Catalog.DemoFallback, log)

	defaults := demo.DefaultConfig()
	if cfg.App.Name != "" {
		defaults.Name = cfg.App.Name
	}
	defaults.Currency = cfg.Business.DefaultCurrency
	defaults.TaxPercentage = decimal.NewFromFloat(cfg.Business.DefaultTaxPercentage)

	productUC := usecase.NewProductUseCase(store, log)
	configUC := usecase.NewConfigUseCase(store, defaults, log)
	formatter := money.NewFormatter(cfg.App.Locale, defaults.Currency)

	countUC := inventory.NewCountUseCase(productUC, store, log)
	quotationUC := quotation.NewUseCase(productUC, store, configUC, infrapdf.NewMarotoPDFGenerator(), formatter, log)
	insightUC := usecase.NewInsightUseCase(productUC, newInsightService(cfg.AI),
		time.Duration(cfg.AI.TimeoutSeconds)*time.Second, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Immutable:    true,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 40,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Nexus CRM API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Identity:   newIdentityProvider(cfg.Identity),
		Navigation: usecase.NewNavigationService(),
		ProductUC:  productUC,
		Dashboard:  analytics.NewDashboardUseCase(productUC),
		CountUC:    countUC,
		Quotation:  quotationUC,
		UserUC:     usecase.NewUserUseCase(store),
		ConfigUC:   configUC,
		InsightUC:  insightUC,
		Log:        log,
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

// openCatalogStore abre el backend configurado. Con Postgres inaccesible al arrancar y el modo
// demo activo arranca igual: las lecturas salen del dataset local y las escrituras fallan.
// Sin modo demo el arranque falla.
func openCatalogStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.CatalogStore, func()) {
	switch cfg.Catalog.Backend {
	case config.CatalogBackendRemote:
		return remote.NewStore(cfg.Catalog), func() {}
	case config.CatalogBackendDemo:
		return demo.NewStore(), func() {}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		if cfg.Catalog.DemoFallback {
			log.Warn().Err(err).Msg("PostgreSQL no disponible, lecturas desde el dataset de demostración")
			return demo.NewUnreachableStore(err), func() {}
		}
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		log.Fatal().Err(err).Msg("migraciones")
	}
	return postgres.NewCatalogStore(pool), pool.Close
}

func newInsightService(cfg config.AIConfig) ports.InsightService {
	if cfg.Provider == "anthropic" {
		return infraai.NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.AnthropicBaseURL)
	}
	return infraai.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL)
}

func newIdentityProvider(cfg config.IdentityConfig) identity.Provider {
	if cfg.Mode == "jwt" {
		return identity.NewJWTProvider(cfg.JWTSecret)
	}
	return identity.NewStaticProvider(entity.User{
		ID:    cfg.StaticUserID,
		Name:  cfg.StaticName,
		Email: cfg.StaticEmail,
		Role:  cfg.StaticRole,
	})
}
