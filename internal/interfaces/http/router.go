package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nexus-crm/internal/application/analytics"
	"github.com/jhoicas/nexus-crm/internal/application/identity"
	"github.com/jhoicas/nexus-crm/internal/application/inventory"
	"github.com/jhoicas/nexus-crm/internal/application/quotation"
	"github.com/jhoicas/nexus-crm/internal/application/usecase"
	"github.com/jhoicas/nexus-crm/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Identity   identity.Provider
	Navigation *usecase.NavigationService
	ProductUC  *usecase.ProductUseCase
	Dashboard  *analytics.DashboardUseCase
	CountUC    *inventory.CountUseCase
	Quotation  *quotation.UseCase
	UserUC     *usecase.UserUseCase
	ConfigUC   *usecase.ConfigUseCase
	InsightUC  *usecase.InsightUseCase
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	nav := deps.Navigation
	if nav == nil {
		nav = usecase.NewNavigationService()
	}
	section := func(id string) fiber.Handler { return RequireSection(id, nav) }

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api", IdentityMiddleware(deps.Identity))

	userHandler := NewUserHandler(deps.UserUC, nav, log)
	api.Get("/me", userHandler.Me)
	api.Get("/navigation", userHandler.Navigation)

	// Catálogo y dashboard
	productHandler := NewProductHandler(deps.ProductUC, deps.Dashboard, log)
	api.Get("/products", section(usecase.SectionInventory), productHandler.List)
	api.Post("/products/reload", section(usecase.SectionInventory), productHandler.Reload)
	api.Get("/products/lookup/:code", section(usecase.SectionInventory), productHandler.Lookup)
	api.Get("/dashboard", section(usecase.SectionDashboard), productHandler.Dashboard)

	// Escaneo y conteos
	inventoryHandler := NewInventoryHandler(deps.CountUC, log)
	api.Post("/scan", section(usecase.SectionInventory), inventoryHandler.Scan)
	counts := api.Group("/counts", section(usecase.SectionCounts))
	counts.Get("/current", inventoryHandler.Current)
	counts.Post("/", inventoryHandler.Start)
	counts.Post("/manual", inventoryHandler.Manual)
	counts.Post("/commit", inventoryHandler.Commit)
	counts.Delete("/current", inventoryHandler.Cancel)

	// Cotizador
	quotationHandler := NewQuotationHandler(deps.Quotation, log)
	quotations := api.Group("/quotations", section(usecase.SectionQuotations))
	quotations.Get("/", quotationHandler.List)
	quotations.Get("/draft", quotationHandler.Draft)
	quotations.Delete("/draft", quotationHandler.Clear)
	quotations.Put("/draft/customer", quotationHandler.SetCustomer)
	quotations.Post("/draft/items", quotationHandler.AddItem)
	quotations.Put("/draft/items/:id", quotationHandler.SetQuantity)
	quotations.Delete("/draft/items/:id", quotationHandler.RemoveItem)
	quotations.Post("/draft/save", quotationHandler.Save)
	quotations.Get("/draft/share", quotationHandler.Share)
	quotations.Get("/draft/pdf", quotationHandler.PDF)

	// Administración
	admin := section(usecase.SectionAdmin)
	api.Get("/users", admin, userHandler.List)
	api.Post("/users", admin, userHandler.Create)
	api.Delete("/users/:id", admin, userHandler.Delete)

	configHandler := NewConfigHandler(deps.ConfigUC, log)
	api.Get("/config", admin, configHandler.Get)
	api.Put("/config", admin, configHandler.Save)

	insightHandler := NewInsightHandler(deps.InsightUC)
	api.Post("/insights", section(usecase.SectionDashboard), insightHandler.Generate)
}
