package http

import (
	_ "github.com/Liso15/UbuntuExpress/docs" // Импорт сгенерированных файлов
	"github.com/Liso15/UbuntuExpress/internal/cfg"
	"github.com/Liso15/UbuntuExpress/internal/usecase"
	"github.com/Liso15/UbuntuExpress/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(
	httpCfg *cfg.HTTPConfig,
	maxImageCount int,
	catalogUC usecase.CatalogUC,
	priceUC usecase.PriceUC,
	searchUC usecase.SearchUC,
	subscriptionUC usecase.SubscriptionUC,
	alertUC usecase.AlertUC,
) {
	r.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: httpCfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", headerUserID, headerUserEmail},
		MaxAge:         300,
	}))

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		catalogHandler := NewCatalogHandler(catalogUC, r.logger)
		registerCatalogRoutes(v1, catalogHandler)

		productHandler := NewProductHandler(catalogUC, r.logger, maxImageCount)
		registerProductRoutes(v1, productHandler)

		priceHandler := NewPriceHandler(priceUC, r.logger)
		registerPriceRoutes(v1, priceHandler)

		searchHandler := NewSearchHandler(searchUC, r.logger)
		v1.Get("/search", searchHandler.search)

		subscriptionHandler := NewSubscriptionHandler(subscriptionUC, r.logger)
		registerSubscriptionRoutes(v1, subscriptionHandler)

		alertHandler := NewAlertHandler(alertUC, r.logger)
		registerAlertRoutes(v1, alertHandler)
	})
}

func registerCatalogRoutes(router chi.Router, handler *CatalogHandler) {
	router.Route("/categories", func(cat chi.Router) {
		cat.Get("/", handler.listCategories)
		cat.Get("/{slug}", handler.getCategory)
	})

	router.Route("/retailers", func(ret chi.Router) {
		ret.Get("/", handler.listRetailers)
		ret.Get("/{id}", handler.getRetailer)
	})
}

func registerProductRoutes(router chi.Router, handler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", handler.listProducts)
		pr.Post("/", handler.registerNewProduct)
		pr.Get("/{id}", handler.getProduct)
		pr.Get("/{id}/prices", handler.getProductPrices)
	})
}

func registerPriceRoutes(router chi.Router, handler *PriceHandler) {
	router.Route("/prices", func(pr chi.Router) {
		pr.Post("/", handler.upsertPrice)
		pr.Put("/{id}", handler.updatePrice)
	})
}

func registerSubscriptionRoutes(router chi.Router, handler *SubscriptionHandler) {
	router.Route("/subscriptions", func(sub chi.Router) {
		sub.Post("/", handler.subscribe)
		sub.Get("/", handler.getSubscription)
		sub.Delete("/", handler.cancelSubscription)
	})
}

func registerAlertRoutes(router chi.Router, handler *AlertHandler) {
	router.Route("/alerts", func(al chi.Router) {
		al.Get("/", handler.listAlerts)
		al.Post("/", handler.createAlert)
	})
}
