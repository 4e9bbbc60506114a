package http

import (
	_ "github.com/DRSN-tech/storefront-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
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
	catalogUC usecase.CatalogUC,
	adminUC usecase.AdminProductUC,
	authUC usecase.AuthUC,
	imagesInfra usecase.ImagesInfra,
	authCfg *cfg.AuthCfg,
	minioCfg *cfg.MinIOCfg,
) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	authMw := NewAuthMiddleware(authUC, authCfg, r.logger)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerCatalogRoutes(v1, NewProductHandler(catalogUC, r.logger))
		registerAuthRoutes(v1, NewAuthHandler(authUC, authCfg, r.logger))
		registerAdminRoutes(v1, NewAdminHandler(adminUC, imagesInfra, minioCfg, r.logger), authMw)
	})
}

func registerCatalogRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.listProducts)
		pr.Get("/{id}", prHandler.getProduct)
	})

	router.Route("/catalog", func(ct chi.Router) {
		ct.Get("/", prHandler.catalogSummary)
		ct.Get("/price-range", prHandler.priceRange)
		ct.Get("/colors", prHandler.uniqueColors)
		ct.Get("/palette", prHandler.colorPalette)
	})
}

func registerAuthRoutes(router chi.Router, authHandler *AuthHandler) {
	router.Route("/auth", func(au chi.Router) {
		au.Post("/login", authHandler.login)
		au.Post("/logout", authHandler.logout)
	})
}

func registerAdminRoutes(router chi.Router, adminHandler *AdminHandler, authMw *AuthMiddleware) {
	router.Route("/admin", func(ad chi.Router) {
		ad.Use(authMw.RequireAuth)
		ad.Use(authMw.RequireAdmin)

		ad.Route("/products", func(pr chi.Router) {
			pr.Post("/", adminHandler.createProduct)
			pr.Patch("/{id}", adminHandler.updateProduct)
			pr.Delete("/{id}", adminHandler.deleteProduct)
		})

		ad.Post("/images", adminHandler.uploadImages)
	})
}
