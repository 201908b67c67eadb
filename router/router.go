package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"go-storefront/handlers"
	"go-storefront/middleware"
)

func SetupRoutes(h *handlers.Handler, logger *zap.Logger, allowedOrigins []string) *mux.Router {
	router := mux.NewRouter()
	router.Use(
		middleware.RequestID(),
		middleware.Logging(logger),
		middleware.Recover(logger),
		middleware.CORS(allowedOrigins),
	)

	router.HandleFunc("/healthz", h.Health).Methods("GET")

	// Catalog views
	router.HandleFunc("/products", h.GetProducts).Methods("GET", "OPTIONS")
	router.HandleFunc("/products/{id}", h.GetProductDetails).Methods("GET", "OPTIONS")
	router.HandleFunc("/categories", h.GetCategories).Methods("GET", "OPTIONS")
	router.HandleFunc("/categories/{category}/products", h.GetCategoryProducts).Methods("GET", "OPTIONS")
	router.HandleFunc("/offers", h.GetOffers).Methods("GET", "OPTIONS")
	router.HandleFunc("/featured", h.GetFeatured).Methods("GET", "OPTIONS")
	router.HandleFunc("/filters", h.GetFilters).Methods("GET", "OPTIONS")

	// Retry after a failed load, or pick up catalog changes
	router.HandleFunc("/catalog/refresh", h.RefreshCatalog).Methods("POST", "OPTIONS")

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ErrorHdlr.HandleNotFound(w, "Route not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ErrorHdlr.HandleError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return router
}
