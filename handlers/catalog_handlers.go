package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"go-storefront/catalog"
	"go-storefront/format"
	"go-storefront/models"
	"go-storefront/source"
	"go-storefront/utils"
)

// RefreshResult reports a completed catalog reload
type RefreshResult struct {
	Products int       `json:"products"`
	LoadedAt time.Time `json:"loaded_at"`
}

// RefreshCatalog reloads the catalog from the product source. It doubles as
// the retry action after a failed load.
func (h *Handler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	if err := h.Loader.Load(r.Context()); err != nil {
		if r.Context().Err() != nil {
			return
		}
		h.Logger.Warn("catalog refresh failed", zap.Error(err))
		h.ErrorHdlr.HandleUnavailable(w, source.FailureMessage, utils.ValidationDetails(err))
		return
	}

	state := h.Loader.Snapshot()
	h.ResponseHdlr.Success(w, "Catalog refreshed successfully", RefreshResult{
		Products: len(state.Products),
		LoadedAt: state.LoadedAt,
	})
}

// HealthStatus describes the loader state
type HealthStatus struct {
	Status   string     `json:"status"`
	Products int        `json:"products"`
	LoadedAt *time.Time `json:"loaded_at,omitempty"`
	Error    string     `json:"error,omitempty"`
}

// Health reports whether a catalog is being served
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	state := h.Loader.Snapshot()

	status := HealthStatus{Products: len(state.Products)}
	switch {
	case state.Loading:
		status.Status = "loading"
	case state.Err != nil:
		status.Status = "unavailable"
		status.Error = state.Message
	case state.Ready():
		status.Status = "ok"
		status.LoadedAt = &state.LoadedAt
	default:
		status.Status = "idle"
	}

	code := http.StatusOK
	if state.Err != nil {
		code = http.StatusServiceUnavailable
	}
	h.ResponseHdlr.JSON(w, code, Response{Status: code, Data: status})
}

// Filters lists the choices offered by the catalog filter controls
type Filters struct {
	Categories  []format.CategoryOption `json:"categories"`
	SortOptions []models.SortOption     `json:"sort_options"`
	Ratings     []models.RatingOption   `json:"ratings"`
	PriceBounds models.PriceRange       `json:"price_bounds"`
	MinPrice    string                  `json:"min_price"`
	MaxPrice    string                  `json:"max_price"`
}

// GetFilters returns the filter choices for the loaded catalog
func (h *Handler) GetFilters(w http.ResponseWriter, r *http.Request) {
	products, ok := h.products(w, r)
	if !ok {
		return
	}

	bounds := catalog.PriceBounds(products)
	h.ResponseHdlr.Success(w, "Filters fetched successfully", Filters{
		Categories:  format.TranslatedCategories(catalog.Categories(products)),
		SortOptions: models.SortOptions,
		Ratings:     models.RatingOptions,
		PriceBounds: bounds,
		MinPrice:    format.Amount(int64(bounds.Min)),
		MaxPrice:    format.Amount(int64(bounds.Max)),
	})
}
