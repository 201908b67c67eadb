package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"go-storefront/cache"
	"go-storefront/models"
	"go-storefront/source"
	"go-storefront/utils"
)

// Options tunes the catalog views served by Handler
type Options struct {
	ItemsPerPage    int
	MaxItemsPerPage int
	OfferPriceUSD   float64
	OfferMinRating  float64
	OfferDiscount   float64
	FeaturedCount   int
}

// DefaultOptions mirrors the storefront defaults
func DefaultOptions() Options {
	return Options{
		ItemsPerPage:    models.DefaultItemsPerPage,
		MaxItemsPerPage: 100,
		OfferPriceUSD:   50,
		OfferMinRating:  4.5,
		OfferDiscount:   20,
		FeaturedCount:   4,
	}
}

// Handler serves the catalog over HTTP. Cache is optional.
type Handler struct {
	Loader       *source.Loader
	Source       source.Catalog
	Cache        *cache.Store
	Logger       *zap.Logger
	Options      Options
	ResponseHdlr *ResponseHandler
	ErrorHdlr    *utils.ErrorHandler
}

// NewHandler wires a handler. store may be nil to disable caching.
func NewHandler(loader *source.Loader, src source.Catalog, store *cache.Store, logger *zap.Logger, opts Options) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Loader:       loader,
		Source:       src,
		Cache:        store,
		Logger:       logger,
		Options:      opts,
		ResponseHdlr: NewResponseHandler(),
		ErrorHdlr:    utils.NewErrorHandler(),
	}
}

// products returns the loaded catalog, answering 503 itself when it is unavailable
func (h *Handler) products(w http.ResponseWriter, r *http.Request) ([]models.Product, bool) {
	products, err := h.Loader.Products(r.Context())
	if err != nil {
		if r.Context().Err() != nil {
			return nil, false
		}
		h.Logger.Warn("catalog unavailable", zap.Error(err))
		h.ErrorHdlr.HandleUnavailable(w, source.FailureMessage, utils.ValidationDetails(err))
		return nil, false
	}
	return products, true
}
