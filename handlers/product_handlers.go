package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"go-storefront/cache"
	"go-storefront/catalog"
	"go-storefront/format"
	"go-storefront/models"
	"go-storefront/source"
	"go-storefront/urlstate"
	"go-storefront/utils"
)

// ProductList is the payload of the product listing
type ProductList struct {
	Items        []models.ProductCard `json:"items"`
	CatalogCount int                  `json:"catalog_count"`
	Empty        bool                 `json:"empty"`
}

// GetProducts runs the catalog query described by the URL parameters
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	state, details := h.queryState(r)
	if len(details) > 0 {
		h.ErrorHdlr.HandleValidationError(w, details)
		return
	}

	// Cached results are only valid while the catalog they came from is loaded
	products, ok := h.products(w, r)
	if !ok {
		return
	}

	if h.Cache != nil {
		res, err := h.Cache.GetQuery(ctx, state)
		if err == nil {
			w.Header().Set("X-Cache", "HIT")
			h.writeProductList(w, r, state, res, "Products fetched from cache")
			return
		}
		if !errors.Is(err, cache.ErrMiss) {
			h.Logger.Warn("query cache read failed", zap.Error(err))
		}
		w.Header().Set("X-Cache", "MISS")
	}

	res := catalog.Run(products, state)

	if h.Cache != nil {
		if err := h.Cache.SetQuery(ctx, state, res); err != nil {
			h.Logger.Warn("failed to cache products list", zap.Error(err))
		}
	}

	h.writeProductList(w, r, state, res, "Products fetched successfully")
}

// queryState parses the URL leniently. Only limit, which never appears in a
// shareable URL, is rejected when malformed.
func (h *Handler) queryState(r *http.Request) (models.QueryState, []utils.ErrorDetail) {
	state := urlstate.Parse(r.URL.Query())
	state.PerPage = h.Options.ItemsPerPage
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return state, []utils.ErrorDetail{{Field: "limit", Message: "limit must be a positive integer"}}
		}
		state.PerPage = min(limit, h.Options.MaxItemsPerPage)
	}
	return state.Normalized(), nil
}

func (h *Handler) writeProductList(w http.ResponseWriter, r *http.Request, state models.QueryState, res models.QueryResult, message string) {
	state.Page = res.Page

	pagination := &PaginationInfo{
		CurrentPage:  res.Page,
		TotalPages:   res.TotalPages,
		ItemsPerPage: res.PerPage,
		TotalItems:   res.TotalCount,
		FirstItem:    res.FirstItem,
		LastItem:     res.LastItem,
		PageNumbers:  res.PageNumbers,
		Self:         h.pageLink(r.URL.Path, state, res.Page),
	}
	if res.Page > 1 {
		pagination.Prev = h.pageLink(r.URL.Path, state, res.Page-1)
	}
	if res.Page < res.TotalPages {
		pagination.Next = h.pageLink(r.URL.Path, state, res.Page+1)
	}

	h.ResponseHdlr.Paginated(w, message, ProductList{
		Items:        catalog.Cards(res.Items),
		CatalogCount: res.CatalogCount,
		Empty:        res.Empty(),
	}, pagination)
}

// pageLink serializes state at page, keeping a non-default page size
func (h *Handler) pageLink(path string, state models.QueryState, page int) string {
	state.Page = page
	values := urlstate.Values(state)
	if state.PerPage != h.Options.ItemsPerPage {
		values.Set("limit", strconv.Itoa(state.PerPage))
	}
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}

// GetProductDetails handles retrieving a single product by ID
func (h *Handler) GetProductDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		h.ErrorHdlr.HandleBadRequest(w, "Invalid product ID")
		return
	}

	if h.Cache != nil {
		detail, err := h.Cache.GetProduct(ctx, id)
		if err == nil {
			w.Header().Set("X-Cache", "HIT")
			h.ResponseHdlr.Success(w, "Product details fetched from cache", detail)
			return
		}
		w.Header().Set("X-Cache", "MISS")
	}

	product, err := h.Source.Product(ctx, id)
	if errors.Is(err, source.ErrNotFound) {
		h.ErrorHdlr.HandleNotFound(w, "Product not found")
		return
	}
	if err != nil {
		h.Logger.Warn("product fetch failed", zap.Int("id", id), zap.Error(err))
		h.ErrorHdlr.HandleUnavailable(w, source.FailureMessage, nil)
		return
	}

	detail := catalog.Detail(product)
	if h.Cache != nil {
		if err := h.Cache.SetProduct(ctx, detail); err != nil {
			h.Logger.Warn("failed to cache product detail", zap.Int("id", id), zap.Error(err))
		}
	}

	h.ResponseHdlr.Success(w, "Product details fetched successfully", detail)
}

// GetCategories lists categories with their product counts
func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	products, ok := h.products(w, r)
	if !ok {
		return
	}
	h.ResponseHdlr.Success(w, "Categories fetched successfully", catalog.CategorySummaries(products))
}

// GetCategoryProducts lists the products of one category straight from the product source
func (h *Handler) GetCategoryProducts(w http.ResponseWriter, r *http.Request) {
	category, err := models.ParseCategory(mux.Vars(r)["category"])
	if err != nil {
		h.ErrorHdlr.HandleNotFound(w, "Category not found")
		return
	}

	products, err := h.Source.ProductsByCategory(r.Context(), string(category))
	if err != nil {
		h.Logger.Warn("category fetch failed", zap.Stringer("category", category), zap.Error(err))
		h.ErrorHdlr.HandleUnavailable(w, source.FailureMessage, nil)
		return
	}

	h.ResponseHdlr.Success(w, "Products fetched successfully", ProductList{
		Items:        catalog.Cards(products),
		CatalogCount: len(products),
		Empty:        len(products) == 0,
	})
}

// OfferList is the payload of the offers view
type OfferList struct {
	Items        []models.Offer `json:"items"`
	TotalSavings string         `json:"total_savings"`
}

// GetOffers lists discounted products, best rated first
func (h *Handler) GetOffers(w http.ResponseWriter, r *http.Request) {
	products, ok := h.products(w, r)
	if !ok {
		return
	}

	offers := catalog.Offers(products, h.Options.OfferPriceUSD, h.Options.OfferMinRating)
	savings := catalog.TotalSavings(offers, h.Options.OfferDiscount)

	h.ResponseHdlr.Success(w, "Offers fetched successfully", OfferList{
		Items:        catalog.OfferCards(offers, h.Options.OfferDiscount),
		TotalSavings: format.Price(savings),
	})
}

// GetFeatured lists the products shown on the landing view
func (h *Handler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	products, ok := h.products(w, r)
	if !ok {
		return
	}
	featured := catalog.Featured(products, h.Options.FeaturedCount)
	h.ResponseHdlr.Success(w, "Featured products fetched successfully", catalog.Cards(featured))
}
