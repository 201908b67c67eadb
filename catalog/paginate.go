package catalog

import "go-storefront/models"

// maxPageButtons is the largest page count listed without gaps
const maxPageButtons = 5

// Page is one slice of a sorted result
type Page struct {
	Items      []models.Product
	Number     int
	TotalPages int
	// Offset is the zero-based index of the first item in the full result
	Offset int
}

// TotalPages is ceil(count/perPage), never less than 1
func TotalPages(count, perPage int) int {
	if perPage < 1 {
		perPage = models.DefaultItemsPerPage
	}
	n := (count + perPage - 1) / perPage
	if n < 1 {
		return 1
	}
	return n
}

// Paginate slices products into the requested 1-based page. A page outside
// [1, TotalPages] is clamped into range.
func Paginate(products []models.Product, page, perPage int) Page {
	if perPage < 1 {
		perPage = models.DefaultItemsPerPage
	}
	total := TotalPages(len(products), perPage)
	page = min(max(page, 1), total)

	start := (page - 1) * perPage
	end := min(start+perPage, len(products))

	items := make([]models.Product, 0, max(end-start, 0))
	if start < end {
		items = append(items, products[start:end]...)
	}
	return Page{Items: items, Number: page, TotalPages: total, Offset: start}
}

// PageNumbers builds the condensed page list for navigation controls.
// Up to five pages are listed in full; beyond that the list keeps the first and
// last page, the neighbourhood of the current page, and gaps in between.
func PageNumbers(page, totalPages int) []models.PageToken {
	if totalPages <= maxPageButtons {
		out := make([]models.PageToken, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			out = append(out, models.PageNumber(i))
		}
		return out
	}

	switch {
	case page <= 3:
		return []models.PageToken{
			models.PageNumber(1), models.PageNumber(2), models.PageNumber(3), models.PageNumber(4),
			models.Gap(), models.PageNumber(totalPages),
		}
	case page >= totalPages-2:
		return []models.PageToken{
			models.PageNumber(1), models.Gap(),
			models.PageNumber(totalPages - 3), models.PageNumber(totalPages - 2),
			models.PageNumber(totalPages - 1), models.PageNumber(totalPages),
		}
	default:
		return []models.PageToken{
			models.PageNumber(1), models.Gap(),
			models.PageNumber(page - 1), models.PageNumber(page), models.PageNumber(page + 1),
			models.Gap(), models.PageNumber(totalPages),
		}
	}
}
