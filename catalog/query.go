package catalog

import "go-storefront/models"

// Run executes the full pipeline: filter, then sort, then paginate.
func Run(products []models.Product, state models.QueryState) models.QueryResult {
	state = state.Normalized()
	return assemble(Sort(Filter(products, state), state.Sort), len(products), state)
}

func assemble(sorted []models.Product, catalogCount int, state models.QueryState) models.QueryResult {
	page := Paginate(sorted, state.Page, state.PerPage)

	res := models.QueryResult{
		Items:        page.Items,
		TotalCount:   len(sorted),
		TotalPages:   page.TotalPages,
		Page:         page.Number,
		PerPage:      state.PerPage,
		PageNumbers:  PageNumbers(page.Number, page.TotalPages),
		CatalogCount: catalogCount,
	}
	if len(page.Items) > 0 {
		res.FirstItem = page.Offset + 1
		res.LastItem = page.Offset + len(page.Items)
	}
	return res
}
