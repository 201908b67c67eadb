package catalog

import "go-storefront/models"

// Session recomputes query results for one viewer and enforces the page reset
// rule: when the filter inputs or the number of matching products differ from
// the previous computation, the page goes back to 1. Sort changes keep the page.
//
// A Session is not safe for concurrent use.
type Session struct {
	primed    bool
	filterKey string
	matched   int
}

// NewSession returns a session with no previous computation
func NewSession() *Session {
	return &Session{}
}

// Apply runs the pipeline for state and returns the result together with the
// effective state (page possibly reset or clamped).
func (s *Session) Apply(products []models.Product, state models.QueryState) (models.QueryResult, models.QueryState) {
	state = state.Normalized()
	filtered := Filter(products, state)

	key := state.FilterKey()
	if s.primed && (key != s.filterKey || len(filtered) != s.matched) {
		state.Page = 1
	}
	s.primed = true
	s.filterKey = key
	s.matched = len(filtered)

	res := assemble(Sort(filtered, state.Sort), len(products), state)
	state.Page = res.Page
	return res, state
}

// Reset forgets the previous computation
func (s *Session) Reset() {
	*s = Session{}
}
