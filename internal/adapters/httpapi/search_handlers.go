package httpapi

import (
	"net/http"

	"github.com/oapi-codegen/runtime"

	"github.com/tripkit/planner-api/internal/app/search"
	"github.com/tripkit/planner-api/internal/domain"
)

const bookingRoute = "/search/items/{itemId}/bookings"

// bindQuery binds an optional string query parameter. dst is left alone when
// the parameter is absent.
func (s *Server) bindQuery(w http.ResponseWriter, r *http.Request, name string, dst *string) bool {
	var v *string
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), &v); err != nil {
		s.writeAPIError(w, r, http.StatusBadRequest, codeBadRequest, "invalid query parameter", map[string]any{name: err.Error()})
		return false
	}
	if v != nil {
		*dst = *v
	}
	return true
}

func searchItemsFromDomain(items []domain.SearchItem) []SearchItem {
	out := make([]SearchItem, 0, len(items))
	for _, it := range items {
		out = append(out, searchItemFromDomain(it))
	}
	return out
}

func (s *Server) searchCatalog(w http.ResponseWriter, r *http.Request) {
	var text, typ, sortBy string
	if !s.bindQuery(w, r, "q", &text) || !s.bindQuery(w, r, "type", &typ) || !s.bindQuery(w, r, "sortBy", &sortBy) {
		return
	}
	items, err := s.svc.Search.Search(r.Context(), search.Query{
		Text:   text,
		Type:   domain.SearchType(typ),
		SortBy: domain.SortBy(sortBy),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, searchItemsFromDomain(items))
}

func (s *Server) recommendations(w http.ResponseWriter, r *http.Request) {
	var typ string
	if !s.bindQuery(w, r, "type", &typ) {
		return
	}
	items, err := s.svc.Search.Recommendations(r.Context(), search.RecommendationInput{Type: domain.SearchType(typ)})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, searchItemsFromDomain(items))
}

// bookItem confirms a booking. With an Idempotency-Key header a retry replays
// the stored confirmation instead of booking again.
func (s *Server) bookItem(w http.ResponseWriter, r *http.Request) {
	itemID := pathID[domain.SearchItemID](r, "itemId")
	key := r.Header.Get("Idempotency-Key")

	claim, done := s.replayIdempotent(w, r, key, bookingRoute, string(itemID))
	if done {
		return
	}

	b, err := s.svc.Search.Book(r.Context(), itemID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := bookingFromDomain(b)
	s.rememberIdempotent(r, claim, http.StatusCreated, resp)
	writeJSON(w, http.StatusCreated, resp)
}
