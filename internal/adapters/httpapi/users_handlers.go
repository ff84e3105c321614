package httpapi

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/tripkit/planner-api/internal/app/users"
	"github.com/tripkit/planner-api/internal/domain"
)

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Users.GetProfile(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profileFromDomain(p))
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	var body UpdateProfileRequest
	if !s.decodeBody(w, r, &body) {
		return
	}
	in := users.UpdateProfileInput{
		Name:              optionalFromNullable(body.Name),
		Email:             optionalMapped(body.Email, func(e openapi_types.Email) string { return string(e) }),
		Phone:             optionalFromNullable(body.Phone),
		Location:          optionalFromNullable(body.Location),
		Bio:               optionalFromNullable(body.Bio),
		Avatar:            optionalFromNullable(body.Avatar),
		PreferredCurrency: optionalFromNullable(body.PreferredCurrency),
	}
	p, err := s.svc.Users.UpdateProfile(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profileFromDomain(p))
}

func (s *Server) getPreferences(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Users.GetPreferences(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, preferencesFromDomain(p))
}

func (s *Server) updatePreferences(w http.ResponseWriter, r *http.Request) {
	var body UpdatePreferencesRequest
	if !s.decodeBody(w, r, &body) {
		return
	}
	in := users.UpdatePreferencesInput{
		TravelStyle:       optionalMapped(body.TravelStyle, func(v string) domain.TravelStyle { return domain.TravelStyle(v) }),
		Interests:         optionalFromNullable(body.Interests),
		PreferredCurrency: optionalFromNullable(body.PreferredCurrency),
	}
	if n := body.Notifications; n != nil {
		in.Notifications = users.NotificationsPatch{
			Email:     optionalFromNullable(n.Email),
			Push:      optionalFromNullable(n.Push),
			SMS:       optionalFromNullable(n.SMS),
			Marketing: optionalFromNullable(n.Marketing),
		}
	}
	p, err := s.svc.Users.UpdatePreferences(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, preferencesFromDomain(p))
}

func (s *Server) listDocuments(w http.ResponseWriter, r *http.Request) {
	ds, err := s.svc.Users.ListDocuments(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]Document, 0, len(ds))
	for _, d := range ds {
		out = append(out, documentFromDomain(d))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) uploadDocument(w http.ResponseWriter, r *http.Request) {
	var body UploadDocumentRequest
	if !s.decodeBody(w, r, &body) {
		return
	}
	in := users.UploadDocumentInput{Name: body.Name, Type: body.Type}
	if exp := optionalMapped(body.ExpiryDate, dateOf); exp.HasValue() {
		t := exp.Value()
		in.ExpiryDate = &t
	}
	d, err := s.svc.Users.UploadDocument(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, documentFromDomain(d))
}
