package httpapi

import (
	"net/http"
	"testing"
)

func TestProfile_GetAndPatch(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/me", nil)
	requireStatus(t, rec, http.StatusOK)
	p := decodeAs[UserProfile](t, rec)
	if p.Name != "Alex Traveler" || p.JoinedAt.Format("2006-01-02") != "2023-06-15" {
		t.Fatalf("profile=%+v", p)
	}

	rec = api.do(t, http.MethodPatch, "/me", `{"bio":null,"email":"alex@example.org","preferredCurrency":"eur"}`)
	requireStatus(t, rec, http.StatusOK)
	p = decodeAs[UserProfile](t, rec)
	if p.Bio != "" || p.Email != "alex@example.org" || p.PreferredCurrency != "EUR" || p.Name != "Alex Traveler" {
		t.Fatalf("profile=%+v", p)
	}

	rec = api.do(t, http.MethodPatch, "/me", `{"name":null}`)
	requireErrorCode(t, rec, http.StatusUnprocessableEntity, "VALIDATION_ERROR")
}

func TestPreferences_NotificationsMerge(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPatch, "/me/preferences", `{"notifications":{"sms":true}}`)
	requireStatus(t, rec, http.StatusOK)
	p := decodeAs[Preferences](t, rec)
	if !p.Notifications.SMS || !p.Notifications.Email || !p.Notifications.Push {
		t.Fatalf("notifications=%+v", p.Notifications)
	}

	rec = api.do(t, http.MethodGet, "/me/preferences", nil)
	requireStatus(t, rec, http.StatusOK)
	if got := decodeAs[Preferences](t, rec); !got.Notifications.SMS {
		t.Fatalf("sms not persisted")
	}

	rec = api.do(t, http.MethodPatch, "/me/preferences", `{"travelStyle":"reckless"}`)
	requireErrorCode(t, rec, http.StatusUnprocessableEntity, "VALIDATION_ERROR")
}

func TestDocuments_ListAndUpload(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/me/documents", nil)
	requireStatus(t, rec, http.StatusOK)
	docs := decodeAs[[]Document](t, rec)
	if len(docs) != 2 || docs[0].Id != "doc1" {
		t.Fatalf("docs=%+v", docs)
	}

	rec = api.do(t, http.MethodPost, "/me/documents", map[string]any{"name": "Visa", "type": "visa", "expiryDate": "2028-05-01"})
	requireStatus(t, rec, http.StatusCreated)
	d := decodeAs[Document](t, rec)
	exp, err := d.ExpiryDate.Get()
	if err != nil || exp.Format("2006-01-02") != "2028-05-01" {
		t.Fatalf("expiryDate=%v err=%v", exp, err)
	}

	rec = api.do(t, http.MethodPost, "/me/documents", map[string]any{"name": "  "})
	requireErrorCode(t, rec, http.StatusUnprocessableEntity, "VALIDATION_ERROR")
}
