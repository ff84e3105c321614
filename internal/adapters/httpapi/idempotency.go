package httpapi

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tripkit/planner-api/internal/ports/out/idempotency"
)

func hashPayload(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(sum[:])
}

// replayIdempotent handles the Idempotency-Key protocol for one route:
//   - same key, same payload: replay the stored response
//   - same key, different payload: 409
//   - new key: claim it and let the handler run
//
// It reports done when a response has already been written. The returned
// fingerprint is where the handler's response should be remembered; it is
// zero when there is no key or no store.
func (s *Server) replayIdempotent(w http.ResponseWriter, r *http.Request, key, route string, payload ...string) (idempotency.Fingerprint, bool) {
	if s.idem == nil || key == "" {
		return idempotency.Fingerprint{}, false
	}
	ctx := r.Context()
	bodyHash := hashPayload(payload...)
	metaFP := idempotency.Fingerprint{
		Key:    idempotency.Key(key),
		Method: r.Method,
		Route:  route,
	}

	meta, ok, err := s.idem.Get(ctx, metaFP)
	if err != nil {
		s.writeError(w, r, err)
		return idempotency.Fingerprint{}, true
	}
	if ok && string(meta.Body) != bodyHash {
		s.writeAPIError(w, r, http.StatusConflict, codeIdemReuse, "idempotency key reuse with different payload", nil)
		return idempotency.Fingerprint{}, true
	}
	if !ok {
		if err := s.idem.Put(ctx, metaFP, idempotency.Record{ContentType: "text/plain", Body: []byte(bodyHash)}); err != nil {
			s.log.Warn("idempotency: claim key", "err", err)
		}
	}

	respFP := metaFP
	respFP.BodyHash = bodyHash
	rec, ok, err := s.idem.Get(ctx, respFP)
	if err != nil {
		s.writeError(w, r, err)
		return idempotency.Fingerprint{}, true
	}
	if ok && rec.StatusCode != 0 {
		w.Header().Set("Content-Type", rec.ContentType)
		w.Header().Set("Idempotent-Replayed", "true")
		w.WriteHeader(rec.StatusCode)
		_, _ = w.Write(rec.Body)
		return idempotency.Fingerprint{}, true
	}
	return respFP, false
}

func (s *Server) rememberIdempotent(r *http.Request, fp idempotency.Fingerprint, status int, resp any) {
	if s.idem == nil || fp.Key == "" {
		return
	}
	b, err := json.Marshal(resp)
	if err != nil {
		s.log.Warn("idempotency: encode response", "err", err)
		return
	}
	// Match the trailing newline json.Encoder writes so replays are byte-identical.
	b = append(b, '\n')
	if err := s.idem.Put(r.Context(), fp, idempotency.Record{
		StatusCode:  status,
		ContentType: "application/json",
		Body:        b,
	}); err != nil {
		s.log.Warn("idempotency: store response", "err", err)
	}
}
