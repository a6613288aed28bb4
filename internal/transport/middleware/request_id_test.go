package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/cours-de-latin/morphdict/pkg/ctxutil"
)

func TestRequestID_ReuseIncoming(t *testing.T) {
	incomingID := uuid.New().String()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := ctxutil.RequestIDFromCtx(r.Context()); got != incomingID {
			t.Errorf("expected requestID %s, got %s", incomingID, got)
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incomingID)
	rec := httptest.NewRecorder()

	RequestID()(handler).ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != incomingID {
		t.Errorf("expected %s header %s, got %s", RequestIDHeader, incomingID, got)
	}
}

func TestRequestID_GenerateNew(t *testing.T) {
	var ctxID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = ctxutil.RequestIDFromCtx(r.Context())
	})

	rec := httptest.NewRecorder()
	RequestID()(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if _, err := uuid.Parse(ctxID); err != nil {
		t.Errorf("expected valid UUID in context, got %q: %v", ctxID, err)
	}
	if got := rec.Header().Get(RequestIDHeader); got != ctxID {
		t.Errorf("header %q does not match context id %q", got, ctxID)
	}
}
