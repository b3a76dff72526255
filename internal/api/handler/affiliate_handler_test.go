package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/iapourpme/content-api/internal/core/domain"
	"github.com/iapourpme/content-api/internal/core/ports"
)

type stubAffiliateService struct {
	listFn func(ctx context.Context, q ports.AffiliateQuery) ([]domain.AffiliateResource, error)
	calls  int
}

func (s *stubAffiliateService) List(ctx context.Context, q ports.AffiliateQuery) ([]domain.AffiliateResource, error) {
	s.calls++
	return s.listFn(ctx, q)
}

func TestAffiliateHandler_List_DefaultLimit(t *testing.T) {
	e := echo.New()
	var captured ports.AffiliateQuery
	stub := &stubAffiliateService{
		listFn: func(ctx context.Context, q ports.AffiliateQuery) ([]domain.AffiliateResource, error) {
			captured = q
			return []domain.AffiliateResource{}, nil
		},
	}
	h := NewAffiliateHandler(stub, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/affiliates", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if captured.Limit != 10 {
		t.Fatalf("expected default limit 10, got %d", captured.Limit)
	}
	if captured.Featured != nil {
		t.Fatalf("expected no featured filter, got %v", *captured.Featured)
	}
}

func TestAffiliateHandler_List_ClampsLimit(t *testing.T) {
	e := echo.New()
	for raw, want := range map[string]int{"200": 50, "-1": 1, "abc": 10, "7": 7} {
		var captured ports.AffiliateQuery
		stub := &stubAffiliateService{
			listFn: func(ctx context.Context, q ports.AffiliateQuery) ([]domain.AffiliateResource, error) {
				captured = q
				return nil, nil
			},
		}
		h := NewAffiliateHandler(stub, zerolog.Nop())

		req := httptest.NewRequest(http.MethodGet, "/api/affiliates?limit="+raw, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := h.List(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if captured.Limit != want {
			t.Fatalf("limit=%s: expected %d, got %d", raw, want, captured.Limit)
		}
	}
}

func TestAffiliateHandler_List_BothFilters(t *testing.T) {
	e := echo.New()
	pool := []domain.AffiliateResource{
		{Name: "Tool A", Category: "marketing", Featured: true},
		{Name: "Tool B", Category: "marketing", Featured: true},
		{Name: "Tool C", Category: "marketing", Featured: true},
	}
	stub := &stubAffiliateService{
		listFn: func(ctx context.Context, q ports.AffiliateQuery) ([]domain.AffiliateResource, error) {
			if q.Category != "marketing" {
				t.Fatalf("expected category filter, got %q", q.Category)
			}
			if q.Featured == nil || !*q.Featured {
				t.Fatalf("expected featured filter true, got %v", q.Featured)
			}
			// Filters run before the limit.
			if q.Limit < len(pool) {
				return pool[:q.Limit], nil
			}
			return pool, nil
		},
	}
	h := NewAffiliateHandler(stub, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/affiliates?featured=true&category=marketing&limit=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Affiliates []domain.AffiliateResource `json:"affiliates"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Affiliates) > 2 {
		t.Fatalf("result exceeds requested limit: %d", len(resp.Affiliates))
	}
}

func TestAffiliateHandler_List_StoreError(t *testing.T) {
	e := echo.New()
	stub := &stubAffiliateService{
		listFn: func(ctx context.Context, q ports.AffiliateQuery) ([]domain.AffiliateResource, error) {
			return nil, errors.New("store down")
		},
	}
	h := NewAffiliateHandler(stub, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/affiliates", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("affiliates endpoint must fail hard: expected 500, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["error"] == "" {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
}
