package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"yoloeats-be/internal/pkg/apperr"
)

func TestFetchProductByCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/products/barcode/4001234567890" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"message":"ok","data":{"code":"4001234567890","ingredients_text":"wheat flour, peanuts, sugar","traces_tags":["en:milk"],"created_datetime":"2026-01-01T00:00:00Z","last_modified_datetime":"2026-01-01T00:00:00Z"}}`))
	}))
	defer server.Close()

	product, err := NewCatalogGateway(server.URL).FetchProductByCode(context.Background(), "4001234567890")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Code != "4001234567890" {
		t.Errorf("code = %s, want 4001234567890", product.Code)
	}
	if product.IngredientsText == nil || *product.IngredientsText != "wheat flour, peanuts, sugar" {
		t.Errorf("ingredients_text = %v, want the raw list", product.IngredientsText)
	}
	if len(product.TracesTags) != 1 {
		t.Errorf("traces_tags = %v, want one tag", product.TracesTags)
	}
}

func TestFetchProductByCodeStatuses(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantCode apperr.Code
	}{
		{name: "missing product", status: http.StatusNotFound, wantCode: apperr.CodeNotFound},
		{name: "peer error", status: http.StatusBadGateway, wantCode: apperr.CodeUpstreamBadStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			_, err := NewCatalogGateway(server.URL).FetchProductByCode(context.Background(), "123")
			if err == nil {
				t.Fatal("expected an error, got none")
			}
			if got := apperr.CodeOf(err); got != tt.wantCode {
				t.Errorf("error code = %v, want %v", got, tt.wantCode)
			}
		})
	}
}
