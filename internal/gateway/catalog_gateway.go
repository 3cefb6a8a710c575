package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"yoloeats-be/internal/entity"
	"yoloeats-be/internal/pkg/apperr"
	"yoloeats-be/internal/pkg/serverutils"
)

type ICatalogGateway interface {
	// FetchProductByCode returns the catalog record for a barcode.
	FetchProductByCode(ctx context.Context, code string) (*entity.Product, error)
}

type catalogGateway struct {
	baseURL string
	client  *http.Client
}

func NewCatalogGateway(baseURL string) ICatalogGateway {
	return &catalogGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *catalogGateway) FetchProductByCode(ctx context.Context, code string) (*entity.Product, error) {
	endpoint := fmt.Sprintf("%s/api/v1/products/barcode/%s", g.baseURL, url.PathEscape(code))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "Failed to build product request")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeUpstreamUnavailable, "Product catalog service is unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperr.NotFoundf("Product not found")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperr.BadStatusf("Product catalog service returned status %d", resp.StatusCode)
	}

	var envelope serverutils.Response[entity.Product]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDataFormat, "Product catalog service returned an unexpected body")
	}
	return &envelope.Data, nil
}
