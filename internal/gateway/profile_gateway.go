// Package gateway holds the HTTP clients the services use to call each
// other. Transport failures, bad statuses and undecodable bodies each map
// to their own error code so callers can decide what is retriable, what is
// a 404 and what deserves a snapshot fallback.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"yoloeats-be/internal/dto"
	"yoloeats-be/internal/pkg/apperr"
	"yoloeats-be/internal/pkg/serverutils"
)

type IProfileGateway interface {
	// FetchProfile returns the user's allergen/diet restrictions from the
	// user profile service.
	FetchProfile(ctx context.Context, userID string) (*dto.ProfilePeerResponse, error)
}

type profileGateway struct {
	baseURL string
	client  *http.Client
}

func NewProfileGateway(baseURL string) IProfileGateway {
	return &profileGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *profileGateway) FetchProfile(ctx context.Context, userID string) (*dto.ProfilePeerResponse, error) {
	endpoint := fmt.Sprintf("%s/api/v1/users/%s/profile", g.baseURL, url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "Failed to build profile request")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeUpstreamUnavailable, "User profile service is unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperr.NotFoundf("User profile not found")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperr.BadStatusf("User profile service returned status %d", resp.StatusCode)
	}

	var envelope serverutils.Response[dto.ProfilePeerResponse]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeDataFormat, "User profile service returned an unexpected body")
	}
	return &envelope.Data, nil
}
