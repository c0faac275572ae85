// Package geoapi reads provinces, districts and wards from the public
// Vietnamese administrative-units API (provinces.open-api.vn).
package geoapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"storefront/internal/core/domain/model/geography"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/format"
)

const (
	DefaultBaseURL = "https://provinces.open-api.vn/api"
	DefaultTimeout = 10 * time.Second

	// childDepth asks the service to embed the direct children.
	childDepth = 2

	maxBodyBytes = 8 << 20
)

// Client makes one attempt per call. Entries the domain rejects (zero code,
// blank name) are skipped and logged.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ ports.GeographyClient = (*Client)(nil)

// NewClient builds a client for baseURL. A non-positive timeout falls back to
// DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With("component", "geoapi_client"),
	}
}

func (c *Client) FetchProvinces(ctx context.Context) ([]geography.Province, error) {
	var dtos []provinceDTO
	found, err := c.getJSON(ctx, "provinces", c.baseURL+"/p/", &dtos)
	if err != nil || !found {
		return nil, err
	}

	provinces := make([]geography.Province, 0, len(dtos))
	for _, dto := range dtos {
		p, err := geography.NewProvince(geography.Code(dto.Code), dto.Name)
		if err != nil {
			c.logger.WarnContext(ctx, "Skipping malformed province", "code", dto.Code, "error", err)
			continue
		}
		provinces = append(provinces, p)
	}
	return provinces, nil
}

func (c *Client) FetchDistricts(ctx context.Context, provinceCode geography.Code) ([]geography.District, error) {
	var dto provinceDTO
	endpoint := format.AddSearchParams(c.baseURL+"/p/"+strconv.Itoa(int(provinceCode)), map[string]any{"depth": childDepth})
	found, err := c.getJSON(ctx, "districts", endpoint, &dto)
	if err != nil || !found {
		return nil, err
	}

	districts := make([]geography.District, 0, len(dto.Districts))
	for _, child := range dto.Districts {
		parent := child.ProvinceCode
		if parent == 0 {
			parent = int(provinceCode)
		}
		d, err := geography.NewDistrict(geography.Code(child.Code), child.Name, geography.Code(parent))
		if err != nil {
			c.logger.WarnContext(ctx, "Skipping malformed district", "code", child.Code, "error", err)
			continue
		}
		districts = append(districts, d)
	}
	return districts, nil
}

func (c *Client) FetchWards(ctx context.Context, districtCode geography.Code) ([]geography.Ward, error) {
	var dto districtDTO
	endpoint := format.AddSearchParams(c.baseURL+"/d/"+strconv.Itoa(int(districtCode)), map[string]any{"depth": childDepth})
	found, err := c.getJSON(ctx, "wards", endpoint, &dto)
	if err != nil || !found {
		return nil, err
	}

	wards := make([]geography.Ward, 0, len(dto.Wards))
	for _, child := range dto.Wards {
		parent := child.DistrictCode
		if parent == 0 {
			parent = int(districtCode)
		}
		w, err := geography.NewWard(geography.Code(child.Code), child.Name, geography.Code(parent))
		if err != nil {
			c.logger.WarnContext(ctx, "Skipping malformed ward", "code", child.Code, "error", err)
			continue
		}
		wards = append(wards, w)
	}
	return wards, nil
}

// getJSON decodes the response into out. It reports found=false for a 404
// so callers can answer with an empty list.
func (c *Client) getJSON(ctx context.Context, resource, endpoint string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, errs.NewNetworkErrorWithCause(resource, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, errs.NewNetworkErrorWithCause(resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.logger.DebugContext(ctx, "Geography resource not found", "url", endpoint)
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, errs.NewNetworkErrorWithCause(resource,
			fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return false, errs.NewNetworkErrorWithCause(resource, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return false, errs.NewNetworkErrorWithCause(resource, fmt.Errorf("malformed body: %w", err))
	}
	return true, nil
}
