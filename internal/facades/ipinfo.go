package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/KragoN96/berries-web-app/internal/logger"
	"github.com/KragoN96/berries-web-app/internal/models"
)

const defaultIPInfoBaseURL = "https://ipinfo.io"

// IPInfoFacade resolves IP addresses against the ipinfo.io JSON API.
type IPInfoFacade struct {
	client  *http.Client
	baseURL string
}

// NewIPInfoFacade creates a facade with a bounded-timeout HTTP client.
// An empty baseURL selects the public ipinfo.io endpoint.
func NewIPInfoFacade(baseURL string) *IPInfoFacade {
	if baseURL == "" {
		baseURL = defaultIPInfoBaseURL
	}
	return &IPInfoFacade{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Lookup fetches geolocation data for an IP address.
func (f *IPInfoFacade) Lookup(ctx context.Context, ip string) (*models.IPInfo, error) {
	url := fmt.Sprintf("%s/%s/json", f.baseURL, ip)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch ip info", "ip", ip, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ip info lookup returned status %d", resp.StatusCode)
	}

	var info models.IPInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to parse ip info: %w", err)
	}

	return &info, nil
}
