package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"safeguard/internal/logger"
	"safeguard/internal/models"
)

const (
	defaultGeoIPEndpoint = "http://ip-api.com/json/"
	userAgent            = "SafeGuard/1.0 (emergency preparedness desktop app)"
)

// ErrLocationUnavailable is returned when no fix has been obtained.
var ErrLocationUnavailable = errors.New("location unavailable")

// HTTPClient defines the interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// geoIPResponse is the ip-api.com JSON shape.
type geoIPResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Country string  `json:"country"`
	City    string  `json:"city"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// LocationService resolves the machine's approximate position from its
// public IP address and remembers the last fix.
type LocationService struct {
	client   HTTPClient
	endpoint string
	logger   logger.Logger

	mu   sync.RWMutex
	last *models.Location
}

func NewLocationService(endpoint string, timeout time.Duration, log logger.Logger) *LocationService {
	return NewLocationServiceWithClient(&http.Client{Timeout: timeout}, endpoint, log)
}

// NewLocationServiceWithClient is NewLocationService with a caller-supplied client.
func NewLocationServiceWithClient(client HTTPClient, endpoint string, log logger.Logger) *LocationService {
	if endpoint == "" {
		endpoint = defaultGeoIPEndpoint
	}
	return &LocationService{
		client:   client,
		endpoint: endpoint,
		logger:   log,
	}
}

// CurrentCoordinates performs a lookup. Any failure is logged and reported
// as ok == false; it never returns an error to the caller.
func (ls *LocationService) CurrentCoordinates(ctx context.Context) (models.Coordinates, bool) {
	loc, err := ls.lookup(ctx)
	if err != nil {
		ls.logger.Warning("LocationService", "unable to fetch location", map[string]interface{}{
			"endpoint": ls.endpoint,
			"error":    err.Error(),
		})
		return models.Coordinates{}, false
	}

	ls.mu.Lock()
	ls.last = loc
	ls.mu.Unlock()

	ls.logger.Debug("LocationService", "location fixed", map[string]interface{}{
		"lat":     loc.Latitude,
		"lon":     loc.Longitude,
		"country": loc.Country,
	})

	return loc.Coordinates, true
}

// LastLocation returns the most recent successful fix.
func (ls *LocationService) LastLocation() (models.Location, bool) {
	ls.mu.RLock()
	defer ls.mu.RUnlock()

	if ls.last == nil {
		return models.Location{}, false
	}
	return *ls.last, true
}

// Country is the country of the last fix, or "" when there is none.
func (ls *LocationService) Country() string {
	loc, ok := ls.LastLocation()
	if !ok {
		return ""
	}
	return loc.Country
}

// ExportCoordinates overwrites path with "lat,lon".
func (ls *LocationService) ExportCoordinates(coords models.Coordinates, path string) error {
	if err := os.WriteFile(path, []byte(coords.String()), 0o644); err != nil {
		return fmt.Errorf("export coordinates: %w", err)
	}

	ls.logger.Info("LocationService", "coordinates exported", map[string]interface{}{
		"path": path,
	})
	return nil
}

func (ls *LocationService) lookup(ctx context.Context) (*models.Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ls.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := ls.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute geolocation request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result geoIPResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode geolocation response: %w", err)
	}

	if result.Status != "success" {
		return nil, fmt.Errorf("%w: %s", ErrLocationUnavailable, result.Message)
	}

	return &models.Location{
		Coordinates: models.Coordinates{Latitude: result.Lat, Longitude: result.Lon},
		Country:     result.Country,
		City:        result.City,
	}, nil
}
