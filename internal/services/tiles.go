package services

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strconv"
	"strings"

	"safeguard/internal/logger"
	"safeguard/internal/models"
)

// TileService downloads raster map tiles from a {z}/{x}/{y} URL template.
type TileService struct {
	client   HTTPClient
	template string
	logger   logger.Logger
}

func NewTileService(client HTTPClient, template string, log logger.Logger) *TileService {
	return &TileService{
		client:   client,
		template: template,
		logger:   log,
	}
}

// URL expands the template for a tile.
func (ts *TileService) URL(tile models.Tile) string {
	return strings.NewReplacer(
		"{z}", strconv.Itoa(tile.Z),
		"{x}", strconv.Itoa(tile.X),
		"{y}", strconv.Itoa(tile.Y),
	).Replace(ts.template)
}

// Fetch downloads and decodes a single tile.
func (ts *TileService) Fetch(ctx context.Context, tile models.Tile) (image.Image, error) {
	url := ts.URL(tile)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create tile request: %w", err)
	}
	// Tile servers reject requests without an identifying User-Agent.
	req.Header.Set("User-Agent", userAgent)

	resp, err := ts.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tile server returned status %d for %s", resp.StatusCode, url)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tile: %w", err)
	}

	ts.logger.Debug("TileService", "tile fetched", map[string]interface{}{
		"z": tile.Z,
		"x": tile.X,
		"y": tile.Y,
	})
	return img, nil
}
