package services_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"safeguard/internal/logger"
	"safeguard/internal/models"
	"safeguard/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockHTTPClient is a mock implementation of HTTPClient for testing.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func respond(status int, body string) *mockHTTPClient {
	return &mockHTTPClient{
		doFunc: func(_ *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: status,
				Body:       io.NopCloser(bytes.NewBufferString(body)),
			}, nil
		},
	}
}

func TestLocationService_CurrentCoordinates(t *testing.T) {
	ctx := context.Background()

	t.Run("successful lookup", func(t *testing.T) {
		client := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, http.MethodGet, req.Method)
				assert.Equal(t, "http://geo.test/json/", req.URL.String())
				assert.NotEmpty(t, req.Header.Get("User-Agent"))

				body := `{"status":"success","country":"India","city":"Chennai","lat":13.0827,"lon":80.2707}`
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewBufferString(body)),
				}, nil
			},
		}

		ls := services.NewLocationServiceWithClient(client, "http://geo.test/json/", logger.NoOp{})
		coords, ok := ls.CurrentCoordinates(ctx)

		require.True(t, ok)
		assert.InEpsilon(t, 13.0827, coords.Latitude, 0.0001)
		assert.InEpsilon(t, 80.2707, coords.Longitude, 0.0001)
		assert.Equal(t, "India", ls.Country())

		last, ok := ls.LastLocation()
		require.True(t, ok)
		assert.Equal(t, "Chennai", last.City)
	})

	failures := []struct {
		name   string
		client *mockHTTPClient
	}{
		{"transport error", &mockHTTPClient{doFunc: func(_ *http.Request) (*http.Response, error) {
			return nil, errors.New("network unreachable")
		}}},
		{"HTTP error status", respond(http.StatusTooManyRequests, `{"message":"slow down"}`)},
		{"invalid JSON", respond(http.StatusOK, `not json`)},
		{"API failure status", respond(http.StatusOK, `{"status":"fail","message":"private range"}`)},
	}

	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			ls := services.NewLocationServiceWithClient(tt.client, "", logger.NoOp{})
			coords, ok := ls.CurrentCoordinates(ctx)

			assert.False(t, ok)
			assert.Equal(t, models.Coordinates{}, coords)
			assert.Equal(t, "", ls.Country())
			_, ok = ls.LastLocation()
			assert.False(t, ok)
		})
	}
}

func TestLocationService_FailureKeepsPreviousFix(t *testing.T) {
	calls := 0
	client := &mockHTTPClient{
		doFunc: func(_ *http.Request) (*http.Response, error) {
			calls++
			if calls > 1 {
				return nil, errors.New("offline")
			}
			body := `{"status":"success","country":"Canada","lat":45.4,"lon":-75.7}`
			return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(bytes.NewBufferString(body))}, nil
		},
	}

	ls := services.NewLocationServiceWithClient(client, "", logger.NoOp{})
	_, ok := ls.CurrentCoordinates(context.Background())
	require.True(t, ok)

	_, ok = ls.CurrentCoordinates(context.Background())
	assert.False(t, ok)
	assert.Equal(t, "Canada", ls.Country())
}

func TestLocationService_ExportCoordinates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coordinates.txt")
	ls := services.NewLocationServiceWithClient(respond(http.StatusOK, ""), "", logger.NoOp{})

	require.NoError(t, os.WriteFile(path, []byte("previous,content,longer"), 0o644))
	require.NoError(t, ls.ExportCoordinates(models.Coordinates{Latitude: 12.9, Longitude: 77.6}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "12.9,77.6", string(data))
}

func TestLocationService_ExportCoordinatesBadPath(t *testing.T) {
	ls := services.NewLocationServiceWithClient(respond(http.StatusOK, ""), "", logger.NoOp{})

	err := ls.ExportCoordinates(models.Coordinates{}, filepath.Join(t.TempDir(), "missing", "coords.txt"))
	require.Error(t, err)
}

func TestEmergencyNumber(t *testing.T) {
	tests := []struct {
		country string
		want    string
	}{
		{"India", "112"},
		{"United States", "911"},
		{"United Kingdom", "999"},
		{"Australia", "000"},
		{"Canada", "911"},
		{"Atlantis", "112"},
		{"", "112"},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			assert.Equal(t, tt.want, services.EmergencyNumber(tt.country))
		})
	}
}
