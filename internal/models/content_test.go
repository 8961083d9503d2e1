package models_test

import (
	"testing"

	"safeguard/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCoordinates_String(t *testing.T) {
	tests := []struct {
		name   string
		coords models.Coordinates
		want   string
	}{
		{"decimal", models.Coordinates{Latitude: 12.9, Longitude: 77.6}, "12.9,77.6"},
		{"negative", models.Coordinates{Latitude: -33.8688, Longitude: 151.2093}, "-33.8688,151.2093"},
		{"integral", models.Coordinates{Latitude: 0, Longitude: 10}, "0,10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coords.String())
		})
	}
}

func TestQuizQuestion_Valid(t *testing.T) {
	assert.True(t, models.QuizQuestion{Question: "q", Options: []string{"a", "b"}, Answer: 1}.Valid())
	assert.False(t, models.QuizQuestion{Question: "q", Options: []string{"a", "b"}, Answer: 2}.Valid())
	assert.False(t, models.QuizQuestion{Question: "q", Options: []string{"a"}, Answer: -1}.Valid())
	assert.False(t, models.QuizQuestion{Question: "q"}.Valid())
}
