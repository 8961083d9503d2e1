package pages_test

import (
	"fmt"
	"testing"

	"safeguard/internal/models"
	"safeguard/internal/pages"

	"github.com/stretchr/testify/assert"
)

func instructions(n int) []models.Instruction {
	out := make([]models.Instruction, n)
	for i := range out {
		out[i] = models.Instruction(fmt.Sprintf("slide %d", i))
	}
	return out
}

func TestSlideshow_NextWrapsAround(t *testing.T) {
	s := pages.NewSlideshow(instructions(3))

	assert.Equal(t, models.Instruction("slide 0"), s.Current())
	assert.Equal(t, models.Instruction("slide 1"), s.Next())
	assert.Equal(t, models.Instruction("slide 2"), s.Next())
	assert.Equal(t, models.Instruction("slide 0"), s.Next())
}

func TestSlideshow_PreviousWrapsAround(t *testing.T) {
	s := pages.NewSlideshow(instructions(3))

	assert.Equal(t, models.Instruction("slide 2"), s.Previous())
	assert.Equal(t, 2, s.Index())
	assert.Equal(t, models.Instruction("slide 1"), s.Previous())
}

func TestSlideshow_FullCycleReturnsToStart(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for start := 0; start < n; start++ {
			s := pages.NewSlideshow(instructions(n))
			for i := 0; i < start; i++ {
				s.Next()
			}

			for i := 0; i < n; i++ {
				s.Next()
			}
			assert.Equal(t, start, s.Index(), "next n=%d start=%d", n, start)

			for i := 0; i < n; i++ {
				s.Previous()
			}
			assert.Equal(t, start, s.Index(), "previous n=%d start=%d", n, start)
		}
	}
}

func TestSlideshow_EmptyInput(t *testing.T) {
	s := pages.NewSlideshow(nil)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, models.Instruction(""), s.Next())
	assert.Equal(t, models.Instruction(""), s.Previous())
	assert.Equal(t, 0, s.Index())
}
