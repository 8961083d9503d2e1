package pages

import "safeguard/internal/models"

// Slideshow steps through instructions, wrapping at both ends.
type Slideshow struct {
	instructions []models.Instruction
	index        int
}

// NewSlideshow starts at the first instruction. An empty list is replaced
// by a single empty slide so indexing stays defined.
func NewSlideshow(instructions []models.Instruction) *Slideshow {
	if len(instructions) == 0 {
		instructions = []models.Instruction{""}
	}
	return &Slideshow{instructions: instructions}
}

func (s *Slideshow) Current() models.Instruction {
	return s.instructions[s.index]
}

func (s *Slideshow) Index() int {
	return s.index
}

func (s *Slideshow) Len() int {
	return len(s.instructions)
}

// Next advances one slide, looping to the start after the last.
func (s *Slideshow) Next() models.Instruction {
	s.index = (s.index + 1) % len(s.instructions)
	return s.Current()
}

// Previous goes back one slide, looping to the end before the first.
func (s *Slideshow) Previous() models.Instruction {
	n := len(s.instructions)
	s.index = (s.index - 1 + n) % n
	return s.Current()
}
