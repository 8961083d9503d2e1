package models

import (
	"strconv"
)

// Alert is a single disaster alert description.
type Alert string

// Instruction is one slide of safety instructions.
type Instruction string

// QuizQuestion is a multiple-choice question; Answer indexes Options.
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer"`
}

// Valid reports whether the question has options and its answer points at one.
func (q QuizQuestion) Valid() bool {
	return len(q.Options) > 0 && q.Answer >= 0 && q.Answer < len(q.Options)
}

// ResourceCategory groups resource links under a heading, in file order.
type ResourceCategory struct {
	Name  string
	Links []string
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// String renders the coordinates as "lat,lon" using the shortest exact
// decimal form of each component.
func (c Coordinates) String() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

// Location is a geolocation fix with the place it resolved to.
type Location struct {
	Coordinates
	Country string
	City    string
}
