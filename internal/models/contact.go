package models

// Contact holds emergency numbers for a country. Only Country is required.
type Contact struct {
	ID        int64
	Country   string
	Police    string
	Fire      string
	Ambulance string
}
