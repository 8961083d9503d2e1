package services

// DefaultEmergencyNumber is shown when the country is unknown or unmapped.
const DefaultEmergencyNumber = "112"

var emergencyNumbers = map[string]string{
	"India":          "112",
	"United States":  "911",
	"United Kingdom": "999",
	"Australia":      "000",
	"Canada":         "911",
}

// EmergencyNumber returns the general emergency number for a country name
// as reported by the geolocation service.
func EmergencyNumber(country string) string {
	if number, ok := emergencyNumbers[country]; ok {
		return number
	}
	return DefaultEmergencyNumber
}
