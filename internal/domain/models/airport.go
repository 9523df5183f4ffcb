package models

// Airport is a single catalog record served by GET /api/airports.
type Airport struct {
	Name    string  `json:"name"`
	Code    string  `json:"code"`
	City    string  `json:"city,omitempty"`
	Country string  `json:"country,omitempty"`
	Lat     float64 `json:"lat,omitempty"`
	Lon     float64 `json:"lon,omitempty"`
}
