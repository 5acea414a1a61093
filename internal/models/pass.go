package models

// Coordinates represents a geographic position as decimal latitude and longitude.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Pass represents a single predicted overpass window, starting at Risetime
// (Unix epoch seconds) and lasting Duration seconds.
type Pass struct {
	Risetime int64 `json:"risetime"`
	Duration int   `json:"duration"`
}
