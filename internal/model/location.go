package model

// Location is a named geo-point a round can be played on.
// Immutable once loaded into the pool.
type Location struct {
	Name     string   `json:"name"`
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
	Heading  *float64 `json:"heading,omitempty"`
	Indoor   bool     `json:"indoor,omitempty"`
	Category string   `json:"category,omitempty"`
	// Year is the ground-truth imagery year, when known.
	Year *int `json:"year,omitempty"`
}

// Coordinates is a bare lat/lng pair, used for guesses and result payloads.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
