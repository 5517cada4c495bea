// Package model holds the JSON shapes of the HTTP API.
package model

type AnalyzeRequest struct {
	Ratios       []string `json:"ratios"`
	ConcertPitch float64  `json:"concert_pitch,omitempty"`
}

// Harmonicity collects every supported metric for one ratio. Barlow is
// a pointer because the unison scores infinite and JSON has no Inf.
type Harmonicity struct {
	Barlow           *float64 `json:"barlow,omitempty"`
	SimplifiedBarlow float64  `json:"simplified_barlow"`
	Euler            int      `json:"euler"`
	Tenney           float64  `json:"tenney"`
	Vogel            int      `json:"vogel"`
	Wilson           int      `json:"wilson"`
}

type Pythagorean struct {
	ClosestInterval string  `json:"closest_interval"`
	PitchName       string  `json:"pitch_name"`
	CentDeviation   float64 `json:"cent_deviation"`
}

type RatioAnalysis struct {
	Ratio       string      `json:"ratio"`
	Exponents   []int       `json:"exponents"`
	Cents       float64     `json:"cents"`
	Frequency   float64     `json:"frequency"`
	Octave      int         `json:"octave"`
	Otonal      bool        `json:"otonal"`
	Harmonicity Harmonicity `json:"harmonicity"`
	Pythagorean Pythagorean `json:"pythagorean"`
}

type AnalyzeResponse struct {
	RequestId string          `json:"request_id"`
	Results   []RatioAnalysis `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
