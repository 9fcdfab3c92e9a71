package models

// FeedReport is the envelope returned by the ADS-B military endpoint.
type FeedReport struct {
	Now      float64       `json:"now"`
	Total    int           `json:"total"`
	Aircraft []RawAircraft `json:"ac"`
}

// RawAircraft is one provider record as it arrives off the wire.
// Nearly every field is optional; absence is not an error.
type RawAircraft struct {
	Hex          string   `json:"hex"`
	Flight       *string  `json:"flight,omitempty"`
	TypeCode     *string  `json:"t,omitempty"`
	Registration *string  `json:"r,omitempty"`
	Owner        *string  `json:"owner,omitempty"`
	Squawk       *string  `json:"squawk,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	Lon          *float64 `json:"lon,omitempty"`
	GroundSpeed  *float64 `json:"gs,omitempty"`
	Track        *float64 `json:"track,omitempty"`
	Seen         *float64 `json:"seen,omitempty"`

	// Number in flight, the string "ground" on the apron.
	BaroAltitude interface{} `json:"alt_baro,omitempty"`
}
