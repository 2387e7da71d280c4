package models

// NOAAKIndexResponse represents one record of the NOAA planetary K-index JSON
// feed (services.swpc.noaa.gov/json/planetary_k_index_1m.json).
type NOAAKIndexResponse struct {
	TimeTag     string  `json:"time_tag"`
	KpIndex     float64 `json:"kp_index"`
	EstimatedKp float64 `json:"estimated_kp"`
}

// NOAAMagnetometerResponse represents one record of the real-time solar wind
// magnetometer feed, source of the total magnetic field reading.
type NOAAMagnetometerResponse struct {
	TimeTag string   `json:"time_tag"`
	BtNT    *float64 `json:"bt"` // total field, nT; null when instrument gaps
}
