package models

// OpenWeatherResponse represents the OpenWeather current weather JSON response.
// Only the fields the dashboard consumes are mapped.
type OpenWeatherResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"` // m/s
	} `json:"wind"`
	Clouds struct {
		All float64 `json:"all"` // percent
	} `json:"clouds"`
	Visibility float64 `json:"visibility"` // meters, capped at 10000 by the API
	Weather    []struct {
		ID          int    `json:"id"` // condition code, 2xx-7xx
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Sys struct {
		Sunrise int64 `json:"sunrise"` // unix UTC
		Sunset  int64 `json:"sunset"`  // unix UTC
	} `json:"sys"`
	Dt int64 `json:"dt"`
}

// GeocodingResponse represents one entry of the OpenWeather direct geocoding
// response, used to resolve a city name into coordinates.
type GeocodingResponse struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Country   string  `json:"country"`
}
