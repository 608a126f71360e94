package weather

// CurrentResponse represents the provider's "current weather by city name"
// JSON response. Every required group and every required scalar inside a
// group is a pointer so that an omitted field is distinguishable from a
// real zero value (0°C, wind from due north, 0% cloud cover).
type CurrentResponse struct {
	Name       string             `json:"name"`
	Sys        *SysData           `json:"sys"`
	Main       *MainData          `json:"main"`
	Weather    []WeatherCondition `json:"weather"`
	Wind       *WindData          `json:"wind"`
	Clouds     *CloudsData        `json:"clouds"`
	Visibility *int               `json:"visibility"` // meters, absent in some responses
}

// SysData carries the country code of the resolved place
type SysData struct {
	Country *string `json:"country"`
}

// MainData carries temperature, humidity and pressure readings
type MainData struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	Humidity  *int     `json:"humidity"`
	Pressure  *int     `json:"pressure"`
}

// WeatherCondition is one entry of the provider's weather[] array
type WeatherCondition struct {
	Main        *string `json:"main"`
	Description *string `json:"description"`
}

// WindData carries wind speed and direction
type WindData struct {
	Speed *float64 `json:"speed"`
	Deg   *float64 `json:"deg"`
}

// CloudsData carries cloud cover percentage
type CloudsData struct {
	All *int `json:"all"`
}

// Report is the decoded, user-facing weather summary for one city at
// request time. Built fresh per invocation and discarded after printing.
type Report struct {
	City         string
	Country      string
	TempC        float64
	FeelsLikeC   float64
	Humidity     int
	WindSpeedMPS float64
	WindDeg      float64
	Conditions   string
	Description  string
	CloudCover   int
	PressureHPa  int
	VisibilityKM *float64
}

// ProviderConfig represents the weather provider configuration
type ProviderConfig struct {
	APIBaseURL            string `toml:"api_base_url"`            // Base URL for the current-weather endpoint
	RequestTimeoutSeconds int    `toml:"request_timeout_seconds"` // HTTP request timeout in seconds
	Units                 string `toml:"units"`                   // Measurement units: "metric", "imperial" or "standard"
}

// DefaultProviderConfig returns the default provider configuration
func DefaultProviderConfig() ProviderConfig {
	return ProviderConfig{
		APIBaseURL:            "https://api.openweathermap.org/data/2.5/weather",
		RequestTimeoutSeconds: 10,
		Units:                 "metric",
	}
}
