package weather

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// BuildReport validates a provider response and converts it into a Report.
// Every field except visibility must be present; a missing field is an
// IncompleteDataError rather than a silently defaulted value.
func BuildReport(resp *CurrentResponse) (*Report, error) {
	switch {
	case resp.Name == "":
		return nil, &IncompleteDataError{Field: "location name"}
	case resp.Sys == nil:
		return nil, &IncompleteDataError{Field: "sys"}
	case resp.Sys.Country == nil:
		return nil, &IncompleteDataError{Field: "sys.country"}
	case resp.Main == nil:
		return nil, &IncompleteDataError{Field: "main"}
	case resp.Main.Temp == nil:
		return nil, &IncompleteDataError{Field: "main.temp"}
	case resp.Main.FeelsLike == nil:
		return nil, &IncompleteDataError{Field: "main.feels_like"}
	case resp.Main.Humidity == nil:
		return nil, &IncompleteDataError{Field: "main.humidity"}
	case resp.Main.Pressure == nil:
		return nil, &IncompleteDataError{Field: "main.pressure"}
	case len(resp.Weather) == 0:
		return nil, &IncompleteDataError{Field: "weather"}
	case resp.Weather[0].Main == nil:
		return nil, &IncompleteDataError{Field: "weather.main"}
	case resp.Weather[0].Description == nil:
		return nil, &IncompleteDataError{Field: "weather.description"}
	case resp.Wind == nil:
		return nil, &IncompleteDataError{Field: "wind"}
	case resp.Wind.Speed == nil:
		return nil, &IncompleteDataError{Field: "wind.speed"}
	case resp.Wind.Deg == nil:
		return nil, &IncompleteDataError{Field: "wind.deg"}
	case resp.Clouds == nil:
		return nil, &IncompleteDataError{Field: "clouds"}
	case resp.Clouds.All == nil:
		return nil, &IncompleteDataError{Field: "clouds.all"}
	}

	report := &Report{
		City:         resp.Name,
		Country:      *resp.Sys.Country,
		TempC:        *resp.Main.Temp,
		FeelsLikeC:   *resp.Main.FeelsLike,
		Humidity:     *resp.Main.Humidity,
		WindSpeedMPS: *resp.Wind.Speed,
		WindDeg:      *resp.Wind.Deg,
		Conditions:   *resp.Weather[0].Main,
		Description:  capitalize(*resp.Weather[0].Description),
		CloudCover:   *resp.Clouds.All,
		PressureHPa:  *resp.Main.Pressure,
	}

	if resp.Visibility != nil {
		km := float64(*resp.Visibility) / 1000.0
		report.VisibilityKM = &km
	}

	return report, nil
}

const reportRule = "============================================================"

// Render writes the report in the fixed human-readable layout:
// header, temperature, conditions, humidity, wind, additional info.
func (r *Report) Render(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, reportRule)
	fmt.Fprintf(w, "Weather Forecast for %s, %s\n", r.City, r.Country)
	fmt.Fprintln(w, reportRule)

	fmt.Fprintln(w, "\nTemperature:")
	fmt.Fprintf(w, "   Current: %.1f°C\n", r.TempC)
	fmt.Fprintf(w, "   Feels like: %.1f°C\n", r.FeelsLikeC)

	fmt.Fprintln(w, "\nConditions:")
	fmt.Fprintf(w, "   %s: %s\n", r.Conditions, r.Description)

	fmt.Fprintln(w, "\nHumidity:")
	fmt.Fprintf(w, "   %d%%\n", r.Humidity)

	fmt.Fprintln(w, "\nWind:")
	fmt.Fprintf(w, "   Speed: %.1f m/s\n", r.WindSpeedMPS)
	fmt.Fprintf(w, "   Direction: %.0f°\n", r.WindDeg)

	fmt.Fprintln(w, "\nAdditional Info:")
	fmt.Fprintf(w, "   Pressure: %d hPa\n", r.PressureHPa)
	fmt.Fprintf(w, "   Cloud Cover: %d%%\n", r.CloudCover)
	if r.VisibilityKM != nil {
		fmt.Fprintf(w, "   Visibility: %.1f km\n", *r.VisibilityKM)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, reportRule)
}

// capitalize upper-cases the first rune of a description
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// String renders the report to a string
func (r *Report) String() string {
	var b strings.Builder
	r.Render(&b)
	return b.String()
}
