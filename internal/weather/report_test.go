package weather

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func fullResponse(t *testing.T) *CurrentResponse {
	t.Helper()
	var resp CurrentResponse
	if err := json.Unmarshal([]byte(fullResponseBody), &resp); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	return &resp
}

func TestBuildReport_FullResponse(t *testing.T) {
	report, err := BuildReport(fullResponse(t))
	if err != nil {
		t.Fatalf("BuildReport error: %v", err)
	}

	if report.City != "London" || report.Country != "GB" {
		t.Errorf("location = %s, %s; want London, GB", report.City, report.Country)
	}
	if report.TempC != 15.27 {
		t.Errorf("TempC = %v, want 15.27", report.TempC)
	}
	if report.FeelsLikeC != 14.81 {
		t.Errorf("FeelsLikeC = %v, want 14.81", report.FeelsLikeC)
	}
	if report.Humidity != 64 {
		t.Errorf("Humidity = %d, want 64", report.Humidity)
	}
	if report.WindSpeedMPS != 4.12 || report.WindDeg != 250 {
		t.Errorf("wind = %v m/s %v°; want 4.12 m/s 250°", report.WindSpeedMPS, report.WindDeg)
	}
	if report.Conditions != "Clouds" {
		t.Errorf("Conditions = %q, want Clouds", report.Conditions)
	}
	if report.Description != "Scattered clouds" {
		t.Errorf("Description = %q, want capitalized description", report.Description)
	}
	if report.CloudCover != 40 || report.PressureHPa != 1012 {
		t.Errorf("clouds/pressure = %d/%d, want 40/1012", report.CloudCover, report.PressureHPa)
	}
	if report.VisibilityKM == nil || *report.VisibilityKM != 10.0 {
		t.Errorf("VisibilityKM = %v, want 10.0 (meters converted to km)", report.VisibilityKM)
	}
}

func TestBuildReport_MissingFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *CurrentResponse)
		wantField string
	}{
		{name: "missing name", mutate: func(r *CurrentResponse) { r.Name = "" }, wantField: "location name"},
		{name: "missing sys", mutate: func(r *CurrentResponse) { r.Sys = nil }, wantField: "sys"},
		{name: "missing country", mutate: func(r *CurrentResponse) { r.Sys.Country = nil }, wantField: "sys.country"},
		{name: "missing main", mutate: func(r *CurrentResponse) { r.Main = nil }, wantField: "main"},
		{name: "missing temperature", mutate: func(r *CurrentResponse) { r.Main.Temp = nil }, wantField: "main.temp"},
		{name: "missing feels-like", mutate: func(r *CurrentResponse) { r.Main.FeelsLike = nil }, wantField: "main.feels_like"},
		{name: "missing humidity", mutate: func(r *CurrentResponse) { r.Main.Humidity = nil }, wantField: "main.humidity"},
		{name: "missing pressure", mutate: func(r *CurrentResponse) { r.Main.Pressure = nil }, wantField: "main.pressure"},
		{name: "empty weather array", mutate: func(r *CurrentResponse) { r.Weather = nil }, wantField: "weather"},
		{name: "missing conditions main", mutate: func(r *CurrentResponse) { r.Weather[0].Main = nil }, wantField: "weather.main"},
		{name: "missing description", mutate: func(r *CurrentResponse) { r.Weather[0].Description = nil }, wantField: "weather.description"},
		{name: "missing wind", mutate: func(r *CurrentResponse) { r.Wind = nil }, wantField: "wind"},
		{name: "missing wind speed", mutate: func(r *CurrentResponse) { r.Wind.Speed = nil }, wantField: "wind.speed"},
		{name: "missing wind direction", mutate: func(r *CurrentResponse) { r.Wind.Deg = nil }, wantField: "wind.deg"},
		{name: "missing clouds", mutate: func(r *CurrentResponse) { r.Clouds = nil }, wantField: "clouds"},
		{name: "missing cloud cover", mutate: func(r *CurrentResponse) { r.Clouds.All = nil }, wantField: "clouds.all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := fullResponse(t)
			tt.mutate(resp)

			_, err := BuildReport(resp)
			var incompleteErr *IncompleteDataError
			if !errors.As(err, &incompleteErr) {
				t.Fatalf("want IncompleteDataError, got %v", err)
			}
			if incompleteErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", incompleteErr.Field, tt.wantField)
			}
		})
	}
}

// Scalars omitted from the wire inside an otherwise present group must
// surface as errors, never decode to zero values that render as real
// readings (0.0°C, an empty country).
func TestBuildReport_PartialGroupsFromJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name: "main without temp",
			body: `{
				"name": "London",
				"sys": {"country": "GB"},
				"main": {"feels_like": 14.81, "humidity": 64, "pressure": 1012},
				"weather": [{"main": "Clouds", "description": "scattered clouds"}],
				"wind": {"speed": 4.12, "deg": 250},
				"clouds": {"all": 40}
			}`,
			wantField: "main.temp",
		},
		{
			name: "empty sys object",
			body: `{
				"name": "London",
				"sys": {},
				"main": {"temp": 15.27, "feels_like": 14.81, "humidity": 64, "pressure": 1012},
				"weather": [{"main": "Clouds", "description": "scattered clouds"}],
				"wind": {"speed": 4.12, "deg": 250},
				"clouds": {"all": 40}
			}`,
			wantField: "sys.country",
		},
		{
			name: "wind without speed",
			body: `{
				"name": "London",
				"sys": {"country": "GB"},
				"main": {"temp": 15.27, "feels_like": 14.81, "humidity": 64, "pressure": 1012},
				"weather": [{"main": "Clouds", "description": "scattered clouds"}],
				"wind": {"deg": 250},
				"clouds": {"all": 40}
			}`,
			wantField: "wind.speed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp CurrentResponse
			if err := json.Unmarshal([]byte(tt.body), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			report, err := BuildReport(&resp)
			var incompleteErr *IncompleteDataError
			if !errors.As(err, &incompleteErr) {
				t.Fatalf("want IncompleteDataError, got report %+v, err %v", report, err)
			}
			if incompleteErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", incompleteErr.Field, tt.wantField)
			}
		})
	}
}

func TestBuildReport_VisibilityOptional(t *testing.T) {
	resp := fullResponse(t)
	resp.Visibility = nil

	report, err := BuildReport(resp)
	if err != nil {
		t.Fatalf("BuildReport error: %v", err)
	}
	if report.VisibilityKM != nil {
		t.Errorf("VisibilityKM = %v, want nil", report.VisibilityKM)
	}
}

func TestReport_Render(t *testing.T) {
	report, err := BuildReport(fullResponse(t))
	if err != nil {
		t.Fatalf("BuildReport error: %v", err)
	}

	out := report.String()

	wantLines := []string{
		"Weather Forecast for London, GB",
		"Current: 15.3°C", // one decimal place
		"Feels like: 14.8°C",
		"Clouds: Scattered clouds",
		"64%",
		"Speed: 4.1 m/s",
		"Direction: 250°",
		"Pressure: 1012 hPa",
		"Cloud Cover: 40%",
		"Visibility: 10.0 km",
	}
	for _, want := range wantLines {
		if !strings.Contains(out, want) {
			t.Errorf("rendered report missing %q:\n%s", want, out)
		}
	}
}

func TestReport_Render_NoVisibility(t *testing.T) {
	resp := fullResponse(t)
	resp.Visibility = nil

	report, err := BuildReport(resp)
	if err != nil {
		t.Fatalf("BuildReport error: %v", err)
	}

	if out := report.String(); strings.Contains(out, "Visibility") {
		t.Errorf("report should omit visibility line when absent:\n%s", out)
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"scattered clouds", "Scattered clouds"},
		{"Rain", "Rain"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := capitalize(tt.in); got != tt.want {
			t.Errorf("capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
