// Package weather fetches current conditions and a short forecast from the
// Open-Meteo API for the dashboard's weather line.
package weather

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// forecastDays covers today plus five days ahead.
const forecastDays = 6

var (
	ErrAPIRequest      = errors.New("weather request failed")
	ErrInvalidResponse = errors.New("invalid weather response")
)

// Day is one forecast day.
type Day struct {
	Date time.Time
	Min  float64
	Max  float64
	Code int
}

// Report holds current conditions plus the forecast, today first.
type Report struct {
	Temperature float64
	Code        int
	Unit        string
	Days        []Day
}

// Client talks to the Open-Meteo forecast endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a weather client with a request timeout.
func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewClientWithBaseURL creates a client against a custom endpoint (tests).
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// apiResponse mirrors the Open-Meteo response shape.
type apiResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
	Daily struct {
		Time             []string  `json:"time"`
		WeatherCode      []int     `json:"weathercode"`
		Temperature2mMax []float64 `json:"temperature_2m_max"`
		Temperature2mMin []float64 `json:"temperature_2m_min"`
	} `json:"daily"`
}

// Fetch returns the current weather and forecast for the given coordinates.
// unit is "celsius" or "fahrenheit".
func (c *Client) Fetch(latitude, longitude float64, unit string) (*Report, error) {
	if unit != "fahrenheit" {
		unit = "celsius"
	}

	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%.4f", latitude))
	params.Set("longitude", fmt.Sprintf("%.4f", longitude))
	params.Set("current_weather", "true")
	params.Set("daily", "weathercode,temperature_2m_max,temperature_2m_min")
	params.Set("temperature_unit", unit)
	params.Set("timezone", "auto")
	params.Set("forecast_days", fmt.Sprintf("%d", forecastDays))

	resp, err := c.httpClient.Get(c.baseURL + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAPIRequest, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrAPIRequest, resp.StatusCode, string(body))
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	daily := apiResp.Daily
	if len(daily.Time) != len(daily.WeatherCode) ||
		len(daily.Time) != len(daily.Temperature2mMax) ||
		len(daily.Time) != len(daily.Temperature2mMin) {
		return nil, ErrInvalidResponse
	}

	report := &Report{
		Temperature: apiResp.CurrentWeather.Temperature,
		Code:        apiResp.CurrentWeather.WeatherCode,
		Unit:        unit,
	}

	for i := range daily.Time {
		date, err := time.Parse("2006-01-02", daily.Time[i])
		if err != nil {
			continue
		}
		report.Days = append(report.Days, Day{
			Date: date,
			Min:  daily.Temperature2mMin[i],
			Max:  daily.Temperature2mMax[i],
			Code: daily.WeatherCode[i],
		})
	}

	return report, nil
}
