package model

import (
	"encoding/json"
	"fmt"
)

// Weather is the fixed set of conditions a day can be themed with.
type Weather string

const (
	Sunny  Weather = "Sunny"
	Rainy  Weather = "Rainy"
	Cloudy Weather = "Cloudy"
	Snowy  Weather = "Snowy"
)

// AllWeather lists every valid value, in schema order.
var AllWeather = []Weather{Sunny, Rainy, Cloudy, Snowy}

// ParseWeather returns the Weather for s, or an error if s is outside the enum.
// Matching is exact; the producer is asked for these literal values.
func ParseWeather(s string) (Weather, error) {
	for _, w := range AllWeather {
		if string(w) == s {
			return w, nil
		}
	}
	return "", fmt.Errorf("invalid weather %q", s)
}

// Valid reports whether w is one of AllWeather.
func (w Weather) Valid() bool {
	_, err := ParseWeather(string(w))
	return err == nil
}

func (w Weather) String() string { return string(w) }

// UnmarshalJSON rejects values outside the enum.
func (w *Weather) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("weather: %w", err)
	}
	parsed, err := ParseWeather(s)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
