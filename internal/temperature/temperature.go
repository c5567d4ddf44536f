package temperature

import (
	"errors"
	"fmt"
	"strings"
)

type Unit string

const (
	Celsius    Unit = "C"
	Fahrenheit Unit = "F"
	Kelvin     Unit = "K"
)

const absoluteZeroCelsius = -273.15

var (
	ErrInvalidUnit       = errors.New("invalid temperature unit")
	ErrBelowAbsoluteZero = errors.New("temperature is below absolute zero")
)

func (u Unit) Symbol() string {
	if u == Kelvin {
		return "K"
	}
	return "°" + string(u)
}

// ParseUnit accepts a unit symbol or name in any case, like "c", "°F" or
// "kelvin".
func ParseUnit(s string) (Unit, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.TrimPrefix(normalized, "°")
	switch normalized {
	case "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	case "k", "kelvin":
		return Kelvin, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidUnit, s)
}

func CelsiusToFahrenheit(celsius float64) float64 {
	return celsius*9/5 + 32
}

func FahrenheitToCelsius(fahrenheit float64) float64 {
	return (fahrenheit - 32) * 5 / 9
}

func toCelsius(value float64, from Unit) (float64, error) {
	switch from {
	case Celsius:
		return value, nil
	case Fahrenheit:
		return FahrenheitToCelsius(value), nil
	case Kelvin:
		return value + absoluteZeroCelsius, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, from)
}

func fromCelsius(celsius float64, to Unit) (float64, error) {
	switch to {
	case Celsius:
		return celsius, nil
	case Fahrenheit:
		return CelsiusToFahrenheit(celsius), nil
	case Kelvin:
		return celsius - absoluteZeroCelsius, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, to)
}

// Convert converts value between any two units. Values colder than absolute
// zero are rejected whatever unit they are given in.
func Convert(value float64, from, to Unit) (float64, error) {
	celsius, err := toCelsius(value, from)
	if err != nil {
		return 0, err
	}
	if celsius < absoluteZeroCelsius {
		return 0, fmt.Errorf("%w: %s", ErrBelowAbsoluteZero, FormatValue(value, from))
	}
	if from == to {
		return value, nil
	}
	return fromCelsius(celsius, to)
}

// FormatValue renders a value as typed, like "36.6°C".
func FormatValue(value float64, unit Unit) string {
	return fmt.Sprintf("%v%s", value, unit.Symbol())
}

// Format renders a conversion, like "100°C = 212.00°F".
func Format(value float64, from Unit, converted float64, to Unit) string {
	return fmt.Sprintf("%s = %.2f%s", FormatValue(value, from), converted, to.Symbol())
}
