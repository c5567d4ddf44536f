package interactive

import (
	"context"
	"strconv"
	"toolbox/internal/temperature"
)

// RunTemperature runs the temperature converter menu until the user exits or
// the input ends.
func RunTemperature(ctx context.Context, prompt *Prompt) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		prompt.Println("\n=== Temperature Converter ===")
		prompt.Println("1. Celsius to Fahrenheit")
		prompt.Println("2. Fahrenheit to Celsius")
		prompt.Println("3. Exit")

		choice, err := prompt.Ask("Enter your choice (1-3)")
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case "1":
			err = convert(prompt, "Enter temperature in Celsius", temperature.Celsius, temperature.Fahrenheit)
		case "2":
			err = convert(prompt, "Enter temperature in Fahrenheit", temperature.Fahrenheit, temperature.Celsius)
		case "3":
			prompt.Println("👋 Exiting Temperature Converter. Goodbye!")
			return nil
		default:
			prompt.Println("⚠️ Invalid choice, please try again.")
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

func convert(prompt *Prompt, query string, from, to temperature.Unit) error {
	answer, err := prompt.Ask(query)
	if err != nil {
		return err
	}
	value, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		prompt.Println("⚠️ Invalid input. Please enter a number.")
		return nil
	}

	converted, err := temperature.Convert(value, from, to)
	if err != nil {
		prompt.Println("⚠️", err)
		return nil
	}
	prompt.Println("🌡️", temperature.Format(value, from, converted, to))
	return nil
}
