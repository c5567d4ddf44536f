package commands

import (
	"fmt"
	"os"
	"strconv"
	"toolbox/internal/interactive"
	"toolbox/internal/temperature"

	"github.com/spf13/cobra"
)

func init() {
	tempCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(tempCmd)
}

var tempCmd = &cobra.Command{
	Use:   "temp",
	Short: "Runs the interactive temperature converter.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		prompt := interactive.NewPrompt(os.Stdin, os.Stdout)
		return interactive.RunTemperature(cmd.Context(), prompt)
	},
}

var convertCmd = &cobra.Command{
	Use:     "convert <value> <from> <to>",
	Short:   "Converts a temperature between Celsius (C), Fahrenheit (F) and Kelvin (K).",
	Example: "toolbox temp convert 100 C F",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid temperature %q: %w", args[0], err)
		}
		from, err := temperature.ParseUnit(args[1])
		if err != nil {
			return err
		}
		to, err := temperature.ParseUnit(args[2])
		if err != nil {
			return err
		}

		converted, err := temperature.Convert(value, from, to)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), temperature.Format(value, from, converted, to))
		return nil
	},
}
