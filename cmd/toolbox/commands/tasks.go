package commands

import (
	"os"
	"toolbox/internal/components/chrono"
	"toolbox/internal/interactive"
	"toolbox/internal/tasks"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tasksCmd)
}

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Runs the interactive task manager, tasks only live as long as the session.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := getApp(cmd)

		manager, err := tasks.NewManager(cmd.Context(), chrono.NewStandardImpl(nil), a.tel)
		if err != nil {
			return err
		}
		defer manager.Close()

		prompt := interactive.NewPrompt(os.Stdin, os.Stdout)
		return interactive.RunTasks(cmd.Context(), prompt, manager)
	},
}
