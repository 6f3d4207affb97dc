package cmd

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"cinema-room-manager/config"
	"cinema-room-manager/tui"
)

func newTUICmd(opts *options) *cobra.Command {
	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the full-screen seat map",
		Long:  `Pick seats on an interactive seat map. Logs go to --log-file, if set.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			var logOut io.Writer = io.Discard
			if opts.logFile != "" {
				f, err := tea.LogToFile(opts.logFile, appName)
				if err != nil {
					return err
				}
				defer f.Close()
				logOut = f
			}
			logger, err := newLogger(cmd, opts, cfg, logOut)
			if err != nil {
				return err
			}

			room, err := roomFromFlags(cmd, opts, cfg)
			if err != nil {
				return err
			}

			program := tea.NewProgram(
				tui.New(room, logger),
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = program.Run()
			return err
		},
	}
	tuiCmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	return tuiCmd
}
