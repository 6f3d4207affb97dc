package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cinema-room-manager/config"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change saved defaults",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the saved defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "file: %s\n", path)
			fmt.Fprintf(out, "rows: %d\n", cfg.Rows)
			fmt.Fprintf(out, "seats: %d\n", cfg.SeatsPerRow)
			fmt.Fprintf(out, "style: %s\n", cfg.Style)
			fmt.Fprintf(out, "log-level: %s\n", cfg.LogLevel)
			return nil
		},
	}

	var set config.Config
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Save default room dimensions and output style",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("rows") {
				cfg.Rows = set.Rows
			}
			if flags.Changed("seats") {
				cfg.SeatsPerRow = set.SeatsPerRow
			}
			if flags.Changed("style") {
				cfg.Style = set.Style
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = set.LogLevel
			}
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "saved")
			return nil
		},
	}
	setCmd.Flags().IntVar(&set.Rows, "rows", 0, "default number of rows (0 to always ask)")
	setCmd.Flags().IntVar(&set.SeatsPerRow, "seats", 0, "default seats in each row (0 to always ask)")
	setCmd.Flags().StringVar(&set.Style, "style", "", "default output style: plain or table")
	setCmd.Flags().StringVar(&set.LogLevel, "log-level", "", "default log level")

	configCmd.AddCommand(showCmd, setCmd)
	return configCmd
}
