package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cinema-room-manager/cinema"
	"cinema-room-manager/config"
	"cinema-room-manager/console"
)

const appName = "cinema"

type options struct {
	rows     int
	seats    int
	style    string
	prompt   bool
	logLevel string
	logFile  string
}

// Execute runs the command tree and exits with status 2 on bad room
// dimensions and 1 on any other failure.
func Execute(version string, commit string) {
	root := newRootCmd(version, commit)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, cinema.ErrInvalidDimensions) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func newRootCmd(version string, commit string) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Cinema room manager",
		Long:  `Sell tickets for a single cinema room and keep track of the income, all from the terminal.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&opts.rows, "rows", 0, "number of rows in the room")
	flags.IntVar(&opts.seats, "seats", 0, "number of seats in each row")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&opts.style, "style", "", "output style: plain or table")
	rootCmd.Flags().BoolVar(&opts.prompt, "prompt", false, "use interactive prompts instead of plain lines")

	rootCmd.AddCommand(newTUICmd(opts), newConfigCmd(), newVersionCmd(version, commit))
	return rootCmd
}

func newVersionCmd(version string, commit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of the cinema CLI",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s", appName, version)
			if commit != "none" && commit != "" {
				fmt.Fprintf(out, " (%s)", commit)
			}
			fmt.Fprintln(out)
		},
	}
}

func runConsole(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("style") {
		cfg.Style = opts.style
	}

	logger, err := newLogger(cmd, opts, cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	room, err := roomFromFlags(cmd, opts, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var reader console.LineReader = console.NewScanner(cmd.InOrStdin(), out)
	if opts.prompt {
		reader = console.NewPrompter(nil, nil)
	}
	session := console.NewSession(reader, out, console.NewRenderer(cfg.Style), logger)

	if room == nil {
		room, err = session.Setup()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return session.Run(room)
}

// roomFromFlags builds the room from --rows/--seats, or from the saved
// defaults when neither flag is given. It returns a nil room when the
// dimensions must be asked for.
func roomFromFlags(cmd *cobra.Command, opts *options, cfg config.Config) (*cinema.Room, error) {
	rowsSet := cmd.Flags().Changed("rows")
	seatsSet := cmd.Flags().Changed("seats")
	switch {
	case rowsSet || seatsSet:
		rows, seats := cfg.Rows, cfg.SeatsPerRow
		if rowsSet {
			rows = opts.rows
		}
		if seatsSet {
			seats = opts.seats
		}
		return cinema.NewRoom(rows, seats)
	case cfg.HasDimensions():
		return cinema.NewRoom(cfg.Rows, cfg.SeatsPerRow)
	default:
		return nil, nil
	}
}

func newLogger(cmd *cobra.Command, opts *options, cfg config.Config, out io.Writer) (*logrus.Entry, error) {
	levelText := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		levelText = opts.logLevel
	}
	level, err := logrus.ParseLevel(levelText)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return logrus.NewEntry(logger).WithField("app", appName), nil
}
