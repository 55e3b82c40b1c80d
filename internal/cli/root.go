package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/hugopost/hugopost/internal/branding"
	"github.com/hugopost/hugopost/internal/config"
	"github.com/hugopost/hugopost/internal/log"
	"github.com/hugopost/hugopost/internal/notify"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	rootFlag    string
	verboseFlag bool
	quietFlag   bool
)

// settings is populated by the root PersistentPreRunE before any command runs.
var settings *config.Settings

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "Hugo site root inside the vault (default: vault_root setting)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Send notifications to the log instead of the terminal")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds dated post bundles for a Hugo blog kept inside an
Obsidian vault and runs the blog's deployment script.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.InitLogger(cmd.ErrOrStderr())

		config.Load()
		s, err := config.Current()
		if err != nil {
			return err
		}
		if rootFlag != "" {
			s.VaultRoot = rootFlag
		}

		level := s.LogLevel
		if verboseFlag {
			level = "debug"
		}
		if err := log.SetLevel(level); err != nil {
			return err
		}

		settings = s
		return nil
	},
}

// reportedError marks an error the user has already been notified about.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// sinkFor returns the notification sink for a command's output.
func sinkFor(cmd *cobra.Command, component string) notify.Sink {
	if quietFlag {
		return &notify.Log{Entry: log.For(component)}
	}
	return &notify.Console{W: cmd.OutOrStdout()}
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return run(ctx, os.Args[1:])
}

func run(ctx context.Context, args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)

	var rep *reportedError
	if err != nil && !errors.As(err, &rep) {
		(&notify.Console{W: rootCmd.ErrOrStderr()}).Notify(notify.Failure(fmt.Sprintf("Error: %v", err)))
	}
	return err
}
