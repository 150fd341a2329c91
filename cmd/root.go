package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bucket-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Persistent flag values shared by every subcommand.
var (
	rootFlag    string
	targetFlag  string
	yesFlag     bool
	noFlag      bool
	minSizeFlag int64
	maxSizeFlag int64
	nameFlag    string
	globFlag    string
	dryRunFlag  bool
	verboseFlag bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "bucket-sync",
	Short: "Sync a local directory with an S3 bucket",
	Long: `bucket-sync reconciles a local directory tree with an S3-compatible bucket.
Objects are compared by content digest, so renamed or duplicated files are
never transferred twice. Overwrites and deletes require confirmation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// Use the application's standard logger for error reporting
		// Console format with debug config for ISO8601 timestamps
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			msg := "command failed"
			if errors.Is(err, context.Canceled) {
				msg = "command interrupted"
			}
			l.Error(msg, zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&rootFlag, "root", "", "Local directory object keys are relative to (default from SYNC_ROOT or .)")
	flags.StringVarP(&targetFlag, "target-path", "p", "", "Relative sub-path of the root and key prefix to operate on")
	flags.BoolVarP(&yesFlag, "yes", "y", false, "Overwrite changed objects without asking")
	flags.BoolVarP(&noFlag, "no", "n", false, "Never overwrite changed objects")
	flags.Int64Var(&minSizeFlag, "min-size", 0, "Only include remote objects of at least this many bytes")
	flags.Int64Var(&maxSizeFlag, "max-size", 0, "Only include remote objects of at most this many bytes")
	flags.StringVar(&nameFlag, "name", "", "Only include remote keys matching this regular expression")
	flags.StringVar(&globFlag, "glob", "", "Only include remote keys matching this glob (supports **)")
	flags.BoolVar(&dryRunFlag, "dry-run", false, "Plan and log without transferring or deleting")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging and full listings")

	RootCmd.MarkFlagsMutuallyExclusive("yes", "no")
}
