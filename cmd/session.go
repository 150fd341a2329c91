package cmd

import (
	"fmt"
	"os"

	"bucket-sync/core/config"
	"bucket-sync/core/executor"
	"bucket-sync/core/logger"
	"bucket-sync/core/storage"
	"bucket-sync/feature/mirror"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// session bundles what every subcommand needs.
type session struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *mirror.Service
}

// newSession loads configuration, applies flag overrides and wires the service.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlags(cmd, cfg)

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	logg = logger.WithRunID(logg, uuid.NewString())

	policy, err := executor.PolicyFromFlags(yesFlag, noFlag)
	if err != nil {
		return nil, err
	}
	if policy == executor.PolicyInteractive && !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		logg.Warn("Standard input is not a terminal, prompts will read piped input")
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	prompter := executor.NewPrompter(os.Stdin, os.Stdout)
	exec := executor.New(store, cfg.Storage.Bucket, prompter, os.Stdout, logg, executor.Options{
		Policy: policy,
		DryRun: cfg.Sync.DryRun,
	})

	logg.Debug("Runtime ready",
		zap.String("driver", cfg.Storage.Driver),
		zap.String("bucket", cfg.Storage.Bucket),
		zap.String("root", cfg.Sync.Root),
		zap.String("target", cfg.Sync.Target),
		zap.String("policy", policy.String()),
	)

	return &session{
		cfg:     cfg,
		logger:  logg,
		service: mirror.NewService(store, cfg.Storage.Bucket, cfg.Sync, exec, logg),
	}, nil
}

// applyFlags overrides configuration values with flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Sync.Root = rootFlag
	}
	if flags.Changed("target-path") {
		cfg.Sync.Target = targetFlag
	}
	if flags.Changed("min-size") {
		cfg.Sync.MinSize = minSizeFlag
	}
	if flags.Changed("max-size") {
		cfg.Sync.MaxSize = maxSizeFlag
	}
	if flags.Changed("name") {
		cfg.Sync.Name = nameFlag
	}
	if flags.Changed("glob") {
		cfg.Sync.Glob = globFlag
	}
	if flags.Changed("dry-run") {
		cfg.Sync.DryRun = dryRunFlag
	}
	if verboseFlag {
		cfg.Log.Level = "debug"
	}
	if cfg.Sync.Root == "" {
		cfg.Sync.Root = "."
	}
}
