package cmd

import (
	"testing"

	"bucket-sync/core/config"
	"bucket-sync/feature/mirror"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	c.Flags().AddFlagSet(RootCmd.PersistentFlags())
	require.NoError(t, c.ParseFlags(args))
	t.Cleanup(func() {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	})
	return c
}

func TestApplyFlags(t *testing.T) {
	t.Run("OverridesSetFlags", func(t *testing.T) {
		c := newFlagCmd(t, "--root", "/data", "-p", "photos", "--glob", "**/*.jpg", "--min-size", "10", "--dry-run", "-v")
		cfg := &config.Config{Sync: mirror.Config{Root: ".", Target: "old", Name: "keep", MaxSize: 99}}
		cfg.Log.Level = "info"

		applyFlags(c, cfg)

		assert.Equal(t, "/data", cfg.Sync.Root)
		assert.Equal(t, "photos", cfg.Sync.Target)
		assert.Equal(t, "**/*.jpg", cfg.Sync.Glob)
		assert.Equal(t, int64(10), cfg.Sync.MinSize)
		assert.Equal(t, int64(99), cfg.Sync.MaxSize)
		assert.Equal(t, "keep", cfg.Sync.Name)
		assert.True(t, cfg.Sync.DryRun)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("KeepsConfigWhenUnset", func(t *testing.T) {
		c := newFlagCmd(t)
		cfg := &config.Config{Sync: mirror.Config{Target: "from-env", DryRun: true}}
		cfg.Log.Level = "warn"

		applyFlags(c, cfg)

		assert.Equal(t, ".", cfg.Sync.Root)
		assert.Equal(t, "from-env", cfg.Sync.Target)
		assert.True(t, cfg.Sync.DryRun)
		assert.Equal(t, "warn", cfg.Log.Level)
	})
}
