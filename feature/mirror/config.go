package mirror

// Config holds the settings of a sync run.
type Config struct {
	// Root is the local directory object keys are relative to.
	Root string `mapstructure:"root" default:"."`
	// Target restricts the run to a sub-path of Root and the matching key prefix.
	Target string `mapstructure:"target" default:""`
	// HashWorkers bounds concurrent local hashing.
	HashWorkers int `mapstructure:"hash_workers" default:"4"`
	// Ignore adds gitignore-style patterns to the defaults.
	Ignore []string `mapstructure:"ignore"`
	// MinSize and MaxSize bound remote object sizes in bytes. Zero disables a bound.
	MinSize int64 `mapstructure:"min_size" default:"0"`
	MaxSize int64 `mapstructure:"max_size" default:"0"`
	// Name keeps only remote keys matching this regular expression.
	Name string `mapstructure:"name" default:""`
	// Glob keeps only remote keys matching this doublestar pattern.
	Glob string `mapstructure:"glob" default:""`
	// DryRun plans without transferring or deleting.
	DryRun bool `mapstructure:"dry_run" default:"false"`
}
