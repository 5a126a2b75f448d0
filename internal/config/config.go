// Package config holds the process-level knobs for kvdb: the hash seed
// used by the store's hash table and the path of the persistence snapshot.
package config

import (
	"time"

	flag "github.com/spf13/pflag"
)

// DefaultPersistenceFilepath is used when no --persistence-filepath flag is given.
const DefaultPersistenceFilepath = "db.json"

// Config is the flat set of knobs described in spec §6.
type Config struct {
	// HashSeed seeds the store's MurmurHash2. Zero means "derive one from
	// the clock at startup" (see Resolve).
	HashSeed uint32

	// PersistenceFilepath is where SAVE writes and START reads the
	// snapshot document.
	PersistenceFilepath string
}

// Default returns the zero-value configuration with defaults applied.
func Default() Config {
	return Config{
		HashSeed:            0,
		PersistenceFilepath: DefaultPersistenceFilepath,
	}
}

// Parse reads flags out of args (normally os.Args[1:]) into a Config
// seeded with Default(). Unknown flags are an error; positional arguments
// are returned unchanged for the caller to interpret.
func Parse(name string, args []string) (Config, []string, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Uint32Var(&cfg.HashSeed, "hash-seed", cfg.HashSeed, "hash table seed (0 = derive from clock)")
	fs.StringVar(&cfg.PersistenceFilepath, "persistence-filepath", cfg.PersistenceFilepath, "path of the JSON snapshot file")

	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	return cfg, fs.Args(), nil
}

// Resolve fills in a random HashSeed when the configured one is zero,
// per spec §4.1 ("the seed defaults to an OS-time-derived random value
// captured at start").
func (c Config) Resolve() Config {
	if c.HashSeed == 0 {
		c.HashSeed = uint32(time.Now().UnixNano()) | 1
	}

	return c
}
