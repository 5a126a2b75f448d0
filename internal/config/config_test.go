package config_test

import (
	"testing"

	"github.com/cch137/kvdb/internal/config"
	"github.com/stretchr/testify/require"
)

func Test_Default_Has_DbJson_Path(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.Equal(t, config.DefaultPersistenceFilepath, cfg.PersistenceFilepath)
	require.Zero(t, cfg.HashSeed)
}

func Test_Parse_Overrides_Defaults(t *testing.T) {
	t.Parallel()

	cfg, rest, err := config.Parse("kvdb", []string{
		"--hash-seed", "42",
		"--persistence-filepath", "/tmp/snap.json",
		"extra-arg",
	})
	require.NoError(t, err)
	require.Equal(t, uint32(42), cfg.HashSeed)
	require.Equal(t, "/tmp/snap.json", cfg.PersistenceFilepath)
	require.Equal(t, []string{"extra-arg"}, rest)
}

func Test_Resolve_Leaves_Nonzero_Seed_Untouched(t *testing.T) {
	t.Parallel()

	cfg := config.Config{HashSeed: 7}
	require.Equal(t, uint32(7), cfg.Resolve().HashSeed)
}

func Test_Resolve_Derives_Seed_When_Zero(t *testing.T) {
	t.Parallel()

	cfg := config.Config{HashSeed: 0}
	require.NotZero(t, cfg.Resolve().HashSeed)
}
