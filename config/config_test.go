package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("explicit file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hwg.yaml")
		yaml := `
server:
  addr: ":9090"
redis:
  addr: "redis:6379"
  db: 2
grouping:
  num_groups: 6
  min_group_size: 3
  max_group_size: 4
files:
  output: out.xlsx
`
		require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, ":9090", cfg.Server.Addr)
		require.Equal(t, "redis:6379", cfg.Redis.Addr)
		require.Equal(t, 2, cfg.Redis.DB)
		require.Equal(t, 6, cfg.Grouping.NumGroups)
		require.Equal(t, "out.xlsx", cfg.Files.Output)
		// untouched keys keep their defaults
		require.Equal(t, int64(16), cfg.Server.MaxUploadMB)
		require.Equal(t, "sheets/TARoster.txt", cfg.Files.TARoster)
		require.Equal(t, float64(14), cfg.Workbook.HeaderFontSize)
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

		require.Error(t, err)
	})

	t.Run("environment wins over file", func(t *testing.T) {
		t.Setenv("HWG_NUM_GROUPS", "10")
		t.Setenv("HWG_REDIS_ADDR", "10.0.0.1:6379")
		path := filepath.Join(t.TempDir(), "hwg.yaml")
		require.NoError(t, os.WriteFile(path, []byte("grouping:\n  num_groups: 6\n"), 0o644))

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 10, cfg.Grouping.NumGroups)
		require.Equal(t, "10.0.0.1:6379", cfg.Redis.Addr)
	})

	t.Run("bad integer in environment", func(t *testing.T) {
		t.Setenv("HWG_REDIS_DB", "eight")
		path := filepath.Join(t.TempDir(), "hwg.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

		_, err := Load(path)

		require.ErrorContains(t, err, "HWG_REDIS_DB")
	})

	t.Run("invalid grouping options", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hwg.yaml")
		require.NoError(t, os.WriteFile(path, []byte("grouping:\n  num_groups: 0\n"), 0o644))

		_, err := Load(path)

		require.ErrorContains(t, err, "grouping config")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hwg.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [\n"), 0o644))

		_, err := Load(path)

		require.ErrorContains(t, err, "parse")
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.Equal(t, 8, cfg.Grouping.NumGroups)
	require.Equal(t, 3, cfg.Grouping.MinGroupSize)
	require.Equal(t, 4, cfg.Grouping.MaxGroupSize)
	require.Equal(t, "HomeworkGroups.xlsx", cfg.Files.Output)
}
