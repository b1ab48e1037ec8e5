package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScenarioValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Scenario)
		ok     bool
	}{
		{
			name:   "default scenario is valid",
			mutate: func(*Scenario) {},
			ok:     true,
		},
		{
			name:   "zero world extent",
			mutate: func(s *Scenario) { s.WorldExtent = 0 },
		},
		{
			name:   "negative section length",
			mutate: func(s *Scenario) { s.SectionLength = -1 },
		},
		{
			name:   "no detail levels",
			mutate: func(s *Scenario) { s.DetailLevels = 0 },
		},
		{
			name:   "zero draw radius",
			mutate: func(s *Scenario) { s.DrawRadius = 0 },
		},
		{
			name:   "zero lookahead",
			mutate: func(s *Scenario) { s.Lookahead = 0 },
		},
		{
			name:   "negative frames",
			mutate: func(s *Scenario) { s.Frames = -1 },
		},
		{
			name:   "negative cluster count",
			mutate: func(s *Scenario) { s.Clusters[0].Count = -1 },
		},
		{
			name:   "negative cluster radius",
			mutate: func(s *Scenario) { s.Clusters[0].Radius = -1 },
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			scn := DefaultScenario()
			test.mutate(&scn)

			err := scn.Validate()
			if test.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestLoadScenario(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenario.yml")
		body := `
world_extent: 512
section_length: 16
detail_levels: 3
draw_radius: 128
lookahead: 160
frames: 100
seed: 9
clusters:
  - center: [256, 256, 256]
    radius: 64
    count: 500
`
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		scn, err := LoadScenario(path)
		require.NoError(t, err)
		require.Equal(t, float32(512), scn.WorldExtent)
		require.Equal(t, float32(16), scn.SectionLength)
		require.Equal(t, 3, scn.DetailLevels)
		require.Len(t, scn.Clusters, 1)
		require.Equal(t, 500, scn.Clusters[0].Count)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yml"))
		require.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenario.yml")
		require.NoError(t, os.WriteFile(path, []byte("world_extent: [not a number"), 0o644))

		_, err := LoadScenario(path)
		require.Error(t, err)
	})

	t.Run("invalid scenario", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scenario.yml")
		require.NoError(t, os.WriteFile(path, []byte("world_extent: -5"), 0o644))

		_, err := LoadScenario(path)
		require.Error(t, err)
	})
}
