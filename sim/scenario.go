// Package sim hosts a synthetic world harness used to exercise and
// size the culling core: a scenario description, an in-memory
// occupancy index built from scattered entities, and a frame-loop
// runner driving the logic and render passes.
package sim

import (
	"os"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Cluster scatters Count entity positions uniformly inside a cube of
// the given half extent around Center.
type Cluster struct {
	Center [3]float32 `yaml:"center"`
	Radius float32    `yaml:"radius"`
	Count  int        `yaml:"count"`
}

// Scenario describes a synthetic world and the camera that tours it.
type Scenario struct {
	// WorldExtent is the world edge length; the world occupies
	// [0, WorldExtent] on every axis.
	WorldExtent float32 `yaml:"world_extent"`

	// SectionLength is the grid cell edge length at detail level 0.
	SectionLength float32 `yaml:"section_length"`

	// DetailLevels is the number of multi-resolution levels the
	// occupancy index reports.
	DetailLevels int `yaml:"detail_levels"`

	// DrawRadius sizes the per-frame query volumes.
	DrawRadius float32 `yaml:"draw_radius"`

	// Lookahead is the logic culling distance. It is usually a bit
	// larger than DrawRadius so entity logic runs before a region
	// becomes visually exposed.
	Lookahead float32 `yaml:"lookahead"`

	// Frames is the number of frames to run. Zero runs until the
	// context is canceled.
	Frames int `yaml:"frames"`

	// FrameIntervalMS paces the frame loop. Zero runs frames back to
	// back, which is the benchmarking mode.
	FrameIntervalMS int `yaml:"frame_interval_ms"`

	Seed     int64     `yaml:"seed"`
	Clusters []Cluster `yaml:"clusters"`
}

// DefaultScenario is a mid-size asteroid-field style world: a few
// dense clusters in a mostly empty volume.
func DefaultScenario() Scenario {
	return Scenario{
		WorldExtent:   4096,
		SectionLength: 32,
		DetailLevels:  4,
		DrawRadius:    512,
		Lookahead:     640,
		Frames:        0,
		Seed:          42,
		Clusters: []Cluster{
			{Center: [3]float32{1024, 2048, 1024}, Radius: 512, Count: 4000},
			{Center: [3]float32{3072, 2048, 3072}, Radius: 768, Count: 6000},
			{Center: [3]float32{2048, 1024, 2048}, Radius: 256, Count: 1500},
		},
	}
}

// LoadScenario reads and validates a YAML scenario file.
func LoadScenario(path string) (Scenario, error) {
	var scn Scenario

	body, err := os.ReadFile(path)
	if err != nil {
		return scn, errors.New("reading scenario file failed").
			WithTag("path", path).
			Wrap(err)
	}

	if err := yaml.Unmarshal(body, &scn); err != nil {
		return scn, errors.New("parsing scenario file failed").
			WithTag("path", path).
			Wrap(err)
	}

	if err := scn.Validate(); err != nil {
		return scn, errors.New("invalid scenario").
			WithTag("path", path).
			Wrap(err)
	}
	return scn, nil
}

func (s Scenario) Validate() error {
	if s.WorldExtent <= 0 {
		return errors.New("world extent must be positive").
			WithTag("world_extent", s.WorldExtent)
	}
	if s.SectionLength <= 0 {
		return errors.New("section length must be positive").
			WithTag("section_length", s.SectionLength)
	}
	if s.DetailLevels < 1 {
		return errors.New("at least one detail level is required").
			WithTag("detail_levels", s.DetailLevels)
	}
	if s.DrawRadius <= 0 {
		return errors.New("draw radius must be positive").
			WithTag("draw_radius", s.DrawRadius)
	}
	if s.Lookahead <= 0 {
		return errors.New("lookahead must be positive").
			WithTag("lookahead", s.Lookahead)
	}
	if s.Frames < 0 {
		return errors.New("frame count cannot be negative").
			WithTag("frames", s.Frames)
	}
	for i, c := range s.Clusters {
		if c.Count < 0 {
			return errors.New("cluster count cannot be negative").
				WithTag("cluster", i).
				WithTag("count", c.Count)
		}
		if c.Radius < 0 {
			return errors.New("cluster radius cannot be negative").
				WithTag("cluster", i).
				WithTag("radius", c.Radius)
		}
	}
	return nil
}
