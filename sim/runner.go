package sim

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/voidforge/starcull/cull"
	"github.com/voidforge/starcull/featureflag"
	"github.com/voidforge/starcull/sector"
)

// orbit speed in radians per frame.
const orbitStep = 0.005

// logSummaryEvery is the number of frames between frame summary logs.
const logSummaryEvery = 300

// FrameStats is the snapshot of the most recent frame, served on the
// live stats feed.
type FrameStats struct {
	RunID         string        `json:"run_id"`
	Frame         int           `json:"frame"`
	LogicVisible  int           `json:"logic_visible"`
	RenderVisible int           `json:"render_visible"`
	FrameDuration time.Duration `json:"frame_duration_ns"`
}

// Runner drives the per-frame culling flow over a synthetic world: a
// camera orbits the world center, and each frame runs a proximity pass
// for entity logic and a frustum pass for rendering.
type Runner struct {
	scenario Scenario
	world    *World
	flags    featureflag.FeatureFlag
	runID    string

	// One finder per pass so each keeps its own adaptive
	// single-thread/parallel curve.
	logic  *sector.Finder
	render *sector.Finder

	mutex sync.RWMutex
	last  FrameStats
}

func NewRunner(scn Scenario, world *World, flags featureflag.FeatureFlag) *Runner {
	logic := sector.NewFinder(scn.SectionLength)
	render := sector.NewFinder(scn.SectionLength)

	flags.IfSet(featureflag.FlagDisableParallelCull, func() {
		logic.SingleThreaded = true
		render.SingleThreaded = true
	})

	return &Runner{
		scenario: scn,
		world:    world,
		flags:    flags,
		runID:    uuid.NewString(),
		logic:    logic,
		render:   render,
	}
}

func (r *Runner) RunID() string {
	return r.runID
}

// LastStats returns the snapshot of the most recently completed frame.
func (r *Runner) LastStats() FrameStats {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.last
}

// Run executes the frame loop until the scenario's frame budget is
// spent or ctx is canceled.
func (r *Runner) Run(ctx context.Context) error {
	entityCount.Set(float64(r.world.EntityCount()))

	var tick <-chan time.Time
	if r.scenario.FrameIntervalMS > 0 {
		ticker := time.NewTicker(time.Duration(r.scenario.FrameIntervalMS) * time.Millisecond)
		defer ticker.Stop()
		tick = ticker.C
	}

	for frame := 0; r.scenario.Frames == 0 || frame < r.scenario.Frames; frame++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return ctx.Err()
		}

		r.step(frame)
	}
	return nil
}

func (r *Runner) step(frame int) {
	start := time.Now()
	eye, dir := r.cameraAt(frame)

	stats := FrameStats{RunID: r.runID, Frame: frame}

	r.flags.IfNotSet(featureflag.FlagDisableLogicCull, func() {
		prox := cull.NewProximity(eye, r.scenario.Lookahead)
		res := r.logic.FindAround(prox, r.world, eye, r.scenario.DrawRadius)
		stats.LogicVisible = res.Len()
	})

	r.flags.IfNotSet(featureflag.FlagDisableRenderCull, func() {
		frustum := cull.NewFrustum(r.viewProj(eye, dir))
		res := r.render.FindAhead(frustum, r.world, eye, dir, r.scenario.DrawRadius)
		stats.RenderVisible = res.Len()
	})

	stats.FrameDuration = time.Since(start)

	frameDuration.Observe(stats.FrameDuration.Seconds())
	logicVisibleSections.Set(float64(stats.LogicVisible))
	renderVisibleSections.Set(float64(stats.RenderVisible))

	r.mutex.Lock()
	r.last = stats
	r.mutex.Unlock()

	if frame%logSummaryEvery == 0 {
		logs.WithTag("run_id", r.runID).
			WithTag("frame", frame).
			WithTag("logic_visible", stats.LogicVisible).
			WithTag("render_visible", stats.RenderVisible).
			WithTag("frame_duration", stats.FrameDuration.String()).
			Debug("frame summary")
	}
}

// cameraAt orbits the world center at a third of the world extent,
// looking inward.
func (r *Runner) cameraAt(frame int) (eye, dir mgl32.Vec3) {
	half := r.scenario.WorldExtent / 2
	center := mgl32.Vec3{half, half, half}

	angle := float64(frame) * orbitStep
	orbit := r.scenario.WorldExtent / 3

	eye = center.Add(mgl32.Vec3{
		float32(math.Cos(angle)) * orbit,
		0,
		float32(math.Sin(angle)) * orbit,
	})
	dir = center.Sub(eye).Normalize()
	return eye, dir
}

func (r *Runner) viewProj(eye, dir mgl32.Vec3) mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(70), 16.0/9.0, 0.1, r.scenario.DrawRadius*2)
	view := mgl32.LookAtV(eye, eye.Add(dir), mgl32.Vec3{0, 1, 0})
	return proj.Mul4(view)
}
