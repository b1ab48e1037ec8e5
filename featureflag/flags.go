package featureflag

type Flag string

const (
	FlagDisableLogicCull    Flag = "DISABLE_LOGIC_CULL"
	FlagDisableRenderCull   Flag = "DISABLE_RENDER_CULL"
	FlagDisableParallelCull Flag = "DISABLE_PARALLEL_CULL"
	FlagDisableLiveStats    Flag = "DISABLE_LIVE_STATS"
)
