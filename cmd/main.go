package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/pprof"
	"os"
	"syscall"
	"time"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/aukilabs/go-tooling/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/encoding/json"
	"golang.org/x/net/websocket"

	"github.com/voidforge/starcull/featureflag"
	starhttp "github.com/voidforge/starcull/http"
	"github.com/voidforge/starcull/sim"
)

var (
	// The starcull version number. Set at build.
	version = "v0.3.0"

	infoGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name:        "starcull_info",
		Help:        "Starcull information.",
		ConstLabels: prometheus.Labels{"version": version},
	})
)

type config struct {
	Addr          string   `cli:""        env:"STARCULL_ADDR"           help:"Listening address for stats and health endpoints."`
	AdminAddr     string   `cli:""        env:"STARCULL_ADMIN_ADDR"     help:"Admin listening address."`
	Scenario      string   `cli:""        env:"STARCULL_SCENARIO"       help:"Path to a YAML scenario file. Empty runs the built-in scenario."`
	LogLevel      string   `cli:""        env:"STARCULL_LOG_LEVEL"      help:"Log level (debug|info|warning|error)."`
	LogIndent     bool     `cli:""        env:"STARCULL_LOG_INDENT"     help:"Indent logs."`
	LiveInterval  time.Duration `cli:",hidden" env:"STARCULL_LIVE_INTERVAL" help:"The duration between each live stats push."`
	FeatureFlags  []string `cli:",hidden" env:"STARCULL_FEATURE_FLAGS"  help:"Comma separated feature flags"`
	Version       bool     `cli:""        env:"-"                       help:"Show version."`
	Help          bool     `cli:""        env:"-"                       help:"Show help."`
}

func main() {
	conf := config{
		Addr:         ":4100",
		AdminAddr:    ":18290",
		LogLevel:     logs.InfoLevel.String(),
		LiveInterval: time.Second,
	}

	// set the information gauge to 1, useful for SUM query
	infoGauge.Set(1)

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cli.Register().
		Help("Starts the starcull bench server.").
		Options(&conf)
	cli.Load()

	if conf.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	if conf.LogIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}

	errors.Encoder = json.Marshal

	scenario := sim.DefaultScenario()
	if conf.Scenario != "" {
		var err error
		if scenario, err = sim.LoadScenario(conf.Scenario); err != nil {
			logs.Fatal(errors.New("error loading scenario").Wrap(err))
		}
	}

	world := sim.BuildWorld(scenario)
	flags := featureflag.New(conf.FeatureFlags)
	runner := sim.NewRunner(scenario, world, flags)

	readinessCheck := func() bool {
		return runner.LastStats().Frame > 0
	}

	var service http.ServeMux
	service.Handle("/health", starhttp.HandleWithCORS(http.HandlerFunc(starhttp.HandleHealthCheck)))
	service.Handle("/version", starhttp.HandleWithCORS(starhttp.HandleVersion(version)))
	service.Handle("/ready", starhttp.HandleWithCORS(starhttp.HandleReadyCheck(readinessCheck)))

	flags.IfNotSet(featureflag.FlagDisableLiveStats, func() {
		service.Handle("/live", websocket.Server{
			Handler: func(ws *websocket.Conn) {
				defer ws.Close()
				serveLiveStats(ctx, ws, runner, conf.LiveInterval)
			},
		})
	})

	service.Handle("/ping", websocket.Server{
		Handler: func(ws *websocket.Conn) {
			defer ws.Close()
			io.Copy(ws, ws)
		},
	})

	var admin http.ServeMux
	admin.Handle("/metrics", promhttp.Handler())
	admin.HandleFunc("/health", starhttp.HandleHealthCheck)
	admin.HandleFunc("/debug/pprof/", pprof.Index)
	admin.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	admin.HandleFunc("/debug/pprof/profile", pprof.Profile)
	admin.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	admin.HandleFunc("/debug/pprof/trace", pprof.Trace)
	admin.Handle("/debug/pprof/goroutine", pprof.Handler("goroutine"))
	admin.Handle("/debug/pprof/heap", pprof.Handler("heap"))
	admin.Handle("/debug/pprof/threadcreate", pprof.Handler("threadcreate"))
	admin.Handle("/debug/pprof/block", pprof.Handler("block"))
	admin.HandleFunc("/ready", starhttp.HandleReadyCheck(readinessCheck))

	go func() {
		defer cancel()

		if err := runner.Run(ctx); err != nil && err != context.Canceled {
			logs.Warn(errors.New("simulation stopped").Wrap(err))
			return
		}
		logs.WithTag("run_id", runner.RunID()).Info("simulation finished")
	}()

	logs.WithTag("version", version).
		WithTag("log_level", conf.LogLevel).
		WithTag("run_id", runner.RunID()).
		WithTag("entities", world.EntityCount()).
		WithTag("occupied_sections", world.OccupiedSectionCount()).
		Info("starting starcull server")

	starhttp.ListenAndServe(ctx,
		&http.Server{Addr: conf.Addr, Handler: metrics.HTTPHandler(&service,
			starhttp.MetricsPathFormatter)},
		&http.Server{Addr: conf.AdminAddr, Handler: &admin},
	)
}

// serveLiveStats pushes the latest frame stats to the client at a
// fixed interval until the connection drops or the server stops.
func serveLiveStats(ctx context.Context, ws *websocket.Conn, runner *sim.Runner, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			body, err := json.Marshal(runner.LastStats())
			if err != nil {
				logs.Warn(errors.New("encoding frame stats failed").Wrap(err))
				return
			}
			if err := websocket.Message.Send(ws, string(body)); err != nil {
				return
			}
		}
	}
}
