package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/railtoy/track"
	"github.com/railtoy/track/internal/config"
	"github.com/railtoy/track/internal/metrics"
	"github.com/railtoy/track/internal/sim"
)

// NewRootCmd returns the trainsim command. Flags default to the values in
// cfg and write back into it.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:   "trainsim",
		Short: "Run the toy train along its track",
		Long: `trainsim drives the train along the straight or the diagonal track and logs
its position and heading as it goes. It stops once the train arrives at the
end of the track or after the maximum number of ticks.

Settings are read from TRAINSIM_* environment variables and a .env file in
the working directory; flags take precedence.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				cfg.LogLevel = "debug"
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}
			defer logger.Sync()
			if debug {
				track.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})))
				defer track.SetLogger(nil)
			}
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, logger)
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&cfg.Route, "route", "r", cfg.Route, "track to run on: straight or diagonal")
	f.BoolVar(&debug, "debug", false, "log at debug level, including route construction")

	rf := root.Flags()
	rf.StringVarP(&cfg.Motion, "motion", "m", cfg.Motion, "motion model: linear or spring")
	rf.Float64VarP(&cfg.Throttle, "throttle", "t", cfg.Throttle, "throttle position in [0, 1]")
	rf.DurationVar(&cfg.Tick, "tick", cfg.Tick, "simulated time per step")
	rf.IntVar(&cfg.MaxTicks, "max-ticks", cfg.MaxTicks, "stop after this many steps")
	rf.BoolVar(&cfg.Realtime, "realtime", cfg.Realtime, "step on a wall-clock ticker and show progress")
	rf.IntVar(&cfg.ReportEvery, "report-every", cfg.ReportEvery, "log a frame every n steps (0: only the last)")
	rf.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "serve Prometheus metrics on this address while running")

	root.AddCommand(newRouteCmd(cfg))
	return root
}

// Execute runs the root command with the configuration from the
// environment. It is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := NewRootCmd(config.Load())
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "trainsim:", err)
		stop()
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		lvl,
	)
	return zap.New(core), nil
}

func buildRoute(cfg *config.Config) (track.Route, error) {
	kind, err := track.ParseRouteKind(cfg.Route)
	if err != nil {
		return track.Route{}, err
	}
	return track.BuildRoute(kind, track.DefaultLayout())
}

func run(ctx context.Context, out, progressOut io.Writer, cfg *config.Config, logger *zap.Logger) error {
	route, err := buildRoute(cfg)
	if err != nil {
		return err
	}
	motion, err := cfg.MotionModel()
	if err != nil {
		return err
	}
	state := track.SetThrottle(track.NewState(route), cfg.Throttle)

	var prog *progressDisplay
	if cfg.Realtime {
		prog = newProgressDisplay(progressOut, route.TotalLength())
		prog.Start()
	}

	runner := &sim.Runner{
		Motion:      motion,
		Consist:     track.DefaultConsist,
		Tick:        cfg.Tick,
		MaxTicks:    cfg.MaxTicks,
		ReportEvery: cfg.ReportEvery,
		OnFrame: func(f sim.Frame) {
			logger.Info("frame",
				zap.Int("tick", f.Tick),
				zap.Duration("elapsed", f.Elapsed),
				zap.Float64("distance", f.Distance),
				zap.Float64("speed", f.Speed),
				zap.Float64("x", f.Position.X),
				zap.Float64("y", f.Position.Y),
				zap.Float64("heading", f.Heading),
			)
			if prog != nil {
				prog.Update(f.Distance, f.Speed)
			}
		},
	}

	logger.Info("starting",
		zap.String("route", cfg.Route),
		zap.Float64("length", route.TotalLength()),
		zap.String("motion", cfg.Motion),
		zap.Float64("throttle", cfg.Throttle),
		zap.Bool("realtime", cfg.Realtime),
	)

	g, gctx := errgroup.WithContext(ctx)
	runCtx, stopMetrics := context.WithCancel(gctx)
	defer stopMetrics()

	if cfg.MetricsAddr != "" {
		g.Go(func() error {
			logger.Info("serving metrics", zap.String("addr", cfg.MetricsAddr))
			return metrics.Serve(runCtx, cfg.MetricsAddr)
		})
	}

	var res sim.Result
	g.Go(func() error {
		defer stopMetrics()
		var err error
		if cfg.Realtime {
			res, err = runner.RunRealtime(runCtx, state)
		} else {
			res, err = runner.Run(runCtx, state)
		}
		return err
	})

	err = g.Wait()
	if prog != nil {
		prog.Stop(res.Arrived)
	}
	if err != nil {
		return err
	}

	logger.Info("finished", zap.Int("ticks", res.Ticks), zap.Bool("arrived", res.Arrived))
	renderSummary(out, cfg, res)
	return nil
}
