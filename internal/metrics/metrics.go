package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	TrainSpeed = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "trainsim_speed",
		Help: "Current train speed in units per second",
	})

	TrainDistance = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "trainsim_distance",
		Help: "Distance traveled along the current route",
	})

	RouteLength = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "trainsim_route_length",
		Help: "Total length of the current route",
	})

	TicksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trainsim_ticks_total",
		Help: "Total number of simulation steps taken",
	})

	TickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "trainsim_tick_seconds",
		Help:    "Simulated time covered by a single step",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 10), // 1ms to ~0.5s
	})
)

// Observe records the state after one simulation step of dt seconds.
func Observe(distance, speed, dt float64) {
	TicksTotal.Inc()
	TickDuration.Observe(dt)
	TrainDistance.Set(distance)
	TrainSpeed.Set(speed)
}

// Serve exposes /metrics on addr until ctx is done.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
