package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserve(t *testing.T) {
	before := testutil.ToFloat64(TicksTotal)
	Observe(120, 35, 0.016)
	if got := testutil.ToFloat64(TicksTotal) - before; got != 1 {
		t.Errorf("ticks grew by %g, want 1", got)
	}
	if got := testutil.ToFloat64(TrainDistance); got != 120 {
		t.Errorf("got distance %g, want 120", got)
	}
	if got := testutil.ToFloat64(TrainSpeed); got != 35 {
		t.Errorf("got speed %g, want 35", got)
	}
}

func TestServe(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := l.Addr().String()
	l.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, addr) }()

	RouteLength.Set(700)
	var body string
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := http.Get("http://" + addr + "/metrics")
		if err != nil {
			time.Sleep(10 * time.Millisecond)
			continue
		}
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		body = string(b)
		break
	}
	if !strings.Contains(body, "trainsim_route_length 700") {
		t.Errorf("metrics output lacks route length:\n%s", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve didn't stop")
	}
}
