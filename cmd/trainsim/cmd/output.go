package cmd

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/railtoy/track"
	"github.com/railtoy/track/internal/config"
	"github.com/railtoy/track/internal/sim"
)

type progressDisplay struct {
	pw      progress.Writer
	tracker *progress.Tracker
}

func newProgressDisplay(w io.Writer, total float64) *progressDisplay {
	pw := progress.NewWriter()
	pw.SetOutputWriter(w)
	pw.SetAutoStop(false)
	pw.SetTrackerLength(40)
	pw.SetMessageLength(24)
	pw.SetStyle(progress.StyleDefault)
	pw.SetTrackerPosition(progress.PositionRight)
	pw.SetUpdateFrequency(100 * time.Millisecond)
	pw.Style().Options.PercentFormat = "%4.1f%%"
	pw.Style().Visibility.ETA = false
	pw.Style().Visibility.Value = true
	pw.Style().Visibility.Percentage = true

	return &progressDisplay{
		pw: pw,
		tracker: &progress.Tracker{
			Message: "Departing",
			Total:   int64(math.Ceil(total)),
			Units:   progress.UnitsDefault,
		},
	}
}

func (pd *progressDisplay) Start() {
	pd.pw.AppendTracker(pd.tracker)
	go pd.pw.Render()
}

func (pd *progressDisplay) Update(distance, speed float64) {
	pd.tracker.SetValue(int64(distance))
	pd.tracker.UpdateMessage(fmt.Sprintf("%5.1f units/s", speed))
}

func (pd *progressDisplay) Stop(arrived bool) {
	if arrived {
		pd.tracker.UpdateMessage("Arrived")
		pd.tracker.MarkAsDone()
	} else {
		pd.tracker.MarkAsErrored()
	}
	// Let the renderer draw the final state before stopping it.
	time.Sleep(150 * time.Millisecond)
	pd.pw.Stop()
	for pd.pw.IsRenderInProgress() {
		time.Sleep(10 * time.Millisecond)
	}
}

func renderSummary(w io.Writer, cfg *config.Config, res sim.Result) {
	s := res.Final
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("trainsim")
	t.AppendHeader(table.Row{"Setting", "Value"})
	t.AppendRows([]table.Row{
		{"Route", cfg.Route},
		{"Motion", cfg.Motion},
		{"Throttle", fmt.Sprintf("%.2f", cfg.Throttle)},
		{"Route length", fmt.Sprintf("%.2f", s.Route.TotalLength())},
	})
	t.AppendSeparator()
	pos := s.Position()
	t.AppendRows([]table.Row{
		{"Ticks", res.Ticks},
		{"Simulated time", res.Elapsed.Round(time.Millisecond)},
		{"Distance", fmt.Sprintf("%.2f", s.Distance)},
		{"Speed", fmt.Sprintf("%.2f", s.Speed)},
		{"Position", fmt.Sprintf("(%.2f, %.2f)", pos.X, pos.Y)},
		{"Heading", fmt.Sprintf("%.1f°", s.Heading()*180/math.Pi)},
		{"Speedometer", fmt.Sprintf("%.1f°", track.NeedleAngle(s.Speed, track.MaxSpeed)*180/math.Pi)},
		{"Arrived", res.Arrived},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
}

func renderRoute(w io.Writer, r track.Route) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Kind", "Start", "End", "Length"})
	for i, seg := range r.Segments() {
		t.AppendRow(table.Row{i, seg.Kind, seg.Start(), seg.End(), fmt.Sprintf("%.3f", seg.Length)})
	}
	t.AppendFooter(table.Row{"", "", "", "Total", fmt.Sprintf("%.3f", r.TotalLength())})
	t.SetStyle(table.StyleLight)
	t.Render()
	fmt.Fprintf(w, "bounds %v\n", r.BoundingBox())
}
