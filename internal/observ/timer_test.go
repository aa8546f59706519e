package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("lint")
	time.Sleep(time.Millisecond)
	tm.End(idx, "3 files")
	tm.Measure("write", func() string { return "" })

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(r.Phases))
	}
	if r.Phases[0].DurationMS <= 0 || r.Phases[0].Note != "3 files" {
		t.Fatalf("unexpected first phase %+v", r.Phases[0])
	}
	if r.TotalMS < r.Phases[0].DurationMS {
		t.Fatalf("total %f below phase %f", r.TotalMS, r.Phases[0].DurationMS)
	}

	s := tm.Summary()
	for _, want := range []string{"timings:", "lint", "// 3 files", "write", "total"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary lacks %q:\n%s", want, s)
		}
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.End(tm.Begin("x"), "")
	tm.Measure("y", func() string { return "" })
	if len(tm.Report().Phases) != 0 {
		t.Fatal("nil timer must record nothing")
	}
}
