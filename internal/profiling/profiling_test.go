package profiling

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stop := Track("test.op")
			time.Sleep(time.Millisecond)
			stop()
		}()
	}
	wg.Wait()

	if got := Calls("test.op"); got != 8 {
		t.Fatalf("Calls = %d, want 8", got)
	}
	if d := Snapshot()["test.op"]; d < 8*time.Millisecond {
		t.Errorf("total %v shorter than tracked sleeps", d)
	}
	ResetFrame()
	if len(Snapshot()) != 0 {
		t.Error("ResetFrame left entries behind")
	}
}

func TestTopNOrdering(t *testing.T) {
	ResetFrame()
	mu.Lock()
	frameTotals["slow"] = entry{total: 4200 * time.Microsecond, calls: 1}
	frameTotals["fast"] = entry{total: 2 * time.Millisecond, calls: 1}
	frameTotals["tiny"] = entry{total: 100 * time.Microsecond, calls: 1}
	mu.Unlock()

	got := TopN(2)
	if got != "slow:4.2ms, fast:2ms" {
		t.Errorf("TopN(2) = %q", got)
	}
	if !strings.Contains(TopN(10), "tiny:0.1ms") {
		t.Errorf("TopN(10) = %q", TopN(10))
	}
	ResetFrame()
}
