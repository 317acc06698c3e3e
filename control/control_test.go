// File: control/control_test.go
// Author: momentics <momentics@gmail.com>

package control

import "testing"

func TestConfigStoreSnapshotAndInt(t *testing.T) {
	cs := NewConfigStore()
	cs.SetConfig(map[string]any{"pool.chunk": 1024, "name": "rawsock"})

	snap := cs.GetSnapshot()
	if snap["pool.chunk"] != 1024 || snap["name"] != "rawsock" {
		t.Fatalf("snapshot = %v", snap)
	}
	snap["pool.chunk"] = 1
	if cs.GetInt("pool.chunk", 0) != 1024 {
		t.Error("snapshot mutation leaked into store")
	}
	if cs.GetInt("missing", 7) != 7 {
		t.Error("default not returned for missing key")
	}
	if cs.GetInt("name", 7) != 7 {
		t.Error("default not returned for non-int value")
	}
}

func TestConfigStoreReloadListener(t *testing.T) {
	cs := NewConfigStore()
	fired := 0
	cs.OnReload(func() { fired++ })

	cs.SetConfig(map[string]any{"k": 1})
	cs.SetConfig(map[string]any{"k": 2})
	if fired != 2 {
		t.Fatalf("listener fired %d times, want 2", fired)
	}
}

func TestMetricsCounters(t *testing.T) {
	mr := NewMetricsRegistry()
	mr.Inc("ops")
	mr.Inc("ops")
	if mr.Counter("ops") != 2 {
		t.Fatalf("Counter = %d, want 2", mr.Counter("ops"))
	}
	mr.Set("gauge", 42)
	snap := mr.GetSnapshot()
	if snap["ops"] != int64(2) || snap["gauge"] != 42 {
		t.Fatalf("snapshot = %v", snap)
	}
	if mr.Counter("gauge") != 0 {
		t.Error("non-counter value read as counter")
	}
}
