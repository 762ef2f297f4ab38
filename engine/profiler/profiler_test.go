//go:build profile

package profiler

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestDumpBalancesScopes(t *testing.T) {
	Init(64)
	frame := Start("frame")
	layout := Start("ui.layout")
	layout()
	Start("paint") // left open
	frame()

	path := filepath.Join(t.TempDir(), "p.json")
	if err := dumpSpeedscopeEvents(evrb.snapshot(), path); err != nil {
		t.Fatalf("dump: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc ssFile
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(doc.Profiles) != 1 {
		t.Fatalf("profiles = %d, want 1", len(doc.Profiles))
	}

	depth := 0
	for _, e := range doc.Profiles[0].Events {
		switch e.Type {
		case "O":
			depth++
		case "C":
			depth--
		}
		if depth < 0 {
			t.Fatal("close before open")
		}
	}
	if depth != 0 {
		t.Errorf("unbalanced events, depth %d", depth)
	}
}
