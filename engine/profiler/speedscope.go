//go:build profile

package profiler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sync/atomic"
)

const Enabled = true

// Init sizes the trace ring; scopes started before it are only timed.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	evrb.init(capacity)
}

func trace(id int, open bool, at int64) {
	if evrb.ready.Load() {
		evrb.push(evEntry{AtNS: at, FrameID: id, Open: open})
	}
}

// Dump writes the traced scopes to a speedscope file in the temp dir.
func Dump() (string, error) {
	path := filepath.Join(os.TempDir(), "oui.profile.speedscope.json")
	if err := dumpSpeedscopeEvents(evrb.snapshot(), path); err != nil {
		return "", err
	}
	return path, nil
}

// OpenProfilerGraph dumps the trace and starts speedscope on it.
func OpenProfilerGraph() (string, error) {
	path, err := Dump()
	if err != nil {
		return "", err
	}
	cmd := exec.Command("speedscope", path)
	cmd.SysProcAttr = hideWindowAttr()
	if err := cmd.Start(); err != nil {
		log.Printf("profiler: launching speedscope: %v", err)
	}
	return path, nil
}

type evEntry struct {
	AtNS    int64
	FrameID int
	Open    bool
}

// evRing keeps the newest cap events in write order.
type evRing struct {
	ready atomic.Bool
	cap   uint64
	write atomic.Uint64
	evs   []evEntry
}

var evrb evRing

func (r *evRing) init(capacity int) {
	r.cap = uint64(capacity)
	r.evs = make([]evEntry, r.cap)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *evRing) push(e evEntry) {
	i := r.write.Add(1) - 1
	r.evs[i%r.cap] = e
}

func (r *evRing) snapshot() []evEntry {
	n := r.write.Load()
	var from uint64
	if n > r.cap {
		from = n - r.cap
	}
	out := make([]evEntry, 0, n-from)
	for k := from; k < n; k++ {
		out = append(out, r.evs[k%r.cap])
	}
	return out
}

type ssFile struct {
	Schema             string      `json:"$schema"`
	Shared             ssShared    `json:"shared"`
	Profiles           []ssProfile `json:"profiles"`
	ActiveProfileIndex int         `json:"activeProfileIndex"`
	Exporter           string      `json:"exporter,omitempty"`
	Name               string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"`
	At    int64  `json:"at"`
	Frame int    `json:"frame"`
}

// dumpSpeedscopeEvents writes evs as one evented profile in microseconds.
// A close that does not match the innermost open scope is dropped (its open
// fell out of the ring); scopes still open at the end are closed at the last
// timestamp.
func dumpSpeedscopeEvents(evs []evEntry, path string) error {
	if len(evs) == 0 {
		return errors.New("profiler: no events to dump")
	}
	mu.Lock()
	frames := make([]ssFrame, len(names))
	for i, name := range names {
		frames[i] = ssFrame{Name: name}
	}
	mu.Unlock()

	base := evs[0].AtNS
	out := make([]ssEvent, 0, len(evs))
	var open []int
	var last int64
	for _, e := range evs {
		at := max((e.AtNS-base)/1000, last)
		if e.Open {
			open = append(open, e.FrameID)
			out = append(out, ssEvent{Type: "O", At: at, Frame: e.FrameID})
		} else {
			if len(open) == 0 || open[len(open)-1] != e.FrameID {
				continue
			}
			open = open[:len(open)-1]
			out = append(out, ssEvent{Type: "C", At: at, Frame: e.FrameID})
		}
		last = at
	}
	for i := len(open) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: last, Frame: open[i]})
	}
	if len(out) == 0 {
		return errors.New("profiler: no balanced scopes to dump")
	}

	doc := ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "oui frames",
			Unit:     "microseconds",
			EndValue: last,
			Events:   out,
		}},
		Exporter: "oui-profiler",
		Name:     "oui capture",
	}
	data, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	return os.Rename(tmp, path)
}
