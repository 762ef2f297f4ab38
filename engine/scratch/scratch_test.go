package scratch

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestSprintf(t *testing.T) {
	tests := []struct {
		format string
		args   []any
		want   string
	}{
		{"plain", nil, "plain"},
		{"%s: %d", []any{"tag", 12}, "tag: 12"},
		{"%.2f ms", []any{float32(1.5)}, "1.50 ms"},
		{"%f", []any{0.25}, "0.250"},
		{"100%%", nil, "100%"},
		{"%t/%t", []any{true, false}, "true/false"},
		{"%x", []any{1}, "%x"},
		{"%d and %d", []any{1}, "1 and "},
	}
	b := New(8)
	for _, tt := range tests {
		if got := b.Sprintf(tt.format, tt.args...); got != tt.want {
			t.Errorf("Sprintf(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		label string
		v     float32
		want  string
	}{
		{"Item 4.1.0", 0.25, "Item 4.1.0: 25%"},
		{"", 0.756, "76%"},
		{"x", 1, "x: 100%"},
	}
	b := New(0)
	for _, tt := range tests {
		if got := b.Percent(tt.label, tt.v); got != tt.want {
			t.Errorf("Percent(%q, %v) = %q, want %q", tt.label, tt.v, got, tt.want)
		}
	}
}

func TestViewsSurviveGrowth(t *testing.T) {
	var logs bytes.Buffer
	b := New(4)
	b.Logger = log.New(&logs, "", 0)

	first := b.Sprintf("%s", "abc")
	second := b.Sprintf("%s", strings.Repeat("z", 64))
	if first != "abc" || len(second) != 64 {
		t.Errorf("views = %q, %q", first, second)
	}
	if b.Cap() < 67 {
		t.Errorf("Cap() = %d, want room for 67 bytes", b.Cap())
	}
	if !strings.Contains(logs.String(), "scratch: grew") {
		t.Errorf("log = %q, want a growth message", logs.String())
	}

	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Len() after Reset = %d", b.Len())
	}
}

func TestChain(t *testing.T) {
	b := New(16)
	m := b.Mark()
	b.S("a").C('=').I(-3).Pad(2, '.').R('é').F(2, 1)
	if got := b.View(m); got != "a=-3..é2.0" {
		t.Errorf("View = %q", got)
	}
	if b.View(b.Mark()) != "" {
		t.Error("empty view not empty")
	}
}
