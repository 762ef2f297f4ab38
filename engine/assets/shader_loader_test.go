package assets

import (
	"strings"
	"testing"
)

func TestLoadBuiltinShaders(t *testing.T) {
	for _, name := range []string{"renderer2d.vert", "renderer2d.frag"} {
		src, err := LoadShader(name)
		if err != nil {
			t.Errorf("LoadShader(%q): %v", name, err)
			continue
		}
		if !strings.HasPrefix(src, "#version 330 core") {
			t.Errorf("%s does not start with a version line", name)
		}
		if !strings.HasSuffix(src, "\x00") {
			t.Errorf("%s is not NUL terminated", name)
		}
	}
	if _, err := LoadShader("missing.vert"); err == nil {
		t.Error("LoadShader(missing.vert) succeeded")
	}
}
