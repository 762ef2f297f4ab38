package core

import (
	"reflect"
	"testing"
)

type recordLayer struct {
	name    string
	handles bool
	log     *[]string
}

func (l *recordLayer) OnAttach(*Engine)          { *l.log = append(*l.log, l.name+".attach") }
func (l *recordLayer) OnDetach(*Engine)          { *l.log = append(*l.log, l.name+".detach") }
func (l *recordLayer) OnUpdate(*Engine, float64) { *l.log = append(*l.log, l.name+".update") }
func (l *recordLayer) OnRender(*Engine, float64) { *l.log = append(*l.log, l.name+".render") }
func (l *recordLayer) OnEvent(*Engine, Event) bool {
	*l.log = append(*l.log, l.name+".event")
	return l.handles
}

func TestLayerOrder(t *testing.T) {
	tests := []struct {
		name        string
		topHandles  bool
		wantEvents  []string
		wantHandled bool
	}{
		{"top handles", true, []string{"top.event"}, true},
		{"falls through", false, []string{"top.event", "bottom.event"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log []string
			e := &Engine{}
			e.PushLayer(&recordLayer{name: "bottom", log: &log})
			e.PushLayer(&recordLayer{name: "top", handles: tt.topHandles, log: &log})
			log = nil

			handled := e.Layers.Dispatch(e, EventResize{W: 1, H: 1})
			if handled != tt.wantHandled {
				t.Errorf("Dispatch = %t, want %t", handled, tt.wantHandled)
			}
			if !reflect.DeepEqual(log, tt.wantEvents) {
				t.Errorf("events = %v, want %v", log, tt.wantEvents)
			}
		})
	}
}

func TestPushPopLayers(t *testing.T) {
	var log []string
	e := &Engine{}
	e.PushLayer(&recordLayer{name: "a", log: &log})
	e.PushLayer(&recordLayer{name: "b", log: &log})
	e.Layers.ForEach(func(l Layer) { l.OnRender(e, 0) })
	for e.Layers.Len() > 0 {
		e.PopLayer()
	}
	e.PopLayer()

	want := []string{"a.attach", "b.attach", "a.render", "b.render", "b.detach", "a.detach"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}
