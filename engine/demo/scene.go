package demo

import (
	"github.com/hubastard/oui/engine/ui"
	"github.com/hubastard/oui/engine/uifile"
	"github.com/hubastard/oui/engine/widget"
)

// Scene rebuilds the demo tree every frame, from code or from a document
// bound to the same data.
type Scene struct {
	Data *AppData
	// built instead of Build when set
	Doc *uifile.Document
	b   *widget.Builder
}

func NewScene(b *widget.Builder, doc *uifile.Document) *Scene {
	return &Scene{Data: NewAppData(), Doc: doc, b: b}
}

func (s *Scene) Context() *widget.Context { return s.b.Context() }

// Build rebuilds and lays out the tree.
func (s *Scene) Build() error {
	if s.Doc == nil {
		Build(s.b, s.Data)
		return nil
	}
	_, err := s.Doc.Build(s.b, s.Data.Bindings(s.b))
	return err
}

// Frame feeds the input set on the context to the tree of the last frame,
// then rebuilds it so the result shows. Contract violations are returned as
// *ui.ContractError.
func (s *Scene) Frame() error {
	var err error
	if cerr := ui.Catch(func() {
		if s.Context().Count() > 0 {
			s.Context().Process()
		}
		err = s.Build()
	}); cerr != nil {
		return cerr
	}
	return err
}
