package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/collide/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) State() core.GameState                { return core.GameState{} }
func (g *stubGame) Bodies() []core.Body                  { return nil }
func (g *stubGame) Fingerprint() uint64                  { return 0 }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("stub-a should be registered")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("expected stub-a, got %s", g.ID())
	}

	list := List()
	idxA, idxB := -1, -1
	for i, info := range list {
		switch info.ID {
		case "stub-a":
			idxA = i
			if info.Title != "Stub stub-a" {
				t.Errorf("unexpected title %q", info.Title)
			}
		case "stub-b":
			idxB = i
		}
	}
	if idxA < 0 || idxB < 0 || idxA > idxB {
		t.Errorf("List should be sorted by ID, got %v", list)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does-not-exist")
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("expected ErrUnknown, got %v", err)
	}
	if Exists("does-not-exist") {
		t.Error("Exists should be false for unknown IDs")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}
