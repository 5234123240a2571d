package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/boulder-tui/boulder/internal/core"
)

type stubGame struct {
	opts core.GameOptions
}

func (g *stubGame) ID() string                           { return "stub" }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_stub", "Stub", func(opts core.GameOptions) (Game, error) {
		return &stubGame{opts: opts}, nil
	})

	if !Exists("test_stub") {
		t.Fatal("registered game not found")
	}

	found := false
	for _, info := range List() {
		if info.ID == "test_stub" {
			found = info.Title == "Stub"
		}
	}
	if !found {
		t.Error("List() does not report the game with its title")
	}

	g, err := Create("test_stub", core.GameOptions{StartLevel: 3})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.(*stubGame).opts.StartLevel != 3 {
		t.Error("options not passed to the factory")
	}
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("no_such_game", core.GameOptions{}); err == nil {
		t.Error("expected error for unknown game")
	}

	boom := errors.New("boom")
	Register("test_failing", "Failing", func(core.GameOptions) (Game, error) {
		return nil, boom
	})
	_, err := Create("test_failing", core.GameOptions{})
	if !errors.Is(err, boom) {
		t.Errorf("factory error not wrapped: %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(core.GameOptions) (Game, error) { return &stubGame{}, nil }
	Register("test_dup", "Dup", f)

	defer func() {
		r := recover()
		if r == nil || !strings.Contains(r.(string), "already registered") {
			t.Errorf("expected duplicate panic, got %v", r)
		}
	}()
	Register("test_dup", "Dup", f)
}
