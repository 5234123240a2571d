package boulder

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	platformcore "github.com/boulder-tui/boulder/internal/core"
	"github.com/boulder-tui/boulder/internal/games/boulder/core"
	"github.com/boulder-tui/boulder/internal/registry"
)

func testOptions() platformcore.GameOptions {
	return platformcore.GameOptions{
		ConfigPath: filepath.Join("testdata", "boulder.yaml"),
		LevelsPath: filepath.Join("testdata", "levels.yaml"),
	}
}

func newTestGame(t *testing.T, opts platformcore.GameOptions) *Game {
	t.Helper()
	g, err := New(opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func press(actions ...platformcore.Action) platformcore.InputFrame {
	in := platformcore.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// run steps the game n times without input and collects the event kinds.
func run(g *Game, n int) []string {
	var kinds []string
	for i := 0; i < n; i++ {
		for _, e := range g.Step(press()).Events {
			kinds = append(kinds, e.Kind)
		}
	}
	return kinds
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("%q is not registered", GameID)
	}
	g, err := registry.Create(GameID, testOptions())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != GameID || g.Title() != Title {
		t.Errorf("got %s / %s", g.ID(), g.Title())
	}
}

func TestNewErrors(t *testing.T) {
	opts := testOptions()
	opts.StartLevel = 5
	if _, err := New(opts); !errors.Is(err, core.ErrOutOfRange) {
		t.Errorf("bad start level: %v", err)
	}

	opts = testOptions()
	opts.Difficulty = "brutal"
	if _, err := New(opts); err == nil {
		t.Error("expected error for unknown difficulty")
	}

	opts = testOptions()
	opts.LevelsPath = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := New(opts); err == nil {
		t.Error("expected error for missing level pack")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]platformcore.InputFrame, 300)
	for i := range inputs {
		inputs[i] = platformcore.NewInputFrame()
		switch {
		case i%7 == 0:
			inputs[i].Set(platformcore.ActionRight)
		case i%11 == 0:
			inputs[i].Set(platformcore.ActionDown)
		case i%13 == 0:
			inputs[i].Set(platformcore.ActionGhost)
		}
	}

	play := func() Snapshot {
		g := newTestGame(t, testOptions())
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1, snap2 := play(), play()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Board != snap2.Board {
		t.Errorf("boards differ:\n%s\n---\n%s", snap1.Board, snap2.Board)
	}
}

func TestFirstStepReportsLevelStart(t *testing.T) {
	g := newTestGame(t, testOptions())
	res := g.Step(press())
	if len(res.Events) == 0 || res.Events[0].Kind != "level_started" {
		t.Errorf("events = %+v", res.Events)
	}
}

func TestCollectDiamondRingsBell(t *testing.T) {
	g := newTestGame(t, testOptions())

	res := g.Step(press(platformcore.ActionRight))
	if !res.Bell {
		t.Error("collecting a diamond should ring the bell")
	}
	if res.State.Score != core.DiamondPoints || g.sim.Diamonds != 1 {
		t.Errorf("score %d diamonds %d", res.State.Score, g.sim.Diamonds)
	}
	if g.sim.Hero != core.FacingRight {
		t.Errorf("hero state = %v", g.sim.Hero)
	}
}

func TestSoundToggleMutesBell(t *testing.T) {
	g := newTestGame(t, testOptions())

	g.Step(press(platformcore.ActionSoundToggle))
	res := g.Step(press(platformcore.ActionRight))
	if res.Bell {
		t.Error("bell rang with sound off")
	}
	if !strings.HasSuffix(g.sim.StatusLine(), "M:0") {
		t.Errorf("status line = %q", g.sim.StatusLine())
	}
}

func TestOneActionPerTick(t *testing.T) {
	g := newTestGame(t, testOptions())

	// Left wins over Right
	g.Step(press(platformcore.ActionRight, platformcore.ActionLeft))
	if p, _ := g.sim.Board.Find(core.Hero); p != core.P(2, 1) {
		t.Errorf("hero at %v, expected (2,1)", p)
	}
	if g.sim.Diamonds != 2 {
		t.Error("right move should have been ignored")
	}
}

func TestSimulationCadence(t *testing.T) {
	g := newTestGame(t, testOptions())

	// sim_every_ticks is 2: cycles run on ticks 1, 3, 5...
	g.Step(press())
	if g.sim.Board.Kind(6, 10) != core.Rock {
		t.Fatal("rock should fall on the first tick")
	}
	g.Step(press())
	g.Step(press())
	if g.sim.Board.Kind(6, 10) != core.Rock || g.sim.Board.Kind(7, 10) != core.Ground {
		t.Error("rock should rest on ground")
	}
}

func TestLevelCompleteFlow(t *testing.T) {
	g := newTestGame(t, testOptions())

	g.Step(press(platformcore.ActionRight))
	g.Step(press(platformcore.ActionRight))
	kinds := run(g, 1)
	if g.Phase() != core.LevelComplete {
		t.Fatalf("phase = %v, expected level_complete", g.Phase())
	}
	if !slices.Contains(kinds, "level_complete") {
		t.Errorf("events = %v", kinds)
	}
	if want := 2*core.DiamondPoints + 50*core.TimeBonus; g.State().Score != want {
		t.Errorf("score = %d, expected %d", g.State().Score, want)
	}

	// Input is ignored while the banner is up
	g.Step(press(platformcore.ActionDown))
	if p, _ := g.sim.Board.Find(core.Hero); p != core.P(2, 4) {
		t.Errorf("hero moved during banner: %v", p)
	}

	kinds = run(g, 2)
	if g.State().Level != 1 || g.Phase() != core.Playing {
		t.Errorf("level %d phase %v after the banner", g.State().Level, g.Phase())
	}
	if !slices.Contains(kinds, "level_started") {
		t.Errorf("events = %v", kinds)
	}
}

func TestTimeUpEndsRun(t *testing.T) {
	opts := testOptions()
	opts.StartLevel = 1
	g := newTestGame(t, opts)

	kinds := run(g, 6)
	if !g.State().GameOver {
		t.Fatalf("expected game over, phase %v time %d", g.Phase(), g.sim.Time)
	}
	for _, want := range []string{"time_up", "hero_killed"} {
		if !slices.Contains(kinds, want) {
			t.Errorf("missing %s event in %v", want, kinds)
		}
	}

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "* Game Over *") {
		t.Error("game over overlay not drawn")
	}

	g.Step(press(platformcore.ActionGhost))
	if g.State().GameOver || g.State().Score != 0 || g.sim.Time != 1 {
		t.Errorf("restart failed: %+v time %d", g.State(), g.sim.Time)
	}
}

func TestDeathAndRetry(t *testing.T) {
	g := newTestGame(t, testOptions())
	g.Step(press(platformcore.ActionRight))

	res := g.Step(press(platformcore.ActionSuicide))
	run(g, 1)
	if g.Phase() != core.Dead {
		t.Fatalf("phase = %v, expected dead", g.Phase())
	}
	if res.State.GameOver {
		t.Error("a dead hero is not game over")
	}

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.Row(23), "Press SPACE") {
		t.Errorf("retry hint missing: %q", screen.Row(23))
	}

	g.Step(press(platformcore.ActionGhost))
	if g.Phase() != core.Playing || g.State().Score != core.DiamondPoints {
		t.Errorf("phase %v score %d after retry", g.Phase(), g.State().Score)
	}
}

func TestCheatEvents(t *testing.T) {
	g := newTestGame(t, testOptions())
	g.Step(press())

	res := g.Step(press(platformcore.ActionNextLevel))
	if res.State.Level != 1 {
		t.Fatalf("level = %d", res.State.Level)
	}
	var details []string
	for _, e := range res.Events {
		if e.Kind == "cheat" {
			details = append(details, e.Detail)
		}
	}
	if !slices.Equal(details, []string{"next_level"}) {
		t.Errorf("cheat details = %v", details)
	}

	g.Step(press(platformcore.ActionPrevLevel))
	if g.State().Level != 0 {
		t.Errorf("level = %d after prev", g.State().Level)
	}

	g.sim.Time = 3
	g.Step(press(platformcore.ActionRefillTime))
	if g.sim.Time != 50 {
		t.Errorf("time = %d after refill", g.sim.Time)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, testOptions())
	g.Step(press())

	res := g.Step(press(platformcore.ActionPause))
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}
	before := g.Snapshot()
	g.Step(press(platformcore.ActionRight))
	g.Step(press())
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("state changed while paused")
	}

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay not drawn")
	}

	res = g.Step(press(platformcore.ActionPause))
	if res.State.Paused {
		t.Error("game should be resumed")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, testOptions())
	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	for _, want := range []string{"L:01,D:002,T:050,M:1", "Two Diamonds", "Score: 0"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if strings.Trim(screen.Row(1), "─") != "" {
		t.Errorf("separator row = %q", screen.Row(1))
	}

	// 40x20 window centered below the HUD: columns 20..59, rows 3..22.
	// The hero at (2,2) is near the top-left corner of the board.
	if c := screen.GetCell(22, 5); c.Rune != 'R' || c.Color != platformcore.ColorBrightYellow {
		t.Errorf("hero cell = %q %v", c.Rune, c.Color)
	}
	if c := screen.GetCell(20, 3); c.Rune != '#' || c.Color != platformcore.ColorWhite {
		t.Errorf("corner cell = %q %v", c.Rune, c.Color)
	}
	if c := screen.GetCell(23, 5); c.Rune != '*' || c.Color != platformcore.ColorBrightCyan {
		t.Errorf("diamond cell = %q %v", c.Rune, c.Color)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, testOptions())
	screen := platformcore.NewScreen(30, 6)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("screen:\n%s", screen.String())
	}
}
