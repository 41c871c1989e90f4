package slots

import (
	"strings"
	"testing"

	"github.com/solidoberon/slots-game/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func press(g *Game, a core.Action) {
	in := core.NewInputFrame()
	in.Set(a)
	g.Step(in)
}

// stepUntilSettled drives empty frames until the current spin finishes.
func stepUntilSettled(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if g.phase == PhaseSettled {
			return
		}
		g.Step(core.NewInputFrame())
	}
	t.Fatal("spin never settled")
}

func TestResetState(t *testing.T) {
	g := newTestGame(42)
	if g.phase != PhaseIdle {
		t.Errorf("phase = %v, want idle", g.phase)
	}
	if g.spinsLeft != g.cfg.Session.Spins {
		t.Errorf("spinsLeft = %d, want %d", g.spinsLeft, g.cfg.Session.Spins)
	}
	if st := g.State(); st.Score != 0 || st.GameOver || st.Paused {
		t.Errorf("unexpected initial state %+v", st)
	}
}

func TestSpinLifecycle(t *testing.T) {
	g := newTestGame(42)

	press(g, core.ActionSpin)
	if g.phase != PhaseSpinning {
		t.Fatalf("phase after spin = %v, want spinning", g.phase)
	}
	if g.spinsLeft != g.cfg.Session.Spins-1 {
		t.Errorf("spinsLeft = %d, want %d", g.spinsLeft, g.cfg.Session.Spins-1)
	}

	stepUntilSettled(t, g)
	for r := range g.shown {
		for c := range g.shown[r] {
			if g.shown[r][c] != g.target[r][c] {
				t.Fatalf("shown[%d][%d] = %q differs from target %q", r, c, g.shown[r][c], g.target[r][c])
			}
		}
	}
}

func TestScoreMatchesWins(t *testing.T) {
	g := newTestGame(7)

	total := 0
	for i := 0; i < 5; i++ {
		press(g, core.ActionSpin)
		stepUntilSettled(t, g)
		w := g.result.Wins
		total += len(w.Straight)*g.cfg.Scoring.Straight +
			len(w.Diagonal)*g.cfg.Scoring.Diagonal +
			len(w.Adjacency)*g.cfg.Scoring.Adjacency
		if g.score != total {
			t.Fatalf("after spin %d: score = %d, want %d", i+1, g.score, total)
		}
	}
}

func TestSessionEndsAfterConfiguredSpins(t *testing.T) {
	g := newTestGame(3)

	for i := 0; i < g.cfg.Session.Spins; i++ {
		if g.State().GameOver {
			t.Fatalf("game over after %d spins, want %d", i, g.cfg.Session.Spins)
		}
		press(g, core.ActionSpin)
		stepUntilSettled(t, g)
	}
	if !g.State().GameOver {
		t.Fatal("session did not end after configured spins")
	}

	// A spin after the last allotted one must be ignored
	score := g.score
	press(g, core.ActionSpin)
	if g.phase == PhaseSpinning || g.score != score {
		t.Error("spin accepted after session end")
	}
}

func TestRestartAfterSessionEnd(t *testing.T) {
	g := newTestGame(3)
	for i := 0; i < g.cfg.Session.Spins; i++ {
		press(g, core.ActionSpin)
		stepUntilSettled(t, g)
	}
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	press(g, core.ActionRestart)
	if g.State().GameOver {
		t.Error("restart did not clear game over")
	}
	if g.score != 0 || g.spinsLeft != g.cfg.Session.Spins {
		t.Errorf("restart left score=%d spinsLeft=%d", g.score, g.spinsLeft)
	}
}

func TestPauseBlocksSpin(t *testing.T) {
	g := newTestGame(1)

	press(g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("pause did not engage")
	}

	press(g, core.ActionSpin)
	if g.phase != PhaseIdle {
		t.Error("spin accepted while paused")
	}

	press(g, core.ActionPause)
	if g.State().Paused {
		t.Error("pause did not release")
	}
}

func TestForcedSpinCategories(t *testing.T) {
	tests := []struct {
		action core.Action
		want   Category
	}{
		{core.ActionForceStraight, CategoryStraight},
		{core.ActionForceDiagonal, CategoryDiagonal},
		{core.ActionForceAdjacency, CategoryAdjacency},
	}
	for _, tt := range tests {
		g := newTestGame(99)

		press(g, tt.action)
		if g.forced != tt.want {
			t.Fatalf("%v: armed %v, want %v", tt.action, g.forced, tt.want)
		}

		press(g, core.ActionSpin)
		stepUntilSettled(t, g)
		if g.forcedMiss {
			t.Fatalf("%v: generator gave up", tt.want)
		}

		w := g.result.Wins
		got := map[Category]int{
			CategoryStraight:  len(w.Straight),
			CategoryDiagonal:  len(w.Diagonal),
			CategoryAdjacency: len(w.Adjacency),
		}
		for cat, n := range got {
			want := 0
			if cat == tt.want {
				want = 1
			}
			if n != want {
				t.Errorf("forced %v: %d %v wins, want %d", tt.want, n, cat, want)
			}
		}
		if g.forced != CategoryNone {
			t.Errorf("forced category not disarmed after spin")
		}
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func() []Snapshot {
		g := newTestGame(1107)
		var snaps []Snapshot
		for tick := 0; tick < 600; tick++ {
			in := core.NewInputFrame()
			switch tick {
			case 0, 250:
				in.Set(core.ActionSpin)
			case 240:
				in.Set(core.ActionForceDiagonal)
			}
			g.Step(in)
			snaps = append(snaps, g.Snapshot())
		}
		return snaps
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("replay diverged at tick %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestRenderFitsScreen(t *testing.T) {
	g := newTestGame(5)
	press(g, core.ActionSpin)
	stepUntilSettled(t, g)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "Slots") {
		t.Errorf("HUD row missing title: %q", screen.Row(0))
	}
	if !strings.Contains(screen.String(), "SPACE spin") {
		t.Error("help line missing")
	}
}
