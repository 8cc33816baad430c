package game

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/highscore"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

type fakeSound struct {
	plays []audio.Effect
}

func (f *fakeSound) Play(e audio.Effect) { f.plays = append(f.plays, e) }
func (f *fakeSound) Close() error        { return nil }

type fixture struct {
	m      *Machine
	scores *highscore.Board
	sound  *fakeSound
}

func newFixture(t *testing.T, ranked bool) fixture {
	t.Helper()
	dir := t.TempDir()

	var backend highscore.Backend = highscore.NewJSONFile(filepath.Join(dir, "hs.json"))
	if !ranked {
		backend = highscore.NewTextFile(filepath.Join(dir, "hs.txt"))
	}
	scores := highscore.NewBoard(backend, nil)
	sound := &fakeSound{}

	app, err := NewApp(Options{
		Config: config.DefaultConfig(),
		Scores: scores,
		Sound:  sound,
		Seed:   1,
	})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return fixture{m: NewMachine(app), scores: scores, sound: sound}
}

func key(k core.Key) core.Event {
	return core.KeyDownEvent{Key: k}
}

func typed(s string) []core.Event {
	events := make([]core.Event, 0, len(s))
	for _, c := range s {
		events = append(events, core.TextInputEvent{Char: c})
	}
	return events
}

func frame(t *testing.T, m *Machine, events ...core.Event) {
	t.Helper()
	if _, err := m.Frame(events); err != nil {
		t.Fatalf("Frame: %v", err)
	}
}

func expectState(t *testing.T, m *Machine, want State) {
	t.Helper()
	if got := m.State(); got != want {
		t.Fatalf("state = %v, want %v", got, want)
	}
}

// startPlaying moves from the menu through name entry into play.
func startPlaying(t *testing.T, m *Machine, name string) {
	t.Helper()
	frame(t, m, key(core.KeyConfirm))
	if m.State() == StateNameEntry {
		frame(t, m, typed(name)...)
		frame(t, m, key(core.KeyConfirm))
	}
	expectState(t, m, StatePlaying)
}

// steerTo drives the head onto target, one block per frame. extra events
// are delivered with the first steering key.
func steerTo(t *testing.T, m *Machine, target core.Point, extra ...core.Event) {
	t.Helper()
	board := m.Board()
	for i := 0; m.Session().Snake().Head() != target; i++ {
		if i > 100 {
			t.Fatalf("could not reach %v", target)
		}
		head := m.Session().Snake().Head()
		var k core.Key
		switch {
		case head.X < target.X:
			k = core.KeyRight
		case head.X > target.X:
			k = core.KeyLeft
		case head.Y < target.Y:
			k = core.KeyDown
		default:
			k = core.KeyUp
		}

		// Reversing is not allowed, so step aside first.
		if keyDirections[k] == m.Session().Snake().Direction().Opposite() {
			switch k {
			case core.KeyLeft, core.KeyRight:
				k = core.KeyUp
				if head.Y == 0 {
					k = core.KeyDown
				}
			default:
				k = core.KeyLeft
				if head.X == 0 {
					k = core.KeyRight
				}
			}
		}
		if head.Y+board.Block >= board.Height && k == core.KeyDown ||
			head.X+board.Block >= board.Width && k == core.KeyRight {
			t.Fatalf("steering into a wall at %v", head)
		}

		events := append(extra, key(k))
		extra = nil
		frame(t, m, events...)
		expectState(t, m, StatePlaying)
	}
}

// crash runs the snake into a wall without eating.
func crash(t *testing.T, m *Machine) {
	t.Helper()
	head, food := m.Session().Snake().Head(), m.Session().Food()
	k := core.KeyUp
	if food.X == head.X {
		k = core.KeyLeft
	}
	for i := 0; m.State() == StatePlaying; i++ {
		if i > 100 {
			t.Fatal("snake never crashed")
		}
		frame(t, m, key(k))
	}
	expectState(t, m, StateGameOver)
}

func TestNameEntry(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"letters and digits", "AB12CD", "AB12CD"},
		{"lowercase is uppercased", "abc", "ABC"},
		{"ninth char ignored", "ABCDEFGHI", "ABCDEFGH"},
		{"symbols ignored", "a-b c!", "ABC"},
		{"non-ascii ignored", "zé9", "Z9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, true)
			frame(t, f.m, key(core.KeyConfirm))
			expectState(t, f.m, StateNameEntry)

			frame(t, f.m, typed(tt.input)...)
			frame(t, f.m, key(core.KeyConfirm))
			expectState(t, f.m, StatePlaying)
			if f.m.Name() != tt.want {
				t.Errorf("name = %q, want %q", f.m.Name(), tt.want)
			}
		})
	}
}

func TestNameEntryRejectsEmpty(t *testing.T) {
	f := newFixture(t, true)
	frame(t, f.m, key(core.KeyConfirm))
	frame(t, f.m, key(core.KeyConfirm))
	expectState(t, f.m, StateNameEntry)

	frame(t, f.m, typed("A")...)
	frame(t, f.m, key(core.KeyBackspace), key(core.KeyConfirm))
	expectState(t, f.m, StateNameEntry)
}

func TestNameEntryFocus(t *testing.T) {
	f := newFixture(t, true)
	frame(t, f.m, key(core.KeyConfirm))

	frame(t, f.m, core.MouseDownEvent{Pos: core.Point{X: 5, Y: 5}})
	frame(t, f.m, typed("XY")...)
	frame(t, f.m, key(core.KeyConfirm))
	expectState(t, f.m, StateNameEntry)

	frame(t, f.m, core.MouseDownEvent{Pos: core.Point{X: 300, Y: 200}})
	frame(t, f.m, typed("OK")...)
	frame(t, f.m, key(core.KeyConfirm))
	expectState(t, f.m, StatePlaying)
	if f.m.Name() != "OK" {
		t.Errorf("name = %q, want OK", f.m.Name())
	}
}

func TestScalarSkipsNameEntry(t *testing.T) {
	f := newFixture(t, false)
	frame(t, f.m, key(core.KeyConfirm))
	expectState(t, f.m, StatePlaying)
	if f.m.Name() != "" {
		t.Errorf("scalar variant should have no name, got %q", f.m.Name())
	}
}

func TestMenuPlayButton(t *testing.T) {
	f := newFixture(t, true)
	frame(t, f.m, core.MouseDownEvent{Pos: core.Point{X: 10, Y: 10}})
	expectState(t, f.m, StateMenu)

	frame(t, f.m, core.MouseDownEvent{Pos: core.Point{X: 300, Y: 360}})
	expectState(t, f.m, StateNameEntry)
}

func TestPauseFreezes(t *testing.T) {
	f := newFixture(t, true)
	startPlaying(t, f.m, "P")

	frame(t, f.m, key(core.KeyRight))
	before := f.m.Session().Snapshot()

	frame(t, f.m, key(core.KeyPause))
	expectState(t, f.m, StatePaused)
	for i := 0; i < 5; i++ {
		frame(t, f.m, key(core.KeyUp), key(core.KeyRetry))
	}
	expectState(t, f.m, StatePaused)
	if got := f.m.Session().Snapshot(); got != before {
		t.Errorf("session changed while paused:\n%+v\n%+v", before, got)
	}
	if f.m.FrameRate() != 15 {
		t.Errorf("paused frame rate = %d, want 15", f.m.FrameRate())
	}

	frame(t, f.m, key(core.KeyPause))
	expectState(t, f.m, StatePlaying)
	after := f.m.Session().Snapshot()
	if after.Tick != before.Tick+1 || after.HeadX != before.HeadX+20 {
		t.Errorf("session did not resume: %+v", after)
	}
}

func TestPauseIconAndSoundButton(t *testing.T) {
	f := newFixture(t, true)
	startPlaying(t, f.m, "P")

	frame(t, f.m, core.MouseDownEvent{Pos: core.Point{X: 550, Y: 25}})
	if f.m.Session().SoundOn() {
		t.Error("sound button should toggle sound off")
	}
	frame(t, f.m, key(core.KeyMute))
	if !f.m.Session().SoundOn() {
		t.Error("M should toggle sound back on")
	}

	frame(t, f.m, core.MouseDownEvent{Pos: core.Point{X: 490, Y: 20}})
	expectState(t, f.m, StatePaused)

	// The icon does not resume; only P does.
	frame(t, f.m, core.MouseDownEvent{Pos: core.Point{X: 490, Y: 20}})
	expectState(t, f.m, StatePaused)
}

func TestEatPlaysSound(t *testing.T) {
	f := newFixture(t, true)
	startPlaying(t, f.m, "P")

	steerTo(t, f.m, f.m.Session().Food())
	if f.m.Session().Score() != 1 {
		t.Fatalf("score = %d, want 1", f.m.Session().Score())
	}
	if len(f.sound.plays) != 1 || f.sound.plays[0] != audio.EffectEat {
		t.Errorf("plays = %v, want one eat", f.sound.plays)
	}

	steerTo(t, f.m, f.m.Session().Food(), key(core.KeyMute))
	if len(f.sound.plays) != 1 {
		t.Errorf("muted eat should be silent, plays = %v", f.sound.plays)
	}
}

func TestGameOverSavesAndRetryKeepsName(t *testing.T) {
	f := newFixture(t, true)
	startPlaying(t, f.m, "zed")

	steerTo(t, f.m, f.m.Session().Food())
	crash(t, f.m)

	score := f.m.LastScore()
	if score < 1 {
		t.Fatalf("last score = %d, want at least 1", score)
	}
	best, ok := f.scores.Best()
	if !ok || best != (highscore.Record{Name: "ZED", Score: score}) {
		t.Errorf("best = %v, %v; want ZED/%d", best, ok, score)
	}

	// Staying on the game over screen must not save again.
	frame(t, f.m)
	frame(t, f.m)
	if n := len(f.scores.Top(0)); n != 1 {
		t.Errorf("table has %d records, want 1", n)
	}

	frame(t, f.m, key(core.KeyRetry))
	expectState(t, f.m, StatePlaying)
	if f.m.Name() != "ZED" {
		t.Errorf("retry lost the name: %q", f.m.Name())
	}
	if f.m.Session().Score() != 0 || f.m.Session().Over() {
		t.Error("retry should start a fresh session")
	}
}

func TestZeroScoreNotSaved(t *testing.T) {
	f := newFixture(t, true)
	startPlaying(t, f.m, "NOPE")
	crash(t, f.m)

	if f.m.LastScore() != 0 {
		t.Fatalf("last score = %d, want 0", f.m.LastScore())
	}
	if _, ok := f.scores.Best(); ok {
		t.Error("zero score should not be saved")
	}

	frame(t, f.m, key(core.KeyBack))
	expectState(t, f.m, StateMenu)
}

func TestGameOverButtons(t *testing.T) {
	f := newFixture(t, true)
	startPlaying(t, f.m, "B")
	crash(t, f.m)

	frame(t, f.m, core.MouseDownEvent{Pos: core.Point{X: 300, Y: 360}})
	expectState(t, f.m, StateMenu)

	startPlaying(t, f.m, "B")
	crash(t, f.m)
	frame(t, f.m, core.MouseDownEvent{Pos: core.Point{X: 300, Y: 300}})
	expectState(t, f.m, StatePlaying)
}

func TestQuitFromAnyState(t *testing.T) {
	reach := map[State]func(t *testing.T, m *Machine){
		StateMenu: func(*testing.T, *Machine) {},
		StateNameEntry: func(t *testing.T, m *Machine) {
			frame(t, m, key(core.KeyConfirm))
		},
		StatePlaying: func(t *testing.T, m *Machine) {
			startPlaying(t, m, "Q")
		},
		StatePaused: func(t *testing.T, m *Machine) {
			startPlaying(t, m, "Q")
			frame(t, m, key(core.KeyPause))
		},
		StateGameOver: func(t *testing.T, m *Machine) {
			startPlaying(t, m, "Q")
			crash(t, m)
		},
	}

	for state, setup := range reach {
		t.Run(state.String(), func(t *testing.T) {
			f := newFixture(t, true)
			setup(t, f.m)
			expectState(t, f.m, state)

			done, err := f.m.Frame([]core.Event{key(core.KeyRight), core.QuitEvent{}})
			if !done || err != nil {
				t.Fatalf("Frame(quit) = %v, %v", done, err)
			}
			expectState(t, f.m, StateQuit)
			if done, _ := f.m.Frame(nil); !done {
				t.Error("machine should stay finished")
			}
		})
	}
}

func TestMenuQuitKey(t *testing.T) {
	f := newFixture(t, true)
	done, err := f.m.Frame([]core.Event{key(core.KeyQuit)})
	if !done || err != nil {
		t.Errorf("Frame(q) = %v, %v", done, err)
	}
}

func TestFrameRate(t *testing.T) {
	f := newFixture(t, true)
	if f.m.FrameRate() != 15 {
		t.Errorf("menu frame rate = %d, want 15", f.m.FrameRate())
	}
	startPlaying(t, f.m, "F")
	if f.m.FrameRate() != 8 {
		t.Errorf("playing frame rate = %d, want 8", f.m.FrameRate())
	}
}

func TestNewAppNoRoomForFood(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Board = config.BoardConfig{Width: 40, Height: 20, Block: 20}

	_, err := NewApp(Options{
		Config: cfg,
		Scores: highscore.NewBoard(highscore.NewJSONFile(filepath.Join(t.TempDir(), "hs.json")), nil),
	})
	if !errors.Is(err, snake.ErrNoFreeCell) {
		t.Errorf("NewApp error = %v, want ErrNoFreeCell", err)
	}
}

func TestNewAppRejectsPartialBlocks(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Board.Width = 610

	_, err := NewApp(Options{
		Config: cfg,
		Scores: highscore.NewBoard(highscore.NewJSONFile(filepath.Join(t.TempDir(), "hs.json")), nil),
	})
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("NewApp error = %v, want ErrInvalid", err)
	}
}

func TestRenderScreens(t *testing.T) {
	f := newFixture(t, true)
	view := core.Viewport{Block: 20, CharsPerBlock: 2}
	cols, rows := view.Cells(600, 400)
	screen := core.NewScreen(cols, rows)
	canvas := core.NewCanvas(screen, view)

	render := func() string {
		f.m.Render(canvas)
		return screen.String()
	}

	out := render()
	for _, want := range []string{"SNAKE", "Best scores:", "Nobody has played yet!", "Play"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu missing %q", want)
		}
	}

	frame(t, f.m, key(core.KeyConfirm))
	frame(t, f.m, typed("ann")...)
	out = render()
	for _, want := range []string{"Type your name", "ANN", "Press ENTER to start"} {
		if !strings.Contains(out, want) {
			t.Errorf("name entry missing %q", want)
		}
	}

	frame(t, f.m, key(core.KeyConfirm))
	out = render()
	for _, want := range []string{"Score: 0", "♪ ON"} {
		if !strings.Contains(out, want) {
			t.Errorf("playfield missing %q", want)
		}
	}

	frame(t, f.m, key(core.KeyPause))
	if out = render(); !strings.Contains(out, "PAUSED") {
		t.Error("pause overlay missing")
	}

	frame(t, f.m, key(core.KeyPause))
	crash(t, f.m)
	out = render()
	for _, want := range []string{"GAME OVER", "Your score (ANN): 0", "Best score: --- - 0", "Try again", "Menu"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over missing %q", want)
		}
	}
}
