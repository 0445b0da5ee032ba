package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func restoreGlobals(t *testing.T) {
	saved := Current()
	t.Cleanup(func() { Apply(saved) })
}

func TestDefaultsAreValid(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if Enemy.RefreshPeriod.Duration() != 200*time.Millisecond {
		t.Fatalf("refresh period = %v", Enemy.RefreshPeriod.Duration())
	}
	if Enemy.TimeBetweenAttacks.Duration() != time.Second {
		t.Fatalf("attack cooldown = %v", Enemy.TimeBetweenAttacks.Duration())
	}
}

func TestParseOverlaysOnlyPresentKeys(t *testing.T) {
	restoreGlobals(t)
	doc := []byte(`
enemy:
  points: 5
  time_between_attacks: 1.5
  tint_color: [10, 20, 30, 255]
wave:
  win_score: 7
`)
	d, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Enemy.Points != 5 || d.Wave.WinScore != 7 {
		t.Fatalf("overlay not applied: %+v %+v", d.Enemy, d.Wave)
	}
	if d.Enemy.TimeBetweenAttacks.Duration() != 1500*time.Millisecond {
		t.Fatalf("cooldown = %v", d.Enemy.TimeBetweenAttacks.Duration())
	}
	if d.Enemy.TintColor != [4]uint8{10, 20, 30, 255} {
		t.Fatalf("tint = %v", d.Enemy.TintColor)
	}
	if d.Enemy.AttackSpeed != Enemy.AttackSpeed || d.Player != Player {
		t.Fatal("keys absent from the document changed")
	}
	if Enemy.Points == 5 {
		t.Fatal("Parse mutated globals")
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	restoreGlobals(t)
	before := Current()

	_, err := Parse([]byte("enemy:\n  attack_speed: 0\n  refresh_period: -1\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if err := Load([]byte("enemy: [not, a, map]")); err == nil {
		t.Fatal("expected syntax error")
	}
	if Current() != before {
		t.Fatal("failed load changed globals")
	}
}

func TestStandoffMustFitInsideEnvelope(t *testing.T) {
	cases := []struct {
		name      string
		threshold float64
		standoff  float64
		ok        bool
	}{
		{"inside", 6.4, 3, true},
		{"at half", 6.4, 3.2, false},
		{"beyond", 6.4, 10, false},
		{"zero threshold", 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Defaults()
			d.Enemy.AttackDistanceThreshold = tc.threshold
			d.Enemy.StandoffDistance = tc.standoff
			err := d.Validate()
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	restoreGlobals(t)
	path := filepath.Join(t.TempDir(), "designer.yaml")
	if err := os.WriteFile(path, []byte("player:\n  health: 42\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if Player.Health != 42 {
		t.Fatalf("Player.Health = %d", Player.Health)
	}
	if err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWatchReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "designer.yaml")
	if err := os.WriteFile(path, []byte("wave:\n  win_score: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("wave:\n  win_score: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "designer.yaml" {
			t.Fatalf("unexpected event for %s", got)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reload event")
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	_ = w.Close()
}

func TestStateNames(t *testing.T) {
	if Chasing.String() != "chasing" || Attacking.String() != "attacking" || Idle.String() != "idle" {
		t.Fatal("unexpected state names")
	}
	if !MatchStatePaused.Active() || MatchStateWon.Active() {
		t.Fatal("unexpected match phase activity")
	}
}
