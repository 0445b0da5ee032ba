package netcomponents

import "testing"

func TestLerpNetEnemy(t *testing.T) {
	from := NetEnemyData{ID: "a", X: 0, Y: 10, State: 1, Health: 3}
	to := NetEnemyData{ID: "a", X: 10, Y: 20, State: 2, Health: 2, Tint: [4]uint8{255, 0, 0, 255}}

	got := LerpNetEnemy(from, to, 0.5)
	if got.X != 5 || got.Y != 15 {
		t.Fatalf("position = (%v, %v), want (5, 15)", got.X, got.Y)
	}
	if got.State != 2 || got.Health != 2 || got.Tint != to.Tint || got.ID != "a" {
		t.Fatalf("discrete fields should snap to the newer state: %+v", got)
	}
}

func TestLerpNetPlayer(t *testing.T) {
	from := NetPlayerData{X: 100, Y: 100, Health: 10, MaxHealth: 10, Alive: true}
	to := NetPlayerData{X: 200, Y: 50, Health: 0, MaxHealth: 10}

	got := LerpNetPlayer(from, to, 0.25)
	if got.X != 125 || got.Y != 87.5 {
		t.Fatalf("position = (%v, %v), want (125, 87.5)", got.X, got.Y)
	}
	if got.Alive || got.Health != 0 {
		t.Fatalf("discrete fields should snap to the newer state: %+v", got)
	}
}
