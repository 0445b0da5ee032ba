package combat

import (
	"testing"

	"github.com/automoto/doomerang-horde/shared/gamemath"
)

func TestTakeHitAnnouncesDamageThenDeathOnce(t *testing.T) {
	d := NewDamageable(3)
	var events []string
	var killing Hit
	d.OnTakeDamage(func(h Hit) { events = append(events, "damage") })
	d.OnDie(func(h Hit) {
		events = append(events, "die")
		killing = h
	})
	deaths := 0
	d.OnDeath(func() { deaths++ })

	d.TakeDamage(1)
	blow := Hit{Amount: 5, Position: gamemath.Vec2{X: 4, Y: 2}, Direction: gamemath.Vec2{X: 1}}
	if !d.TakeHit(blow) {
		t.Fatal("killing blow rejected")
	}
	if d.TakeHit(Hit{Amount: 1}) {
		t.Fatal("hit after death accepted")
	}

	want := []string{"damage", "damage", "die"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("events = %v, want %v", events, want)
		}
	}
	if deaths != 1 {
		t.Fatalf("zero-arg death listener ran %d times", deaths)
	}
	if killing != blow {
		t.Fatalf("death carried %+v, want %+v", killing, blow)
	}
	if d.Current != 0 || !d.Dead() || d.Ratio() != 0 {
		t.Fatalf("unexpected state current=%d dead=%v", d.Current, d.Dead())
	}
}

func TestTakeHitIgnoresNonPositiveAmounts(t *testing.T) {
	d := NewDamageable(2)
	calls := 0
	d.OnTakeDamage(func(Hit) { calls++ })

	if d.TakeHit(Hit{Amount: 0}) || d.TakeHit(Hit{Amount: -3}) {
		t.Fatal("non-positive hit accepted")
	}
	if calls != 0 || d.Current != 2 {
		t.Fatalf("calls=%d current=%d", calls, d.Current)
	}
	if d.Ratio() != 1 {
		t.Fatalf("Ratio() = %v", d.Ratio())
	}
}

func TestCancelledDeathListenerNotCalled(t *testing.T) {
	d := NewDamageable(1)
	calls := 0
	sub := d.OnDeath(func() { calls++ })
	sub.Cancel()
	d.TakeDamage(1)
	if calls != 0 {
		t.Fatalf("cancelled listener called %d times", calls)
	}
}
