package lifecycle

import "testing"

func TestPublisherDispatchesToMatchingHandler(t *testing.T) {
	p := NewPublisher()
	var got []string
	p.Subscribe(Handlers{
		Start:  func() { got = append(got, "start") },
		Pause:  func() { got = append(got, "pause") },
		Resume: func() { got = append(got, "resume") },
		End:    func() { got = append(got, "end") },
	})

	for _, e := range []Event{GameStart, GamePause, GameWon, GameResume, GameLose, GameRestart, GameEnd, GameQuit} {
		p.Publish(e)
	}

	want := []string{"start", "pause", "resume", "end"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if last, ok := p.Last(); !ok || last != GameQuit {
		t.Fatalf("Last() = %v, %v", last, ok)
	}
}

func TestSubscriptionCancelIsIdempotent(t *testing.T) {
	p := NewPublisher()
	calls := 0
	sub := p.Subscribe(Handlers{Start: func() { calls++ }})
	other := p.Subscribe(Handlers{Start: func() {}})

	sub.Cancel()
	sub.Cancel()
	Subscription{}.Cancel()

	p.Publish(GameStart)
	if calls != 0 {
		t.Fatalf("cancelled handler invoked %d times", calls)
	}
	if p.Listeners() != 1 {
		t.Fatalf("Listeners() = %d, want 1", p.Listeners())
	}
	other.Cancel()
	if p.Listeners() != 0 {
		t.Fatalf("Listeners() = %d, want 0", p.Listeners())
	}
}

func TestCancelDuringEmitSkipsLaterSubscriber(t *testing.T) {
	var h Hook[int]
	var second Subscription
	var order []string

	h.Subscribe(func(v int) {
		order = append(order, "first")
		second.Cancel()
	})
	second = h.Subscribe(func(v int) { order = append(order, "second") })
	h.Subscribe(func(v int) { order = append(order, "third") })

	h.Emit(1)
	if len(order) != 2 || order[0] != "first" || order[1] != "third" {
		t.Fatalf("unexpected dispatch order %v", order)
	}
}

func TestSubscribeDuringEmitWaitsForNextEmit(t *testing.T) {
	var h Hook[int]
	late := 0
	h.Subscribe(func(v int) {
		if v == 1 {
			h.Subscribe(func(int) { late++ })
		}
	})

	h.Emit(1)
	if late != 0 {
		t.Fatalf("subscriber added mid-emit ran in the same emit")
	}
	h.Emit(2)
	if late != 1 {
		t.Fatalf("late subscriber calls = %d, want 1", late)
	}
}

func TestEventString(t *testing.T) {
	cases := map[Event]string{
		GameStart: "GameStart",
		GameQuit:  "GameQuit",
		Event(42): "Event(42)",
	}
	for e, want := range cases {
		if got := e.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(e), got, want)
		}
	}
}
