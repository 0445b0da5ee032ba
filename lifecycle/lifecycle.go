package lifecycle

import "fmt"

// Event is a zero-argument game lifecycle notification.
type Event int

const (
	GameStart Event = iota
	GamePause
	GameResume
	GameWon
	GameLose
	GameEnd
	GameRestart
	GameQuit
)

var eventNames = map[Event]string{
	GameStart:   "GameStart",
	GamePause:   "GamePause",
	GameResume:  "GameResume",
	GameWon:     "GameWon",
	GameLose:    "GameLose",
	GameEnd:     "GameEnd",
	GameRestart: "GameRestart",
	GameQuit:    "GameQuit",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// Handlers holds one optional listener per lifecycle event. Nil entries are ignored.
type Handlers struct {
	Start   func()
	Pause   func()
	Resume  func()
	Won     func()
	Lose    func()
	End     func()
	Restart func()
	Quit    func()
}

func (h Handlers) dispatch(e Event) {
	var fn func()
	switch e {
	case GameStart:
		fn = h.Start
	case GamePause:
		fn = h.Pause
	case GameResume:
		fn = h.Resume
	case GameWon:
		fn = h.Won
	case GameLose:
		fn = h.Lose
	case GameEnd:
		fn = h.End
	case GameRestart:
		fn = h.Restart
	case GameQuit:
		fn = h.Quit
	}
	if fn != nil {
		fn()
	}
}

// Source is anything agents can subscribe lifecycle listeners on.
type Source interface {
	Subscribe(h Handlers) Subscription
}

// Publisher fans lifecycle events out to subscribed handler sets. One publisher
// is owned per arena; it is not safe for concurrent use.
type Publisher struct {
	hook Hook[Event]
	last Event
	seen bool
}

func NewPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) Subscribe(h Handlers) Subscription {
	return p.hook.Subscribe(h.dispatch)
}

func (p *Publisher) Publish(e Event) {
	p.last, p.seen = e, true
	p.hook.Emit(e)
}

// Last returns the most recently published event.
func (p *Publisher) Last() (Event, bool) {
	return p.last, p.seen
}

// Listeners returns the number of live subscriptions.
func (p *Publisher) Listeners() int {
	return p.hook.Len()
}
