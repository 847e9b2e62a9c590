package session

// Commands buffers the events of a turn until every system has run. Nothing
// queued here is observable while systems run.
type Commands struct {
	events []Event
}

func newCommands() *Commands {
	return &Commands{}
}

// Emit queues an event for the game's listeners.
func (c *Commands) Emit(e Event) {
	c.events = append(c.events, e)
}

// Flush delivers queued events to every listener in order and empties the
// buffer.
func (c *Commands) Flush(listeners []Listener) {
	for _, e := range c.events {
		for _, l := range listeners {
			l(e)
		}
	}

	c.Reset()
}

// Reset drops everything queued.
func (c *Commands) Reset() {
	clear(c.events)
	c.events = c.events[:0]
}
