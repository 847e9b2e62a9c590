package session

// System is one step of resolving a turn. Systems run in registration order;
// each reads and updates the Game through the Frame it is handed.
type System interface {
	Execute(frame *Frame)
}
