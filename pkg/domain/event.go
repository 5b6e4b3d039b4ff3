package domain

// Event represents a fact published after a successful mutation.
type Event[T any] interface {
	EventName() string
	Payload() T
}
