package domain

// Command represents an intended mutation in the system.
type Command[T any] interface {
	CommandName() string
	Payload() T
}
