package domain

// Query represents a side-effect-free read projection request.
type Query[T any] interface {
	QueryName() string
	Payload() T
}
