package domain

// IDGenerator produces a fresh identifier on every call. Implementations
// must be safe for concurrent use.
type IDGenerator[T any] func() T
