// internal/types/types.go
package types

// EntityID identifies an entity inside a single game session.
type EntityID uint64
