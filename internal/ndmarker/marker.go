// Package ndmarker holds the marker types that select
// between the plain and message-carrying passthrough variants.
//
// The set of markers is closed:
// [Marker] is a type-set constraint, so no type outside this package can satisfy it.
package ndmarker

// Empty marks a passthrough type standing in for a wrapper without a custom message.
type Empty struct{}

// Msg marks a passthrough type standing in for a wrapper with a custom message.
type Msg struct{}

// Marker is satisfied by exactly [Empty] and [Msg].
type Marker interface {
	Empty | Msg
}
