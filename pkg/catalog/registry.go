// Package catalog holds the message type registry and the standard flight
// telemetry catalogue. A registry is built once at startup and read-only
// afterward; lookups need no locking.
package catalog

import (
	"fmt"

	"github.com/psas-avionics/telempack/pkg/codec"
)

// Registry maps four-byte type codes to message type definitions. Populate
// it fully before first use (single writer, then read-only); after that it
// is safe for unsynchronized concurrent reads.
type Registry struct {
	types map[codec.FourCC]*codec.MessageType
	order []codec.FourCC
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{types: make(map[codec.FourCC]*codec.MessageType)}
}

// Register inserts a message type by its four-byte code. Two entries may
// never share a code; a collision is a startup error, not a runtime one.
func (r *Registry) Register(mt *codec.MessageType) error {
	if _, exists := r.types[mt.FourCC]; exists {
		return fmt.Errorf("%w: %s", codec.ErrDuplicateType, mt.FourCC)
	}
	r.types[mt.FourCC] = mt
	r.order = append(r.order, mt.FourCC)
	return nil
}

// Lookup returns the type registered for a code. A miss is not an error:
// unknown types are expected on the wire and skipped by the frame decoder.
func (r *Registry) Lookup(fc codec.FourCC) (*codec.MessageType, bool) {
	mt, ok := r.types[fc]
	return mt, ok
}

// Types lists registered types in registration order.
func (r *Registry) Types() []*codec.MessageType {
	out := make([]*codec.MessageType, 0, len(r.order))
	for _, fc := range r.order {
		out = append(out, r.types[fc])
	}
	return out
}

// Len returns the number of registered types.
func (r *Registry) Len() int { return len(r.types) }
