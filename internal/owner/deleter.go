package owner

import "io"

// Deleter is a deletion policy for values of type V.
// Delete is called on the zero value of the implementing type.
type Deleter[V any] interface {
	Delete(v V)
}

// Discard is the default policy. It does nothing and leaves reclamation to
// the garbage collector; ownership still moves and Relinquish still works.
type Discard[V any] struct{}

// Delete implements Deleter.
func (Discard[V]) Delete(V) {}

// Close calls Close on the owned value and ignores its error.
type Close[V io.Closer] struct{}

// Delete implements Deleter.
func (Close[V]) Delete(v V) {
	_ = v.Close()
}
