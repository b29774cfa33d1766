// Package owner provides Ptr, an exclusive-ownership handle with a
// compile-time deletion policy.
//
// A Ptr holds a single reference value (a pointer or interface) or nothing.
// Exactly one live handle owns a value at any time: ownership moves with
// Move, Take or Assign, and the moved-from handle is left empty. When the
// owning handle is Reset the policy's Delete runs exactly once; an empty
// handle never runs it. Relinquish hands the value back to the caller
// without deleting it.
//
// Go has no destructors, so scope exit is written with defer:
//
//	f := owner.New[*os.File, owner.Close[*os.File]](file)
//	defer f.Reset()
//
//	g := f.Move()   // f is now empty; g owns the file
//	defer g.Reset() // closes the file once
//
// The deletion policy D is a type parameter and is invoked on its zero
// value, so a Ptr is the size of the value it holds. Policies must be
// usable at their zero value; zero-size struct types are the norm.
//
// Handles must not be copied. Ptr carries a noCopy marker so go vet's
// copylocks check reports copies; pass *Ptr around instead.
//
// Ptr performs no synchronization. Handing a Ptr to another goroutine
// requires the usual happens-before edge (a channel send, a mutex), after
// which only the receiver may touch it.
//
// Misuse (dereferencing an empty handle, owning one value twice, releasing
// twice) is a programmer error. Builds tagged attrdebug detect it for
// pointer-like values and panic with an *assert.ContractError; other builds
// do not check.
package owner
