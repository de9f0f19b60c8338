package gfx

import "github.com/petermattis/goid"

// currentGID returns the id of the calling goroutine. The renderer pins its
// goroutine to an OS thread at Init, so goroutine identity is thread identity.
func currentGID() int64 { return goid.Get() }
