// Package core holds process-wide safety nets shared by every goroutine.
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// Finalizer restores the terminal; tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

var (
	screen   atomic.Pointer[Finalizer]
	crashMu  sync.Mutex
	exitFunc           = os.Exit
	crashOut io.Writer = os.Stderr
)

// SetScreen registers the screen to restore before a crash report is printed
func SetScreen(s Finalizer) {
	if s == nil {
		screen.Store(nil)
		return
	}
	screen.Store(&s)
}

// HandleCrash restores the terminal, prints the panic and stack, and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}
	crashMu.Lock()
	defer crashMu.Unlock()

	if p := screen.Swap(nil); p != nil {
		(*p).Fini()
	}

	// \r\n in case the terminal is still in raw mode
	fmt.Fprintf(crashOut, "\r\n\x1b[31mSUSHI-BELT CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())
	exitFunc(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use it instead of the go keyword so a crash never leaves the terminal raw
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
