package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

var crashScreen atomic.Pointer[Screen]

// RegisterCrashScreen makes HandleCrash finalize s instead of writing raw reset
// sequences
func RegisterCrashScreen(s *Screen) {
	crashScreen.Store(s)
}

// HandleCrash is the unified panic handler that resets the terminal and prints the
// stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if s := crashScreen.Load(); s != nil {
		s.Fini()
	} else {
		EmergencyReset(os.Stdout)
	}

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
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
