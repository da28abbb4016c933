package goroutine

import (
	"bytes"
	"fmt"
	"runtime"
)

// Stack formats the calling goroutine's stack, skipping the innermost skip frames.
func Stack(skip int) []byte {
	buf := new(bytes.Buffer)
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip+1, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		fmt.Fprintf(buf, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			break
		}
	}
	return buf.Bytes()
}
