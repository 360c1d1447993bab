package ndcore

import (
	"fmt"
	"log/slog"
	"runtime"
)

// Site identifies the place in source code that created an obligation.
type Site struct {
	Func string
	File string
	Line int
}

// Caller returns the Site of the caller of the function calling Caller,
// offset by skip additional frames.
// Caller(0) is the function that calls Caller.
func Caller(skip int) Site {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Site{}
	}

	s := Site{File: file, Line: line}
	if f := runtime.FuncForPC(pc); f != nil {
		s.Func = f.Name()
	}
	return s
}

func (s Site) String() string {
	if s.File == "" {
		return "<unknown>"
	}
	if s.Func == "" {
		return fmt.Sprintf("%s:%d", s.File, s.Line)
	}
	return fmt.Sprintf("%s (%s:%d)", s.Func, s.File, s.Line)
}

func (s Site) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("func", s.Func),
		slog.String("file", s.File),
		slog.Int("line", s.Line),
	)
}
