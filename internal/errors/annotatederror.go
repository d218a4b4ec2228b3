// Package errors wraps errors with slog annotations and the source location
// of the wrap site so that handlers can log failures with full context.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error wrapping the given errors, discarding nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// annotatedError carries a message, an optional cause, slog attributes, and
// the source location where it was created.
type annotatedError struct {
	msg   string
	cause error
	attrs []slog.Attr
	file  string
	line  int
}

func (e *annotatedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.cause
}

// NewSentinel creates a root error annotated with its construction site.
func NewSentinel(msg string) error {
	file, line := caller(1)
	return &annotatedError{msg: msg, cause: nil, attrs: nil, file: file, line: line}
}

// Wrap annotates err with a message, optional slog attributes, and the call
// site. The resulting error formats as "msg: err".
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	file, line := caller(1)
	return &annotatedError{msg: msg, cause: err, attrs: attrs, file: file, line: line}
}

// caller resolves the file and line of the function skip levels above the
// caller of caller.
func caller(skip int) (string, int) {
	var pcs [1]uintptr
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return "", 0
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	return frame.File, frame.Line
}

// DecoratePanic converts a recovered panic value into an error whose source
// points at the panic site rather than the deferred recovery function.
func DecoratePanic(recovered any) error {
	if recovered == nil {
		return nil
	}

	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var (
		file      string
		line      int
		seenPanic bool
	)
	for {
		frame, more := frames.Next()
		if strings.HasPrefix(frame.Function, "runtime.") {
			if frame.Function == "runtime.gopanic" {
				seenPanic = true
			}
		} else if seenPanic {
			file = frame.File
			line = frame.Line
			break
		}
		if !more {
			break
		}
	}

	return &annotatedError{
		msg:   fmt.Sprintf("panic: %v", recovered),
		cause: nil,
		attrs: nil,
		file:  file,
		line:  line,
	}
}

// SlogError flattens an error tree into a single slog.Attr with the message,
// the outermost annotation site, and all collected annotations.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}

	var (
		annotations []slog.Attr
		file        string
		line        int
	)
	collectAnnotations(err, &annotations, &file, &line)

	args := []any{slog.String("message", err.Error())}
	if file != "" {
		args = append(args, slog.String("source", fmt.Sprintf("%s:%d", file, line)))
	}
	if len(annotations) > 0 {
		groupArgs := make([]any, 0, len(annotations))
		for _, attr := range annotations {
			groupArgs = append(groupArgs, attr)
		}
		args = append(args, slog.Group("annotations", groupArgs...))
	}

	return slog.Group("error", args...)
}

// collectAnnotations walks the error tree gathering attributes from every
// annotated error. The first annotated error found determines the source.
func collectAnnotations(err error, annotations *[]slog.Attr, file *string, line *int) {
	for err != nil {
		if annotated, ok := err.(*annotatedError); ok {
			*annotations = append(*annotations, annotated.attrs...)
			if *file == "" {
				*file = annotated.file
				*line = annotated.line
			}
			err = annotated.cause
			continue
		}

		switch unwrappable := err.(type) {
		case interface{ Unwrap() []error }:
			for _, joined := range unwrappable.Unwrap() {
				collectAnnotations(joined, annotations, file, line)
			}
			return
		case interface{ Unwrap() error }:
			err = unwrappable.Unwrap()
		default:
			return
		}
	}
}
