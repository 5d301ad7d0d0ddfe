// Package errors provides the error constructors used by the jbig2 packages.
// Every error carries the name of the process that produced it, and wrapping
// an error keeps the chain of processes so that the final message reads
// from the outermost call down to the root cause.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

const header = "[JBIG2]"

type processError struct {
	process string
	message string
	wrapped error
}

// Error implements error interface.
func (p *processError) Error() string {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString(" ")
	p.writeTo(&sb)
	return sb.String()
}

// Unwrap returns the wrapped error so that the standard errors.Is and errors.As work on the chain.
func (p *processError) Unwrap() error {
	return p.wrapped
}

func (p *processError) writeTo(sb *strings.Builder) {
	sb.WriteString(p.process)
	if p.message != "" {
		sb.WriteString(": ")
		sb.WriteString(p.message)
	}
	if p.wrapped == nil {
		return
	}
	sb.WriteString(" <- ")
	if pe, ok := p.wrapped.(*processError); ok {
		pe.writeTo(sb)
		return
	}
	sb.WriteString(p.wrapped.Error())
}

// Error creates new error for the given 'processName' with the 'message'.
func Error(processName, message string) error {
	return &processError{process: processName, message: message}
}

// Errorf creates new error for the 'processName' with the formatted message.
func Errorf(processName, message string, arguments ...interface{}) error {
	return &processError{process: processName, message: fmt.Sprintf(message, arguments...)}
}

// Wrap wraps the 'err' with the 'processName' and optional 'message'.
// A nil 'err' results in a nil error.
func Wrap(err error, processName, message string) error {
	if err == nil {
		return nil
	}
	return &processError{process: processName, message: message, wrapped: err}
}

// Wrapf wraps the 'err' with the 'processName' and the formatted message.
func Wrapf(err error, processName, message string, arguments ...interface{}) error {
	if err == nil {
		return nil
	}
	return &processError{process: processName, message: fmt.Sprintf(message, arguments...), wrapped: err}
}

// Is reports whether any error in the 'err' chain matches 'target'.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
