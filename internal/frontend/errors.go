package frontend

import "fmt"

type ErrorKind string

const (
	SYNTAX_ERROR   ErrorKind = "syntax"
	INTERNAL_FAULT ErrorKind = "internal"
)

type SyntaxError struct {
	Kind    ErrorKind
	Index   int
	Message string
}

func NewSyntaxError(index int, message string) *SyntaxError {
	return &SyntaxError{
		Kind:    SYNTAX_ERROR,
		Index:   index,
		Message: message,
	}
}

func NewSyntaxErrorf(index int, format string, a ...any) *SyntaxError {
	return NewSyntaxError(index, fmt.Sprintf(format, a...))
}

func newInternalFault(index int, fault any) *SyntaxError {
	return &SyntaxError{
		Kind:    INTERNAL_FAULT,
		Index:   index,
		Message: fmt.Sprint(fault),
	}
}

func (e *SyntaxError) Error() string {
	if e.Kind == INTERNAL_FAULT {
		return fmt.Sprintf("Internal Error at token index %d: %s", e.Index, e.Message)
	}
	return fmt.Sprintf("Syntax Error at token index %d: %s", e.Index, e.Message)
}
