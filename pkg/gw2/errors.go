package gw2

import (
	"errors"
	"fmt"
)

var (
	ErrNetwork = errors.New("network error")
	ErrDecode  = errors.New("decode error")
)

// Error is returned by every Client request. Kind is ErrNetwork or ErrDecode
// and can be matched with errors.Is, Err is the underlying cause.
type Error struct {
	Kind error
	URL  string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func networkError(url string, err error) *Error {
	return &Error{Kind: ErrNetwork, URL: url, Err: err}
}

func decodeError(url string, err error) *Error {
	return &Error{Kind: ErrDecode, URL: url, Err: err}
}
