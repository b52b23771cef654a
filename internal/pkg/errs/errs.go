// Package errs narrows the cockroachdb/errors surface to the two
// constructors this codebase needs. Stack traces ride along for free.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg, keeping the original chain intact.
// A nil err stays nil so call sites can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// New returns a stack-carrying error.
func New(msg string) error {
	return cr.New(msg)
}
