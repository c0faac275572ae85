// Package guard marks values that were built through their constructor so
// zero values can be told apart from valid ones.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and value objects whose zero
// value is not usable. Only NewConstructorGuard produces a guard that validates.
//
// Example:
//
//	type ChooseWardCommand struct {
//	    formID kernel.UUID
//	    code   int
//	    guard  guard.ConstructorGuard
//	}
//
//	func (c ChooseWardCommand) Validate() error {
//	    return c.guard.Validate(ErrChooseWardCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard flagged as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
