package user

import "fmt"

// DuplicateAccountError signals a registration against an email or phone that
// already has an account.
type DuplicateAccountError struct {
	Field string
}

func (e DuplicateAccountError) Error() string {
	return fmt.Sprintf("an account with this %s already exists", e.Field)
}

// AuthError covers failed sign-in attempts and revoked or stale tokens.
type AuthError struct {
	Reason string
}

func (e AuthError) Error() string {
	return e.Reason
}

// NotFoundError signals a missing account.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("user %s not found", e.ID)
}

// ValidationError reports a rejected input field.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// RoleError signals an operation attempted with the wrong account role.
type RoleError struct {
	Required string
}

func (e RoleError) Error() string {
	return fmt.Sprintf("this operation requires a %s account", e.Required)
}
