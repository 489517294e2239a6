// Package store implements persistence for users, posts and votes over a
// relational database. All read-check-then-write sequences run inside a
// transaction so concurrent requests cannot observe partial state.
package store

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrForbidden     = errors.New("not authorized to perform requested action")
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")
	ErrAlreadyVoted  = errors.New("already voted")
)
