package storage

import "errors"

// ErrInsufficientFunds is returned when an account balance cannot cover a debit.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrAccountNotFound is returned when no user owns the given account number.
var ErrAccountNotFound = errors.New("account not found")

// ErrUserNotFound is returned when no user exists for the given email.
var ErrUserNotFound = errors.New("user not found")

// ErrUserExists is returned when registering an email that is already taken.
var ErrUserExists = errors.New("user already exists")
