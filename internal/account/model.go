package account

import "time"

type Account struct {
	ID        string
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VerifyStatus is the outcome of a credential check. It replaces a
// magic multi-state return value with explicit cases.
type VerifyStatus int

const (
	Verified VerifyStatus = iota
	WrongPassword
	UnknownUser
	OtherError
)

// VerifyResult carries the outcome plus a message for OtherError.
type VerifyResult struct {
	Status  VerifyStatus
	Message string
}
