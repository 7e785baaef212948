package school

import "strings"

type RegistrationStatus string

const StatusPending RegistrationStatus = "pending"

// InitialStatus is the status of every new registration.
func InitialStatus() RegistrationStatus {
	return StatusPending
}

// NormalizeEmail is the form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
