// Package user resolves which arbor user a command acts for when no
// username is given on the command line.
package user

import (
	"os"
	"os/user"
	"strings"
)

// EnvVar overrides the acting username
const EnvVar = "ARBOR_USER"

// GetCurrentUsername returns the username commands act for.
// It tries, in order:
// 1. the ARBOR_USER environment variable
// 2. user.Current() from the OS
// 3. the USER environment variable
// It returns "" when none is set, so callers can ask for --user.
func GetCurrentUsername() string {
	if name := strings.TrimSpace(os.Getenv(EnvVar)); name != "" {
		return name
	}
	if currentUser, err := user.Current(); err == nil && currentUser.Username != "" {
		return currentUser.Username
	}
	return strings.TrimSpace(os.Getenv("USER"))
}
