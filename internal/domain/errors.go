package domain

import (
	"errors"
	"fmt"
)

// Messages shown inline on the surface. The cause of a fetch failure is never exposed.
const (
	EmptyUsernameMessage = "Please enter a GitHub username."
	FetchErrorMessage    = "Invalid GitHub username or network error."
)

var (
	// ErrEmptyUsername is returned before any network activity when the trimmed username is empty.
	ErrEmptyUsername = errors.New("username is empty")
	// ErrFetch covers transport failures, non-success statuses and malformed responses alike.
	ErrFetch = errors.New("failed to fetch repositories")
)

// ZeroReposMessage is shown when a user exists but has no public repositories.
func ZeroReposMessage(username string) string {
	return fmt.Sprintf("No public repos found for user %s.", username)
}

// WarningFor maps an error returned by the controller to its inline message.
func WarningFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyUsername):
		return EmptyUsernameMessage
	default:
		return FetchErrorMessage
	}
}
