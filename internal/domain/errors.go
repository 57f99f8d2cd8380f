package domain

import "errors"

// Domain errors.
var (
	ErrProjectNotFound          = errors.New("project not found")
	ErrPullRequestNotFound      = errors.New("pull request not found")
	ErrPullRequestStateNotFound = errors.New("pull request state not found")
	ErrInvalidArguments         = errors.New("invalid arguments")
	ErrUnknownBackend           = errors.New("unknown board backend")
	ErrFixtureRequired          = errors.New("fixture backend requires a fixture file")
	ErrMissingCredentials       = errors.New("no GitHub credentials configured")
	ErrConfigExists             = errors.New("config file already exists")
)
