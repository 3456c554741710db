package domain

import "fmt"

// ConfigError indicates a required configuration value is missing.
// It names the environment variable that must be set.
type ConfigError struct {
	Variable string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s environment variable is required", e.Variable)
}

// AuthenticationError indicates the remote backend rejected our credentials.
// The message is identical for every operation so callers always see the
// same hint regardless of which tool failed.
type AuthenticationError struct{}

func (e *AuthenticationError) Error() string {
	return "Authentication failed. Check your ATLASSIAN_EMAIL and ATLASSIAN_TOKEN"
}

// NotFoundError indicates the requested entity does not exist.
// Resource is the human-readable kind ("Issue", "Project",
// "Confluence page", "Confluence space").
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.Key)
}

// InvalidQueryError indicates the caller supplied a malformed search query.
// Language is the query language name ("JQL" or "CQL").
type InvalidQueryError struct {
	Language string
	Detail   string
}

func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("Invalid %s query: %s", e.Language, e.Detail)
}

// APIError is any other non-2xx response from the remote backend.
// Op describes the failed operation (e.g., "get issue PROJ-1").
type APIError struct {
	Op     string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Failed to %s: %d - %s", e.Op, e.Status, e.Body)
}
