package domain

import "strings"

// Context is the read-only input bundle for one validation run.
type Context struct {
	Subject string
	Body    string
	Message string // full message including trailers

	Branch string

	AuthorName  string
	AuthorEmail string

	// RebasedOnTarget is the merge-base ancestry answer supplied by the git
	// layer for the rebase-target rule. nil means the answer is unknown
	// (no target configured, or no repository), which makes the rule pass.
	RebasedOnTarget *bool
}

// NewMessageContext builds a Context from a raw commit message, splitting it
// into subject (first line) and body (everything after the first blank line,
// per git convention).
func NewMessageContext(message string) Context {
	message = strings.TrimRight(message, "\n")
	subject, body, _ := strings.Cut(message, "\n")
	return Context{
		Subject: strings.TrimSpace(subject),
		Body:    strings.TrimSpace(body),
		Message: message,
	}
}

// AuthorIdent returns the author in "Name <email>" form, or just the name
// when no email is known.
func (c Context) AuthorIdent() string {
	if c.AuthorEmail == "" {
		return c.AuthorName
	}
	return c.AuthorName + " <" + c.AuthorEmail + ">"
}
