package domain

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"
)

// ErrNotFound is returned by repositories when a record does not exist.
var ErrNotFound = errors.New("not found")

// Invitee field names. They double as request parameter names and error keys.
const (
	FieldInvitee = "invitee"
	FieldEmail   = "email"
)

// Invitee is a named guest on the invitation list. Invitee (the name) is the primary key.
// swagger:model Invitee
type Invitee struct {
	Invitee string `json:"invitee"`
	Email   string `json:"email"`
}

// NewInvitee returns an Invitee with the given name and email.
func NewInvitee(invitee, email string) *Invitee {
	return &Invitee{Invitee: invitee, Email: email}
}

// FieldErrors maps a request field name to the message explaining why it was rejected.
// A non-empty FieldErrors is a validation failure.
type FieldErrors map[string]string

// Add records msg for field unless the field already has an error.
func (e FieldErrors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// Merge copies every error of other that is not already present in e.
func (e FieldErrors) Merge(other FieldErrors) {
	for field, msg := range other {
		e.Add(field, msg)
	}
}

// Err returns e as an error, or nil when e is empty.
func (e FieldErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e FieldErrors) Error() string {
	fields := slices.Sorted(maps.Keys(e))
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// InviteeRepository defines storage operations for invitees.
type InviteeRepository interface {
	// Exists reports whether an invitee with the given name is stored.
	Exists(ctx context.Context, invitee string) (bool, error)
	// Save inserts the invitee or, if it already exists, updates the fields that changed.
	Save(ctx context.Context, inv *Invitee) (*Invitee, error)
	// Get returns ErrNotFound when the invitee does not exist.
	Get(ctx context.Context, invitee string) (*Invitee, error)
	// List returns every invitee sorted ascending by name.
	List(ctx context.Context) ([]*Invitee, error)
	// Delete returns the removed invitee, or ErrNotFound when nothing was stored.
	Delete(ctx context.Context, invitee string) (*Invitee, error)
}

// InvitationService defines the invitation list operations exposed over HTTP.
// Validation failures are returned as FieldErrors.
type InvitationService interface {
	Create(ctx context.Context, invitee, email *string) (*Invitee, error)
	Retrieve(ctx context.Context, invitee string) (*Invitee, error)
	List(ctx context.Context) ([]*Invitee, error)
	Update(ctx context.Context, invitee, email *string) (*Invitee, error)
	Delete(ctx context.Context, invitee *string) error
}
