// Package validation holds the field validators applied to invitation requests.
// Each validator returns nil or a domain.FieldErrors keyed by the field it checked.
package validation

import (
	"context"
	"fmt"
	"strings"

	"invitationservice/internal/domain"
)

// InviteeLookup is the part of the repository the existence validators need.
type InviteeLookup interface {
	Exists(ctx context.Context, invitee string) (bool, error)
}

// Required fails when value was not supplied.
func Required(field string, value *string) domain.FieldErrors {
	if value == nil {
		return domain.FieldErrors{field: fmt.Sprintf("Required parameter '%s' not supplied", field)}
	}
	return nil
}

// Email accepts any value with exactly one "@". It is intentionally permissive.
func Email(value string) domain.FieldErrors {
	if strings.Count(value, "@") != 1 {
		return domain.FieldErrors{domain.FieldEmail: fmt.Sprintf("Incorrect email format: %s", value)}
	}
	return nil
}

// NonExistingInvitee fails when an invitee with the given name is already stored.
func NonExistingInvitee(ctx context.Context, repo InviteeLookup, name string) (domain.FieldErrors, error) {
	ok, err := repo.Exists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("check invitee exists: %w", err)
	}
	if ok {
		return InviteeExists(name), nil
	}
	return nil, nil
}

// ExistingInvitee fails when no invitee with the given name is stored.
func ExistingInvitee(ctx context.Context, repo InviteeLookup, name string) (domain.FieldErrors, error) {
	ok, err := repo.Exists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("check invitee exists: %w", err)
	}
	if !ok {
		return InviteeNotFound(name), nil
	}
	return nil, nil
}

// InviteeExists is the error reported for a name that is already on the list.
func InviteeExists(name string) domain.FieldErrors {
	return domain.FieldErrors{
		domain.FieldInvitee: fmt.Sprintf("Invitee '%s' already exists, probably you tried create it instead update.", name),
	}
}

// InviteeNotFound is the error reported for a name that is not on the list.
func InviteeNotFound(name string) domain.FieldErrors {
	return domain.FieldErrors{
		domain.FieldInvitee: fmt.Sprintf("Invitee '%s' not found, probably not invited yet or removed.", name),
	}
}
