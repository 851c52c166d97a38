package memory

import (
	"context"
	"fmt"

	"invitationservice/internal/domain"
)

// InviteeSchema is the field list shared by invitee records. The name is the primary key.
var InviteeSchema = Schema{
	Fields:     []string{domain.FieldInvitee, domain.FieldEmail},
	PrimaryKey: domain.FieldInvitee,
}

type inviteeRepository struct {
	model *Model
}

// NewInviteeRepository returns a domain.InviteeRepository kept in store.
func NewInviteeRepository(store *Store) domain.InviteeRepository {
	model, err := NewModel(store, InviteeSchema)
	if err != nil {
		// InviteeSchema names its primary key among its fields.
		panic(err)
	}
	return &inviteeRepository{model: model}
}

func (r *inviteeRepository) Exists(ctx context.Context, invitee string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, ok := r.model.Get(invitee)
	return ok, nil
}

func (r *inviteeRepository) Save(ctx context.Context, inv *domain.Invitee) (*domain.Invitee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec, err := r.model.Save(Record{
		domain.FieldInvitee: inv.Invitee,
		domain.FieldEmail:   inv.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("save invitee: %w", err)
	}
	return toInvitee(rec), nil
}

func (r *inviteeRepository) Get(ctx context.Context, invitee string) (*domain.Invitee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec, ok := r.model.Get(invitee)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return toInvitee(rec), nil
}

func (r *inviteeRepository) List(ctx context.Context) ([]*domain.Invitee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	recs := r.model.List()
	invs := make([]*domain.Invitee, 0, len(recs))
	for _, rec := range recs {
		invs = append(invs, toInvitee(rec))
	}
	return invs, nil
}

func (r *inviteeRepository) Delete(ctx context.Context, invitee string) (*domain.Invitee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rec, ok := r.model.Delete(invitee)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return toInvitee(rec), nil
}

func toInvitee(rec Record) *domain.Invitee {
	return domain.NewInvitee(rec[domain.FieldInvitee], rec[domain.FieldEmail])
}
