package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"invitationservice/internal/domain"
	"invitationservice/internal/validation"
)

type invitationService struct {
	repo         domain.InviteeRepository
	emailService domain.EmailService
	publicURL    string
	logger       *slog.Logger

	// writeMu serializes validate-then-write sequences so two concurrent creates
	// of the same name cannot both pass the non-existence check.
	writeMu sync.Mutex
}

// NewInvitationService returns an InvitationService over repo. emailService may be nil,
// in which case no invitation emails are sent.
func NewInvitationService(repo domain.InviteeRepository, emailService domain.EmailService, publicURL string, logger *slog.Logger) domain.InvitationService {
	return &invitationService{
		repo:         repo,
		emailService: emailService,
		publicURL:    publicURL,
		logger:       logger,
	}
}

func (s *invitationService) Create(ctx context.Context, invitee, email *string) (*domain.Invitee, error) {
	inv, err := s.create(ctx, invitee, email)
	if err != nil {
		return nil, err
	}
	s.sendInvitation(ctx, inv)
	return inv, nil
}

func (s *invitationService) create(ctx context.Context, invitee, email *string) (*domain.Invitee, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	errs := domain.FieldErrors{}
	if fe := validation.Required(domain.FieldInvitee, invitee); fe != nil {
		errs.Merge(fe)
	} else {
		fe, err := validation.NonExistingInvitee(ctx, s.repo, *invitee)
		if err != nil {
			return nil, err
		}
		errs.Merge(fe)
	}
	errs.Merge(validateEmail(email))
	if err := errs.Err(); err != nil {
		return nil, err
	}

	inv, err := s.repo.Save(ctx, domain.NewInvitee(*invitee, *email))
	if err != nil {
		return nil, fmt.Errorf("create invitee: %w", err)
	}
	return inv, nil
}

func (s *invitationService) Retrieve(ctx context.Context, invitee string) (*domain.Invitee, error) {
	fe, err := validation.ExistingInvitee(ctx, s.repo, invitee)
	if err != nil {
		return nil, err
	}
	if err := fe.Err(); err != nil {
		return nil, err
	}
	inv, err := s.repo.Get(ctx, invitee)
	if err != nil {
		// Removed between the check and the read.
		if errors.Is(err, domain.ErrNotFound) {
			return nil, validation.InviteeNotFound(invitee)
		}
		return nil, fmt.Errorf("get invitee: %w", err)
	}
	return inv, nil
}

func (s *invitationService) List(ctx context.Context) ([]*domain.Invitee, error) {
	invs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list invitees: %w", err)
	}
	if invs == nil {
		invs = []*domain.Invitee{}
	}
	return invs, nil
}

func (s *invitationService) Update(ctx context.Context, invitee, email *string) (*domain.Invitee, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	errs, err := s.validateExisting(ctx, invitee)
	if err != nil {
		return nil, err
	}
	errs.Merge(validateEmail(email))
	if err := errs.Err(); err != nil {
		return nil, err
	}

	inv, err := s.repo.Save(ctx, domain.NewInvitee(*invitee, *email))
	if err != nil {
		return nil, fmt.Errorf("update invitee: %w", err)
	}
	return inv, nil
}

func (s *invitationService) Delete(ctx context.Context, invitee *string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	errs, err := s.validateExisting(ctx, invitee)
	if err != nil {
		return err
	}
	if err := errs.Err(); err != nil {
		return err
	}

	if _, err := s.repo.Delete(ctx, *invitee); err != nil {
		return fmt.Errorf("delete invitee: %w", err)
	}
	return nil
}

func (s *invitationService) validateExisting(ctx context.Context, invitee *string) (domain.FieldErrors, error) {
	errs := domain.FieldErrors{}
	if fe := validation.Required(domain.FieldInvitee, invitee); fe != nil {
		errs.Merge(fe)
		return errs, nil
	}
	fe, err := validation.ExistingInvitee(ctx, s.repo, *invitee)
	if err != nil {
		return nil, err
	}
	errs.Merge(fe)
	return errs, nil
}

func validateEmail(email *string) domain.FieldErrors {
	if fe := validation.Required(domain.FieldEmail, email); fe != nil {
		return fe
	}
	return validation.Email(*email)
}

// sendInvitation mails the new invitee. Failures are logged; the invitee stays created.
func (s *invitationService) sendInvitation(ctx context.Context, inv *domain.Invitee) {
	if s.emailService == nil {
		return
	}
	data := &domain.InvitationEmailData{
		Invitee:   inv.Invitee,
		Email:     inv.Email,
		PublicURL: s.publicURL,
	}
	if err := s.emailService.SendInvitation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "invitation email failed", "invitee", inv.Invitee, "err", err)
	}
}
