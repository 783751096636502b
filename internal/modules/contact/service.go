package contact

import (
	"context"
	"errors"
	"strings"
	"time"

	"resort-backend/internal/domain"
	pkgvalidator "resort-backend/internal/pkg/validator"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, c *domain.Contact) error
	GetByID(ctx context.Context, id int64) (*domain.Contact, error)
	List(ctx context.Context) ([]domain.Contact, error)
	SaveReply(ctx context.Context, id int64, reply string, at time.Time) (*domain.Contact, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ContactStatus) error
}

type Mailer interface {
	Send(to, subject, body string) error
}

type Service struct {
	contacts Repository
	mailer   Mailer
	log      *zap.Logger
}

func NewService(contacts Repository, mailer Mailer, log *zap.Logger) *Service {
	return &Service{contacts: contacts, mailer: mailer, log: log}
}

func (s *Service) Create(ctx context.Context, req CreateContactRequest) (*domain.Contact, error) {
	c := &domain.Contact{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:   strings.TrimSpace(req.Phone),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
		Status:  domain.ContactNew,
	}
	if fields := pkgvalidator.Validate(c); fields != nil {
		return nil, ErrValidation
	}

	if err := s.contacts.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Contact, error) {
	return s.contacts.List(ctx)
}

// Get returns the message and moves a new message to read.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Contact, error) {
	c, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if c.Status == domain.ContactNew {
		if err := s.contacts.UpdateStatus(ctx, id, domain.ContactRead); err != nil {
			return nil, err
		}
		c.Status = domain.ContactRead
	}
	return c, nil
}

func (s *Service) SetStatus(ctx context.Context, id int64, status domain.ContactStatus) (*domain.Contact, error) {
	if err := s.contacts.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.contacts.GetByID(ctx, id)
}

// Reply stores the answer and mails it to the sender. Mail delivery is best
// effort, the reply is persisted either way.
func (s *Service) Reply(ctx context.Context, id int64, req ReplyRequest) (*domain.Contact, error) {
	reply := strings.TrimSpace(req.Reply)
	if reply == "" {
		return nil, ErrValidation
	}

	c, err := s.contacts.SaveReply(ctx, id, reply, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	subject := "Re: " + c.Subject
	if c.Subject == "" {
		subject = "Re: your message"
	}
	if err := s.mailer.Send(c.Email, subject, reply); err != nil {
		s.log.Warn("contact reply email failed",
			zap.Int64("contact_id", c.ID),
			zap.Error(err),
		)
	}
	return c, nil
}
