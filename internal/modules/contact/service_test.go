package contact

import (
	"context"
	"testing"

	"resort-backend/internal/database"
	"resort-backend/internal/domain"
	"resort-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingMailer struct {
	to      string
	subject string
	body    string
	sent    int
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.to, m.subject, m.body = to, subject, body
	m.sent++
	return nil
}

func newService(t *testing.T) (*Service, *recordingMailer) {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	m := &recordingMailer{}
	return NewService(repository.NewContactRepository(db), m, zap.NewNop()), m
}

func TestCreate_StartsAsNew(t *testing.T) {
	svc, _ := newService(t)
	msg, err := svc.Create(context.Background(), CreateContactRequest{
		Name:    "Alice",
		Email:   "Alice@Example.com",
		Message: "Do you allow pets?",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ContactNew, msg.Status)
	assert.Equal(t, "alice@example.com", msg.Email)
}

func TestCreate_Invalid(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateContactRequest{Name: "Alice", Email: "not-an-email", Message: "hi"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, CreateContactRequest{Name: "Alice", Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGet_MarksRead(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	msg, err := svc.Create(ctx, CreateContactRequest{Name: "A", Email: "a@b.c", Message: "hi"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ContactRead, got.Status)
}

func TestReply_SendsMailAndMarksReplied(t *testing.T) {
	svc, mailer := newService(t)
	ctx := context.Background()

	msg, err := svc.Create(ctx, CreateContactRequest{
		Name: "A", Email: "a@b.c", Subject: "Pets", Message: "Do you allow pets?",
	})
	require.NoError(t, err)

	replied, err := svc.Reply(ctx, msg.ID, ReplyRequest{Reply: "Yes, small dogs are welcome."})
	require.NoError(t, err)

	assert.Equal(t, domain.ContactReplied, replied.Status)
	assert.Equal(t, "Yes, small dogs are welcome.", replied.Reply)
	require.NotNil(t, replied.RepliedAt)

	assert.Equal(t, 1, mailer.sent)
	assert.Equal(t, "a@b.c", mailer.to)
	assert.Equal(t, "Re: Pets", mailer.subject)
}

func TestSetStatus(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	msg, err := svc.Create(ctx, CreateContactRequest{Name: "A", Email: "a@b.c", Message: "hi"})
	require.NoError(t, err)

	got, err := svc.SetStatus(ctx, msg.ID, domain.ContactReplied)
	require.NoError(t, err)
	assert.Equal(t, domain.ContactReplied, got.Status)

	_, err = svc.SetStatus(ctx, 9999, domain.ContactRead)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReply_Unknown(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Reply(context.Background(), 9999, ReplyRequest{Reply: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}
