package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewMailer(t *testing.T) {
	tests := []struct {
		name     string
		config   MailerConfig
		wantType any
		wantErr  bool
	}{
		{"noop", MailerConfig{Provider: ProviderNoop}, &noopMailer{}, false},
		{"empty provider", MailerConfig{}, &noopMailer{}, false},
		{"unknown provider", MailerConfig{Provider: "carrier-pigeon"}, &noopMailer{}, false},
		{
			name: "ses",
			config: MailerConfig{
				Provider:    ProviderSES,
				FromAddress: "party@example.com",
				SES:         SESConfig{Region: "eu-west-1", AccessKeyID: "id", SecretAccessKey: "secret"},
			},
			wantType: &sesMailer{},
		},
		{"ses without from address", MailerConfig{Provider: ProviderSES}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMailer(tt.config, discardLogger())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, m)
		})
	}
}

func TestSESMailer_Send(t *testing.T) {
	client := &fakeSES{}
	m := newSESMailer(client, MailerConfig{FromAddress: "party@example.com", FromName: "Party"}, discardLogger())

	err := m.Send(context.Background(), "john@email.me", "Hi", "<p>hi</p>", "hi")
	require.NoError(t, err)

	require.NotNil(t, client.input)
	assert.Equal(t, "Party <party@example.com>", aws.ToString(client.input.Source))
	assert.Equal(t, []string{"john@email.me"}, client.input.Destination.ToAddresses)
	assert.Equal(t, "Hi", aws.ToString(client.input.Message.Subject.Data))
	assert.Equal(t, "<p>hi</p>", aws.ToString(client.input.Message.Body.Html.Data))
	assert.Equal(t, "hi", aws.ToString(client.input.Message.Body.Text.Data))
}

func TestSESMailer_SendOmitsEmptyBodies(t *testing.T) {
	client := &fakeSES{}
	m := newSESMailer(client, MailerConfig{FromAddress: "party@example.com"}, discardLogger())

	require.NoError(t, m.Send(context.Background(), "john@email.me", "Hi", "", "hi"))
	assert.Equal(t, "party@example.com", aws.ToString(client.input.Source))
	assert.Nil(t, client.input.Message.Body.Html)
}

func TestSESMailer_SendError(t *testing.T) {
	client := &fakeSES{err: errors.New("throttled")}
	m := newSESMailer(client, MailerConfig{FromAddress: "party@example.com"}, discardLogger())

	err := m.Send(context.Background(), "john@email.me", "Hi", "", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
}
