package mail

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/ai-tejas-firodiya/Jain-Munis/config"
)

func newTestSMTPMailer(t *testing.T) *SMTPMailer {
	t.Helper()
	m, err := NewSMTPMailer(&config.MailConfig{
		SMTPHost: "smtp.example.org",
		SMTPPort: 587,
		Username: "digest",
		Password: "secret",
		From:     "noreply@example.org",
	})
	if err != nil {
		t.Fatalf("NewSMTPMailer: %v", err)
	}
	return m
}

func TestNew_PicksImplementation(t *testing.T) {
	logger := zap.NewNop()

	m, err := New(&config.MailConfig{}, logger)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := m.(*LogMailer); !ok {
		t.Error("expected LogMailer without smtp host")
	}

	m, err = New(&config.MailConfig{SMTPHost: "smtp.example.org", SMTPPort: 587}, logger)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := m.(*SMTPMailer); !ok {
		t.Error("expected SMTPMailer with smtp host")
	}
}

func TestSMTPMailer_BuildsMessageWithoutDialing(t *testing.T) {
	m := newTestSMTPMailer(t)

	gm, err := m.newMsg(Message{
		To:      []string{"a@example.org", "b@example.org"},
		Subject: "Upcoming arrivals",
		Body:    "line one\r\nline two\nline three",
	})
	if err != nil {
		t.Fatalf("newMsg: %v", err)
	}
	var buf bytes.Buffer
	if _, err := gm.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	raw := buf.String()

	for _, want := range []string{
		"noreply@example.org",
		"a@example.org",
		"b@example.org",
		"Subject: Upcoming arrivals\r\n",
		"Date: ",
		"text/plain",
		"line one\r\nline two\r\nline three",
	} {
		if !strings.Contains(raw, want) {
			t.Errorf("message missing %q:\n%s", want, raw)
		}
	}
	if strings.Contains(raw, "\r\r\n") {
		t.Errorf("existing CRLF doubled:\n%q", raw)
	}
}

func TestSMTPMailer_RejectsBadAddresses(t *testing.T) {
	m := newTestSMTPMailer(t)
	if _, err := m.newMsg(Message{To: []string{"not an address"}, Subject: "x"}); err == nil {
		t.Error("expected error for malformed recipient")
	}

	bad, err := NewSMTPMailer(&config.MailConfig{SMTPHost: "smtp.example.org", SMTPPort: 587, From: "@@"})
	if err != nil {
		t.Fatalf("NewSMTPMailer: %v", err)
	}
	if err := bad.Send(context.Background(), Message{To: []string{"a@example.org"}}); err == nil {
		t.Error("expected error for malformed sender")
	}
}

func TestSMTPMailer_NoRecipients(t *testing.T) {
	m, err := NewSMTPMailer(&config.MailConfig{SMTPHost: "127.0.0.1", SMTPPort: 1})
	if err != nil {
		t.Fatalf("NewSMTPMailer: %v", err)
	}
	if err := m.Send(context.Background(), Message{Subject: "x"}); err != nil {
		t.Errorf("expected no-op, got %v", err)
	}
}

func TestLogMailer_Send(t *testing.T) {
	if err := NewLogMailer(zap.NewNop()).Send(context.Background(), Message{To: []string{"a@example.org"}}); err != nil {
		t.Errorf("Send: %v", err)
	}
}
