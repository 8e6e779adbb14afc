package notification

import (
	"context"
	"errors"
	"testing"

	"bhph_crm_backend/internal/events"
	"bhph_crm_backend/platform/logger"
)

type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) Send(_ context.Context, to, subject, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, subject)
	return nil
}

func scoredEvent(tier string) events.ApplicationScored {
	return events.ApplicationScored{
		BaseEvent:     events.NewBaseEvent(),
		LeadID:        7,
		ApplicationID: 42,
		Score:         30,
		RiskTier:      tier,
		Decision:      "Counter",
	}
}

func TestNotifierSendsOnTierD(t *testing.T) {
	sender := &fakeSender{}
	n := New(sender, "uw@dealer.example", logger.New("test"))

	if err := n.handleApplicationScored(context.Background(), scoredEvent("D")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(sender.sent))
	}
}

func TestNotifierIgnoresOtherTiers(t *testing.T) {
	sender := &fakeSender{}
	n := New(sender, "uw@dealer.example", logger.New("test"))

	for _, tier := range []string{"A", "B", "C", "Unknown"} {
		if err := n.handleApplicationScored(context.Background(), scoredEvent(tier)); err != nil {
			t.Fatalf("unexpected error for tier %s: %v", tier, err)
		}
	}
	if len(sender.sent) != 0 {
		t.Fatalf("expected no emails, got %d", len(sender.sent))
	}
}

func TestNotifierSwallowsSendFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp down")}
	n := New(sender, "uw@dealer.example", logger.New("test"))

	if err := n.handleApplicationScored(context.Background(), scoredEvent("D")); err != nil {
		t.Fatalf("send failure must not propagate, got %v", err)
	}
}
