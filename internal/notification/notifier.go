// Package notification turns domain events into emails for the
// underwriting desk.
package notification

import (
	"context"
	"fmt"

	"bhph_crm_backend/internal/email"
	"bhph_crm_backend/internal/events"
	"bhph_crm_backend/platform/logger"
)

// Notifier emails the underwriting manager when an application scores into
// tier D. Delivery failures are logged, never propagated: a down mail
// server must not affect scoring.
type Notifier struct {
	sender     email.Sender
	alertEmail string
	log        *logger.Logger
}

func New(sender email.Sender, alertEmail string, log *logger.Logger) *Notifier {
	return &Notifier{sender: sender, alertEmail: alertEmail, log: log}
}

// Register subscribes the notifier to scoring events.
func (n *Notifier) Register(bus events.Bus) {
	bus.Subscribe(events.ApplicationScored{}.EventName(), events.HandlerFunc(n.handleApplicationScored))
}

func (n *Notifier) handleApplicationScored(ctx context.Context, event events.Event) error {
	e, ok := event.(events.ApplicationScored)
	if !ok {
		return nil
	}
	if e.RiskTier != "D" || n.alertEmail == "" {
		return nil
	}

	subject := fmt.Sprintf("Tier D application #%d needs review", e.ApplicationID)
	body := fmt.Sprintf(
		"Lead #%d scored %d (tier %s, decision %s) on application #%d.\n",
		e.LeadID, e.Score, e.RiskTier, e.Decision, e.ApplicationID,
	)

	if err := n.sender.Send(ctx, n.alertEmail, subject, body); err != nil {
		n.log.Error("tier D alert email failed",
			"error", err,
			"leadId", e.LeadID,
			"applicationId", e.ApplicationID,
		)
	}
	return nil
}
