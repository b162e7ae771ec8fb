package arb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/L3Sota/arbview/arb/model"
	"github.com/gregdel/pushover"
)

type Notifier interface {
	Notify(ctx context.Context, s model.Symbol, opps []model.Opportunity) error
}

// Notifiers fans a scan result out to every notifier.
type Notifiers []Notifier

func (ns Notifiers) Notify(ctx context.Context, s model.Symbol, opps []model.Opportunity) error {
	var errs []error
	for _, n := range ns {
		if err := n.Notify(ctx, s, opps); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Notify(_ context.Context, s model.Symbol, opps []model.Opportunity) error {
	logger := n.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("scan finished", "symbol", s, "opportunities", len(opps))
	return nil
}

type PushoverNotifier struct {
	p *pushover.Pushover
	r *pushover.Recipient
}

func NewPushoverNotifier(key, user string) *PushoverNotifier {
	return &PushoverNotifier{
		p: pushover.New(key),
		r: pushover.NewRecipient(user),
	}
}

// Notify sends a single push per scan. Empty scans are not pushed.
func (n *PushoverNotifier) Notify(ctx context.Context, s model.Symbol, opps []model.Opportunity) error {
	if len(opps) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := n.p.SendMessage(&pushover.Message{
		Title:   fmt.Sprintf("%v arbitrage", s),
		Message: Message(opps),
	}, n.r); err != nil {
		return fmt.Errorf("push: %w", err)
	}
	return nil
}

// Message renders one line per opportunity.
func Message(opps []model.Opportunity) string {
	lines := make([]string, 0, len(opps))
	for _, o := range opps {
		lines = append(lines, o.String())
	}
	return strings.Join(lines, "\n")
}
