package notifier

import (
	"context"
	"fmt"

	"wealthview/pkg/logger"
)

// Reason classifies why the service fell back to synthetic or local data.
type Reason string

const (
	ReasonRateLimited   Reason = "rate_limited"
	ReasonProviderError Reason = "provider_error"
)

// Advisory is a non-blocking, user-facing notice that a degraded data
// source served a result.
type Advisory struct {
	Reason  Reason
	Symbol  string
	Message string
}

func (a Advisory) String() string {
	if a.Symbol == "" {
		return fmt.Sprintf("[%s] %s", a.Reason, a.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", a.Reason, a.Symbol, a.Message)
}

// Notifier delivers advisories. Implementations must never block the
// calling request path on delivery failures.
type Notifier interface {
	Notify(ctx context.Context, advisory Advisory)
}

type logNotifier struct {
	log *logger.Logger
}

// NewLogNotifier returns a notifier that surfaces advisories through the
// structured log.
func NewLogNotifier(log *logger.Logger) Notifier {
	return &logNotifier{log: log}
}

func (n *logNotifier) Notify(ctx context.Context, advisory Advisory) {
	n.log.WarnContext(ctx, "Data source advisory",
		logger.StringField("reason", string(advisory.Reason)),
		logger.StringField("symbol", advisory.Symbol),
		logger.StringField("message", advisory.Message))
}

type multiNotifier struct {
	notifiers []Notifier
}

// NewMultiNotifier fans an advisory out to every configured sink.
func NewMultiNotifier(notifiers ...Notifier) Notifier {
	return &multiNotifier{notifiers: notifiers}
}

func (n *multiNotifier) Notify(ctx context.Context, advisory Advisory) {
	for _, sink := range n.notifiers {
		sink.Notify(ctx, advisory)
	}
}
