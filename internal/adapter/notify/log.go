// Package notify delivers user-facing notifications. The daemon has no
// display of its own, so notifications are written to the structured log
// where a supervising client can pick them up.
package notify

import (
	"context"

	"github.com/rs/zerolog"
)

// LogNotifier emits notifications as log events.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, title, body string) error {
	n.log.Info().Str("title", title).Str("body", body).Msg("notification")
	return nil
}
