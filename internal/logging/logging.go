// Package logging adds per-event structured-log enrichment on top of
// github.com/architus-bot/logs-core/pkg/logger.
package logging

import (
	"log/slog"

	"github.com/architus-bot/logs-core/pkg/logger"
)

// ForEvent returns a child logger carrying the standard set of attributes
// every normalization pass logs under: event_id, event_type, event_guild_id
// and event_ingress_timestamp (spec.md §6, §9).
func ForEvent(base *slog.Logger, eventID, eventType string, guildID, ingressTimestampMS uint64) *slog.Logger {
	return base.With(
		logger.EventID(eventID),
		logger.EventType(eventType),
		logger.GuildID(guildID),
		logger.IngressTimestamp(ingressTimestampMS),
	)
}
