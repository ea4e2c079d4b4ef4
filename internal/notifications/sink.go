package notifications

import (
	"context"
	"log/slog"

	"playbox/internal/logging"
	"playbox/internal/sticker"
)

// Sink bridges reward engine events to the notification service. Deliveries
// are synchronous so a short-lived command cannot exit with a push still in
// flight; the service's HTTP client bounds how long one send may take.
type Sink struct {
	service Service
	logger  *slog.Logger
}

// NewSink wraps a notification service as a reward event sink.
func NewSink(service Service, logger *slog.Logger) *Sink {
	return &Sink{
		service: service,
		logger:  logging.NewComponentLogger(logger, "notifications"),
	}
}

func (s *Sink) StickerUnlocked(eventID string, st sticker.Sticker) {
	if err := s.service.NotifyStickerUnlocked(context.Background(), st.Name); err != nil {
		s.logger.Warn("sticker notification failed",
			logging.Args(logging.String("event_id", eventID), logging.Error(err))...)
	}
}

func (s *Sink) BigRewardReached(eventID string) {
	if err := s.service.NotifyBigReward(context.Background()); err != nil {
		s.logger.Warn("big reward notification failed",
			logging.Args(logging.String("event_id", eventID), logging.Error(err))...)
	}
}
