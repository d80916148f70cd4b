package admins

import (
	"context"

	yall "yall.in"
)

// Messenger sends a plain-text message to a destination channel on the
// external messaging session. Implementations are only ever called from
// the Notifier's delivery goroutine, never concurrently.
type Messenger interface {
	SendMessage(ctx context.Context, channelID, content string) error
}

// Notifier relays announcement strings to one preconfigured channel on
// a best-effort basis. Announce never blocks the caller, and delivery
// failures stay inside the Notifier: they're logged, never retried, and
// never surfaced to whoever announced.
type Notifier struct {
	messenger Messenger
	channelID string
	log       *yall.Logger
	queue     chan string
}

// NewNotifier returns a Notifier delivering through messenger to
// channelID. Call Run on its own goroutine to start delivery.
func NewNotifier(messenger Messenger, channelID string, log *yall.Logger) *Notifier {
	return &Notifier{
		messenger: messenger,
		channelID: channelID,
		log:       log,
		queue:     make(chan string, 64),
	}
}

// Announce queues message for delivery. A nil Notifier, an absent
// messenger, or a full queue drops the message instead of blocking.
func (n *Notifier) Announce(message string) {
	if n == nil || n.messenger == nil {
		return
	}
	select {
	case n.queue <- message:
	default:
		n.log.WithField("message", message).Warn("Notification queue full, dropping message")
	}
}

// Run delivers queued messages until the context is cancelled. It is
// the sole consumer of the queue and the only caller of the Messenger,
// so the external session never sees concurrent sends.
func (n *Notifier) Run(ctx context.Context) {
	for {
		select {
		case message := <-n.queue:
			err := n.messenger.SendMessage(ctx, n.channelID, message)
			if err != nil {
				n.log.WithField("channel_id", n.channelID).WithError(err).Error("Error delivering notification")
			}
		case <-ctx.Done():
			return
		}
	}
}
