package workers

import (
	"context"

	"github.com/contactkeeper/go-contact-keeper/internal/logger"
	"github.com/contactkeeper/go-contact-keeper/internal/notify"
)

// mailQueueSize bounds the number of pending email sends. When the queue is
// full, new messages are dropped: the system gives no delivery guarantee.
const mailQueueSize = 64

// MailWorker delivers confirmation email on a single background goroutine.
//
// Enqueue is fire-and-forget: the registration request returns before (and
// regardless of whether) the message is sent. There is no retry and no
// dead-letter handling; every failure is logged and swallowed.
type MailWorker struct {
	queue  chan notify.ConfirmationEmail
	sender notify.Sender
	logger *logger.Logger
	done   chan struct{}
}

// NewMailWorker constructs a MailWorker around the given sender.
func NewMailWorker(sender notify.Sender, logger *logger.Logger) *MailWorker {
	return &MailWorker{
		queue:  make(chan notify.ConfirmationEmail, mailQueueSize),
		sender: sender,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Enqueue hands a message to the worker without blocking. If the queue is
// full the message is dropped with a warning.
func (w *MailWorker) Enqueue(msg notify.ConfirmationEmail) {
	select {
	case w.queue <- msg:
	default:
		w.logger.Warn().Str("to", msg.To).Msg("mail queue full, confirmation email dropped")
	}
}

// Run starts the delivery loop in a background goroutine and returns
// immediately.
func (w *MailWorker) Run() {
	go w.loop()
}

// Stop closes the queue and blocks until every already-enqueued message has
// been attempted.
func (w *MailWorker) Stop() {
	close(w.queue)
	<-w.done
}

func (w *MailWorker) loop() {
	defer close(w.done)

	for msg := range w.queue {
		if err := w.sender.SendConfirmation(context.Background(), msg); err != nil {
			// Delivery failure is deliberately not propagated anywhere.
			w.logger.Err(err).Str("to", msg.To).Msg("confirmation email send failed")
			continue
		}

		w.logger.Info().Str("to", msg.To).Msg("confirmation email sent")
	}
}
