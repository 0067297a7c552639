package mail

import (
	"account-service/internal/metrics"
	"account-service/internal/worker"

	"github.com/rs/zerolog"
)

// Dispatcher routes messages either through the caller (sync) or through
// the worker pool (async). Async delivery is at-most-once: failures are
// logged and counted, never retried.
type Dispatcher struct {
	sender Sender
	pool   worker.Pool
	log    zerolog.Logger
}

func NewDispatcher(sender Sender, workers int, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		pool:   worker.NewPool(workers),
		log:    log,
	}
}

// Send delivers msg. With sync=true the transport error is returned to the
// caller; otherwise the send is queued and the call returns immediately.
func (d *Dispatcher) Send(msg Message, sync bool) error {
	if sync {
		err := d.sender.Send(msg)
		metrics.ObserveEmail("sync", err)
		return err
	}
	d.pool.Submit(func() {
		err := d.sender.Send(msg)
		metrics.ObserveEmail("async", err)
		if err != nil {
			d.log.Error().Err(err).Str("subject", msg.Subject).Msg("async mail delivery failed")
		}
	})
	return nil
}

// Stop drains queued sends and stops the pool.
func (d *Dispatcher) Stop() {
	d.pool.Stop()
}
