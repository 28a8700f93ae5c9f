package service

import (
	"context"
	"sync"
	"time"

	"wealthview/internal/entity"
	"wealthview/pkg/logger"
)

// Watcher re-fetches a snapshot for a watched symbol on a fixed interval,
// the server-side counterpart of a mounted prediction view. The stream
// stops when the watch context is cancelled; no timers outlive a watch.
type Watcher struct {
	quotes   QuoteService
	interval time.Duration
	log      *logger.Logger
}

// NewWatcher creates a watcher with the given refresh interval.
func NewWatcher(quotes QuoteService, interval time.Duration, log *logger.Logger) *Watcher {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	return &Watcher{
		quotes:   quotes,
		interval: interval,
		log:      log,
	}
}

// Watch emits a snapshot immediately and then one per tick until ctx is
// cancelled. Each fetch is tagged with an increasing sequence number and a
// completion older than the newest delivered one is discarded, so a slow
// request can never overwrite a fresher result.
func (w *Watcher) Watch(ctx context.Context, symbol string) <-chan *entity.StockSnapshot {
	out := make(chan *entity.StockSnapshot, 1)

	go func() {
		var (
			wg        sync.WaitGroup
			seqMu     sync.Mutex
			seq       uint64
			sendMu    sync.Mutex
			delivered uint64
		)

		fetch := func() {
			seqMu.Lock()
			seq++
			fetchSeq := seq
			seqMu.Unlock()

			wg.Add(1)
			go func() {
				defer wg.Done()

				snapshot := w.quotes.GetQuote(ctx, symbol)

				// Guard and send under one lock so two in-flight
				// completions cannot reorder on the channel.
				sendMu.Lock()
				defer sendMu.Unlock()
				if fetchSeq <= delivered {
					w.log.Debug("Discarding stale snapshot",
						logger.StringField("symbol", symbol),
						logger.IntField("sequence", int(fetchSeq)))
					return
				}
				delivered = fetchSeq

				select {
				case out <- snapshot:
				case <-ctx.Done():
				}
			}()
		}

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		fetch()
		for {
			select {
			case <-ctx.Done():
				wg.Wait()
				close(out)
				return
			case <-ticker.C:
				fetch()
			}
		}
	}()

	return out
}
