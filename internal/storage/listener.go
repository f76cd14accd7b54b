package storage

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
)

// Channel is the NOTIFY channel the schema triggers publish table names on.
const Channel = "mctiers_changes"

// Listener consumes the change feed on a dedicated connection. The feed
// delivers one table name per remote insert/update/delete. Close releases
// the connection; it must be called exactly once when the feed is no
// longer needed so no live subscription leaks across restarts.
type Listener struct {
	conn   *pgx.Conn
	logger *slog.Logger
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Listen opens the change feed and invokes fn with the table name for
// every event until Close is called or ctx is canceled.
func Listen(ctx context.Context, url string, logger *slog.Logger, fn func(table string)) (*Listener, error) {
	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		return nil, err
	}
	if _, err := conn.Exec(ctx, "LISTEN "+Channel); err != nil {
		_ = conn.Close(ctx)
		return nil, err
	}

	runCtx, cancel := context.WithCancel(ctx)
	l := &Listener{
		conn:   conn,
		logger: logger,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go l.run(runCtx, fn)
	return l, nil
}

func (l *Listener) run(ctx context.Context, fn func(table string)) {
	defer close(l.done)
	for {
		notification, err := l.conn.WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() == nil {
				l.logger.Error("change feed interrupted", "error", err)
			}
			return
		}
		fn(notification.Payload)
	}
}

// Close stops the feed and releases the connection.
func (l *Listener) Close() {
	l.once.Do(func() {
		l.cancel()
		<-l.done
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = l.conn.Close(ctx)
	})
}
