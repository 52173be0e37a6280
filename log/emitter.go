package log

import (
	"time"

	"github.com/delegate-go/delegate"
	"github.com/go-logr/logr"
)

// emitter traces invocations flowing through a connection.
type emitter struct {
	inner     *delegate.Connection
	logger    logr.Logger
	verbosity int
}

// Instrument wraps conn so each invocation is traced through logger
// at the given verbosity.  Results and errors pass through unchanged,
// keeping the delegation layer invisible in failure reporting.
func Instrument(
	conn      *delegate.Connection,
	logger    logr.Logger,
	verbosity int,
) *delegate.Connection {
	if conn == nil {
		panic("conn cannot be nil")
	}
	e := &emitter{conn, logger.WithName(connectionName(conn)), verbosity}
	return delegate.New(e.trace, delegate.Options{Label: conn.Label()})
}

func (e *emitter) trace(caller any, args ...any) (any, error) {
	log := e.logger.V(e.verbosity)
	log.Info("invoking delegate", "args", len(args))
	start := time.Now()
	result, err := e.inner.Invoke(caller, args...)
	if err != nil {
		e.logger.Error(err, "delegate failed",
			"duration", time.Since(start).String())
		return result, err
	}
	log.Info("delegate completed", "duration", time.Since(start).String())
	return result, nil
}

func connectionName(conn *delegate.Connection) string {
	if label := conn.Label(); label != "" {
		return label
	}
	return "delegate"
}
