// Package natsclient wraps the NATS connection shared by the worker's
// scheduler and consumer, and names the subjects they meet on.
package natsclient

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const (
	// SubjectIngestTick carries the scheduled ingestion sweep signal.
	SubjectIngestTick = "SYSTEM_EVENTS.ingest.hourly"
	// QueueWorkers is the queue group workers join so each tick is
	// delivered to exactly one instance.
	QueueWorkers = "canpoli-workers"
)

// Client wraps a NATS connection.
type Client struct {
	Conn *nats.Conn
	Log  *zap.Logger
}

// NewClient connects to NATS. Reconnection is endless so a broker restart
// degrades the worker instead of killing it.
func NewClient(url string, logger *zap.Logger) (*Client, error) {
	nc, err := nats.Connect(url, nats.RetryOnFailedConnect(true), nats.MaxReconnects(-1))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info("NATS connected", zap.String("url", url))
	return &Client{Conn: nc, Log: logger}, nil
}

// Close drains and closes the underlying NATS connection. Drain flushes
// pending publishes and lets in-flight subscription callbacks finish before
// closing; Close alone would drop them.
func (c *Client) Close() {
	if c.Conn != nil {
		if err := c.Conn.Drain(); err != nil {
			c.Conn.Close()
		}
	}
}
