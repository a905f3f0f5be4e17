package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nats-io/nats.go"

	"cardtracker/internal/config"
)

// conn is the subset of *nats.Conn used for publishing.
type conn interface {
	Publish(subj string, data []byte) error
	Drain() error
}

// NATSPublisher publishes events as JSON on "<prefix>.<action>" subjects.
type NATSPublisher struct {
	conn   conn
	prefix string
}

// ConnectNATS dials the broker described by cfg.
func ConnectNATS(cfg config.NATSConfig) (*NATSPublisher, error) {
	opts := []nats.Option{
		nats.Name("cardtracker"),
	}
	if cfg.Token != "" {
		opts = append(opts, nats.Token(cfg.Token))
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return newNATSPublisher(nc, cfg.SubjectPrefix), nil
}

func newNATSPublisher(c conn, prefix string) *NATSPublisher {
	if prefix == "" {
		prefix = "cards"
	}
	return &NATSPublisher{conn: c, prefix: prefix}
}

// Subject returns the subject an event type is published on, e.g. "cards.created".
func (p *NATSPublisher) Subject(t Type) string {
	action := string(t)
	if i := strings.LastIndexByte(action, '.'); i >= 0 {
		action = action[i+1:]
	}
	return p.prefix + "." + action
}

// Publish encodes e and hands it to the connection's outbound buffer.
func (p *NATSPublisher) Publish(ctx context.Context, e Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	if err := p.conn.Publish(p.Subject(e.Type), data); err != nil {
		return fmt.Errorf("publish %s: %w", e.Type, err)
	}
	return nil
}

// Close flushes pending messages and closes the connection.
func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}
