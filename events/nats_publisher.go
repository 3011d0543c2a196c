package events

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

// NATSPublisher publishes events on core NATS subjects
type NATSPublisher struct {
	conn *nats.Conn
}

// ConnectNATS dials servers (comma separated) and returns a publisher
func ConnectNATS(servers string) (*NATSPublisher, error) {
	conn, err := nats.Connect(servers,
		nats.Name("schnose"),
		nats.MaxReconnects(10),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				log.WithError(err).Error("NATS disconnected with error")
			} else {
				log.Warn("NATS disconnected")
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("NATS reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	log.WithField("servers", servers).Info("Connected to NATS")
	return &NATSPublisher{conn: conn}, nil
}

// Publish wraps event in an envelope and sends it
func (p *NATSPublisher) Publish(event Event) error {
	data, err := encodeEnvelope(event, time.Now())
	if err != nil {
		return err
	}

	subject := Subject(event.Type())
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}

	log.WithFields(log.Fields{
		"subject":   subject,
		"eventType": event.Type(),
	}).Debug("Published event")
	return nil
}

// Close flushes pending messages and closes the connection
func (p *NATSPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		log.WithError(err).Warn("Failed to drain NATS connection")
		p.conn.Close()
	}
}
