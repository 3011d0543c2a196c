package events

// NoopPublisher drops every event. Used when no NATS servers are configured.
type NoopPublisher struct{}

// Publish does nothing
func (NoopPublisher) Publish(event Event) error {
	return nil
}
