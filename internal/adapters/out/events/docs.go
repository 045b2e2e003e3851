// Package events delivers order lifecycle notifications to the outside world.
//
// Publishers are chosen once at startup: Kafka for durable fan-out, Redis
// Pub/Sub for lightweight live updates, or Nop when nobody listens. Every
// publisher serializes ports.OrderEvent as JSON.
package events
