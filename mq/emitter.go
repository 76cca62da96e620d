package mq

import (
	"context"
	"encoding/json"
	"log"

	"talentrack/models"
	"talentrack/rdx"
)

const eventsChannel = "entity-events"

// Emit publishes an entity-change event to Redis. Callers fire it from a
// goroutine after the request commits, so it runs on a detached context.
// Emission failures are logged and dropped; events only feed derived data,
// never the record of truth.
func Emit(eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), eventsChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s: %v", eventName, err)
	}
}
