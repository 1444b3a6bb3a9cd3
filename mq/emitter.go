package mq

import (
	"context"
	"encoding/json"
	"log"
	"nabatea/rdx"
)

// Event describes a document change other services care about (export
// workers, the ops dashboard). Delivery is fire-and-forget.
type Event struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
}

const channel = "reservation-events"

// Emit publishes an event to Redis; failures are logged and swallowed so
// a down broker never blocks a save.
func Emit(ctx context.Context, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, channel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish event to Redis: %v", err)
	}
}
