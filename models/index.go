package models

// Index is an entity-change event published on the events channel.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
	ItemId     string `json:"item_id,omitempty"`
	ItemType   string `json:"item_type,omitempty"`
}
