package entity

import (
	"encoding/json"
	"maps"
	"time"
)

type Category struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Name        string    `json:"name" gorm:"uniqueIndex"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	// Document holds every stored field, keyed as persisted, for stores
	// without a fixed category schema. When set it is the JSON shape.
	Document map[string]any `json:"-" gorm:"-"`
}

func (c Category) MarshalJSON() ([]byte, error) {
	if c.Document == nil {
		type fields Category
		return json.Marshal(fields(c))
	}

	out := make(map[string]any, len(c.Document)+1)
	maps.Copy(out, c.Document)
	out["id"] = c.ID
	return json.Marshal(out)
}
