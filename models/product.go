package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a marketplace listing. Clients may send any extra fields
// they like; everything that is not a well-known field lands in Extra
// and is persisted alongside the rest of the document.
//
// The optional well-known fields are pointers so that an explicitly
// submitted zero value ("price": 0, "description": "") survives the
// round trip through the store instead of being dropped as absent.
type Product struct {
	ID          primitive.ObjectID     `bson:"_id,omitempty"`
	Name        *string                `bson:"name,omitempty"`
	Description *string                `bson:"description,omitempty"`
	Price       *float64               `bson:"price,omitempty"`
	Image       *string                `bson:"image,omitempty"`
	Email       string                 `bson:"email,omitempty"` // creator identity, required on create
	CreatedAt   time.Time              `bson:"createdAt"`
	Extra       map[string]interface{} `bson:",inline"`
}

// UnmarshalJSON pulls the well-known fields out of the request body and
// keeps whatever remains in Extra. The id and createdAt keys are
// server-owned and ignored on input. A well-known key carrying an
// unexpected type is kept in Extra as submitted rather than discarded.
func (p *Product) UnmarshalJSON(data []byte) error {
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	delete(doc, "id")
	delete(doc, "createdAt")

	if v, ok := doc["name"].(string); ok {
		p.Name = &v
		delete(doc, "name")
	}
	if v, ok := doc["description"].(string); ok {
		p.Description = &v
		delete(doc, "description")
	}
	if v, ok := doc["price"].(float64); ok {
		p.Price = &v
		delete(doc, "price")
	}
	if v, ok := doc["image"].(string); ok {
		p.Image = &v
		delete(doc, "image")
	}
	if v, ok := doc["email"].(string); ok {
		p.Email = v
		delete(doc, "email")
	}
	if len(doc) > 0 {
		p.Extra = doc
	}
	return nil
}

// MarshalJSON flattens Extra back into the top-level object so clients
// see the same shape they submitted.
func (p Product) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, len(p.Extra)+7)
	for k, v := range p.Extra {
		doc[k] = v
	}
	if !p.ID.IsZero() {
		doc["id"] = p.ID.Hex()
	}
	if p.Name != nil {
		doc["name"] = *p.Name
	}
	if p.Description != nil {
		doc["description"] = *p.Description
	}
	if p.Price != nil {
		doc["price"] = *p.Price
	}
	if p.Image != nil {
		doc["image"] = *p.Image
	}
	if p.Email != "" {
		doc["email"] = p.Email
	}
	if !p.CreatedAt.IsZero() {
		doc["createdAt"] = p.CreatedAt
	}
	return json.Marshal(doc)
}
