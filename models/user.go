package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account. Email is the only identity the system
// knows; registration is idempotent on it. Arbitrary profile fields go
// into Extra. As with Product, optional well-known fields are pointers
// so an explicitly submitted empty value is kept.
type User struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty"`
	Email     string                 `bson:"email"`
	Name      *string                `bson:"name,omitempty"`
	Phone     *string                `bson:"phone,omitempty"`
	CreatedAt time.Time              `bson:"createdAt"`
	Extra     map[string]interface{} `bson:",inline"`
}

func (u *User) UnmarshalJSON(data []byte) error {
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	delete(doc, "id")
	delete(doc, "createdAt")

	if v, ok := doc["email"].(string); ok {
		u.Email = v
		delete(doc, "email")
	}
	if v, ok := doc["name"].(string); ok {
		u.Name = &v
		delete(doc, "name")
	}
	if v, ok := doc["phone"].(string); ok {
		u.Phone = &v
		delete(doc, "phone")
	}
	if len(doc) > 0 {
		u.Extra = doc
	}
	return nil
}

func (u User) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, len(u.Extra)+5)
	for k, v := range u.Extra {
		doc[k] = v
	}
	if !u.ID.IsZero() {
		doc["id"] = u.ID.Hex()
	}
	if u.Email != "" {
		doc["email"] = u.Email
	}
	if u.Name != nil {
		doc["name"] = *u.Name
	}
	if u.Phone != nil {
		doc["phone"] = *u.Phone
	}
	if !u.CreatedAt.IsZero() {
		doc["createdAt"] = u.CreatedAt
	}
	return json.Marshal(doc)
}
