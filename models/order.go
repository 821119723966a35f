package models

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order records a purchase intent for a single product. The product's
// fields are denormalized into the order at creation time, so the order
// stays readable even if the product document disappears later.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OrderRef  string             `bson:"orderRef" json:"orderRef"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Product   Product            `bson:"product" json:"product"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// NewOrderFor builds the order recorded alongside a newly created
// product. The product must already have its identifier assigned.
func NewOrderFor(p Product) Order {
	return Order{
		OrderRef:  newOrderRef(),
		UserEmail: p.Email,
		ProductID: p.ID,
		Product:   p,
		CreatedAt: time.Now(),
	}
}

// newOrderRef generates a unique order reference.
// Example: 20250908130500-<uuid4>
func newOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
