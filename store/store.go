package store

import (
	"context"
	"errors"

	"github.com/sayhan-ahmed/crafty-server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicate is returned when an insert collides with a unique
	// key (a user's email).
	ErrDuplicate = errors.New("document already exists")
)

// Store is the data-access boundary for the three collections. A single
// implementation is constructed at startup and injected into every
// handler; handlers never touch a database client directly.
//
// Insert methods generate an identifier when the document has none and
// keep an already-assigned one, so a previously fetched document can be
// re-inserted as a compensating action.
type Store interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id primitive.ObjectID) (models.Product, error)
	InsertProduct(ctx context.Context, p *models.Product) (primitive.ObjectID, error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) (int64, error)

	InsertOrder(ctx context.Context, o *models.Order) (primitive.ObjectID, error)
	ListOrders(ctx context.Context, email string) ([]models.Order, error)
	GetOrderForOwner(ctx context.Context, id primitive.ObjectID, email string) (models.Order, error)
	DeleteOrder(ctx context.Context, id primitive.ObjectID) (int64, error)

	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	InsertUser(ctx context.Context, u *models.User) (primitive.ObjectID, error)
}
