package store

import (
	"context"
	"sort"
	"sync"

	"github.com/sayhan-ahmed/crafty-server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-memory Store used by tests. It mirrors the mongo
// implementation's semantics: generated ObjectIDs, createdAt-descending
// listings, ErrNotFound on empty lookups.
type Memory struct {
	mu       sync.RWMutex
	products map[primitive.ObjectID]models.Product
	orders   map[primitive.ObjectID]models.Order
	users    map[primitive.ObjectID]models.User
}

func NewMemory() *Memory {
	return &Memory{
		products: make(map[primitive.ObjectID]models.Product),
		orders:   make(map[primitive.ObjectID]models.Order),
		users:    make(map[primitive.ObjectID]models.User),
	}
}

func (m *Memory) ListProducts(_ context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	products := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		products = append(products, p)
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (m *Memory) GetProduct(_ context.Context, id primitive.ObjectID) (models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	product, ok := m.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return product, nil
}

func (m *Memory) InsertProduct(_ context.Context, p *models.Product) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *p
	if stored.ID.IsZero() {
		stored.ID = primitive.NewObjectID()
	}
	m.products[stored.ID] = stored
	return stored.ID, nil
}

func (m *Memory) DeleteProduct(_ context.Context, id primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[id]; !ok {
		return 0, nil
	}
	delete(m.products, id)
	return 1, nil
}

func (m *Memory) InsertOrder(_ context.Context, o *models.Order) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *o
	if stored.ID.IsZero() {
		stored.ID = primitive.NewObjectID()
	}
	m.orders[stored.ID] = stored
	return stored.ID, nil
}

func (m *Memory) ListOrders(_ context.Context, email string) ([]models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	orders := []models.Order{}
	for _, o := range m.orders {
		if o.UserEmail == email {
			orders = append(orders, o)
		}
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (m *Memory) GetOrderForOwner(_ context.Context, id primitive.ObjectID, email string) (models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	order, ok := m.orders[id]
	if !ok || order.UserEmail != email {
		return models.Order{}, ErrNotFound
	}
	return order, nil
}

func (m *Memory) DeleteOrder(_ context.Context, id primitive.ObjectID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.orders[id]; !ok {
		return 0, nil
	}
	delete(m.orders, id)
	return 1, nil
}

func (m *Memory) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (m *Memory) InsertUser(_ context.Context, u *models.User) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Email == u.Email {
			return primitive.NilObjectID, ErrDuplicate
		}
	}

	stored := *u
	if stored.ID.IsZero() {
		stored.ID = primitive.NewObjectID()
	}
	m.users[stored.ID] = stored
	return stored.ID, nil
}
