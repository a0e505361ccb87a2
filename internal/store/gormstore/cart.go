package gormstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/openmart/storegate/internal/store"
)

// cartFilterColumns maps wire-format filter names onto cart columns.
var cartFilterColumns = map[string]string{
	"id":   "id",
	"user": "user_id",
}

type cartStore struct {
	db *gorm.DB
}

func (cs *cartStore) FindMany(ctx context.Context, q store.Query) ([]*store.Cart, int, error) {
	q = q.Normalize()

	base := applyFilters(cs.db.WithContext(ctx).Model(&store.Cart{}), cartFilterColumns, q.Filters)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count carts: %w", err)
	}

	tx := paginate(base.Session(&gorm.Session{}), q).
		Preload("Items").
		Order("id")

	for _, relation := range q.Populate {
		if relation == "user" {
			tx = tx.Preload("User")
		}
	}

	var carts []*store.Cart
	if err := tx.Find(&carts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find carts: %w", err)
	}

	return carts, int(total), nil
}

func (cs *cartStore) FindOne(ctx context.Context, id int, populate ...string) (*store.Cart, error) {
	tx := cs.db.WithContext(ctx).Preload("Items")

	for _, relation := range populate {
		if relation == "user" {
			tx = tx.Preload("User")
		}
	}

	var cart store.Cart
	if err := tx.First(&cart, id).Error; err != nil {
		return nil, notFound(err)
	}

	return &cart, nil
}

func (cs *cartStore) Create(ctx context.Context, cart *store.Cart) (*store.Cart, error) {
	if err := cs.db.WithContext(ctx).Create(cart).Error; err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	return cs.FindOne(ctx, cart.ID, "user")
}
