package gormstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/openmart/storegate/internal/store"
)

// orderFilterColumns maps wire-format filter names onto order columns.
var orderFilterColumns = map[string]string{
	"id":     "id",
	"owner":  "owner_id",
	"status": "status",
}

type orderStore struct {
	db *gorm.DB
}

func (os *orderStore) FindMany(ctx context.Context, q store.Query) ([]*store.Order, int, error) {
	q = q.Normalize()

	base := applyFilters(os.db.WithContext(ctx).Model(&store.Order{}), orderFilterColumns, q.Filters)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	tx := paginate(base.Session(&gorm.Session{}), q).
		Preload("Products").
		Order("id")

	for _, relation := range q.Populate {
		if relation == "owner" {
			tx = tx.Preload("Owner")
		}
	}

	var orders []*store.Order
	if err := tx.Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find orders: %w", err)
	}

	return orders, int(total), nil
}

func (os *orderStore) FindOne(ctx context.Context, id int, populate ...string) (*store.Order, error) {
	tx := os.db.WithContext(ctx).Preload("Products")

	for _, relation := range populate {
		if relation == "owner" {
			tx = tx.Preload("Owner")
		}
	}

	var order store.Order
	if err := tx.First(&order, id).Error; err != nil {
		return nil, notFound(err)
	}

	return &order, nil
}

func (os *orderStore) Create(ctx context.Context, order *store.Order) (*store.Order, error) {
	if err := os.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return os.FindOne(ctx, order.ID, "owner")
}
