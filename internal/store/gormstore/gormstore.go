// Package gormstore implements store.Store on PostgreSQL via GORM.
package gormstore

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/openmart/storegate/internal/store"
)

// Store implements store.Store over a gorm connection.
type Store struct {
	db *gorm.DB
}

// Open connects to postgres and migrates the schema.
func Open(cfg store.Config) (*Store, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres store: %w", err)
	}

	err = db.AutoMigrate(
		&store.Role{},
		&store.User{},
		&store.Coupon{},
		&store.Discount{},
		&store.Cart{},
		&store.CartItem{},
		&store.Order{},
		&store.OrderProduct{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate store schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Users() store.UserStore         { return &userStore{db: s.db} }
func (s *Store) Carts() store.CartStore         { return &cartStore{db: s.db} }
func (s *Store) Orders() store.OrderStore       { return &orderStore{db: s.db} }
func (s *Store) Coupons() store.CouponStore     { return &couponStore{db: s.db} }
func (s *Store) Discounts() store.DiscountStore { return &discountStore{db: s.db} }

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// applyFilters translates wire-format filter names into column predicates.
// An unknown filter name matches nothing; silently dropping it would widen
// the result set instead of narrowing it.
func applyFilters(tx *gorm.DB, columns map[string]string, filters store.Filters) *gorm.DB {
	for field, value := range filters {
		column, ok := columns[field]
		if !ok {
			return tx.Where("1 = 0")
		}

		tx = tx.Where(fmt.Sprintf("%s = ?", column), value)
	}

	return tx
}

func paginate(tx *gorm.DB, q store.Query) *gorm.DB {
	return tx.Offset((q.Page - 1) * q.PageSize).Limit(q.PageSize)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}

	return err
}
