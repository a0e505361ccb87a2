// Package store defines the record store the server delegates to. The store
// is always an injected dependency; nothing in the server reaches for a
// global handle. Implementations live in gormstore (postgres) and memstore
// (in-memory, used by tests and the memory dialect).
package store

import "context"

// Query shapes a list operation: filter predicates, relation expansion and
// pagination. The zero value means "everything, first page".
type Query struct {
	Filters  Filters
	Populate []string
	Page     int
	PageSize int
}

// DefaultPageSize is applied when a query does not specify a page size.
const DefaultPageSize = 25

// Normalize fills in pagination defaults.
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = 1
	}

	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}

	return q
}

// UserStore persists user profiles. Update takes wire-format field names
// (firstName, zipCode, used_coupons, ...) as produced by the allow-list
// filter; implementations map them onto storage columns and relations.
type UserStore interface {
	FindByID(ctx context.Context, id int) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) (*User, error)
	Update(ctx context.Context, id int, fields map[string]any) (*User, error)
}

// CartStore persists carts. FindMany returns the matching page and the total
// number of matching records.
type CartStore interface {
	FindMany(ctx context.Context, q Query) ([]*Cart, int, error)
	FindOne(ctx context.Context, id int, populate ...string) (*Cart, error)
	Create(ctx context.Context, cart *Cart) (*Cart, error)
}

// OrderStore persists orders.
type OrderStore interface {
	FindMany(ctx context.Context, q Query) ([]*Order, int, error)
	FindOne(ctx context.Context, id int, populate ...string) (*Order, error)
	Create(ctx context.Context, order *Order) (*Order, error)
}

// CouponStore reads coupons. Coupons are looked up by their unique code or by
// membership of a user in their user set; they are never ownership-filtered.
type CouponStore interface {
	FindByCode(ctx context.Context, code string) (*Coupon, error)
	FindManyByUser(ctx context.Context, userID int) ([]*Coupon, error)
}

// DiscountStore reads discounts. A user's discount is the first discount
// whose user set contains the user.
type DiscountStore interface {
	FindFirstByUser(ctx context.Context, userID int) (*Discount, error)
}

// Store aggregates the per-resource stores.
type Store interface {
	Users() UserStore
	Carts() CartStore
	Orders() OrderStore
	Coupons() CouponStore
	Discounts() DiscountStore
	Close() error
}
