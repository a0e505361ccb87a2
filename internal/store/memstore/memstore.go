// Package memstore is a mutex-guarded in-memory store.Store. It backs the
// memory dialect and every service-level test, playing the role a throwaway
// database would otherwise play.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/spf13/cast"

	"github.com/openmart/storegate/internal/store"
)

// Store implements store.Store over process memory.
type Store struct {
	mu        sync.RWMutex
	users     map[int]*store.User
	carts     map[int]*store.Cart
	orders    map[int]*store.Order
	coupons   map[int]*store.Coupon
	discounts []*store.Discount
	nextID    int
}

// New creates an empty store.
func New() *Store {
	return &Store{
		users:   map[int]*store.User{},
		carts:   map[int]*store.Cart{},
		orders:  map[int]*store.Order{},
		coupons: map[int]*store.Coupon{},
		nextID:  1,
	}
}

func (s *Store) Users() store.UserStore         { return &userStore{s} }
func (s *Store) Carts() store.CartStore         { return &cartStore{s} }
func (s *Store) Orders() store.OrderStore       { return &orderStore{s} }
func (s *Store) Coupons() store.CouponStore     { return &couponStore{s} }
func (s *Store) Discounts() store.DiscountStore { return &discountStore{s} }

func (s *Store) Close() error { return nil }

// allocID must be called with the write lock held.
func (s *Store) allocID(id int) int {
	if id == 0 {
		id = s.nextID
	}

	if id >= s.nextID {
		s.nextID = id + 1
	}

	return id
}

// SeedUser inserts a user, assigning an id when absent.
func (s *Store) SeedUser(user *store.User) *store.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.allocID(user.ID)
	s.users[user.ID] = user

	return user
}

// SeedCart inserts a cart, assigning an id when absent.
func (s *Store) SeedCart(cart *store.Cart) *store.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart.ID = s.allocID(cart.ID)
	s.carts[cart.ID] = cart

	return cart
}

// SeedOrder inserts an order, assigning an id when absent.
func (s *Store) SeedOrder(order *store.Order) *store.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = s.allocID(order.ID)
	s.orders[order.ID] = order

	return order
}

// SeedCoupon inserts a coupon, assigning an id when absent.
func (s *Store) SeedCoupon(coupon *store.Coupon) *store.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()

	coupon.ID = s.allocID(coupon.ID)
	s.coupons[coupon.ID] = coupon

	return coupon
}

// SeedDiscount appends a discount, assigning an id when absent. Order of
// insertion is preserved; FindFirstByUser returns the earliest match.
func (s *Store) SeedDiscount(discount *store.Discount) *store.Discount {
	s.mu.Lock()
	defer s.mu.Unlock()

	discount.ID = s.allocID(discount.ID)
	s.discounts = append(s.discounts, discount)

	return discount
}

type userStore struct{ s *Store }

func (us *userStore) FindByID(_ context.Context, id int) (*store.User, error) {
	us.s.mu.RLock()
	defer us.s.mu.RUnlock()

	user, ok := us.s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	return cloneUser(user), nil
}

func (us *userStore) FindByEmail(_ context.Context, email string) (*store.User, error) {
	us.s.mu.RLock()
	defer us.s.mu.RUnlock()

	for _, user := range us.s.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}

	return nil, store.ErrNotFound
}

func (us *userStore) Create(_ context.Context, user *store.User) (*store.User, error) {
	us.s.mu.Lock()
	defer us.s.mu.Unlock()

	user.ID = us.s.allocID(user.ID)
	us.s.users[user.ID] = cloneUser(user)

	return cloneUser(user), nil
}

func (us *userStore) Update(_ context.Context, id int, fields map[string]any) (*store.User, error) {
	us.s.mu.Lock()
	defer us.s.mu.Unlock()

	user, ok := us.s.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	for name, value := range fields {
		switch name {
		case "firstName":
			user.FirstName = cast.ToString(value)
		case "lastName":
			user.LastName = cast.ToString(value)
		case "mobilePhone":
			user.MobilePhone = cast.ToString(value)
		case "homePhone":
			user.HomePhone = cast.ToString(value)
		case "birthDate":
			user.BirthDate = cast.ToString(value)
		case "country":
			user.Country = cast.ToString(value)
		case "address":
			user.Address = cast.ToString(value)
		case "city":
			user.City = cast.ToString(value)
		case "zipCode":
			user.ZipCode = cast.ToString(value)
		case "discount":
			discountID := cast.ToInt(value)
			user.DiscountID = &discountID
		case "used_coupons":
			couponIDs := cast.ToIntSlice(value)
			coupons := make([]*store.Coupon, 0, len(couponIDs))

			for _, couponID := range couponIDs {
				if coupon, ok := us.s.coupons[couponID]; ok {
					coupons = append(coupons, coupon)
				}
			}

			user.UsedCoupons = coupons
		case "wishlist":
			user.Wishlist = cast.ToIntSlice(value)
		case "role":
			roleID := cast.ToInt(value)
			user.RoleID = roleID
		}
	}

	return cloneUser(user), nil
}

type cartStore struct{ s *Store }

func (cs *cartStore) FindMany(_ context.Context, q store.Query) ([]*store.Cart, int, error) {
	cs.s.mu.RLock()
	defer cs.s.mu.RUnlock()

	q = q.Normalize()

	var matched []*store.Cart

	for _, cart := range cs.s.carts {
		if matchCart(cart, q.Filters) {
			matched = append(matched, cart)
		}
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)
	matched = page(matched, q.Page, q.PageSize)

	results := make([]*store.Cart, 0, len(matched))
	for _, cart := range matched {
		results = append(results, cs.populate(cloneCart(cart), q.Populate))
	}

	return results, total, nil
}

func (cs *cartStore) FindOne(_ context.Context, id int, populate ...string) (*store.Cart, error) {
	cs.s.mu.RLock()
	defer cs.s.mu.RUnlock()

	cart, ok := cs.s.carts[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	return cs.populate(cloneCart(cart), populate), nil
}

func (cs *cartStore) Create(_ context.Context, cart *store.Cart) (*store.Cart, error) {
	cs.s.mu.Lock()
	defer cs.s.mu.Unlock()

	cart.ID = cs.s.allocID(cart.ID)
	cs.s.carts[cart.ID] = cloneCart(cart)

	return cs.populate(cloneCart(cart), []string{"user"}), nil
}

func (cs *cartStore) populate(cart *store.Cart, populate []string) *store.Cart {
	for _, relation := range populate {
		if relation == "user" {
			if user, ok := cs.s.users[cart.UserID]; ok {
				cart.User = cloneUser(user)
			}
		}
	}

	return cart
}

func matchCart(cart *store.Cart, filters store.Filters) bool {
	for field, value := range filters {
		switch field {
		case "user":
			if cart.UserID != cast.ToInt(value) {
				return false
			}
		case "id":
			if cart.ID != cast.ToInt(value) {
				return false
			}
		default:
			// Unknown predicate: match nothing rather than leak.
			return false
		}
	}

	return true
}

type orderStore struct{ s *Store }

func (os *orderStore) FindMany(_ context.Context, q store.Query) ([]*store.Order, int, error) {
	os.s.mu.RLock()
	defer os.s.mu.RUnlock()

	q = q.Normalize()

	var matched []*store.Order

	for _, order := range os.s.orders {
		if matchOrder(order, q.Filters) {
			matched = append(matched, order)
		}
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)
	matched = page(matched, q.Page, q.PageSize)

	results := make([]*store.Order, 0, len(matched))
	for _, order := range matched {
		results = append(results, os.populate(cloneOrder(order), q.Populate))
	}

	return results, total, nil
}

func (os *orderStore) FindOne(_ context.Context, id int, populate ...string) (*store.Order, error) {
	os.s.mu.RLock()
	defer os.s.mu.RUnlock()

	order, ok := os.s.orders[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	return os.populate(cloneOrder(order), populate), nil
}

func (os *orderStore) Create(_ context.Context, order *store.Order) (*store.Order, error) {
	os.s.mu.Lock()
	defer os.s.mu.Unlock()

	order.ID = os.s.allocID(order.ID)
	os.s.orders[order.ID] = cloneOrder(order)

	return os.populate(cloneOrder(order), []string{"owner"}), nil
}

func (os *orderStore) populate(order *store.Order, populate []string) *store.Order {
	for _, relation := range populate {
		if relation == "owner" {
			if user, ok := os.s.users[order.OwnerID]; ok {
				order.Owner = cloneUser(user)
			}
		}
	}

	return order
}

func matchOrder(order *store.Order, filters store.Filters) bool {
	for field, value := range filters {
		switch field {
		case "owner":
			if order.OwnerID != cast.ToInt(value) {
				return false
			}
		case "status":
			if order.Status != cast.ToString(value) {
				return false
			}
		case "id":
			if order.ID != cast.ToInt(value) {
				return false
			}
		default:
			return false
		}
	}

	return true
}

type couponStore struct{ s *Store }

func (cs *couponStore) FindByCode(_ context.Context, code string) (*store.Coupon, error) {
	cs.s.mu.RLock()
	defer cs.s.mu.RUnlock()

	for _, coupon := range cs.s.coupons {
		if coupon.Code == code {
			clone := *coupon
			return &clone, nil
		}
	}

	return nil, store.ErrNotFound
}

func (cs *couponStore) FindManyByUser(_ context.Context, userID int) ([]*store.Coupon, error) {
	cs.s.mu.RLock()
	defer cs.s.mu.RUnlock()

	var results []*store.Coupon

	for _, coupon := range cs.s.coupons {
		for _, user := range coupon.Users {
			if user.ID == userID {
				clone := *coupon
				results = append(results, &clone)

				break
			}
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })

	return results, nil
}

type discountStore struct{ s *Store }

func (ds *discountStore) FindFirstByUser(_ context.Context, userID int) (*store.Discount, error) {
	ds.s.mu.RLock()
	defer ds.s.mu.RUnlock()

	for _, discount := range ds.s.discounts {
		for _, user := range discount.Users {
			if user.ID == userID {
				clone := *discount
				return &clone, nil
			}
		}
	}

	return nil, store.ErrNotFound
}

func page[T any](items []T, pageNum, pageSize int) []T {
	start := (pageNum - 1) * pageSize
	if start >= len(items) {
		return nil
	}

	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

func cloneUser(user *store.User) *store.User {
	clone := *user
	clone.Wishlist = append([]int(nil), user.Wishlist...)
	clone.UsedCoupons = append([]*store.Coupon(nil), user.UsedCoupons...)

	return &clone
}

func cloneCart(cart *store.Cart) *store.Cart {
	clone := *cart
	clone.Items = append([]store.CartItem(nil), cart.Items...)

	return &clone
}

func cloneOrder(order *store.Order) *store.Order {
	clone := *order
	clone.Products = append([]store.OrderProduct(nil), order.Products...)

	return &clone
}
