package biz

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/openmart/storegate/internal/store"
	"github.com/openmart/storegate/internal/store/memstore"
)

func TestListOrders(t *testing.T) {
	s := memstore.New()
	svc := newOrderServiceForTest(s)

	alice := newTestUser(s, "alice@test.com", roleAuthenticated)
	bob := newTestUser(s, "bob@test.com", roleAuthenticated)

	s.SeedOrder(&store.Order{OwnerID: alice.ID, Status: "pending"})
	s.SeedOrder(&store.Order{OwnerID: alice.ID, Status: "shipped"})
	s.SeedOrder(&store.Order{OwnerID: bob.ID, Status: "pending"})

	t.Run("requires identity", func(t *testing.T) {
		_, _, err := svc.ListOrders(context.Background(), store.Query{})
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("returns only own orders", func(t *testing.T) {
		orders, total, err := svc.ListOrders(identityCtx(alice), store.Query{})
		require.NoError(t, err)
		require.Equal(t, 2, total)

		for _, order := range orders {
			require.Equal(t, alice.ID, order.OwnerID)
		}
	})

	t.Run("caller filters on other fields are preserved", func(t *testing.T) {
		orders, total, err := svc.ListOrders(identityCtx(alice), store.Query{
			Filters: store.Filters{"status": "pending"},
		})
		require.NoError(t, err)
		require.Equal(t, 1, total)
		require.Len(t, orders, 1)
		require.Equal(t, "pending", orders[0].Status)
	})

	t.Run("owner filter in the query cannot leak bob's orders", func(t *testing.T) {
		orders, _, err := svc.ListOrders(identityCtx(alice), store.Query{
			Filters: store.Filters{"owner": bob.ID},
		})
		require.NoError(t, err)

		for _, order := range orders {
			require.Equal(t, alice.ID, order.OwnerID)
		}
	})
}

func TestGetOrder(t *testing.T) {
	s := memstore.New()
	svc := newOrderServiceForTest(s)

	alice := newTestUser(s, "alice@test.com", roleAuthenticated)
	bob := newTestUser(s, "bob@test.com", roleAuthenticated)

	aliceOrder := s.SeedOrder(&store.Order{OwnerID: alice.ID})
	bobOrder := s.SeedOrder(&store.Order{OwnerID: bob.ID})

	t.Run("owner sees the order", func(t *testing.T) {
		order, err := svc.GetOrder(identityCtx(alice), aliceOrder.ID)
		require.NoError(t, err)
		require.NotNil(t, order.Owner)
		require.Equal(t, alice.ID, order.Owner.ID)
	})

	t.Run("unowned and missing collapse to the same denial", func(t *testing.T) {
		_, errOther := svc.GetOrder(identityCtx(alice), bobOrder.ID)
		_, errMissing := svc.GetOrder(identityCtx(alice), 9999)
		require.ErrorIs(t, errOther, ErrNotAuthorized)
		require.Equal(t, errOther, errMissing)
	})
}

func TestCreateOrder(t *testing.T) {
	s := memstore.New()
	svc := newOrderServiceForTest(s)

	alice := newTestUser(s, "alice@test.com", roleAuthenticated)
	bob := newTestUser(s, "bob@test.com", roleAuthenticated)

	t.Run("owner is stamped from the identity, not the payload", func(t *testing.T) {
		created, err := svc.CreateOrder(identityCtx(alice), CreateOrderInput{
			Owner: bob.ID,
			Products: []store.OrderProduct{
				{ProductID: 1, Quantity: 1, Price: decimal.NewFromInt(10)},
			},
		})
		require.NoError(t, err)
		require.Equal(t, alice.ID, created.OwnerID)
	})

	t.Run("total is computed from product lines when absent", func(t *testing.T) {
		created, err := svc.CreateOrder(identityCtx(alice), CreateOrderInput{
			Products: []store.OrderProduct{
				{ProductID: 1, Quantity: 2, Price: decimal.RequireFromString("9.99")},
				{ProductID: 2, Quantity: 1, Price: decimal.RequireFromString("5.00")},
			},
		})
		require.NoError(t, err)
		require.True(t, created.Total.Equal(decimal.RequireFromString("24.98")))
		require.Equal(t, "pending", created.Status)
	})

	t.Run("caller-supplied total is kept", func(t *testing.T) {
		created, err := svc.CreateOrder(identityCtx(alice), CreateOrderInput{
			Total:  decimal.RequireFromString("3.50"),
			Status: "paid",
		})
		require.NoError(t, err)
		require.True(t, created.Total.Equal(decimal.RequireFromString("3.50")))
		require.Equal(t, "paid", created.Status)
	})
}
