package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/openmart/storegate/internal/authz"
	"github.com/openmart/storegate/internal/contexts"
	"github.com/openmart/storegate/internal/server/biz"
	"github.com/openmart/storegate/internal/store"
	"github.com/openmart/storegate/internal/store/memstore"
)

type testEnv struct {
	store  *memstore.Store
	router *gin.Engine
}

func newTestEnv(t *testing.T, identity *authz.Identity) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := memstore.New()

	carts := NewCartHandlers(CartHandlersParams{
		CartService: biz.NewCartService(biz.CartServiceParams{Store: s}),
	})
	orders := NewOrderHandlers(OrderHandlersParams{
		OrderService: biz.NewOrderService(biz.OrderServiceParams{Store: s}),
	})
	users := NewUserHandlers(UserHandlersParams{
		UserService: biz.NewUserService(biz.UserServiceParams{Store: s}),
	})
	auth := NewAuthHandlers(AuthHandlersParams{
		AuthService: biz.NewAuthService(biz.AuthServiceParams{
			Store:  s,
			Config: biz.AuthConfig{SecretKey: "test-secret"},
		}),
	})

	router := gin.New()

	if identity != nil {
		router.Use(func(c *gin.Context) {
			ctx := contexts.WithIdentity(c.Request.Context(), *identity)
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}

	router.POST("/auth/signin", auth.SignIn)
	router.GET("/api/carts", carts.Find)
	router.GET("/api/carts/:id", carts.FindOne)
	router.POST("/api/carts", carts.Create)
	router.GET("/api/orders", orders.Find)
	router.GET("/api/orders/:id", orders.FindOne)
	router.POST("/api/orders", orders.Create)
	router.PUT("/api/users/:id", users.Update)

	return &testEnv{store: s, router: router}
}

func (env *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	return w
}

func alice() *authz.Identity {
	return &authz.Identity{ID: 1, Role: authz.Role{Type: "authenticated", Name: "Authenticated"}}
}

func TestCartHandlers_Find(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		env := newTestEnv(t, nil)
		w := env.do(http.MethodGet, "/api/carts", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, w.Body.String(), "You must be logged in to view your cart.")
	})

	t.Run("returns only own carts", func(t *testing.T) {
		env := newTestEnv(t, alice())
		env.store.SeedCart(&store.Cart{UserID: 1})
		env.store.SeedCart(&store.Cart{UserID: 2})

		w := env.do(http.MethodGet, "/api/carts", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []store.Cart `json:"data"`
			Meta struct {
				Pagination struct {
					Total int `json:"total"`
				} `json:"pagination"`
			} `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		require.Equal(t, 1, resp.Data[0].UserID)
		require.Equal(t, 1, resp.Meta.Pagination.Total)
	})

	t.Run("owner filter cannot be overridden", func(t *testing.T) {
		env := newTestEnv(t, alice())
		env.store.SeedCart(&store.Cart{UserID: 2})

		w := env.do(http.MethodGet, "/api/carts?filters[user]=2", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []store.Cart `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Empty(t, resp.Data)
	})
}

func TestCartHandlers_FindOne(t *testing.T) {
	t.Run("own cart", func(t *testing.T) {
		env := newTestEnv(t, alice())
		cart := env.store.SeedCart(&store.Cart{UserID: 1})

		w := env.do(http.MethodGet, "/api/carts/1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"id":`+jsonInt(cart.ID))
	})

	t.Run("someone else's cart and missing cart are indistinguishable", func(t *testing.T) {
		env := newTestEnv(t, alice())
		env.store.SeedCart(&store.Cart{UserID: 2})

		foreign := env.do(http.MethodGet, "/api/carts/1", nil)
		missing := env.do(http.MethodGet, "/api/carts/999", nil)

		require.Equal(t, http.StatusUnauthorized, foreign.Code)
		require.Equal(t, http.StatusUnauthorized, missing.Code)
		require.JSONEq(t, foreign.Body.String(), missing.Body.String())
		require.Contains(t, foreign.Body.String(), "You are not authorized to view this cart.")
	})
}

func TestCartHandlers_Create(t *testing.T) {
	t.Run("owner is stamped from the identity", func(t *testing.T) {
		env := newTestEnv(t, alice())

		w := env.do(http.MethodPost, "/api/carts", map[string]any{
			"user":  42,
			"items": []map[string]any{{"productId": 5, "quantity": 2}},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data store.Cart `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, 1, resp.Data.UserID)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		env := newTestEnv(t, nil)
		w := env.do(http.MethodPost, "/api/carts", map[string]any{})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOrderHandlers(t *testing.T) {
	t.Run("find unauthenticated", func(t *testing.T) {
		env := newTestEnv(t, nil)
		w := env.do(http.MethodGet, "/api/orders", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, w.Body.String(), "You must be logged in to view your orders.")
	})

	t.Run("foreign order denied", func(t *testing.T) {
		env := newTestEnv(t, alice())
		env.store.SeedOrder(&store.Order{OwnerID: 2})

		w := env.do(http.MethodGet, "/api/orders/1", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, w.Body.String(), "You are not authorized to view this order.")
	})

	t.Run("create stamps the owner", func(t *testing.T) {
		env := newTestEnv(t, alice())

		w := env.do(http.MethodPost, "/api/orders", map[string]any{
			"owner": 42,
			"products": []map[string]any{
				{"productId": 5, "quantity": 1, "price": "19.90"},
			},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data store.Order `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, 1, resp.Data.OwnerID)
		require.True(t, resp.Data.Total.Equal(decimal.RequireFromString("19.90")))
	})
}

func TestUserHandlers_Update(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		env := newTestEnv(t, nil)
		w := env.do(http.MethodPut, "/api/users/1", map[string]any{"firstName": "Alice"})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, w.Body.String(), "Authentication required")
	})

	t.Run("role change rejected for standard users", func(t *testing.T) {
		env := newTestEnv(t, alice())
		env.store.SeedUser(&store.User{Email: "alice@test.com"})

		w := env.do(http.MethodPut, "/api/users/1", map[string]any{
			"firstName": "Alice",
			"role":      2,
		})
		require.Equal(t, http.StatusForbidden, w.Code)
		require.Contains(t, w.Body.String(), "Only administrators can modify user roles")

		user, err := env.store.Users().FindByID(t.Context(), 1)
		require.NoError(t, err)
		require.Empty(t, user.FirstName)
	})

	t.Run("no valid fields", func(t *testing.T) {
		env := newTestEnv(t, alice())
		env.store.SeedUser(&store.User{Email: "alice@test.com"})

		w := env.do(http.MethodPut, "/api/users/1", map[string]any{
			"email":    "evil@test.com",
			"password": "hacked",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "No valid fields to update")
	})

	t.Run("allowed fields update and response is sanitized", func(t *testing.T) {
		env := newTestEnv(t, alice())
		env.store.SeedUser(&store.User{
			Email:    "alice@test.com",
			Password: "secret-hash",
		})

		w := env.do(http.MethodPut, "/api/users/1", map[string]any{
			"firstName": "Alice",
			"city":      "Lisbon",
			"password":  "ignored",
		})
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"firstName":"Alice"`)
		require.NotContains(t, w.Body.String(), "secret-hash")
		require.NotContains(t, w.Body.String(), "password")
	})
}

func TestAuthHandlers_SignIn(t *testing.T) {
	env := newTestEnv(t, nil)

	hash, err := biz.HashPassword("correct horse")
	require.NoError(t, err)

	env.store.SeedUser(&store.User{
		Email:    "alice@test.com",
		Password: hash,
		Role:     &store.Role{ID: 1, Type: "authenticated", Name: "Authenticated"},
	})

	t.Run("wrong password", func(t *testing.T) {
		w := env.do(http.MethodPost, "/auth/signin", map[string]any{
			"email":    "alice@test.com",
			"password": "wrong",
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, w.Body.String(), "Invalid email or password")
	})

	t.Run("unknown email", func(t *testing.T) {
		w := env.do(http.MethodPost, "/auth/signin", map[string]any{
			"email":    "nobody@test.com",
			"password": "whatever",
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid credentials return a token and a sanitized user", func(t *testing.T) {
		w := env.do(http.MethodPost, "/auth/signin", map[string]any{
			"email":    "alice@test.com",
			"password": "correct horse",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp SignInResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Token)
		require.Equal(t, "alice@test.com", resp.User.Email)
		require.NotContains(t, w.Body.String(), hash)
	})
}

func TestFilterField(t *testing.T) {
	field, ok := filterField("filters[user]")
	require.True(t, ok)
	require.Equal(t, "user", field)

	_, ok = filterField("filters[]")
	require.False(t, ok)

	_, ok = filterField("page")
	require.False(t, ok)
}

func jsonInt(v int) string {
	b, _ := json.Marshal(v)

	return string(b)
}
