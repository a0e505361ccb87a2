package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role is a users-permissions role. Type "admin" and name "Administrator"
// grant elevated privilege.
type Role struct {
	ID   int    `gorm:"primaryKey"       json:"id"`
	Type string `gorm:"uniqueIndex"      json:"type"`
	Name string `                        json:"name"`
}

// User is a store account plus its personal profile fields. Password and the
// token fields are never returned to callers; response shaping strips them.
type User struct {
	ID                 int    `gorm:"primaryKey"  json:"id"`
	Email              string `gorm:"uniqueIndex" json:"email"`
	Password           string `json:"-"`
	ResetPasswordToken string `json:"-"`
	ConfirmationToken  string `json:"-"`
	Confirmed          bool   `json:"confirmed"`
	Blocked            bool   `json:"blocked"`

	RoleID int   `json:"-"`
	Role   *Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`

	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	MobilePhone string `json:"mobilePhone"`
	HomePhone   string `json:"homePhone"`
	BirthDate   string `json:"birthDate"`
	Country     string `json:"country"`
	Address     string `json:"address"`
	City        string `json:"city"`
	ZipCode     string `json:"zipCode"`

	DiscountID  *int      `json:"discount,omitempty"`
	UsedCoupons []*Coupon `gorm:"many2many:user_coupons" json:"used_coupons,omitempty"`
	Wishlist    []int     `gorm:"serializer:json"        json:"wishlist"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CartItem is a product line inside a cart.
type CartItem struct {
	ID        int             `gorm:"primaryKey" json:"id"`
	CartID    int             `gorm:"index"      json:"-"`
	ProductID int             `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric" json:"price"`
}

// Cart belongs to exactly one user; a user may own any number of carts.
// The owner field name on the wire is "user".
type Cart struct {
	ID     int         `gorm:"primaryKey" json:"id"`
	UserID int         `gorm:"index"      json:"-"`
	User   *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items  []CartItem  `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderProduct is a product line inside an order.
type OrderProduct struct {
	ID        int             `gorm:"primaryKey" json:"id"`
	OrderID   int             `gorm:"index"      json:"-"`
	ProductID int             `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric" json:"price"`
}

// Order is owned by the identity that created it. The owner field name on
// the wire is "owner".
type Order struct {
	ID       int             `gorm:"primaryKey" json:"id"`
	OwnerID  int             `gorm:"index"      json:"-"`
	Owner    *User           `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Products []OrderProduct  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"products"`
	Total    decimal.Decimal `gorm:"type:numeric" json:"total"`
	Status   string          `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Coupon is redeemable by the users in its user set. Any authenticated
// identity may look a coupon up by code.
type Coupon struct {
	ID     int             `gorm:"primaryKey"  json:"id"`
	Code   string          `gorm:"uniqueIndex" json:"code"`
	Amount decimal.Decimal `gorm:"type:numeric" json:"amount"`
	Users  []*User         `gorm:"many2many:user_coupons" json:"-"`
}

// Discount applies to the users in its user set.
type Discount struct {
	ID      int             `gorm:"primaryKey" json:"id"`
	Percent decimal.Decimal `gorm:"type:numeric" json:"percent"`
	Users   []*User         `gorm:"many2many:user_discounts" json:"-"`
}
