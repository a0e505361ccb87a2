package objects

// UserProfile is the sanitized view of a user returned by profile operations.
// It never carries the password or the reset/confirmation tokens.
type UserProfile struct {
	ID          int      `json:"id"`
	Email       string   `json:"email"`
	Confirmed   bool     `json:"confirmed"`
	Blocked     bool     `json:"blocked"`
	Role        RoleInfo `json:"role"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	MobilePhone string   `json:"mobilePhone"`
	HomePhone   string   `json:"homePhone"`
	BirthDate   string   `json:"birthDate"`
	Country     string   `json:"country"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	ZipCode     string   `json:"zipCode"`
	Discount    *int     `json:"discount,omitempty"`
	UsedCoupons []int    `json:"used_coupons"`
	Wishlist    []int    `json:"wishlist"`
}

type RoleInfo struct {
	Type string `json:"type"`
	Name string `json:"name"`
}
