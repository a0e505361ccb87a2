package biz

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/fx"

	"github.com/openmart/storegate/internal/authz"
	"github.com/openmart/storegate/internal/contexts"
	"github.com/openmart/storegate/internal/objects"
	"github.com/openmart/storegate/internal/store"
)

type UserServiceParams struct {
	fx.In

	Store store.Store
}

func NewUserService(params UserServiceParams) *UserService {
	return &UserService{
		AbstractService: &AbstractService{store: params.Store},
	}
}

// UserService enforces the profile mutation rules: self-or-admin target
// check, field allow-list, role-elevation guard and response sanitization.
type UserService struct {
	*AbstractService
}

// GetProfile returns the sanitized profile of the given user.
func (s *UserService) GetProfile(ctx context.Context, id int) (*objects.UserProfile, error) {
	user, err := s.store.Users().FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return SanitizeUser(user), nil
}

// Me returns the acting identity's own sanitized profile.
func (s *UserService) Me(ctx context.Context) (*objects.UserProfile, error) {
	identity, ok := contexts.GetIdentity(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	return s.GetProfile(ctx, identity.ID)
}

// UpdateProfile applies a profile update on behalf of the acting identity.
//
// Decision order: identity present, target is self (or identity is an
// administrator), payload touches no privileged field (or administrator),
// allow-list filter leaves at least one field. Only then does the store see
// the write. The returned profile is always sanitized.
func (s *UserService) UpdateProfile(ctx context.Context, targetID int, payload map[string]any) (*objects.UserProfile, error) {
	identity, ok := contexts.GetIdentity(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	if !identity.IsElevated() && identity.ID != targetID {
		return nil, ErrForbidden
	}

	if err := CheckElevation(identity, payload, PrivilegedFields); err != nil {
		return nil, err
	}

	allowed := ProfileAllowedFields
	if identity.IsElevated() {
		// Administrators may additionally change the privileged fields.
		allowed = append(append([]string(nil), allowed...), PrivilegedFields...)
	}

	data := FilterPayload(payload, allowed)
	if len(data) == 0 {
		return nil, ErrNoValidFields
	}

	user, err := s.store.Users().Update(ctx, targetID, data)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return SanitizeUser(user), nil
}

// SanitizeUser converts a store user into its transport form, dropping the
// password and the reset/confirmation tokens. Mandatory on every profile
// response.
func SanitizeUser(user *store.User) *objects.UserProfile {
	profile := &objects.UserProfile{
		ID:          user.ID,
		Email:       user.Email,
		Confirmed:   user.Confirmed,
		Blocked:     user.Blocked,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		MobilePhone: user.MobilePhone,
		HomePhone:   user.HomePhone,
		BirthDate:   user.BirthDate,
		Country:     user.Country,
		Address:     user.Address,
		City:        user.City,
		ZipCode:     user.ZipCode,
		Discount:    user.DiscountID,
		UsedCoupons: lo.Map(user.UsedCoupons, func(coupon *store.Coupon, _ int) int {
			return coupon.ID
		}),
		Wishlist: user.Wishlist,
	}

	if user.Role != nil {
		profile.Role = objects.RoleInfo{Type: user.Role.Type, Name: user.Role.Name}
	}

	return profile
}

// IdentityFromUser builds the request identity for an authenticated user.
func IdentityFromUser(user *store.User) authz.Identity {
	identity := authz.Identity{ID: user.ID}
	if user.Role != nil {
		identity.Role = authz.Role{Type: user.Role.Type, Name: user.Role.Name}
	}

	return identity
}
