package gormstore

import (
	"context"
	"fmt"

	"github.com/spf13/cast"
	"gorm.io/gorm"

	"github.com/openmart/storegate/internal/store"
)

// userFieldColumns maps wire-format profile field names onto user columns.
// Relation fields (used_coupons) are handled separately.
var userFieldColumns = map[string]string{
	"firstName":   "first_name",
	"lastName":    "last_name",
	"mobilePhone": "mobile_phone",
	"homePhone":   "home_phone",
	"birthDate":   "birth_date",
	"country":     "country",
	"address":     "address",
	"city":        "city",
	"zipCode":     "zip_code",
	"discount":    "discount_id",
	"wishlist":    "wishlist",
	"role":        "role_id",
}

type userStore struct {
	db *gorm.DB
}

func (us *userStore) FindByID(ctx context.Context, id int) (*store.User, error) {
	var user store.User

	err := us.db.WithContext(ctx).
		Preload("Role").
		First(&user, id).Error
	if err != nil {
		return nil, notFound(err)
	}

	return &user, nil
}

func (us *userStore) FindByEmail(ctx context.Context, email string) (*store.User, error) {
	var user store.User

	err := us.db.WithContext(ctx).
		Preload("Role").
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, notFound(err)
	}

	return &user, nil
}

func (us *userStore) Create(ctx context.Context, user *store.User) (*store.User, error) {
	if err := us.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return us.FindByID(ctx, user.ID)
}

func (us *userStore) Update(ctx context.Context, id int, fields map[string]any) (*store.User, error) {
	updates := map[string]any{}

	var couponIDs []int

	replaceCoupons := false

	for name, value := range fields {
		if name == "used_coupons" {
			couponIDs = cast.ToIntSlice(value)
			replaceCoupons = true

			continue
		}

		column, ok := userFieldColumns[name]
		if !ok {
			continue
		}

		updates[column] = value
	}

	err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user store.User
		if err := tx.First(&user, id).Error; err != nil {
			return notFound(err)
		}

		if len(updates) > 0 {
			if err := tx.Model(&user).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update user: %w", err)
			}
		}

		if replaceCoupons {
			coupons := make([]*store.Coupon, 0, len(couponIDs))
			for _, couponID := range couponIDs {
				coupons = append(coupons, &store.Coupon{ID: couponID})
			}

			if err := tx.Model(&user).Association("UsedCoupons").Replace(coupons); err != nil {
				return fmt.Errorf("failed to replace used coupons: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return us.FindByID(ctx, id)
}
