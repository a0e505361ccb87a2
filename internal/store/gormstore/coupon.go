package gormstore

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/openmart/storegate/internal/store"
)

type couponStore struct {
	db *gorm.DB
}

func (cs *couponStore) FindByCode(ctx context.Context, code string) (*store.Coupon, error) {
	var coupon store.Coupon

	err := cs.db.WithContext(ctx).
		Where("code = ?", code).
		First(&coupon).Error
	if err != nil {
		return nil, notFound(err)
	}

	return &coupon, nil
}

func (cs *couponStore) FindManyByUser(ctx context.Context, userID int) ([]*store.Coupon, error) {
	var coupons []*store.Coupon

	err := cs.db.WithContext(ctx).
		Joins("JOIN user_coupons ON user_coupons.coupon_id = coupons.id").
		Where("user_coupons.user_id = ?", userID).
		Order("coupons.id").
		Find(&coupons).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find coupons for user: %w", err)
	}

	return coupons, nil
}

type discountStore struct {
	db *gorm.DB
}

func (ds *discountStore) FindFirstByUser(ctx context.Context, userID int) (*store.Discount, error) {
	var discount store.Discount

	err := ds.db.WithContext(ctx).
		Joins("JOIN user_discounts ON user_discounts.discount_id = discounts.id").
		Where("user_discounts.user_id = ?", userID).
		Order("discounts.id").
		First(&discount).Error
	if err != nil {
		return nil, notFound(err)
	}

	return &discount, nil
}
