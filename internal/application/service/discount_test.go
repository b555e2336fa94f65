package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
)

func TestDiscountResolverManualTypes(t *testing.T) {
	resolver := NewDiscountResolver(&fakeDiscountRepo{})
	outletID := uuid.New()
	dineIn := &entity.OrderType{ID: uuid.New(), Name: entity.OrderTypeDineIn}

	cases := []struct {
		name     string
		subtotal int64
		manual   int64
		want     int64
		wantCode int
	}{
		{name: "plain amount", subtotal: 25000, manual: 2000, want: 2000},
		{name: "zero amount", subtotal: 25000, manual: 0, want: 0},
		{name: "clamped to subtotal", subtotal: 10000, manual: 15000, want: 10000},
		{name: "negative rejected", subtotal: 10000, manual: -1, wantCode: http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolver.Resolve(context.Background(), outletID, dineIn, tc.subtotal, tc.manual)
			if tc.wantCode != 0 {
				if code := errorCode(t, err); code != tc.wantCode {
					t.Fatalf("expected code %d, got %d", tc.wantCode, code)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestDiscountResolverRuleTypes(t *testing.T) {
	outletID := uuid.New()
	grabFood := &entity.OrderType{ID: uuid.New(), Name: "GrabFood"}
	repo := &fakeDiscountRepo{rules: []*entity.OrderTypeDiscount{
		{OutletID: outletID, OrderTypeID: grabFood.ID, Percentage: 20, IsActive: true},
	}}
	resolver := NewDiscountResolver(repo)

	t.Run("percentage of subtotal", func(t *testing.T) {
		got, err := resolver.Resolve(context.Background(), outletID, grabFood, 25000, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 5000 {
			t.Fatalf("expected 5000, got %d", got)
		}
	})

	t.Run("rule wins over manual amount", func(t *testing.T) {
		got, err := resolver.Resolve(context.Background(), outletID, grabFood, 25000, 1000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 5000 {
			t.Fatalf("expected 5000, got %d", got)
		}
	})

	t.Run("no rule falls back to manual", func(t *testing.T) {
		shopeeFood := &entity.OrderType{ID: uuid.New(), Name: "ShopeeFood"}
		got, err := resolver.Resolve(context.Background(), outletID, shopeeFood, 25000, 2000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 2000 {
			t.Fatalf("expected 2000, got %d", got)
		}
	})

	t.Run("no rule and no manual yields zero", func(t *testing.T) {
		shopeeFood := &entity.OrderType{ID: uuid.New(), Name: "ShopeeFood"}
		got, err := resolver.Resolve(context.Background(), outletID, shopeeFood, 25000, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})

	t.Run("zero percentage rule falls back to manual", func(t *testing.T) {
		goFood := &entity.OrderType{ID: uuid.New(), Name: "GoFood"}
		repo.rules = append(repo.rules, &entity.OrderTypeDiscount{
			OutletID: outletID, OrderTypeID: goFood.ID, Percentage: 0, IsActive: true,
		})
		got, err := resolver.Resolve(context.Background(), outletID, goFood, 25000, 1500)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 1500 {
			t.Fatalf("expected 1500, got %d", got)
		}
	})
}

func TestTaxPolicies(t *testing.T) {
	if got := (ZeroTaxPolicy{}).Tax(23000); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}

	pct := PercentageTaxPolicy{Percentage: 10}
	if got := pct.Tax(23000); got != 2300 {
		t.Fatalf("expected 2300, got %d", got)
	}
	if got := pct.Tax(0); got != 0 {
		t.Fatalf("expected 0 on zero base, got %d", got)
	}
	if got := pct.Tax(-100); got != 0 {
		t.Fatalf("expected 0 on negative base, got %d", got)
	}
}
