package services

import (
	"errors"
	"testing"

	"github.com/DonAdhyatma/fe-final-project/entity"
	"github.com/DonAdhyatma/fe-final-project/pkg/cart"

	"gorm.io/gorm"
)

// catalogStub satisfies MenuFinder from a fixed map.
type catalogStub map[uint]*entity.Menu

func (s catalogStub) FindByID(id uint) (*entity.Menu, error) {
	m, ok := s[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func testCatalog() catalogStub {
	return catalogStub{
		1: {Model: gorm.Model{ID: 1}, Name: "Gado-Gado", Category: entity.CategoryFoods, Price: 15000, Status: entity.MenuStatusActive},
		2: {Model: gorm.Model{ID: 2}, Name: "Iced Coffee", Category: entity.CategoryBeverages, Price: 12000, Status: entity.MenuStatusActive},
		3: {Model: gorm.Model{ID: 3}, Name: "Klepon", Category: entity.CategoryDesserts, Price: 8000, Status: entity.MenuStatusOutOfStock},
	}
}

func TestPriceSubmission(t *testing.T) {
	lines := []OrderLineIn{
		{MenuItemID: 1, Quantity: 2, UnitPrice: 15000},
		{MenuItemID: 2, Quantity: 1, UnitPrice: 12000},
	}

	tests := []struct {
		name    string
		in      CreateOrderIn
		wantErr error
	}{
		{
			name: "matching totals pass",
			in:   CreateOrderIn{OrderType: "take_away", Lines: lines, Subtotal: 42000, Tax: 4200, Total: 46200},
		},
		{
			name:    "wrong subtotal",
			in:      CreateOrderIn{OrderType: "take_away", Lines: lines, Subtotal: 40000, Tax: 4200, Total: 46200},
			wantErr: ErrTotalsMismatch,
		},
		{
			name:    "wrong tax",
			in:      CreateOrderIn{OrderType: "take_away", Lines: lines, Subtotal: 42000, Tax: 0, Total: 46200},
			wantErr: ErrTotalsMismatch,
		},
		{
			name: "totals from a tampered unit price",
			in: CreateOrderIn{
				OrderType: "take_away",
				Lines:     []OrderLineIn{{MenuItemID: 1, Quantity: 1, UnitPrice: -100000}},
				Subtotal:  -100000, Tax: -10000, Total: -110000,
			},
			wantErr: cart.ErrInvalidPrice,
		},
		{
			name: "out of stock item",
			in: CreateOrderIn{
				OrderType: "take_away",
				Lines:     []OrderLineIn{{MenuItemID: 3, Quantity: 1, UnitPrice: 8000}},
				Subtotal:  8000, Tax: 800, Total: 8800,
			},
			wantErr: cart.ErrItemUnavailable,
		},
		{
			name: "unknown menu item",
			in: CreateOrderIn{
				OrderType: "take_away",
				Lines:     []OrderLineIn{{MenuItemID: 99, Quantity: 1, UnitPrice: 1000}},
				Subtotal:  1000, Tax: 100, Total: 1100,
			},
			wantErr: gorm.ErrRecordNotFound,
		},
		{
			name:    "no lines",
			in:      CreateOrderIn{OrderType: "take_away", Subtotal: 0, Tax: 0, Total: 0},
			wantErr: ErrNoItems,
		},
		{
			name:    "bad order type",
			in:      CreateOrderIn{OrderType: "delivery", Lines: lines, Subtotal: 42000, Tax: 4200, Total: 46200},
			wantErr: ErrInvalidOrderType,
		},
		{
			name: "dine in without table",
			in: CreateOrderIn{
				OrderType: "dine_in", CustomerName: "Budi",
				Lines: lines, Subtotal: 42000, Tax: 4200, Total: 46200,
			},
			wantErr: cart.ErrMissingCustomerInfo,
		},
	}

	svc := NewOrderService(nil, nil, testCatalog(), cart.DefaultTaxRateBP)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fo, err := svc.priceSubmission(&tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if fo.Subtotal != tt.in.Subtotal || fo.Tax != tt.in.Tax || fo.Total != tt.in.Total {
				t.Errorf("totals = %d/%d/%d, want %d/%d/%d",
					fo.Subtotal, fo.Tax, fo.Total, tt.in.Subtotal, tt.in.Tax, tt.in.Total)
			}
			if len(fo.Lines) != len(tt.in.Lines) {
				t.Errorf("lines = %d, want %d", len(fo.Lines), len(tt.in.Lines))
			}
		})
	}
}

// Submitted lines keep their own snapshot price even when the catalog has
// since changed, as long as the totals still add up.
func TestPriceSubmissionHonorsSnapshotPrice(t *testing.T) {
	catalog := testCatalog()
	catalog[1].Price = 20000 // price raised after the cashier started the order

	svc := NewOrderService(nil, nil, catalog, cart.DefaultTaxRateBP)
	fo, err := svc.priceSubmission(&CreateOrderIn{
		OrderType: "take_away",
		Lines:     []OrderLineIn{{MenuItemID: 1, Quantity: 1, UnitPrice: 15000}},
		Subtotal:  15000, Tax: 1500, Total: 16500,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fo.Lines[0].UnitPrice != 15000 {
		t.Errorf("unit price = %d, want submitted snapshot 15000", fo.Lines[0].UnitPrice)
	}
}
