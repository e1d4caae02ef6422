package cart

import (
	"errors"
	"reflect"
	"regexp"
	"testing"
)

var (
	gadoGado   = MenuItem{ID: 1, Name: "Gado-Gado", Category: "foods", Price: 15000, IsAvailable: true}
	icedCoffee = MenuItem{ID: 2, Name: "Iced Coffee", Category: "beverages", Price: 12000, IsAvailable: true}
	klepon     = MenuItem{ID: 3, Name: "Klepon", Category: "desserts", Price: 8000, IsAvailable: true}
)

func TestAddItemRejectsBadInput(t *testing.T) {
	c := New(DefaultTaxRateBP)

	if err := c.AddItem(gadoGado, 0, ""); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("qty 0: got %v, want ErrInvalidQuantity", err)
	}
	unavailable := gadoGado
	unavailable.IsAvailable = false
	if err := c.AddItem(unavailable, 1, ""); !errors.Is(err, ErrItemUnavailable) {
		t.Errorf("unavailable item: got %v, want ErrItemUnavailable", err)
	}
	negative := gadoGado
	negative.Price = -100000
	if err := c.AddItem(negative, 1, ""); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("negative price: got %v, want ErrInvalidPrice", err)
	}
	if c.Len() != 0 {
		t.Errorf("failed adds must not leave lines behind, got %d", c.Len())
	}
	if got := c.Totals(); got != (Totals{}) {
		t.Errorf("rejected adds must not price, got %+v", got)
	}
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	c := New(DefaultTaxRateBP)
	if err := c.AddItem(gadoGado, 1, ""); err != nil {
		t.Fatal(err)
	}
	if err := c.AddItem(icedCoffee, 1, ""); err != nil {
		t.Fatal(err)
	}

	c.RemoveItem(gadoGado.ID)
	once := c.Lines()
	c.RemoveItem(gadoGado.ID)
	twice := c.Lines()

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("double remove changed state: %v vs %v", once, twice)
	}
	c.RemoveItem(999) // never added
	if c.Len() != 1 {
		t.Errorf("removing unknown id must be a no-op, got %d lines", c.Len())
	}
}

func TestAddItemAggregatesQuantity(t *testing.T) {
	c := New(DefaultTaxRateBP)
	if err := c.AddItem(gadoGado, 2, "extra peanut sauce"); err != nil {
		t.Fatal(err)
	}
	if err := c.AddItem(gadoGado, 3, "no egg"); err != nil {
		t.Fatal(err)
	}

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("want one line per menu item, got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", lines[0].Quantity)
	}
	if lines[0].Notes != "no egg" {
		t.Errorf("new notes must replace old, got %q", lines[0].Notes)
	}
}

func TestTotals(t *testing.T) {
	tests := []struct {
		name string
		fill func(c *Cart)
		want Totals
	}{
		{
			name: "empty cart is all zeros",
			fill: func(c *Cart) {},
			want: Totals{Subtotal: 0, Tax: 0, Total: 0},
		},
		{
			name: "two lines at 10 percent",
			fill: func(c *Cart) {
				c.AddItem(gadoGado, 2, "")
				c.AddItem(klepon, 1, "")
			},
			want: Totals{Subtotal: 38000, Tax: 3800, Total: 41800},
		},
		{
			name: "tax rounds half up",
			fill: func(c *Cart) {
				// 15 * 10% = 1.5, rounds to 2
				c.AddItem(MenuItem{ID: 9, Name: "Krupuk", Price: 15, IsAvailable: true}, 1, "")
			},
			want: Totals{Subtotal: 15, Tax: 2, Total: 17},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(DefaultTaxRateBP)
			tt.fill(c)
			if got := c.Totals(); got != tt.want {
				t.Errorf("Totals() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSetQuantity(t *testing.T) {
	c := New(DefaultTaxRateBP)
	if err := c.AddItem(gadoGado, 1, ""); err != nil {
		t.Fatal(err)
	}

	if err := c.SetQuantity(gadoGado.ID, 4); err != nil {
		t.Fatal(err)
	}
	if got := c.Lines()[0].Quantity; got != 4 {
		t.Errorf("quantity = %d, want 4", got)
	}
	if err := c.SetQuantity(gadoGado.ID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("qty 0: got %v, want ErrInvalidQuantity", err)
	}
	if err := c.SetQuantity(icedCoffee.ID, 2); !errors.Is(err, ErrLineNotFound) {
		t.Errorf("unknown line: got %v, want ErrLineNotFound", err)
	}
}

func TestCheckoutValidation(t *testing.T) {
	empty := New(DefaultTaxRateBP)
	if _, err := empty.Checkout(); !errors.Is(err, ErrEmptyCart) {
		t.Errorf("empty cart: got %v, want ErrEmptyCart", err)
	}

	c := New(DefaultTaxRateBP)
	if err := c.AddItem(gadoGado, 1, ""); err != nil {
		t.Fatal(err)
	}
	c.SetOrderType(OrderTypeDineIn)
	c.SetCustomer("Budi", "")
	if _, err := c.Checkout(); !errors.Is(err, ErrMissingCustomerInfo) {
		t.Errorf("dine-in without table: got %v, want ErrMissingCustomerInfo", err)
	}

	// Take-away needs no customer fields at all.
	c.SetCustomer("", "")
	c.SetOrderType(OrderTypeTakeAway)
	if _, err := c.Checkout(); err != nil {
		t.Errorf("take-away checkout failed: %v", err)
	}
}

func TestUnitPriceIsSnapshotted(t *testing.T) {
	c := New(DefaultTaxRateBP)
	item := MenuItem{ID: 7, Name: "Nasi Goreng", Price: 10000, IsAvailable: true}
	if err := c.AddItem(item, 1, ""); err != nil {
		t.Fatal(err)
	}

	item.Price = 20000 // catalog price change mid-session
	if got := c.Lines()[0].UnitPrice; got != 10000 {
		t.Errorf("existing line price = %d, want snapshot 10000", got)
	}

	other := MenuItem{ID: 8, Name: "Es Teh", Price: 5000, IsAvailable: true}
	if err := c.AddItem(other, 1, ""); err != nil {
		t.Fatal(err)
	}
	if got := c.Lines()[1].UnitPrice; got != 5000 {
		t.Errorf("new line price = %d, want its own current price 5000", got)
	}
}

func TestOrderNumbersAreUnique(t *testing.T) {
	re := regexp.MustCompile(`^ORD-\d+-\d{3}$`)
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		n := NewOrderNumber()
		if !re.MatchString(n) {
			t.Fatalf("bad order number format: %s", n)
		}
		if _, dup := seen[n]; dup {
			t.Fatalf("duplicate order number: %s", n)
		}
		seen[n] = struct{}{}
	}
}

func TestCheckoutFlow(t *testing.T) {
	c := New(DefaultTaxRateBP)
	if err := c.AddItem(gadoGado, 2, ""); err != nil {
		t.Fatal(err)
	}
	if err := c.AddItem(icedCoffee, 1, ""); err != nil {
		t.Fatal(err)
	}
	c.SetOrderType(OrderTypeDineIn)

	if _, err := c.Checkout(); !errors.Is(err, ErrMissingCustomerInfo) {
		t.Fatalf("checkout without customer info: got %v, want ErrMissingCustomerInfo", err)
	}

	c.SetCustomer("Budi", "4")
	fo, err := c.Checkout()
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if fo.Subtotal != 42000 || fo.Tax != 4200 || fo.Total != 46200 {
		t.Errorf("totals = %d/%d/%d, want 42000/4200/46200", fo.Subtotal, fo.Tax, fo.Total)
	}
	if len(fo.Lines) != 2 {
		t.Errorf("finalized lines = %d, want 2", len(fo.Lines))
	}
	if fo.CustomerName != "Budi" || fo.TableNumber != "4" {
		t.Errorf("customer = %q/%q, want Budi/4", fo.CustomerName, fo.TableNumber)
	}

	// Checkout must not clear the cart; retrying a failed submit needs it.
	if c.Len() != 2 {
		t.Errorf("cart cleared by checkout, %d lines left", c.Len())
	}

	c.Clear()
	if c.Len() != 0 || c.CustomerName() != "" || c.TableNumber() != "" {
		t.Error("clear must drop lines and customer fields")
	}
	if c.OrderType() != OrderTypeDineIn {
		t.Errorf("clear must keep order type, got %s", c.OrderType())
	}
}

func TestFinalizedOrderIsASnapshot(t *testing.T) {
	c := New(DefaultTaxRateBP)
	if err := c.AddItem(gadoGado, 1, ""); err != nil {
		t.Fatal(err)
	}
	c.SetOrderType(OrderTypeTakeAway)

	fo, err := c.Checkout()
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SetQuantity(gadoGado.ID, 9); err != nil {
		t.Fatal(err)
	}
	if fo.Lines[0].Quantity != 1 {
		t.Errorf("mutating the cart changed the finalized order: qty %d", fo.Lines[0].Quantity)
	}
}
