package params

import "testing"

func validCreateOrderArgs() map[string]any {
	return map[string]any{
		"store_id":         "7890",
		"customer_name":    "Jane Smith",
		"customer_email":   "jane@example.com",
		"customer_phone":   "2025551234",
		"delivery_address": "700 Pennsylvania Avenue SE",
		"delivery_city":    "Washington",
		"delivery_state":   "DC",
		"delivery_zip":     "20003",
	}
}

func TestBindCreateOrder(t *testing.T) {
	var p CreateOrderParams
	if err := Bind(validCreateOrderArgs(), &p); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if p.OrderType != "Delivery" {
		t.Errorf("OrderType default = %q, want Delivery", p.OrderType)
	}
}

func TestBindCreateOrderValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing store_id", func(m map[string]any) { delete(m, "store_id") }},
		{"bad email", func(m map[string]any) { m["customer_email"] = "not-an-email" }},
		{"long state", func(m map[string]any) { m["delivery_state"] = "Washington" }},
		{"bad order type", func(m map[string]any) { m["order_type"] = "Pickup" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := validCreateOrderArgs()
			tt.mutate(args)
			var p CreateOrderParams
			if err := Bind(args, &p); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestBindAddItemDefaults(t *testing.T) {
	var p AddItemParams
	err := Bind(map[string]any{"item_code": "9204"}, &p)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if p.Quantity != 1 {
		t.Errorf("Quantity default = %d, want 1", p.Quantity)
	}

	// Числа из протокола приходят как float64
	err = Bind(map[string]any{"item_code": "9204", "quantity": float64(3)}, &p)
	if err != nil {
		t.Fatalf("Bind with quantity: %v", err)
	}
	if p.Quantity != 3 {
		t.Errorf("Quantity = %d, want 3", p.Quantity)
	}
}

func TestBindAddItemNegativeQuantity(t *testing.T) {
	var p AddItemParams
	err := Bind(map[string]any{"item_code": "9204", "quantity": float64(-1)}, &p)
	if err == nil {
		t.Error("expected validation error on negative quantity")
	}
}

func TestBindAddPizzaDefaults(t *testing.T) {
	var p AddPizzaParams
	err := Bind(map[string]any{
		"coupon_code": "9204",
		"toppings":    []any{"P", "S"},
	}, &p)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if p.Size != "12" || p.Crust != "NPAN" {
		t.Errorf("defaults = %q/%q, want 12/NPAN", p.Size, p.Crust)
	}
	if len(p.Toppings) != 2 {
		t.Errorf("toppings = %v", p.Toppings)
	}
}

func TestBindAddPizzaRequiresToppings(t *testing.T) {
	var p AddPizzaParams
	if err := Bind(map[string]any{"coupon_code": "9204"}, &p); err == nil {
		t.Error("expected validation error without toppings")
	}
}

func TestBindOptionsShape(t *testing.T) {
	var p AddItemParams
	err := Bind(map[string]any{
		"item_code": "P12IPAZA",
		"options":   map[string]any{"P": map[string]any{"1/1": "1"}},
	}, &p)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if p.Options["P"]["1/1"] != "1" {
		t.Errorf("options = %v", p.Options)
	}
}

func TestBindTypeMismatch(t *testing.T) {
	var p StoreInfoParams
	if err := Bind(map[string]any{"store_id": 7890}, &p); err == nil {
		t.Error("expected error binding number into string field")
	}
}
