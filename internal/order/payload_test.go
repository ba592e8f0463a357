package order

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewPayloadDefaults(t *testing.T) {
	p := NewPayload(Address{
		Street:     "700 Pennsylvania Avenue SE",
		City:       "Washington",
		Region:     "DC",
		PostalCode: "20003",
	}, ServiceDelivery)

	if p.Address.Type != "House" {
		t.Errorf("Address.Type = %q, want House", p.Address.Type)
	}
	if p.OrderChannel != "OLO" || p.OrderMethod != "Web" {
		t.Errorf("channel/method = %q/%q, want OLO/Web", p.OrderChannel, p.OrderMethod)
	}
	if !p.NoCombine {
		t.Error("NoCombine should default to true")
	}
	if p.Version != "1.0" || p.SourceOrganizationURI != "order.dominos.com" {
		t.Errorf("version/source = %q/%q", p.Version, p.SourceOrganizationURI)
	}
	if p.LanguageCode != "en" || !p.NewUser {
		t.Errorf("language/newUser = %q/%v", p.LanguageCode, p.NewUser)
	}
	if p.ServiceMethod != ServiceDelivery {
		t.Errorf("ServiceMethod = %q", p.ServiceMethod)
	}
	if p.Coupons == nil || p.Products == nil || p.Payments == nil {
		t.Error("list fields must be initialized to empty slices")
	}
	if p.Priced() {
		t.Error("fresh payload must not be priced")
	}
}

func TestPayloadJSONFieldCasing(t *testing.T) {
	p := NewPayload(Address{}, ServiceCarryout)
	p.AddProduct("P12IPAZA", 1, map[string]map[string]string{"P": {"1/1": "1"}})

	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)

	// Вендор различает регистр имен полей
	for _, field := range []string{
		`"Address"`, `"Coupons"`, `"Products"`, `"ServiceMethod"`,
		`"SourceOrganizationURI"`, `"metaData"`, `"isNew"`, `"StoreID"`,
	} {
		if !strings.Contains(body, field) {
			t.Errorf("payload JSON missing field %s", field)
		}
	}
	if strings.Contains(body, `"MetaData"`) || strings.Contains(body, `"IsNew"`) {
		t.Error("metaData and isNew must keep vendor casing")
	}
}

func TestAddCouponAssignsDenseIDs(t *testing.T) {
	p := NewPayload(Address{}, ServiceDelivery)
	p.AddCoupon("9204")
	p.AddCoupon("5383")

	if len(p.Coupons) != 2 {
		t.Fatalf("len(Coupons) = %d, want 2", len(p.Coupons))
	}
	for i, c := range p.Coupons {
		if c.ID != i+1 {
			t.Errorf("coupon %d: ID = %d, want %d", i, c.ID, i+1)
		}
		if c.Qty != 1 {
			t.Errorf("coupon %d: Qty = %d, want 1", i, c.Qty)
		}
	}
}

func TestAddProduct(t *testing.T) {
	p := NewPayload(Address{}, ServiceDelivery)
	p.AddProduct("P12IPAZA", 0, nil)
	p.AddProduct("B8PCGT", 3, nil)

	if p.Products[0].Qty != 1 {
		t.Errorf("qty below 1 must clamp to 1, got %d", p.Products[0].Qty)
	}
	if p.Products[1].Qty != 3 {
		t.Errorf("qty = %d, want 3", p.Products[1].Qty)
	}
	for i, pr := range p.Products {
		if pr.ID != i+1 {
			t.Errorf("product %d: ID = %d, want %d", i, pr.ID, i+1)
		}
		if !pr.IsNew {
			t.Errorf("product %d: IsNew must be true", i)
		}
		if pr.Options == nil {
			t.Errorf("product %d: Options must not be nil", i)
		}
	}
}
