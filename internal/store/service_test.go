package store

import (
	"context"
	"errors"
	"testing"

	"mcpizza/internal/logger"
	"mcpizza/internal/vendorapi"

	"go.uber.org/zap"
)

type fakeAPI struct {
	stores  []vendorapi.StoreSummary
	profile *vendorapi.StoreProfile
	menu    *vendorapi.MenuResponse
	err     error

	gotStreet       string
	gotCityStateZip string
}

func (f *fakeAPI) FindClosestStores(_ context.Context, street, cityStateZip, _ string) ([]vendorapi.StoreSummary, error) {
	f.gotStreet = street
	f.gotCityStateZip = cityStateZip
	return f.stores, f.err
}

func (f *fakeAPI) GetStoreProfile(context.Context, string) (*vendorapi.StoreProfile, error) {
	return f.profile, f.err
}

func (f *fakeAPI) GetStoreMenu(context.Context, string) (*vendorapi.MenuResponse, error) {
	return f.menu, f.err
}

func testService(api *fakeAPI) *Service {
	return NewService(api, &logger.Zap{Logger: zap.NewNop()})
}

func TestFindStoresZipVsAddress(t *testing.T) {
	tests := []struct {
		name            string
		query           string
		wantStreet      string
		wantCityStateZip string
	}{
		{"bare zip", "20003", "", "20003"},
		{"address", "700 Pennsylvania Avenue SE", "700 Pennsylvania Avenue SE", ""},
		{"four digits is not a zip", "2000", "2000", ""},
		{"letters in five chars", "2000a", "2000a", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{}
			if _, err := testService(api).FindStores(context.Background(), tt.query); err != nil {
				t.Fatal(err)
			}
			if api.gotStreet != tt.wantStreet || api.gotCityStateZip != tt.wantCityStateZip {
				t.Errorf("street/cityStateZip = %q/%q, want %q/%q",
					api.gotStreet, api.gotCityStateZip, tt.wantStreet, tt.wantCityStateZip)
			}
		})
	}
}

func TestFindStoresCapsResults(t *testing.T) {
	api := &fakeAPI{}
	for i := 0; i < 8; i++ {
		api.stores = append(api.stores, vendorapi.StoreSummary{StoreID: "x"})
	}

	results, err := testService(api).FindStores(context.Background(), "20003")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 5 {
		t.Errorf("len = %d, want 5", len(results))
	}
}

func TestFindStoresError(t *testing.T) {
	api := &fakeAPI{err: errors.New("boom")}
	if _, err := testService(api).FindStores(context.Background(), "20003"); err == nil {
		t.Error("expected error")
	}
}

func TestMenuByCategory(t *testing.T) {
	api := &fakeAPI{menu: &vendorapi.MenuResponse{
		Products: map[string]vendorapi.MenuProduct{
			"P12IPAZA": {Name: "Medium Pan Pizza", ProductType: "Pizza"},
			"P10ISCRE": {Name: "Small Pizza", ProductType: "Pizza"},
			"B8PCGT":   {Name: "Garlic Bread Twists", ProductType: "Bread"},
			"MYSTERY":  {Name: "Mystery Item"},
		},
	}}

	menu, err := testService(api).MenuByCategory(context.Background(), "7890")
	if err != nil {
		t.Fatal(err)
	}

	pizzas := menu["Pizza"]
	if len(pizzas) != 2 {
		t.Fatalf("pizzas = %v", pizzas)
	}
	// Внутри категории сортировка по коду
	if pizzas[0].Code != "P10ISCRE" || pizzas[1].Code != "P12IPAZA" {
		t.Errorf("order = %s, %s", pizzas[0].Code, pizzas[1].Code)
	}
	if len(menu["Bread"]) != 1 {
		t.Errorf("bread = %v", menu["Bread"])
	}
	// Продукт без типа уходит в Other
	if len(menu["Other"]) != 1 || menu["Other"][0].Code != "MYSTERY" {
		t.Errorf("other = %v", menu["Other"])
	}
}

func TestSearchMenu(t *testing.T) {
	api := &fakeAPI{menu: &vendorapi.MenuResponse{
		Products: map[string]vendorapi.MenuProduct{
			"P12IPAZA": {Name: "Medium Pan Pizza", Description: "Deep dish style", ProductType: "Pizza"},
			"P14ITHIN": {Name: "Large Thin Crust", ProductType: "Pizza"},
			"W08PBBQW": {Name: "BBQ Wings", ProductType: "Wings"},
		},
	}}
	svc := testService(api)
	ctx := context.Background()

	items, err := svc.SearchMenu(ctx, "7890", "pan", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].Code != "P12IPAZA" {
		t.Errorf("query match = %v", items)
	}

	// Поиск и по описанию
	items, _ = svc.SearchMenu(ctx, "7890", "DEEP DISH", "")
	if len(items) != 1 {
		t.Errorf("description match = %v", items)
	}

	// Фильтр категории без регистра
	items, _ = svc.SearchMenu(ctx, "7890", "", "pizza")
	if len(items) != 2 {
		t.Errorf("category filter = %v", items)
	}

	items, _ = svc.SearchMenu(ctx, "7890", "pan", "Wings")
	if len(items) != 0 {
		t.Errorf("combined filters = %v", items)
	}
}

func TestCouponsSortedWithSentinel(t *testing.T) {
	api := &fakeAPI{menu: &vendorapi.MenuResponse{
		Coupons: map[string]vendorapi.MenuCoupon{
			"8669": {Name: "20% off"},
			"9204": {Name: "Medium 2-Topping Pizza", Price: "7.99"},
			"5383": {Name: "2 or more pizzas", Price: "6.99"},
			"0000": {Price: "5.00"},
		},
	}}

	coupons, err := testService(api).Coupons(context.Background(), "7890")
	if err != nil {
		t.Fatal(err)
	}
	if len(coupons) != 4 {
		t.Fatalf("coupons = %v", coupons)
	}

	// По возрастанию цены, безценовые в конце
	wantOrder := []string{"0000", "5383", "9204", "8669"}
	for i, code := range wantOrder {
		if coupons[i].Code != code {
			t.Errorf("coupon %d = %s, want %s", i, coupons[i].Code, code)
		}
	}
	if coupons[3].Price != PriceVaries {
		t.Errorf("missing price must map to sentinel, got %v", coupons[3].Price)
	}
	// Купон без имени получает заглушку
	if coupons[0].Name != "Unknown Deal" {
		t.Errorf("name = %q", coupons[0].Name)
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"7.99", 7.99},
		{"0", 0},
		{"", PriceVaries},
		{"varies", PriceVaries},
	}
	for _, tt := range tests {
		if got := parsePrice(tt.raw); got != tt.want {
			t.Errorf("parsePrice(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
