package guidance

import (
	"testing"

	"mcpizza/internal/store"
)

func sampleCoupons() []store.Coupon {
	return []store.Coupon{
		{Code: "5383", Name: "2 or more Medium 2-Topping Pizzas", Price: 6.99},
		{Code: "9204", Name: "Medium 2-Topping Pizza", Price: 7.99},
		{Code: "5162", Name: "Large 3-Topping Pizza", Price: 12.99},
		{Code: "8669", Name: "20% off your order", Price: store.PriceVaries},
		{Code: "4342", Name: "Breadsticks and Soda Combo", Price: 9.99},
	}
}

func findStrategy(g Guidance, typ string) (Strategy, bool) {
	for _, s := range g.Strategies {
		if s.Type == typ {
			return s, true
		}
	}
	return Strategy{}, false
}

func TestAnalyzeBucketsAreExclusive(t *testing.T) {
	// Название совпадает и с multi, и с percentage: побеждает первый
	// предикат по порядку
	coupons := []store.Coupon{
		{Code: "1111", Name: "2 or more pizzas 20% off", Price: store.PriceVaries},
	}
	g := Analyze(coupons, "pizza")

	if _, ok := findStrategy(g, StrategyMultiPizza); !ok {
		t.Fatal("expected multi_pizza strategy")
	}
	if _, ok := findStrategy(g, StrategyPercentage); ok {
		t.Error("coupon must land in exactly one bucket")
	}
}

func TestAnalyzeClassification(t *testing.T) {
	g := Analyze(sampleCoupons(), "pizza for dinner")

	multi, ok := findStrategy(g, StrategyMultiPizza)
	if !ok || len(multi.Deals) != 1 || multi.Deals[0].Code != "5383" {
		t.Errorf("multi = %+v", multi)
	}

	single, ok := findStrategy(g, StrategySinglePizza)
	if !ok || len(single.Deals) != 2 {
		t.Fatalf("single = %+v", single)
	}
	if single.Deals[0].Size != "medium" || single.Deals[1].Size != "large" {
		t.Errorf("sizes = %q %q", single.Deals[0].Size, single.Deals[1].Size)
	}

	pct, ok := findStrategy(g, StrategyPercentage)
	if !ok || len(pct.Deals) != 1 || pct.Deals[0].Code != "8669" {
		t.Errorf("percentage = %+v", pct)
	}

	// Комбо без ключевых слов не попадает никуда
	if g.TotalCoupons != 5 {
		t.Errorf("TotalCoupons = %d", g.TotalCoupons)
	}
}

func TestAnalyzeSingleRequiresRealPrice(t *testing.T) {
	coupons := []store.Coupon{
		{Code: "2222", Name: "Large Specialty Pizza", Price: store.PriceVaries},
	}
	g := Analyze(coupons, "large pizza")
	if _, ok := findStrategy(g, StrategySinglePizza); ok {
		t.Error("deal without a real price must not be a single-pizza deal")
	}
}

func TestAnalyzeSortsByPriceAndCapsTop3(t *testing.T) {
	coupons := []store.Coupon{
		{Code: "a", Name: "2 or more pizzas deal A", Price: 9.99},
		{Code: "b", Name: "2 or more pizzas deal B", Price: 5.99},
		{Code: "c", Name: "2 or more pizzas deal C", Price: 7.99},
		{Code: "d", Name: "2 or more pizzas deal D", Price: 6.49},
	}
	g := Analyze(coupons, "party")

	multi, _ := findStrategy(g, StrategyMultiPizza)
	if len(multi.Deals) != 3 {
		t.Fatalf("deals = %d, want top 3", len(multi.Deals))
	}
	want := []string{"b", "d", "c"}
	for i, code := range want {
		if multi.Deals[i].Code != code {
			t.Errorf("deal %d = %s, want %s", i, multi.Deals[i].Code, code)
		}
	}
	if g.RecommendedCode != "b" {
		t.Errorf("recommended = %s, want cheapest multi deal", g.RecommendedCode)
	}
}

func TestRecommendDeepDish(t *testing.T) {
	g := Analyze(sampleCoupons(), "deep dish sausage and pepperoni")
	if g.RecommendedCode != "9204" {
		t.Errorf("recommended = %s, want medium 2-topping 9204", g.RecommendedCode)
	}

	g = Analyze(sampleCoupons(), "pan pizza please")
	if g.RecommendedCode != "9204" {
		t.Errorf("pan request: recommended = %s, want 9204", g.RecommendedCode)
	}
}

func TestRecommendDeepDishNoMatch(t *testing.T) {
	coupons := []store.Coupon{
		{Code: "5162", Name: "Large 3-Topping Pizza", Price: 12.99},
	}
	g := Analyze(coupons, "deep dish")
	if g.RecommendedCode != "" {
		t.Errorf("recommended = %q, want empty when no medium 2-topping exists", g.RecommendedCode)
	}
}

func TestRecommendFallbacks(t *testing.T) {
	// Без мульти-сделок рекомендуется дешевейшая одиночная
	coupons := []store.Coupon{
		{Code: "5162", Name: "Large 3-Topping Pizza", Price: 12.99},
		{Code: "9204", Name: "Medium 2-Topping Pizza", Price: 7.99},
	}
	g := Analyze(coupons, "one pizza")
	if g.RecommendedCode != "9204" {
		t.Errorf("recommended = %s, want cheapest single", g.RecommendedCode)
	}

	// Совсем без подходящих купонов рекомендации нет
	g = Analyze(nil, "anything")
	if g.RecommendedCode != "" || len(g.Strategies) != 0 {
		t.Errorf("empty input: %+v", g)
	}
}
