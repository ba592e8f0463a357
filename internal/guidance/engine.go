// Package guidance классифицирует купоны по стратегиям и подбирает
// рекомендацию под свободный текст запроса. Движок рассуждает только
// над названиями купонов: это подсказка, а не оптимизация полной
// стоимости по графу меню.
package guidance

import (
	"sort"
	"strings"

	"mcpizza/internal/store"
)

// Типы стратегий.
const (
	StrategyMultiPizza  = "multi_pizza"
	StrategySinglePizza = "single_pizza"
	StrategyPercentage  = "percentage"
)

// topDeals сколько сделок показывать в каждой стратегии.
const topDeals = 3

// Deal сделка внутри стратегии. Size заполнен только для
// одиночных пицц ("medium"/"large").
type Deal struct {
	Code  string
	Name  string
	Price float64
	Size  string
}

// Strategy группа сделок одного типа.
type Strategy struct {
	Type  string
	Title string
	Deals []Deal
}

// Guidance результат анализа.
type Guidance struct {
	UserRequest     string
	Strategies      []Strategy
	RecommendedCode string
	TotalCoupons    int
}

// Analyze раскладывает купоны по корзинам и выбирает рекомендацию.
// Купон попадает не более чем в одну корзину: предикаты проверяются
// по порядку и первый совпавший выигрывает.
func Analyze(coupons []store.Coupon, userRequest string) Guidance {
	requestLower := strings.ToLower(userRequest)

	var multi, single, percentage []Deal
	for _, c := range coupons {
		name := strings.ToLower(c.Name)
		switch {
		case strings.Contains(name, "2 or more") || strings.Contains(name, "two or more"):
			multi = append(multi, Deal{Code: c.Code, Name: c.Name, Price: c.Price})
		case strings.Contains(name, "medium") && c.Price != store.PriceVaries && strings.Contains(name, "pizza"):
			single = append(single, Deal{Code: c.Code, Name: c.Name, Price: c.Price, Size: "medium"})
		case strings.Contains(name, "large") && c.Price != store.PriceVaries && strings.Contains(name, "pizza"):
			single = append(single, Deal{Code: c.Code, Name: c.Name, Price: c.Price, Size: "large"})
		case strings.Contains(name, "%") || strings.Contains(name, "percent"):
			percentage = append(percentage, Deal{Code: c.Code, Name: c.Name, Price: c.Price})
		}
	}

	sortByPrice(multi)
	sortByPrice(single)

	g := Guidance{
		UserRequest:  userRequest,
		TotalCoupons: len(coupons),
	}
	if len(multi) > 0 {
		g.Strategies = append(g.Strategies, Strategy{
			Type:  StrategyMultiPizza,
			Title: "Multi-Pizza Deals (Best for 2+ pizzas)",
			Deals: cap3(multi),
		})
	}
	if len(single) > 0 {
		g.Strategies = append(g.Strategies, Strategy{
			Type:  StrategySinglePizza,
			Title: "Single Pizza Deals",
			Deals: cap3(single),
		})
	}
	if len(percentage) > 0 {
		g.Strategies = append(g.Strategies, Strategy{
			Type:  StrategyPercentage,
			Title: "Percentage Discounts",
			Deals: cap3(percentage),
		})
	}

	g.RecommendedCode = recommend(requestLower, multi, single)
	return g
}

// recommend: запрос про deep dish/pan ищет среди одиночных сделок
// среднюю пиццу с двумя топпингами; иначе дешевейшая мульти-сделка,
// затем дешевейшая одиночная.
func recommend(requestLower string, multi, single []Deal) string {
	if strings.Contains(requestLower, "deep dish") || strings.Contains(requestLower, "pan") {
		for _, d := range single {
			name := strings.ToLower(d.Name)
			if strings.Contains(name, "medium") && strings.Contains(d.Name, "2") && strings.Contains(name, "topping") {
				return d.Code
			}
		}
		return ""
	}
	if len(multi) > 0 {
		return multi[0].Code
	}
	if len(single) > 0 {
		return single[0].Code
	}
	return ""
}

func sortByPrice(deals []Deal) {
	sort.SliceStable(deals, func(i, j int) bool { return deals[i].Price < deals[j].Price })
}

func cap3(deals []Deal) []Deal {
	if len(deals) > topDeals {
		deals = deals[:topDeals]
	}
	return append([]Deal(nil), deals...)
}
