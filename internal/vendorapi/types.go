package vendorapi

import "mcpizza/internal/order"

// StoreSummary магазин из ответа локатора.
type StoreSummary struct {
	StoreID             string `json:"StoreID"`
	AddressDescription  string `json:"AddressDescription"`
	Phone               string `json:"Phone"`
	IsOpen              bool   `json:"IsOpen"`
	IsOnlineCapable     bool   `json:"IsOnlineCapable"`
	ServiceIsOpen       map[string]bool `json:"ServiceIsOpen"`
	MinDistance         float64 `json:"MinDistance"`
}

// LocatorResponse ответ store-locator.
type LocatorResponse struct {
	Stores []StoreSummary `json:"Stores"`
}

// StoreProfile детальная информация о магазине.
type StoreProfile struct {
	StoreID                 string            `json:"StoreID"`
	AddressDescription      string            `json:"AddressDescription"`
	Phone                   string            `json:"Phone"`
	HoursDescription        string            `json:"HoursDescription"`
	IsOpen                  bool              `json:"IsOpen"`
	IsDeliveryStore         bool              `json:"IsDeliveryStore"`
	ServiceHoursDescription map[string]string `json:"ServiceHoursDescription"`
}

// MenuProduct продукт из структурированного меню. Price приходит
// строкой и не у всех позиций.
type MenuProduct struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
	Price       string `json:"Price"`
	ProductType string `json:"ProductType"`
}

// MenuCoupon купон из меню. Price может отсутствовать или быть null —
// тогда цена "варьируется" (процентные скидки и т.п.).
type MenuCoupon struct {
	Name        string         `json:"Name"`
	Description string         `json:"Description"`
	Price       string         `json:"Price"`
	Tags        map[string]any `json:"Tags"`
}

// MenuResponse меню магазина с купонами.
type MenuResponse struct {
	Products map[string]MenuProduct `json:"Products"`
	Coupons  map[string]MenuCoupon  `json:"Coupons"`
}

// StatusItem позиция диагностики вендора при отклонении заказа.
type StatusItem struct {
	Code string `json:"Code"`
	Text string `json:"PulseText"`
}

// ResponseOrder вложенный объект Order в ответах price/place.
// Повторяет форму payload плюс диагностика.
type ResponseOrder struct {
	order.Payload
	StatusItems []StatusItem `json:"StatusItems"`
}

// OrderResponse ответ price-order и place-order.
type OrderResponse struct {
	Status int           `json:"Status"`
	Order  ResponseOrder `json:"Order"`
}

// Rejected проверяет сентинел отклонения.
func (r *OrderResponse) Rejected() bool {
	return r.Status == StatusRejected
}
