// Package params — типизированные параметры MCP-инструментов.
// Аргументы привязываются из сырой карты протокола и проверяются
// валидатором. Доменные коды (продукты, топпинги, тесто) намеренно
// не проверяются: их валидирует вендор.
package params

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type defaulter interface {
	setDefaults()
}

// Bind переливает сырые аргументы инструмента в типизированную
// структуру, проставляет дефолты и валидирует результат.
func Bind(args map[string]any, out any) error {
	raw, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("сериализация аргументов: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if d, ok := out.(defaulter); ok {
		d.setDefaults()
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// StoreSearchParams параметры поиска магазинов.
type StoreSearchParams struct {
	Query string `json:"query" validate:"required"`
}

// StoreInfoParams параметры операций над одним магазином.
type StoreInfoParams struct {
	StoreID string `json:"store_id" validate:"required"`
}

// MenuSearchParams параметры поиска по меню.
type MenuSearchParams struct {
	StoreID  string `json:"store_id" validate:"required"`
	Query    string `json:"query"`
	Category string `json:"category"`
}

// CreateOrderParams параметры создания заказа.
type CreateOrderParams struct {
	StoreID         string `json:"store_id" validate:"required"`
	CustomerName    string `json:"customer_name" validate:"required"`
	CustomerEmail   string `json:"customer_email" validate:"required,email"`
	CustomerPhone   string `json:"customer_phone" validate:"required"`
	DeliveryAddress string `json:"delivery_address" validate:"required"`
	DeliveryCity    string `json:"delivery_city" validate:"required"`
	DeliveryState   string `json:"delivery_state" validate:"required,len=2"`
	DeliveryZip     string `json:"delivery_zip" validate:"required"`
	OrderType       string `json:"order_type" validate:"omitempty,oneof=Delivery Carryout"`
}

func (p *CreateOrderParams) setDefaults() {
	if p.OrderType == "" {
		p.OrderType = "Delivery"
	}
}

// AddItemParams параметры добавления позиции.
type AddItemParams struct {
	ItemCode string                       `json:"item_code" validate:"required"`
	Quantity int                          `json:"quantity" validate:"min=1"`
	Options  map[string]map[string]string `json:"options"`
}

func (p *AddItemParams) setDefaults() {
	if p.Quantity == 0 {
		p.Quantity = 1
	}
}

// AddPizzaParams параметры добавления пиццы по купону.
type AddPizzaParams struct {
	CouponCode string   `json:"coupon_code" validate:"required"`
	Size       string   `json:"size"`
	Crust      string   `json:"crust"`
	Toppings   []string `json:"toppings" validate:"required"`
}

func (p *AddPizzaParams) setDefaults() {
	if p.Size == "" {
		p.Size = "12"
	}
	if p.Crust == "" {
		p.Crust = "NPAN"
	}
}

// GuidanceParams параметры запроса рекомендаций.
type GuidanceParams struct {
	StoreID     string `json:"store_id" validate:"required"`
	UserRequest string `json:"user_request" validate:"required"`
}

// PlaceOrderParams платежные параметры размещения заказа.
type PlaceOrderParams struct {
	CardNumber string `json:"card_number" validate:"required"`
	CardExpiry string `json:"card_expiry" validate:"required"`
	CardCVV    string `json:"card_cvv" validate:"required"`
	CardZip    string `json:"card_zip" validate:"required"`
}
