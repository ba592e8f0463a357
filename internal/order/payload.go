// Package order содержит модель заказа в форме, которую принимает API
// вендора, и менеджер сессионных заказов. Имена JSON-полей обязаны
// совпадать с ожиданиями вендора с точностью до регистра.
package order

// Способы получения заказа.
const (
	ServiceDelivery = "Delivery"
	ServiceCarryout = "Carryout"
)

// Address адрес доставки внутри payload заказа.
type Address struct {
	Street     string `json:"Street"`
	City       string `json:"City"`
	Region     string `json:"Region"`
	PostalCode string `json:"PostalCode"`
	Type       string `json:"Type"`
}

// Coupon позиция купона в заказе. ID плотные, начинаются с 1,
// присваиваются при добавлении и никогда не переиспользуются.
type Coupon struct {
	Code string `json:"Code"`
	Qty  int    `json:"Qty"`
	ID   int    `json:"ID"`
}

// Product позиция продукта. Options: код топпинга -> спецификация
// порции, например {"P": {"1/1": "1"}} — пепперони на всю пиццу.
type Product struct {
	Code    string                       `json:"Code"`
	Qty     int                          `json:"Qty"`
	ID      int                          `json:"ID"`
	IsNew   bool                         `json:"isNew"`
	Options map[string]map[string]string `json:"Options"`
}

// Payment единственная запись оплаты, добавляется координатором
// перед отправкой заказа.
type Payment struct {
	Type         string  `json:"Type"`
	Number       string  `json:"Number"`
	Expiration   string  `json:"Expiration"`
	Amount       float64 `json:"Amount"`
	CardType     string  `json:"CardType"`
	SecurityCode string  `json:"SecurityCode"`
	PostalCode   string  `json:"PostalCode"`
}

// Customer данные клиента текущего заказа.
type Customer struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// StoreRef ссылка на выбранный магазин.
type StoreRef struct {
	ID                 string
	AddressDescription string
	Phone              string
	IsOpen             bool
}

// Payload единственный изменяемый агрегат заказа. Форма повторяет
// схему отправки вендора; служебные поля несут фиксированные дефолты.
type Payload struct {
	Address               Address            `json:"Address"`
	Coupons               []Coupon           `json:"Coupons"`
	CustomerID            string             `json:"CustomerID"`
	Extension             string             `json:"Extension"`
	OrderChannel          string             `json:"OrderChannel"`
	OrderID               string             `json:"OrderID"`
	NoCombine             bool               `json:"NoCombine"`
	OrderMethod           string             `json:"OrderMethod"`
	OrderTaker            *string            `json:"OrderTaker"`
	Payments              []Payment          `json:"Payments"`
	Products              []Product          `json:"Products"`
	Market                string             `json:"Market"`
	Currency              string             `json:"Currency"`
	ServiceMethod         string             `json:"ServiceMethod"`
	Tags                  map[string]any     `json:"Tags"`
	Version               string             `json:"Version"`
	SourceOrganizationURI string             `json:"SourceOrganizationURI"`
	LanguageCode          string             `json:"LanguageCode"`
	Partners              map[string]any     `json:"Partners"`
	NewUser               bool               `json:"NewUser"`
	MetaData              map[string]any     `json:"metaData"`
	Amounts               map[string]float64 `json:"Amounts"`
	BusinessDate          string             `json:"BusinessDate"`
	EstimatedWaitMinutes  string             `json:"EstimatedWaitMinutes"`
	PriceOrderTime        string             `json:"PriceOrderTime"`
	AmountsBreakdown      map[string]any     `json:"AmountsBreakdown"`
	StoreID               string             `json:"StoreID"`
	Email                 string             `json:"Email"`
	FirstName             string             `json:"FirstName"`
	LastName              string             `json:"LastName"`
	Phone                 string             `json:"Phone"`
}

// NewPayload создает пустой заказ с дефолтами вендора.
func NewPayload(addr Address, serviceMethod string) *Payload {
	addr.Type = "House"
	return &Payload{
		Address:               addr,
		Coupons:               []Coupon{},
		OrderChannel:          "OLO",
		NoCombine:             true,
		OrderMethod:           "Web",
		Payments:              []Payment{},
		Products:              []Product{},
		ServiceMethod:         serviceMethod,
		Tags:                  map[string]any{},
		Version:               "1.0",
		SourceOrganizationURI: "order.dominos.com",
		LanguageCode:          "en",
		Partners:              map[string]any{},
		NewUser:               true,
		MetaData:              map[string]any{},
		Amounts:               map[string]float64{},
		AmountsBreakdown:      map[string]any{},
	}
}

// AddCoupon добавляет купон в конец списка. Количество всегда 1:
// вендор применяет код единожды.
func (p *Payload) AddCoupon(code string) {
	p.Coupons = append(p.Coupons, Coupon{
		Code: code,
		Qty:  1,
		ID:   len(p.Coupons) + 1,
	})
}

// AddProduct добавляет продукт в конец списка. qty < 1 приводится к 1.
// Коды продукта и топпингов не проверяются: валидация отдана вендору.
func (p *Payload) AddProduct(code string, qty int, options map[string]map[string]string) {
	if qty < 1 {
		qty = 1
	}
	if options == nil {
		options = map[string]map[string]string{}
	}
	p.Products = append(p.Products, Product{
		Code:    code,
		Qty:     qty,
		ID:      len(p.Products) + 1,
		IsNew:   true,
		Options: options,
	})
}

// Priced сообщает, проходил ли заказ ценообразование.
func (p *Payload) Priced() bool {
	return len(p.Amounts) > 0
}
