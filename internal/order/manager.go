package order

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"mcpizza/internal/logger"

	"go.uber.org/zap"
)

// StoreLocator ищет ближайшие к адресу магазины.
type StoreLocator interface {
	FindClosestStores(ctx context.Context, street, cityStateZip string) ([]StoreRef, error)
}

// CreateOrderInput параметры создания заказа.
type CreateOrderInput struct {
	StoreID       string
	CustomerName  string
	Email         string
	Phone         string
	Street        string
	City          string
	Region        string
	PostalCode    string
	ServiceMethod string // пустое значение означает Delivery
}

// View read-only проекция текущего заказа для отображения.
type View struct {
	StoreID       string
	CustomerName  string
	ServiceMethod string
	Coupons       []Coupon
	Products      []Product
	Amounts       map[string]float64
}

type session struct {
	payload  *Payload
	store    StoreRef
	customer Customer
}

// Manager владеет заказами, по одному на сессию. Все операции
// сериализуются мьютексом: протокольный слой шлет вызовы по одному,
// но разные сессии не должны портить заказы друг друга.
type Manager struct {
	mu       sync.Mutex
	locator  StoreLocator
	log      *logger.Zap
	sessions map[string]*session
}

func NewManager(locator StoreLocator, log *logger.Zap) *Manager {
	return &Manager{
		locator:  locator,
		log:      log,
		sessions: make(map[string]*session),
	}
}

// CreateOrder создает заказ, целиком заменяя текущий заказ сессии.
// Магазин выбирается из ближайших к адресу: совпадение по StoreID,
// иначе первый найденный. Возвращает выбранный магазин.
func (m *Manager) CreateOrder(ctx context.Context, sessionID string, in CreateOrderInput) (StoreRef, error) {
	first, last := splitName(in.CustomerName)

	serviceMethod := in.ServiceMethod
	if serviceMethod == "" {
		serviceMethod = ServiceDelivery
	}

	cityStateZip := fmt.Sprintf("%s, %s %s", in.City, in.Region, in.PostalCode)
	stores, err := m.locator.FindClosestStores(ctx, in.Street, cityStateZip)
	if err != nil {
		return StoreRef{}, fmt.Errorf("поиск магазина: %w", err)
	}
	if len(stores) == 0 {
		return StoreRef{}, ErrNoStores
	}

	store := stores[0]
	for _, s := range stores {
		if s.ID == in.StoreID {
			store = s
			break
		}
	}
	if store.ID != in.StoreID {
		m.log.Warn("Запрошенный магазин не найден среди ближайших, берем первый",
			zap.String("requested", in.StoreID),
			zap.String("selected", store.ID))
	}

	payload := NewPayload(Address{
		Street:     in.Street,
		City:       in.City,
		Region:     in.Region,
		PostalCode: in.PostalCode,
	}, serviceMethod)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionID] = &session{
		payload: payload,
		store:   store,
		customer: Customer{
			FirstName: first,
			LastName:  last,
			Email:     in.Email,
			Phone:     in.Phone,
		},
	}

	m.log.Info("Заказ создан",
		zap.String("session", sessionID),
		zap.String("store", store.ID),
		zap.String("service", serviceMethod))
	return store, nil
}

// AddItem добавляет позицию по коду. Код ровно из четырех цифр —
// купон, все остальное — продукт. Для купона количество игнорируется.
// Возвращает текст подтверждения.
func (m *Manager) AddItem(sessionID, code string, qty int, options map[string]map[string]string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return "", ErrNoActiveOrder
	}

	if isCouponCode(code) {
		s.payload.AddCoupon(code)
		if qty > 1 {
			return fmt.Sprintf("Added coupon %s to order (quantity ignored: coupons apply once)", code), nil
		}
		return fmt.Sprintf("Added coupon %s to order", code), nil
	}

	if qty < 1 {
		qty = 1
	}
	s.payload.AddProduct(code, qty, options)
	return fmt.Sprintf("Added %dx %s to order", qty, code), nil
}

// AddPizzaWithToppings добавляет купон и сконфигурированную пиццу
// одним вызовом. Код продукта: "P" + размер + "I" + токен теста.
// Каждый топпинг кладется на всю пиццу в одинарной порции.
func (m *Manager) AddPizzaWithToppings(sessionID, couponCode, size, crust string, toppings []string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return "", ErrNoActiveOrder
	}

	s.payload.AddCoupon(couponCode)

	productCode := fmt.Sprintf("P%sI%s", size, crustToken(crust))
	options := make(map[string]map[string]string, len(toppings))
	for _, t := range toppings {
		options[t] = map[string]string{"1/1": "1"}
	}
	s.payload.AddProduct(productCode, 1, options)

	return fmt.Sprintf("Added %s\" %s pizza with %d toppings using coupon %s",
		size, crust, len(toppings), couponCode), nil
}

// ViewOrder возвращает проекцию текущего заказа.
func (m *Manager) ViewOrder(sessionID string) (View, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return View{}, ErrNoActiveOrder
	}

	return View{
		StoreID:       s.store.ID,
		CustomerName:  strings.TrimSpace(s.customer.FirstName + " " + s.customer.LastName),
		ServiceMethod: s.payload.ServiceMethod,
		Coupons:       append([]Coupon(nil), s.payload.Coupons...),
		Products:      append([]Product(nil), s.payload.Products...),
		Amounts:       s.payload.Amounts,
	}, nil
}

// ClearOrder сбрасывает заказ сессии вместе со ссылками на магазин
// и клиента.
func (m *Manager) ClearOrder(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
}

// Current отдает payload заказа с данными клиента и магазина для
// координатора оплаты. Payload мутируется получателем на месте,
// отката нет.
func (m *Manager) Current(sessionID string) (*Payload, StoreRef, Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, StoreRef{}, Customer{}, ErrNoActiveOrder
	}
	return s.payload, s.store, s.customer, nil
}

// splitName делит полное имя по первому пробелу на имя и фамилию.
func splitName(full string) (first, last string) {
	parts := strings.SplitN(strings.TrimSpace(full), " ", 2)
	first = parts[0]
	if len(parts) > 1 {
		last = parts[1]
	}
	return first, last
}

func isCouponCode(code string) bool {
	if len(code) != 4 {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// crustToken переводит код теста в токен кода продукта вендора.
// Для неизвестных значений канонический дефолт — HAND.
func crustToken(crust string) string {
	switch crust {
	case "NPAN":
		return "PAZA"
	case "HAND":
		return "HAND"
	case "THIN":
		return "THIN"
	case "BROOKLYN":
		return "BK"
	default:
		return "HAND"
	}
}
