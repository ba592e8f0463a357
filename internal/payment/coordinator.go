// Package payment — двухфазный протокол price -> place против API
// вендора. Координатор мутирует payload заказа на месте: отката нет,
// после неудачной отправки блок оплаты остается прикрепленным.
package payment

import (
	"context"
	"fmt"
	"strings"

	"mcpizza/internal/logger"
	"mcpizza/internal/order"
	"mcpizza/internal/vendorapi"

	"go.uber.org/zap"
)

// VendorAPI операции вендора, нужные координатору.
type VendorAPI interface {
	PriceOrder(ctx context.Context, p *order.Payload) (*vendorapi.OrderResponse, error)
	PlaceOrder(ctx context.Context, p *order.Payload) (*vendorapi.OrderResponse, error)
}

// Card платежные данные от вызывающего. Не валидируются: проверка
// целиком на стороне вендора.
type Card struct {
	Number     string
	Expiration string
	CVV        string
	PostalCode string
}

// Result итог попытки размещения. Всегда заполнен: координатор не
// возвращает ошибок наружу, каждая операция тотальна.
type Result struct {
	Success              bool
	Steps                []string
	Pricing              map[string]float64
	Rejected             bool
	StatusItems          []vendorapi.StatusItem
	OrderID              string
	EstimatedWaitMinutes string
	Error                string
	PossibleCauses       []string
}

// transportCauses фиксированный список вероятных причин транспортного
// сбоя отправки. Подсказка пользователю, не вывод из самой ошибки.
var transportCauses = []string{
	"Invalid payment information",
	"Store not accepting online orders",
	"Invalid items in order",
	"API limitations",
	"CAPTCHA verification required",
}

type Coordinator struct {
	api    VendorAPI
	orders *order.Manager
	log    *logger.Zap
}

func NewCoordinator(api VendorAPI, orders *order.Manager, log *logger.Zap) *Coordinator {
	return &Coordinator{api: api, orders: orders, log: log}
}

// PlaceOrder выполняет price -> payment -> place для заказа сессии.
func (c *Coordinator) PlaceOrder(ctx context.Context, sessionID string, card Card) *Result {
	res := &Result{}

	payload, storeRef, customer, err := c.orders.Current(sessionID)
	if err != nil {
		res.Error = "No active order. Create an order first."
		return res
	}

	// Фаза 1: расчет. Идентификация клиента и магазина вливается в
	// payload перед запросом.
	res.Steps = append(res.Steps, "Validating and pricing order...")
	payload.StoreID = storeRef.ID
	payload.Email = customer.Email
	payload.FirstName = customer.FirstName
	payload.LastName = customer.LastName
	payload.Phone = customer.Phone

	priced, err := c.api.PriceOrder(ctx, payload)
	if err != nil {
		res.Error = fmt.Sprintf("Pricing failed: %v", err)
		return res
	}
	if priced.Rejected() {
		res.StatusItems = priced.Order.StatusItems
		res.Error = fmt.Sprintf("Pricing failed: vendor rejected the order (status %d)", priced.Status)
		return res
	}

	mergePriced(payload, &priced.Order)
	res.Pricing = payload.Amounts
	res.Steps = append(res.Steps, fmt.Sprintf("Order validated - Subtotal: $%.2f", payload.Amounts["Customer"]))

	// Фаза 2: оплата. Единственная запись, сеть карты по эвристике
	// первой цифры: 3 — AMEX, остальное Visa.
	res.Steps = append(res.Steps, "Adding payment information...")
	payload.Payments = []order.Payment{{
		Type:         "CreditCard",
		Number:       card.Number,
		Expiration:   card.Expiration,
		Amount:       payload.Amounts["Customer"],
		CardType:     cardType(card.Number),
		SecurityCode: card.CVV,
		PostalCode:   card.PostalCode,
	}}
	res.Steps = append(res.Steps, "Payment added")

	// Фаза 3: отправка.
	res.Steps = append(res.Steps, "Submitting order to the store...")
	placed, err := c.api.PlaceOrder(ctx, payload)
	if err != nil {
		res.Error = fmt.Sprintf("ORDER FAILED: %v", err)
		res.PossibleCauses = transportCauses
		c.log.Error("Отправка заказа не удалась", zap.Error(err))
		return res
	}
	if placed.Rejected() {
		res.Rejected = true
		res.StatusItems = placed.Order.StatusItems
		res.Error = "ORDER REJECTED BY THE STORE"
		c.log.Warn("Заказ отклонен вендором",
			zap.Int("status", placed.Status),
			zap.Int("status_items", len(placed.Order.StatusItems)))
		return res
	}

	res.Success = true
	res.OrderID = placed.Order.OrderID
	res.EstimatedWaitMinutes = placed.Order.EstimatedWaitMinutes
	res.Steps = append(res.Steps, "ORDER PLACED SUCCESSFULLY!")
	c.log.Info("Заказ размещен",
		zap.String("order_id", res.OrderID),
		zap.String("wait_minutes", res.EstimatedWaitMinutes))
	return res
}

// mergePriced вливает ответ расчета обратно в payload. Списки
// заменяются только непустыми значениями: пустой список из ответа
// никогда не затирает собранные локально купоны и продукты. Скаляры
// и карты переносятся, когда присутствуют в ответе.
func mergePriced(p *order.Payload, r *vendorapi.ResponseOrder) {
	if len(r.Coupons) > 0 {
		p.Coupons = r.Coupons
	}
	if len(r.Products) > 0 {
		p.Products = r.Products
	}
	if len(r.Payments) > 0 {
		p.Payments = r.Payments
	}
	if len(r.Amounts) > 0 {
		p.Amounts = r.Amounts
	}
	if len(r.AmountsBreakdown) > 0 {
		p.AmountsBreakdown = r.AmountsBreakdown
	}
	if len(r.Tags) > 0 {
		p.Tags = r.Tags
	}
	if len(r.MetaData) > 0 {
		p.MetaData = r.MetaData
	}
	if r.OrderID != "" {
		p.OrderID = r.OrderID
	}
	if r.BusinessDate != "" {
		p.BusinessDate = r.BusinessDate
	}
	if r.EstimatedWaitMinutes != "" {
		p.EstimatedWaitMinutes = r.EstimatedWaitMinutes
	}
	if r.PriceOrderTime != "" {
		p.PriceOrderTime = r.PriceOrderTime
	}
	if r.Market != "" {
		p.Market = r.Market
	}
	if r.Currency != "" {
		p.Currency = r.Currency
	}
	if r.CustomerID != "" {
		p.CustomerID = r.CustomerID
	}
	if r.ServiceMethod != "" {
		p.ServiceMethod = r.ServiceMethod
	}
}

func cardType(number string) string {
	if strings.HasPrefix(number, "3") {
		return "AMEX"
	}
	return "Visa"
}
