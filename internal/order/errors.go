package order

import "errors"

var (
	// ErrNoActiveOrder операция над заказом вызвана до create_order
	// или после clear_order.
	ErrNoActiveOrder = errors.New("нет активного заказа, сначала вызовите create_order")

	// ErrNoStores локатор не вернул ни одного магазина для адреса.
	ErrNoStores = errors.New("по адресу не найдено ни одного магазина")
)
