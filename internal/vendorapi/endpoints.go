package vendorapi

// Пути API вендора. Базовый URL задается конфигом.
const (
	pathStoreLocator = "/power/store-locator"
	pathStoreProfile = "/power/store/%s"
	pathStoreMenu    = "/power/store/%s/menu?lang=en&structured=true"
	pathPriceOrder   = "/power/price-order"
	pathPlaceOrder   = "/power/place-order"
)

// StatusRejected сентинел вендора: тело ответа корректно, но заказ
// отклонен. Отличается от транспортной ошибки HTTP.
const StatusRejected = -1
