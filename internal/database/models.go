// Package database — журнал аудита в PostgreSQL через GORM.
// Журнал — история, он никогда не восстанавливается в активный заказ.
package database

import "time"

// Interaction запись одного вызова инструмента. Аргументы и превью
// ответа проходят санитайзер до сохранения.
type Interaction struct {
	ID              uint      `gorm:"primaryKey"`
	SessionID       string    `gorm:"type:varchar(64);index;not null"` // Сессия клиента MCP
	Tool            string    `gorm:"type:varchar(64);not null"`       // Имя инструмента
	Arguments       string    `gorm:"type:text"`                       // Маскированные аргументы (JSON)
	Success         bool      `gorm:"not null"`
	ResponsePreview string    `gorm:"type:text"` // Первые 500 символов ответа
	Error           string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

// PlacedOrder запись успешно размещенного заказа.
type PlacedOrder struct {
	ID            uint      `gorm:"primaryKey"`
	SessionID     string    `gorm:"type:varchar(64);index;not null"`
	StoreID       string    `gorm:"type:varchar(16);not null"`
	VendorOrderID string    `gorm:"type:varchar(64)"` // OrderID из ответа вендора
	Total         float64   // Amounts.Customer на момент размещения
	Status        string    `gorm:"type:varchar(32);not null"` // placed | rejected | failed
	StatusDetail  string    `gorm:"type:text"`                 // Позиции StatusItems при отклонении
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}
