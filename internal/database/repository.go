package database

import "gorm.io/gorm"

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) CreateInteraction(i *Interaction) error {
	return r.db.Create(i).Error
}

func (r *AuditRepository) ListInteractions(limit, offset int) ([]Interaction, error) {
	var interactions []Interaction
	if err := r.db.Order("id DESC").Limit(limit).Offset(offset).Find(&interactions).Error; err != nil {
		return nil, err
	}
	return interactions, nil
}

func (r *AuditRepository) CreatePlacedOrder(o *PlacedOrder) error {
	return r.db.Create(o).Error
}

func (r *AuditRepository) ListPlacedOrders(limit, offset int) ([]PlacedOrder, error) {
	var orders []PlacedOrder
	if err := r.db.Order("id DESC").Limit(limit).Offset(offset).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
