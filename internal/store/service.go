// Package store нормализует ответы вендора о магазинах, меню и купонах
// в плоские записи для инструментов и движка рекомендаций.
package store

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"mcpizza/internal/logger"
	"mcpizza/internal/order"
	"mcpizza/internal/vendorapi"

	"go.uber.org/zap"
)

// PriceVaries сентинел цены купона: процентные скидки и акции
// "от суммы" не имеют фиксированной цены и сортируются в конец.
const PriceVaries = 999.99

// maxStores ограничение выдачи поиска магазинов.
const maxStores = 5

// API поднабор клиента вендора, нужный сервису.
type API interface {
	FindClosestStores(ctx context.Context, street, cityStateZip, serviceMethod string) ([]vendorapi.StoreSummary, error)
	GetStoreProfile(ctx context.Context, storeID string) (*vendorapi.StoreProfile, error)
	GetStoreMenu(ctx context.Context, storeID string) (*vendorapi.MenuResponse, error)
}

// Summary магазин в выдаче поиска.
type Summary struct {
	ID      string
	Address string
	Phone   string
	IsOpen  bool
}

// MenuItem плоская запись позиции меню.
type MenuItem struct {
	Code        string
	Name        string
	Category    string
	Description string
	Price       string
}

// Coupon плоская запись купона. Price == PriceVaries, когда вендор
// не прислал цену.
type Coupon struct {
	Code        string
	Name        string
	Description string
	Price       float64
	Tags        map[string]any
}

type Service struct {
	api API
	log *logger.Zap
}

func NewService(api API, log *logger.Zap) *Service {
	return &Service{api: api, log: log}
}

// FindStores ищет магазины по свободному запросу. Запрос из пяти цифр
// трактуется как голый индекс, иначе как адрес.
func (s *Service) FindStores(ctx context.Context, query string) ([]Summary, error) {
	street, cityStateZip := "", strings.TrimSpace(query)
	if !isZip(cityStateZip) {
		street, cityStateZip = cityStateZip, ""
	}

	stores, err := s.api.FindClosestStores(ctx, street, cityStateZip, order.ServiceDelivery)
	if err != nil {
		return nil, err
	}

	if len(stores) > maxStores {
		stores = stores[:maxStores]
	}
	results := make([]Summary, 0, len(stores))
	for _, st := range stores {
		results = append(results, Summary{
			ID:      st.StoreID,
			Address: st.AddressDescription,
			Phone:   st.Phone,
			IsOpen:  st.IsOpen,
		})
	}
	return results, nil
}

// FindClosestStores реализует order.StoreLocator для менеджера заказов.
func (s *Service) FindClosestStores(ctx context.Context, street, cityStateZip string) ([]order.StoreRef, error) {
	stores, err := s.api.FindClosestStores(ctx, street, cityStateZip, order.ServiceDelivery)
	if err != nil {
		return nil, err
	}
	refs := make([]order.StoreRef, 0, len(stores))
	for _, st := range stores {
		refs = append(refs, order.StoreRef{
			ID:                 st.StoreID,
			AddressDescription: st.AddressDescription,
			Phone:              st.Phone,
			IsOpen:             st.IsOpen,
		})
	}
	return refs, nil
}

// Info возвращает профиль магазина.
func (s *Service) Info(ctx context.Context, storeID string) (*vendorapi.StoreProfile, error) {
	return s.api.GetStoreProfile(ctx, storeID)
}

// MenuByCategory возвращает меню, сгруппированное по типу продукта.
func (s *Service) MenuByCategory(ctx context.Context, storeID string) (map[string][]MenuItem, error) {
	menu, err := s.api.GetStoreMenu(ctx, storeID)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]MenuItem)
	for code, item := range menu.Products {
		category := item.ProductType
		if category == "" {
			category = "Other"
		}
		byCategory[category] = append(byCategory[category], MenuItem{
			Code:        code,
			Name:        item.Name,
			Category:    category,
			Description: item.Description,
			Price:       item.Price,
		})
	}
	for _, items := range byCategory {
		sort.Slice(items, func(i, j int) bool { return items[i].Code < items[j].Code })
	}
	return byCategory, nil
}

// SearchMenu фильтрует меню по категории и подстроке в имени либо
// описании. Оба фильтра опциональны и нечувствительны к регистру.
func (s *Service) SearchMenu(ctx context.Context, storeID, query, category string) ([]MenuItem, error) {
	menu, err := s.api.GetStoreMenu(ctx, storeID)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var results []MenuItem
	for code, item := range menu.Products {
		if category != "" && !strings.EqualFold(item.ProductType, category) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(item.Name), q) &&
			!strings.Contains(strings.ToLower(item.Description), q) {
			continue
		}
		results = append(results, MenuItem{
			Code:        code,
			Name:        item.Name,
			Category:    item.ProductType,
			Description: item.Description,
			Price:       item.Price,
		})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Code < results[j].Code })
	return results, nil
}

// Coupons возвращает купоны магазина по возрастанию цены; купоны без
// цены получают сентинел PriceVaries и уходят в конец.
func (s *Service) Coupons(ctx context.Context, storeID string) ([]Coupon, error) {
	menu, err := s.api.GetStoreMenu(ctx, storeID)
	if err != nil {
		return nil, err
	}

	coupons := make([]Coupon, 0, len(menu.Coupons))
	for code, c := range menu.Coupons {
		name := c.Name
		if name == "" {
			name = "Unknown Deal"
		}
		coupons = append(coupons, Coupon{
			Code:        code,
			Name:        name,
			Description: c.Description,
			Price:       parsePrice(c.Price),
			Tags:        c.Tags,
		})
	}
	sort.SliceStable(coupons, func(i, j int) bool { return coupons[i].Price < coupons[j].Price })

	s.log.Debug("Купоны загружены",
		zap.String("store", storeID),
		zap.Int("count", len(coupons)))
	return coupons, nil
}

func parsePrice(raw string) float64 {
	p, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return PriceVaries
	}
	return p
}

func isZip(s string) bool {
	if len(s) != 5 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
