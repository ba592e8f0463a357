// Package vendorapi — HTTP-клиент неофициального API вендора.
// Только транспорт: сборка запросов, заголовки, коды ответов.
// Семантика Status == -1 разбирается выше, в координаторе оплаты.
package vendorapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"mcpizza/internal/config"
	"mcpizza/internal/logger"
	"mcpizza/internal/order"

	"go.uber.org/zap"
)

type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	log       *logger.Zap
}

func New(cfg config.Vendor, log *logger.Zap) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: cfg.Timeout},
		log:       log,
	}
}

// FindClosestStores ищет ближайшие магазины. street может быть пустым,
// когда запрос — голый индекс; serviceMethod определяет тип поиска.
func (c *Client) FindClosestStores(ctx context.Context, street, cityStateZip, serviceMethod string) ([]StoreSummary, error) {
	q := url.Values{}
	q.Set("s", street)
	q.Set("c", cityStateZip)
	q.Set("type", serviceMethod)

	var resp LocatorResponse
	if err := c.get(ctx, pathStoreLocator+"?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return resp.Stores, nil
}

// GetStoreProfile возвращает профиль магазина.
func (c *Client) GetStoreProfile(ctx context.Context, storeID string) (*StoreProfile, error) {
	var profile StoreProfile
	if err := c.get(ctx, fmt.Sprintf(pathStoreProfile, storeID), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetStoreMenu возвращает структурированное меню магазина с купонами.
func (c *Client) GetStoreMenu(ctx context.Context, storeID string) (*MenuResponse, error) {
	var menu MenuResponse
	if err := c.get(ctx, fmt.Sprintf(pathStoreMenu, storeID), &menu); err != nil {
		return nil, err
	}
	return &menu, nil
}

// PriceOrder валидирует и рассчитывает заказ.
func (c *Client) PriceOrder(ctx context.Context, p *order.Payload) (*OrderResponse, error) {
	return c.postOrder(ctx, pathPriceOrder, p)
}

// PlaceOrder отправляет заказ на размещение.
func (c *Client) PlaceOrder(ctx context.Context, p *order.Payload) (*OrderResponse, error) {
	return c.postOrder(ctx, pathPlaceOrder, p)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// postOrder оборачивает payload в {"Order": ...} — формат, который
// ожидают price-order и place-order.
func (c *Client) postOrder(ctx context.Context, path string, p *order.Payload) (*OrderResponse, error) {
	body, err := json.Marshal(map[string]*order.Payload{"Order": p})
	if err != nil {
		return nil, fmt.Errorf("сериализация заказа: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var resp OrderResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.log.Debug("Запрос к вендору",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("vendor api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("vendor api: %s %s: status %d: %s",
			req.Method, req.URL.Path, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("vendor api: разбор ответа: %w", err)
	}
	return nil
}
