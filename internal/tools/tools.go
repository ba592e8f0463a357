// Package tools объявляет MCP-инструменты заказа пиццы и их
// обработчики. Каждый обработчик тотален: любая ошибка возвращается
// клиенту текстом результата, а не сбоем протокола.
package tools

import (
	"context"

	"mcpizza/internal/logger"
	"mcpizza/internal/order"
	"mcpizza/internal/payment"
	"mcpizza/internal/store"

	"github.com/mark3labs/mcp-go/mcp"
	srv "github.com/mark3labs/mcp-go/server"
)

// Deps зависимости обработчиков. SessionID — сессия единственного
// stdio-клиента; менеджер заказов ключует состояние по ней.
type Deps struct {
	Log       *logger.Zap
	Orders    *order.Manager
	Stores    *store.Service
	Payments  *payment.Coordinator
	Audit     *Recorder
	SessionID string
}

// Register объявляет все инструменты на MCP-сервере.
func Register(s *srv.MCPServer, d *Deps) {
	s.AddTool(mcp.NewTool("find_stores",
		mcp.WithDescription("Find nearby pizza stores by address or zip code. Returns store IDs, addresses, and phone numbers."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Address or zip code to search for stores")),
	), d.wrap("find_stores", d.handleFindStores))

	s.AddTool(mcp.NewTool("get_store_info",
		mcp.WithDescription("Get detailed information about a specific store including hours and services."),
		mcp.WithString("store_id", mcp.Required(), mcp.Description("Store ID to get information for")),
	), d.wrap("get_store_info", d.handleGetStoreInfo))

	s.AddTool(mcp.NewTool("get_menu",
		mcp.WithDescription("Get the full menu for a specific store. Returns all available items organized by category."),
		mcp.WithString("store_id", mcp.Required(), mcp.Description("Store ID to get menu for")),
	), d.wrap("get_menu", d.handleGetMenu))

	s.AddTool(mcp.NewTool("search_menu",
		mcp.WithDescription("Search for specific menu items at a store. Can filter by category and search term."),
		mcp.WithString("store_id", mcp.Required(), mcp.Description("Store ID to search menu for")),
		mcp.WithString("query", mcp.Description("Search query (optional)")),
		mcp.WithString("category", mcp.Description("Category filter: Pizza, Wings, Sides, Drinks, Desserts, etc.")),
	), d.wrap("search_menu", d.handleSearchMenu))

	s.AddTool(mcp.NewTool("get_coupons",
		mcp.WithDescription("Get available coupons and deals for a store. Returns coupon codes, descriptions, and prices."),
		mcp.WithString("store_id", mcp.Required(), mcp.Description("Store ID to get coupons for")),
	), d.wrap("get_coupons", d.handleGetCoupons))

	s.AddTool(mcp.NewTool("create_order",
		mcp.WithDescription("Create a new order for delivery or carryout. Required before adding items."),
		mcp.WithString("store_id", mcp.Required(), mcp.Description("Store ID")),
		mcp.WithString("customer_name", mcp.Required(), mcp.Description("Customer full name")),
		mcp.WithString("customer_email", mcp.Required(), mcp.Description("Customer email")),
		mcp.WithString("customer_phone", mcp.Required(), mcp.Description("Customer phone number")),
		mcp.WithString("delivery_address", mcp.Required(), mcp.Description("Street address")),
		mcp.WithString("delivery_city", mcp.Required(), mcp.Description("City")),
		mcp.WithString("delivery_state", mcp.Required(), mcp.Description("State (2-letter code)")),
		mcp.WithString("delivery_zip", mcp.Required(), mcp.Description("Zip code")),
		mcp.WithString("order_type", mcp.Description("Delivery or Carryout"), mcp.DefaultString("Delivery")),
	), d.wrap("create_order", d.handleCreateOrder))

	s.AddTool(mcp.NewTool("add_item_to_order",
		mcp.WithDescription("Add a menu item to the current order. Must create an order first."),
		mcp.WithString("item_code", mcp.Required(), mcp.Description("Menu item code from the menu")),
		mcp.WithNumber("quantity", mcp.Description("Quantity to add"), mcp.DefaultNumber(1)),
		mcp.WithObject("options", mcp.Description("Item customization options")),
	), d.wrap("add_item_to_order", d.handleAddItem))

	s.AddTool(mcp.NewTool("add_pizza_with_toppings",
		mcp.WithDescription("Add a customized pizza with toppings using a coupon code. Handles proper product + topping configuration."),
		mcp.WithString("coupon_code", mcp.Required(), mcp.Description("Coupon code (e.g., '9204')")),
		mcp.WithString("size", mcp.Description("Pizza size code: 10, 12, 14, or 16"), mcp.DefaultString("12")),
		mcp.WithString("crust", mcp.Description("Crust code: NPAN (pan), HAND (hand tossed), THIN, BROOKLYN, etc."), mcp.DefaultString("NPAN")),
		mcp.WithArray("toppings", mcp.Required(),
			mcp.Description("Topping codes: P (pepperoni), S (sausage), M (mushrooms), O (onions), etc."),
			mcp.Items(map[string]any{"type": "string"})),
	), d.wrap("add_pizza_with_toppings", d.handleAddPizza))

	s.AddTool(mcp.NewTool("view_order",
		mcp.WithDescription("View the current order including all items, prices, and totals."),
	), d.wrap("view_order", d.handleViewOrder))

	s.AddTool(mcp.NewTool("clear_order",
		mcp.WithDescription("Clear the current order and start over."),
	), d.wrap("clear_order", d.handleClearOrder))

	s.AddTool(mcp.NewTool("get_ordering_guidance",
		mcp.WithDescription("Get guidance on how to build the best order based on user preferences. Analyzes deals, suggests optimal pizza counts, and provides ordering strategy."),
		mcp.WithString("store_id", mcp.Required(), mcp.Description("Store ID to analyze deals for")),
		mcp.WithString("user_request", mcp.Required(), mcp.Description("What the user wants (e.g., 'deep dish sausage and pepperoni', '2 large pizzas for a party')")),
	), d.wrap("get_ordering_guidance", d.handleGuidance))

	s.AddTool(mcp.NewTool("place_order",
		mcp.WithDescription("⚠️ PLACES A REAL ORDER with real payment! Submit the current order to the store. Requires payment information."),
		mcp.WithString("card_number", mcp.Required(), mcp.Description("Credit card number")),
		mcp.WithString("card_expiry", mcp.Required(), mcp.Description("Card expiry (MM/YY)")),
		mcp.WithString("card_cvv", mcp.Required(), mcp.Description("Card CVV")),
		mcp.WithString("card_zip", mcp.Required(), mcp.Description("Billing zip code")),
	), d.wrap("place_order", d.handlePlaceOrder))
}

// wrap добавляет журналирование вызова и результата вокруг обработчика.
func (d *Deps) wrap(name string, h srv.ToolHandlerFunc) srv.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		d.Audit.Call(name, args)

		res, err := h(ctx, req)

		success := err == nil && (res == nil || !res.IsError)
		d.Audit.Record(name, args, success, resultPreview(res), errText(err))
		return res, err
	}
}

func resultPreview(res *mcp.CallToolResult) string {
	if res == nil {
		return ""
	}
	text := contentText(res)
	if len(text) > 500 {
		text = text[:500]
	}
	return text
}

func contentText(res *mcp.CallToolResult) string {
	for _, c := range res.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
