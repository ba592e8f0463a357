package tools

import (
	"context"
	"fmt"
	"strings"

	"mcpizza/internal/order"
	"mcpizza/internal/params"
	"mcpizza/internal/payment"

	"github.com/mark3labs/mcp-go/mcp"
)

func (d *Deps) handleCreateOrder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p params.CreateOrderParams
	if err := params.Bind(req.GetArguments(), &p); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	storeRef, err := d.Orders.CreateOrder(ctx, d.SessionID, order.CreateOrderInput{
		StoreID:       p.StoreID,
		CustomerName:  p.CustomerName,
		Email:         p.CustomerEmail,
		Phone:         p.CustomerPhone,
		Street:        p.DeliveryAddress,
		City:          p.DeliveryCity,
		Region:        p.DeliveryState,
		PostalCode:    p.DeliveryZip,
		ServiceMethod: p.OrderType,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error creating order: %v", err)), nil
	}

	var b strings.Builder
	b.WriteString("✅ Order Created!\n\n")
	fmt.Fprintf(&b, "Customer: %s\n", p.CustomerName)
	fmt.Fprintf(&b, "Store: #%s\n", storeRef.ID)
	fmt.Fprintf(&b, "Type: %s\n\n", p.OrderType)
	b.WriteString("📝 Next steps:\n")
	b.WriteString("1. Add items with add_item_to_order or add_pizza_with_toppings\n")
	b.WriteString("2. View order with view_order\n")
	b.WriteString("3. Place order with place_order")
	return mcp.NewToolResultText(b.String()), nil
}

func (d *Deps) handleAddItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p params.AddItemParams
	if err := params.Bind(req.GetArguments(), &p); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	msg, err := d.Orders.AddItem(d.SessionID, p.ItemCode, p.Quantity, p.Options)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error adding item: %v", err)), nil
	}
	return mcp.NewToolResultText("✅ " + msg), nil
}

func (d *Deps) handleAddPizza(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p params.AddPizzaParams
	if err := params.Bind(req.GetArguments(), &p); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	msg, err := d.Orders.AddPizzaWithToppings(d.SessionID, p.CouponCode, p.Size, p.Crust, p.Toppings)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error adding pizza: %v", err)), nil
	}
	return mcp.NewToolResultText("✅ " + msg), nil
}

func (d *Deps) handleViewOrder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	view, err := d.Orders.ViewOrder(d.SessionID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error viewing order: %v", err)), nil
	}

	var b strings.Builder
	b.WriteString("📋 CURRENT ORDER:\n\n")
	fmt.Fprintf(&b, "Store: #%s\n", view.StoreID)
	fmt.Fprintf(&b, "Customer: %s\n", view.CustomerName)
	fmt.Fprintf(&b, "Service: %s\n\n", view.ServiceMethod)

	b.WriteString("🎉 Coupons:\n")
	if len(view.Coupons) > 0 {
		for _, c := range view.Coupons {
			fmt.Fprintf(&b, "  - %s\n", c.Code)
		}
	} else {
		b.WriteString("  (none)\n")
	}

	b.WriteString("\n🍕 Products:\n")
	if len(view.Products) > 0 {
		for _, p := range view.Products {
			fmt.Fprintf(&b, "  - %s\n", p.Code)
			if len(p.Options) > 0 {
				toppings := make([]string, 0, len(p.Options))
				for code := range p.Options {
					toppings = append(toppings, code)
				}
				fmt.Fprintf(&b, "    Toppings: %s\n", strings.Join(toppings, ", "))
			}
		}
	} else {
		b.WriteString("  (none)\n")
	}

	b.WriteString("\n💰 Pricing:\n")
	if len(view.Amounts) > 0 {
		fmt.Fprintf(&b, "  Total: $%.2f\n", view.Amounts["Customer"])
	} else {
		b.WriteString("  (not priced yet - will be calculated at checkout)\n")
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (d *Deps) handleClearOrder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d.Orders.ClearOrder(d.SessionID)
	return mcp.NewToolResultText("✅ Order cleared"), nil
}

func (d *Deps) handlePlaceOrder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p params.PlaceOrderParams
	if err := params.Bind(req.GetArguments(), &p); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res := d.Payments.PlaceOrder(ctx, d.SessionID, payment.Card{
		Number:     p.CardNumber,
		Expiration: p.CardExpiry,
		CVV:        p.CardCVV,
		PostalCode: p.CardZip,
	})
	d.recordOutcome(res)

	var b strings.Builder
	b.WriteString("🚀 ATTEMPTING TO PLACE REAL ORDER...\n\n")
	for _, step := range res.Steps {
		fmt.Fprintf(&b, "📊 %s\n", step)
	}
	b.WriteString("\n")

	switch {
	case res.Success:
		b.WriteString("✅ ORDER PLACED SUCCESSFULLY!\n\n")
		fmt.Fprintf(&b, "Order ID: %s\n", res.OrderID)
		fmt.Fprintf(&b, "Estimated Wait: %s minutes\n\n", res.EstimatedWaitMinutes)
		b.WriteString("🍕 Your pizza is on the way! Check your email for confirmation.\n")
	case res.Rejected:
		b.WriteString("❌ ORDER REJECTED BY THE STORE\n\n")
		if len(res.StatusItems) > 0 {
			b.WriteString("Issues:\n")
			for _, item := range res.StatusItems {
				fmt.Fprintf(&b, "  - %s: %s\n", item.Code, item.Text)
			}
		}
		b.WriteString("\nThe order was not placed. Please check the issues above.\n")
	default:
		fmt.Fprintf(&b, "❌ %s\n\n", res.Error)
		if len(res.PossibleCauses) > 0 {
			b.WriteString("Possible causes:\n")
			for _, cause := range res.PossibleCauses {
				fmt.Fprintf(&b, "  - %s\n", cause)
			}
		}
	}
	return mcp.NewToolResultText(b.String()), nil
}

// recordOutcome пишет исход размещения в журнал аудита.
func (d *Deps) recordOutcome(res *payment.Result) {
	storeID := ""
	if _, storeRef, _, err := d.Orders.Current(d.SessionID); err == nil {
		storeID = storeRef.ID
	}

	status := "failed"
	detail := res.Error
	switch {
	case res.Success:
		status = "placed"
		detail = ""
	case res.Rejected:
		status = "rejected"
		items := make([]string, 0, len(res.StatusItems))
		for _, item := range res.StatusItems {
			items = append(items, fmt.Sprintf("%s: %s", item.Code, item.Text))
		}
		detail = strings.Join(items, "; ")
	}
	d.Audit.PlacedOrder(storeID, res.OrderID, res.Pricing["Customer"], status, detail)
}
