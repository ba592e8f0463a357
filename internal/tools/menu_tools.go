package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"mcpizza/internal/params"
	"mcpizza/internal/store"

	"github.com/mark3labs/mcp-go/mcp"
)

// Лимиты выдачи, чтобы не раздувать контекст модели.
const (
	maxItemsPerCategory = 10
	maxSearchResults    = 20
	maxCoupons          = 20
)

func (d *Deps) handleGetMenu(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p params.StoreInfoParams
	if err := params.Bind(req.GetArguments(), &p); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	menu, err := d.Stores.MenuByCategory(ctx, p.StoreID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error getting menu: %v", err)), nil
	}

	categories := make([]string, 0, len(menu))
	for category := range menu {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var b strings.Builder
	fmt.Fprintf(&b, "📋 Menu for Store #%s:\n\n", p.StoreID)
	for _, category := range categories {
		fmt.Fprintf(&b, "## %s\n", category)
		items := menu[category]
		if len(items) > maxItemsPerCategory {
			items = items[:maxItemsPerCategory]
		}
		for _, item := range items {
			fmt.Fprintf(&b, "- **%s** (%s)\n", item.Name, item.Code)
			if item.Description != "" {
				fmt.Fprintf(&b, "  %s\n", item.Description)
			}
		}
		b.WriteString("\n")
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (d *Deps) handleSearchMenu(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p params.MenuSearchParams
	if err := params.Bind(req.GetArguments(), &p); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	items, err := d.Stores.SearchMenu(ctx, p.StoreID, p.Query, p.Category)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error searching menu: %v", err)), nil
	}
	if len(items) == 0 {
		return mcp.NewToolResultText("No matching items found"), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔍 Found %d item(s):\n\n", len(items))
	if len(items) > maxSearchResults {
		items = items[:maxSearchResults]
	}
	for _, item := range items {
		fmt.Fprintf(&b, "**%s** (%s)\n", item.Name, item.Code)
		fmt.Fprintf(&b, "  Category: %s\n", item.Category)
		if item.Description != "" {
			fmt.Fprintf(&b, "  %s\n", item.Description)
		}
		b.WriteString("\n")
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (d *Deps) handleGetCoupons(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p params.StoreInfoParams
	if err := params.Bind(req.GetArguments(), &p); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	coupons, err := d.Stores.Coupons(ctx, p.StoreID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error getting coupons: %v", err)), nil
	}
	if len(coupons) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No coupons found for store #%s", p.StoreID)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🎉 Available Deals & Coupons for Store #%s:\n\n", p.StoreID)
	if len(coupons) > maxCoupons {
		coupons = coupons[:maxCoupons]
	}
	for _, c := range coupons {
		fmt.Fprintf(&b, "**Code: %s**\n", c.Code)
		fmt.Fprintf(&b, "  %s\n", c.Name)
		if c.Price != store.PriceVaries {
			fmt.Fprintf(&b, "  💰 Price: $%.2f\n", c.Price)
		} else {
			b.WriteString("  💰 Price: Varies (% off or minimum purchase)\n")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n💡 Tip: Use these coupon codes when adding items to your order!")
	return mcp.NewToolResultText(b.String()), nil
}
