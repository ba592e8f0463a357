package tools

import (
	"context"
	"fmt"
	"strings"

	"mcpizza/internal/params"

	"github.com/mark3labs/mcp-go/mcp"
)

func (d *Deps) handleFindStores(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p params.StoreSearchParams
	if err := params.Bind(req.GetArguments(), &p); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	stores, err := d.Stores.FindStores(ctx, p.Query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error finding stores: %v", err)), nil
	}
	if len(stores) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No stores found near '%s'", p.Query)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🍕 Found %d store(s) near '%s':\n\n", len(stores), p.Query)
	for _, s := range stores {
		status := "❌ CLOSED"
		if s.IsOpen {
			status = "✅ OPEN"
		}
		fmt.Fprintf(&b, "**Store #%s** %s\n", s.ID, status)
		fmt.Fprintf(&b, "  📍 %s\n", s.Address)
		fmt.Fprintf(&b, "  📞 %s\n\n", s.Phone)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (d *Deps) handleGetStoreInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p params.StoreInfoParams
	if err := params.Bind(req.GetArguments(), &p); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	info, err := d.Stores.Info(ctx, p.StoreID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error getting store info: %v", err)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏪 Store #%s Details:\n\n", info.StoreID)
	fmt.Fprintf(&b, "📍 Address: %s\n", info.AddressDescription)
	fmt.Fprintf(&b, "📞 Phone: %s\n", info.Phone)
	fmt.Fprintf(&b, "🕐 Hours: %s\n", info.HoursDescription)
	fmt.Fprintf(&b, "Status: %s\n", openStatus(info.IsOpen))
	if info.IsDeliveryStore {
		b.WriteString("Delivery: ✅ Available\n")
	} else {
		b.WriteString("Delivery: ❌ Carryout only\n")
	}
	return mcp.NewToolResultText(b.String()), nil
}

func openStatus(open bool) string {
	if open {
		return "✅ OPEN"
	}
	return "❌ CLOSED"
}
