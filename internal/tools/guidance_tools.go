package tools

import (
	"context"
	"fmt"
	"strings"

	"mcpizza/internal/guidance"
	"mcpizza/internal/params"
	"mcpizza/internal/store"

	"github.com/mark3labs/mcp-go/mcp"
)

func (d *Deps) handleGuidance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p params.GuidanceParams
	if err := params.Bind(req.GetArguments(), &p); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	coupons, err := d.Stores.Coupons(ctx, p.StoreID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error getting ordering guidance: %v", err)), nil
	}
	g := guidance.Analyze(coupons, p.UserRequest)

	var b strings.Builder
	b.WriteString("🎯 ORDERING GUIDANCE\n")
	fmt.Fprintf(&b, "User wants: %s\n\n", g.UserRequest)
	b.WriteString("📊 ANALYSIS & RECOMMENDATIONS:\n\n")

	for _, strategy := range g.Strategies {
		fmt.Fprintf(&b, "## %s\n\n", strategy.Title)
		for _, deal := range strategy.Deals {
			fmt.Fprintf(&b, "- Code **%s**: %s", deal.Code, deal.Name)
			if deal.Price != store.PriceVaries {
				fmt.Fprintf(&b, " ($%.2f)", deal.Price)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if g.RecommendedCode != "" {
		b.WriteString("## 🎯 RECOMMENDED ACTION\n\n")
		fmt.Fprintf(&b, "Best coupon code for your request: **%s**\n\n", g.RecommendedCode)
		b.WriteString("### How to Order:\n")
		b.WriteString("1. Use create_order to start your order\n")
		b.WriteString("2. Use add_pizza_with_toppings with the recommended coupon code:\n")
		fmt.Fprintf(&b, "   - coupon_code: %s\n", g.RecommendedCode)
		b.WriteString("   - size: 12 (for medium) or 14 (for large)\n")
		b.WriteString("   - crust: NPAN (pan/deep dish), HAND (hand tossed), THIN, etc.\n")
		b.WriteString("   - toppings: ['P', 'S'] for pepperoni and sausage\n")
		b.WriteString("3. View order to verify (view_order)\n")
		b.WriteString("4. Place order with payment (place_order)\n\n")
	}

	b.WriteString("💡 Pro Tips:\n")
	b.WriteString("- Multi-pizza deals almost always beat single pizza pricing!\n")
	b.WriteString("- Use add_pizza_with_toppings (not add_item_to_order) for custom pizzas\n")
	b.WriteString("- Deep dish = NPAN crust code")
	return mcp.NewToolResultText(b.String()), nil
}
