package llm

import (
	"github.com/mark3labs/mcp-go/mcp"
	openai "github.com/sashabaranov/go-openai"
)

// FromMCP переводит описания MCP-инструментов в формат OpenAI function
// calling. Если allowPlaceOrder выключен, place_order скрывается от
// модели: реальный заказ требует явного разрешения оператора.
func FromMCP(tools []mcp.Tool, allowPlaceOrder bool) []openai.Tool {
	result := make([]openai.Tool, 0, len(tools))
	for _, t := range tools {
		if t.Name == "place_order" && !allowPlaceOrder {
			continue
		}
		result = append(result, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters: map[string]any{
					"type":       t.InputSchema.Type,
					"properties": t.InputSchema.Properties,
					"required":   t.InputSchema.Required,
				},
			},
		})
	}
	return result
}
