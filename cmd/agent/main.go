// Демонстрационный агент: запускает MCP-сервер как дочерний процесс
// и ведет диалог заказа пиццы через OpenAI-совместимую модель.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"mcpizza/internal/cli"
	"mcpizza/internal/config"
	"mcpizza/internal/llm"
	"mcpizza/internal/logger"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const systemPrompt = `You are a helpful pizza ordering assistant. ` +
	`Use the available tools to find stores, browse menus, analyze deals and build orders. ` +
	`Always call get_ordering_guidance before adding pizzas so the customer gets the best deal. ` +
	`Never place a real order without explicit confirmation from the customer.`

// maxToolRounds ограничивает цепочку вызовов инструментов за одну реплику.
const maxToolRounds = 10

type agent struct {
	mcp      *client.Client
	llm      *llm.Client
	tools    []openai.Tool
	messages []openai.ChatCompletionMessage
	log      *logger.Zap
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logger.Env, cfg.Logger.Level)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.OpenAI.KeyAI == "" && cfg.OpenAI.BaseURL == "" {
		log.Fatal("Не задан OPENAI_API_KEY (или OPENAI_BASE_URL для локальной модели)")
	}

	serverBin := os.Getenv("MCP_SERVER_BIN")
	if serverBin == "" {
		serverBin = "./mcpizza"
	}

	ctx := context.Background()

	mcpClient, err := client.NewStdioMCPClient(serverBin, os.Environ())
	if err != nil {
		log.Fatal("Не удалось запустить MCP-сервер", zap.Error(err))
	}
	defer mcpClient.Close()

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{Name: "mcpizza-agent", Version: "1.0.0"}
	if _, err := mcpClient.Initialize(ctx, initReq); err != nil {
		log.Fatal("Ошибка инициализации MCP", zap.Error(err))
	}

	toolsRes, err := mcpClient.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		log.Fatal("Ошибка получения списка инструментов", zap.Error(err))
	}
	log.Info("Инструменты получены",
		zap.Int("count", len(toolsRes.Tools)),
		zap.Bool("place_order_allowed", cfg.OpenAI.AllowPlaceOrder))

	a := &agent{
		mcp:   mcpClient,
		llm:   llm.NewClient(cfg.OpenAI),
		tools: llm.FromMCP(toolsRes.Tools, cfg.OpenAI.AllowPlaceOrder),
		messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
		},
		log: log,
	}

	console := cli.New(log, a.turn)
	console.Run(ctx)
}

// turn — один ход диалога: реплика пользователя, цикл вызовов
// инструментов, итоговый ответ модели.
func (a *agent) turn(ctx context.Context, input string) (string, error) {
	a.messages = append(a.messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: input,
	})

	for round := 0; round < maxToolRounds; round++ {
		msg, err := a.llm.Chat(ctx, a.messages, a.tools)
		if err != nil {
			return "", err
		}
		a.messages = append(a.messages, msg)

		if len(msg.ToolCalls) == 0 {
			return msg.Content, nil
		}

		for _, tc := range msg.ToolCalls {
			result := a.callTool(ctx, tc)
			a.messages = append(a.messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    result,
				ToolCallID: tc.ID,
			})
		}
	}
	return "", fmt.Errorf("превышен лимит вызовов инструментов (%d)", maxToolRounds)
}

func (a *agent) callTool(ctx context.Context, tc openai.ToolCall) string {
	a.log.Info("Вызов инструмента", zap.String("tool", tc.Function.Name))

	var args map[string]any
	if tc.Function.Arguments != "" {
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			return fmt.Sprintf("invalid tool arguments: %v", err)
		}
	}

	req := mcp.CallToolRequest{}
	req.Params.Name = tc.Function.Name
	req.Params.Arguments = args

	res, err := a.mcp.CallTool(ctx, req)
	if err != nil {
		return fmt.Sprintf("tool call failed: %v", err)
	}

	for _, c := range res.Content {
		if text, ok := c.(mcp.TextContent); ok {
			return text.Text
		}
	}
	return "(empty result)"
}
