// Package cli — интерактивная консоль демонстрационного агента.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"mcpizza/internal/logger"

	"github.com/chzyer/readline"
)

// Handler обрабатывает одну реплику пользователя и возвращает ответ агента.
type Handler func(ctx context.Context, input string) (string, error)

type CLI struct {
	log     *logger.Zap
	handler Handler
	rl      *readline.Instance
}

func New(log *logger.Zap, handler Handler) *CLI {
	c := &CLI{
		log:     log,
		handler: handler,
	}

	// Инициализация readline
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "🍕 > ",
		HistoryFile:     ".mcpizza-history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Warn("Не удалось инициализировать readline, будет использован fallback режим")
	} else {
		c.rl = rl
	}

	return c
}

func (c *CLI) readLine() (string, error) {
	if c.rl != nil {
		return c.rl.Readline()
	}
	// Fallback для работы без readline
	reader := bufio.NewReader(os.Stdin)
	fmt.Print("🍕 > ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *CLI) closeReadline() {
	if c.rl != nil {
		c.rl.Close()
	}
}

func (c *CLI) Run(ctx context.Context) {
	fmt.Println("🍕 Pizza ordering agent. Опишите, что хотите заказать.")
	fmt.Println("Команды: exit — выход, clear — очистить экран.")
	defer c.closeReadline()

	for {
		// Проверка отмены контекста
		select {
		case <-ctx.Done():
			fmt.Println("\n👋 Получен сигнал завершения...")
			return
		default:
		}

		line, err := c.readLine()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch line {
		case "exit", "quit":
			fmt.Println("👋 До свидания!")
			return
		case "clear":
			fmt.Print("\033[2J\033[H")
			continue
		}

		reply, err := c.handler(ctx, line)
		if err != nil {
			fmt.Printf("❌ Ошибка: %v\n", err)
			continue
		}
		fmt.Println(reply)
	}
}
