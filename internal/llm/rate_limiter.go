package llm

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// RateLimiter — token bucket по числу запросов (RPM) и бюджету
// токенов (TPH).
type RateLimiter struct {
	requestsPerMinute int
	tokensPerHour     int

	requestTokens    int
	requestCapacity  int
	requestMu        sync.Mutex
	requestLastCheck time.Time

	tokenBudget    int
	tokenCapacity  int
	tokenMu        sync.Mutex
	tokenLastCheck time.Time
}

func NewRateLimiter(requestsPerMinute, tokensPerHour int) *RateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	if tokensPerHour <= 0 {
		tokensPerHour = 90000
	}

	now := time.Now()
	return &RateLimiter{
		requestsPerMinute: requestsPerMinute,
		tokensPerHour:     tokensPerHour,
		requestTokens:     requestsPerMinute,
		requestCapacity:   requestsPerMinute,
		requestLastCheck:  now,
		tokenBudget:       tokensPerHour,
		tokenCapacity:     tokensPerHour,
		tokenLastCheck:    now,
	}
}

// AllowRequest проверяет лимит запросов.
func (rl *RateLimiter) AllowRequest(ctx context.Context) error {
	rl.requestMu.Lock()
	defer rl.requestMu.Unlock()

	now := time.Now()
	rl.requestTokens += int(now.Sub(rl.requestLastCheck).Minutes() * float64(rl.requestsPerMinute))
	if rl.requestTokens > rl.requestCapacity {
		rl.requestTokens = rl.requestCapacity
	}
	rl.requestLastCheck = now

	if rl.requestTokens <= 0 {
		return fmt.Errorf("превышен лимит запросов (%d RPM)", rl.requestsPerMinute)
	}
	rl.requestTokens--
	return nil
}

// AllowTokens проверяет бюджет токенов.
func (rl *RateLimiter) AllowTokens(ctx context.Context, tokens int) error {
	rl.tokenMu.Lock()
	defer rl.tokenMu.Unlock()

	now := time.Now()
	rl.tokenBudget += int(now.Sub(rl.tokenLastCheck).Hours() * float64(rl.tokensPerHour))
	if rl.tokenBudget > rl.tokenCapacity {
		rl.tokenBudget = rl.tokenCapacity
	}
	rl.tokenLastCheck = now

	if rl.tokenBudget < tokens {
		return fmt.Errorf("превышен лимит токенов (%d TPH): требуется %d, доступно %d",
			rl.tokensPerHour, tokens, rl.tokenBudget)
	}
	rl.tokenBudget -= tokens
	return nil
}

// ConsumeTokens списывает токены после фактического ответа.
func (rl *RateLimiter) ConsumeTokens(tokens int) {
	rl.tokenMu.Lock()
	defer rl.tokenMu.Unlock()

	rl.tokenBudget -= tokens
	if rl.tokenBudget < 0 {
		rl.tokenBudget = 0
	}
}
