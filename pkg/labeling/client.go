// Package labeling calls an external language-model classifier to attach
// rhetoric and ideology labels to assembled utterances. Transient API
// failures are retried with capped exponential backoff; anything else
// degrades to a neutral default so one bad row never stops a batch.
package labeling

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/cenkalti/backoff/v4"
)

// CallFunc sends one prompt and returns the raw model reply. Injected so the
// classifiers are testable without network access.
type CallFunc func(ctx context.Context, prompt string) (string, error)

// NewAnthropicCaller builds a CallFunc on top of the Anthropic messages API.
func NewAnthropicCaller(client anthropic.Client, model string) CallFunc {
	return func(ctx context.Context, prompt string) (string, error) {
		msg, err := client.Messages.New(ctx, anthropic.MessageNewParams{
			Model:     anthropic.Model(model),
			MaxTokens: 256,
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
			},
		})
		if err != nil {
			return "", fmt.Errorf("messages api: %w", err)
		}
		if len(msg.Content) == 0 {
			return "", fmt.Errorf("empty response")
		}
		return msg.Content[0].Text, nil
	}
}

var transientMarkers = []string{
	"rate limit",
	"rate_limit",
	"429",
	"timeout",
	"timed out",
	"overloaded",
}

// IsTransient reports whether err belongs to the retryable failure classes:
// rate limiting, timeouts and provider overload. Everything else is treated
// as permanent.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// callWithRetry runs one prompt through call, retrying transient failures
// with exponential backoff. Permanent failures return immediately.
func (c *Classifier) callWithRetry(ctx context.Context, prompt string) (string, error) {
	var reply string
	op := func() error {
		var err error
		reply, err = c.call(ctx, prompt)
		if err == nil {
			return nil
		}
		if IsTransient(err) {
			return err
		}
		return backoff.Permanent(err)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retryInitial
	bo.MaxInterval = c.retryMaxInterval
	bo.MaxElapsedTime = c.retryMaxElapsed

	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		return "", err
	}
	return reply, nil
}

const (
	defaultRetryInitial     = 2 * time.Second
	defaultRetryMaxInterval = 10 * time.Second
	defaultRetryMaxElapsed  = 30 * time.Second
)
