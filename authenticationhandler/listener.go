package authenticationhandler

import (
	"context"
	"time"
)

// RefreshedTokens is the token pair produced by a successful refresh.
type RefreshedTokens struct {
	AccessToken  string
	RefreshToken string
	RefreshedAt  time.Time
}

// TokenRefreshListener is notified after every successful token refresh, typically to
// persist the rotated pair. A returned error is logged and does not fail the request.
// It runs inside the request that triggered the refresh, which still holds its
// concurrency slot; with MaxConcurrentRequests of 1 a request issued from the listener
// waits for that slot.
type TokenRefreshListener interface {
	OnTokenRefresh(ctx context.Context, tokens RefreshedTokens) error
}

// TokenRefreshListenerFunc adapts a function to TokenRefreshListener.
type TokenRefreshListenerFunc func(ctx context.Context, tokens RefreshedTokens) error

func (f TokenRefreshListenerFunc) OnTokenRefresh(ctx context.Context, tokens RefreshedTokens) error {
	return f(ctx, tokens)
}

// ChannelListener publishes refreshed tokens on a buffered channel.
// When the buffer is full the oldest pending value is dropped so the sender never blocks.
type ChannelListener struct {
	ch chan RefreshedTokens
}

func NewChannelListener(buffer int) *ChannelListener {
	if buffer < 1 {
		buffer = 1
	}
	return &ChannelListener{ch: make(chan RefreshedTokens, buffer)}
}

// C returns the receive side of the channel.
func (l *ChannelListener) C() <-chan RefreshedTokens {
	return l.ch
}

func (l *ChannelListener) OnTokenRefresh(_ context.Context, tokens RefreshedTokens) error {
	for {
		select {
		case l.ch <- tokens:
			return nil
		default:
		}
		select {
		case <-l.ch:
		default:
		}
	}
}
