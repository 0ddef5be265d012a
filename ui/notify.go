// Package ui holds the notification and confirmation primitives
// consumed by the purchase workflow. Implementations are fire-and-forget
// side effects; the workflow never blocks on a notification.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notifier delivers a transient, auto-dismissing message to the user.
type Notifier interface {
	Notify(ctx context.Context, message string, kind Kind)
}

type terminalNotifier struct {
	out io.Writer
}

// NewTerminalNotifier returns a Notifier printing banners to out
// (stdout when nil).
func NewTerminalNotifier(out io.Writer) Notifier {
	if out == nil {
		out = os.Stdout
	}
	return &terminalNotifier{out: out}
}

func (n *terminalNotifier) Notify(_ context.Context, message string, kind Kind) {
	marker := "✔"
	if kind == KindError {
		marker = "✖"
	}
	fmt.Fprintf(n.out, "%s %s\n", marker, message)
}

// Banner is one transient notification. It dismisses itself after its
// interval, can be dismissed early, and resolves exactly once.
type Banner struct {
	Message string
	Kind    Kind

	once  sync.Once
	done  chan struct{}
	timer *time.Timer
}

func newBanner(message string, kind Kind, dismissAfter time.Duration) *Banner {
	b := &Banner{Message: message, Kind: kind, done: make(chan struct{})}
	if dismissAfter > 0 {
		b.timer = time.AfterFunc(dismissAfter, b.Dismiss)
	}
	return b
}

// Dismiss resolves the banner. Safe to call more than once.
func (b *Banner) Dismiss() {
	b.once.Do(func() {
		if b.timer != nil {
			b.timer.Stop()
		}
		close(b.done)
	})
}

// Dismissed is closed when the banner goes away.
func (b *Banner) Dismissed() <-chan struct{} {
	return b.done
}

// BannerNotifier prints each message and keeps the most recent banner
// until it dismisses. A new banner replaces (and dismisses) the current
// one. Notify never blocks the caller.
type BannerNotifier struct {
	out          Notifier
	dismissAfter time.Duration

	mu      sync.Mutex
	current *Banner
}

func NewBannerNotifier(out Notifier, dismissAfter time.Duration) *BannerNotifier {
	return &BannerNotifier{out: out, dismissAfter: dismissAfter}
}

func (n *BannerNotifier) Notify(ctx context.Context, message string, kind Kind) {
	n.out.Notify(ctx, message, kind)

	banner := newBanner(message, kind, n.dismissAfter)
	n.mu.Lock()
	if n.current != nil {
		n.current.Dismiss()
	}
	n.current = banner
	n.mu.Unlock()
}

// Current returns the active banner, or nil once it has dismissed.
func (n *BannerNotifier) Current() *Banner {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	select {
	case <-n.current.Dismissed():
		n.current = nil
		return nil
	default:
		return n.current
	}
}

type noopNotifier struct{}

// NewNoopNotifier returns a Notifier that discards every message. Used
// for non-interactive runs where only the exit status matters.
func NewNoopNotifier() Notifier {
	return noopNotifier{}
}

func (noopNotifier) Notify(context.Context, string, Kind) {}
