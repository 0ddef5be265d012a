package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Prompt is one outstanding confirmation. It resolves exactly once:
// Affirm resolves true, Decline resolves false, and any abandoned prompt
// counts as a decline. The decision is read from Decision.
type Prompt struct {
	once     sync.Once
	decision chan bool
}

// NewPrompt creates an unresolved prompt.
func NewPrompt() *Prompt {
	return &Prompt{decision: make(chan bool, 1)}
}

// Affirm resolves the prompt with an explicit yes.
func (p *Prompt) Affirm() {
	p.once.Do(func() { p.decision <- true })
}

// Decline resolves the prompt with a no. Every dismissal path funnels
// through here.
func (p *Prompt) Decline() {
	p.once.Do(func() { p.decision <- false })
}

// Decision yields the resolved value.
func (p *Prompt) Decision() <-chan bool {
	return p.decision
}

// Confirmer asks the user a yes/no question. Confirm resolves exactly
// once and never returns an error; cancellation of ctx resolves false.
type Confirmer interface {
	Confirm(ctx context.Context, title, message string) bool
}

type terminalConfirmer struct {
	in  io.Reader
	out io.Writer
}

// NewTerminalConfirmer returns a Confirmer reading a y/N answer from in.
func NewTerminalConfirmer(in io.Reader, out io.Writer) Confirmer {
	return &terminalConfirmer{in: in, out: out}
}

func (c *terminalConfirmer) Confirm(ctx context.Context, title, message string) bool {
	prompt := NewPrompt()

	go func() {
		fmt.Fprintf(c.out, "%s\n%s\n[y/N]: ", title, message)
		reader := bufio.NewReader(c.in)
		line, err := reader.ReadString('\n')
		if err != nil {
			// EOF or a closed terminal dismisses the prompt.
			prompt.Decline()
			return
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer == "y" || answer == "yes" {
			prompt.Affirm()
		} else {
			prompt.Decline()
		}
	}()

	select {
	case affirmed := <-prompt.Decision():
		return affirmed
	case <-ctx.Done():
		prompt.Decline()
		return false
	}
}

// StaticConfirmer always answers the same way. Useful for scripted runs
// (--yes) and tests.
type StaticConfirmer struct {
	Answer bool
}

func (s StaticConfirmer) Confirm(context.Context, string, string) bool {
	return s.Answer
}
