package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/sandevgo/tuskcmd/internal/core"
	"github.com/sandevgo/tuskcmd/pkg/conv"
)

// Console is the invoker behind the local terminal. It holds every
// permission and prints messages as plain text.
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) SendMessage(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, conv.MarkdownToText([]byte(text)))
}

func (c *Console) HasPermission(string) bool {
	return true
}

func (c *Console) Kind() core.InvokerKind {
	return core.KindConsole
}

func (c *Console) Native() any {
	return c
}

func (c *Console) Name() string {
	return "console"
}
