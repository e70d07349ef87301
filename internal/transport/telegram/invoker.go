package telegram

import (
	"context"
	"strings"

	"github.com/sandevgo/tuskcmd/internal/core"
	"github.com/sandevgo/tuskcmd/internal/service/access"
	tele "gopkg.in/telebot.v3"
)

// User is the invoker for a Telegram account. Replies go to the chat the
// command came from.
type User struct {
	ctx         context.Context
	user        *tele.User
	chat        tele.Recipient
	permissions *access.Set
	sender      *sender
}

func (u *User) SendMessage(text string) {
	// sendMarkdown already logs the failure.
	_ = u.sender.sendMarkdown(u.ctx, u.chat, text, false)
}

func (u *User) HasPermission(node string) bool {
	return u.permissions != nil && u.permissions.Has(node)
}

func (u *User) Kind() core.InvokerKind {
	return core.KindUser
}

// Native returns the *tele.User behind the invoker.
func (u *User) Native() any {
	return u.user
}

func (u *User) Name() string {
	if u.user.Username != "" {
		return "@" + u.user.Username
	}
	return strings.TrimSpace(u.user.FirstName + " " + u.user.LastName)
}
