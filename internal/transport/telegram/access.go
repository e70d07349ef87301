package telegram

import (
	"github.com/sandevgo/tuskcmd/internal/core"
	"github.com/sandevgo/tuskcmd/internal/service/access"
)

// Authorizer decides who may talk to the bot and with which permissions.
// The owner holds every node; allowed users get the configured ones.
type Authorizer struct {
	ownerID int64
	allowed map[int64]struct{}
	nodes   []string
}

func NewAuthorizer(cfg core.TelegramConfig) *Authorizer {
	a := &Authorizer{
		ownerID: cfg.GetTelegramOwnerID(),
		allowed: make(map[int64]struct{}),
		nodes:   cfg.GetUserPermissions(),
	}
	for _, id := range cfg.GetAllowedUsers() {
		a.allowed[id] = struct{}{}
	}
	return a
}

func (a *Authorizer) Allowed(id int64) bool {
	if id == a.ownerID {
		return true
	}
	_, ok := a.allowed[id]
	return ok
}

// Permissions returns the permission set of id, or nil if id is not allowed.
func (a *Authorizer) Permissions(id int64) *access.Set {
	switch {
	case id == a.ownerID:
		return access.All()
	case a.Allowed(id):
		return access.NewSet(a.nodes...)
	}
	return nil
}
