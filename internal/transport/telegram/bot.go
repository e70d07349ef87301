package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sandevgo/tuskcmd/internal/core"
	"github.com/sandevgo/tuskcmd/internal/service/command"
	"github.com/sandevgo/tuskcmd/pkg/log"
	"github.com/sandevgo/tuskcmd/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

type Bot struct {
	bot        *tele.Bot
	registry   *command.Registry
	menu       *MenuRegistrant
	authorizer *Authorizer
	sender     *sender
}

func NewBot(
	ctx context.Context,
	cfg core.TelegramConfig,
	registry *command.Registry,
	menu *MenuRegistrant,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.GetTelegramToken(),
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	var b *tele.Bot
	err := retry.NewDefaultRetrier().Do(ctx, func() error {
		var err error
		b, err = tele.NewBot(pref)
		if errors.Is(err, tele.ErrUnauthorized) {
			return retry.Permanent(err)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return newBot(ctx, b, NewAuthorizer(cfg), registry, menu), nil
}

func newBot(
	ctx context.Context,
	b *tele.Bot,
	authorizer *Authorizer,
	registry *command.Registry,
	menu *MenuRegistrant,
) *Bot {
	bot := &Bot{
		bot:        b,
		registry:   registry,
		menu:       menu,
		authorizer: authorizer,
		sender:     newSender(b),
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})
	b.Use(bot.allowOnly)

	b.Handle(tele.OnText, bot.handleMessage)

	return bot
}

func (b *Bot) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	if b.menu != nil {
		if err := b.bot.SetCommands(b.menu.Commands()); err != nil {
			logger.Warn().Err(err).Msg("failed to publish telegram command menu")
		}
	}

	logger.Info().Str("bot", b.bot.Me.Username).Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(context.Context) error {
	b.bot.Stop()
	return nil
}

// allowOnly drops updates from users that are neither the owner nor allowed.
func (b *Bot) allowOnly(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		if c.Sender() == nil || !b.authorizer.Allowed(c.Sender().ID) {
			return nil
		}
		return next(c)
	}
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)

	base, args, ok := parseCommand(c.Text(), b.bot.Me.Username)
	if !ok {
		return nil
	}

	inv := &User{
		ctx:         ctx,
		user:        c.Sender(),
		chat:        c.Chat(),
		permissions: b.authorizer.Permissions(c.Sender().ID),
		sender:      b.sender,
	}
	b.dispatch(ctx, inv, base, args)
	return nil
}

func (b *Bot) dispatch(ctx context.Context, inv core.Invoker, base string, args []string) command.Outcome {
	outcome := b.registry.Run(ctx, inv, base, args)
	switch outcome {
	case command.OutcomeUnknownCommand:
		inv.SendMessage(command.UnknownCommandMessage(base))
	case command.OutcomeNoMatch:
		inv.SendMessage(command.UnknownSubcommandMessage)
	}
	return outcome
}
