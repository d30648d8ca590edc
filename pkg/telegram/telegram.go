package telegram

import (
	"context"
	"fmt"

	"trading-dashboard/config"
	"trading-dashboard/pkg/logger"

	"golang.org/x/time/rate"
	"gopkg.in/telebot.v3"
)

// MaxMessageLength is Telegram's limit for one text message, in runes.
const MaxMessageLength = 4096

// Sender is the part of *telebot.Bot the notifier needs.
type Sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// NewBot builds the bot used for sending. It is never started, so no updates
// are polled.
func NewBot(cfg config.TelegramConfig, log *logger.Logger) (*telebot.Bot, error) {
	pref := telebot.Settings{
		Token: cfg.BotToken,
		OnError: func(err error, c telebot.Context) {
			log.Error("Telegram bot error", logger.ErrorField(err))
		},
	}
	return telebot.NewBot(pref)
}

// Notifier sends plain-text messages to the configured chat.
type Notifier struct {
	log     *logger.Logger
	bot     Sender
	chat    *telebot.Chat
	limiter *rate.Limiter
}

func NewNotifier(cfg config.TelegramConfig, log *logger.Logger, bot Sender) *Notifier {
	perSecond := cfg.MaxMessagePerSecond
	if perSecond <= 0 {
		perSecond = 1
	}
	return &Notifier{
		log:     log,
		bot:     bot,
		chat:    &telebot.Chat{ID: cfg.ChatID},
		limiter: rate.NewLimiter(rate.Limit(perSecond), perSecond),
	}
}

// Notify sends message, split into several messages when it is too long.
func (n *Notifier) Notify(ctx context.Context, message string) error {
	for _, part := range splitMessage(message, MaxMessageLength) {
		if err := n.limiter.Wait(ctx); err != nil {
			return err
		}
		if _, err := n.bot.Send(n.chat, part, telebot.NoPreview); err != nil {
			n.log.WarnContext(ctx, "Failed to send telegram message",
				logger.ErrorField(err),
				logger.IntField("length", len(part)))
			return fmt.Errorf("failed to send telegram message: %w", err)
		}
	}
	return nil
}

// splitMessage cuts s into chunks of at most limit runes, preferring to break
// after a newline.
func splitMessage(s string, limit int) []string {
	runes := []rune(s)
	if len(runes) <= limit {
		return []string{s}
	}

	var parts []string
	for len(runes) > limit {
		cut := limit
		for i := limit - 1; i > limit/2; i-- {
			if runes[i] == '\n' {
				cut = i + 1
				break
			}
		}
		parts = append(parts, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}
	return parts
}
