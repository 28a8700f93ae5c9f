package notifier

import (
	"context"
	"fmt"
	"time"

	"wealthview/internal/config"
	"wealthview/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/patrickmn/go-cache"
)

type telegramNotifier struct {
	bot         *tgbotapi.BotAPI
	chatID      int64
	log         *logger.Logger
	dedupCache  *cache.Cache
	dedupWindow time.Duration
}

// NewTelegramNotifier sends advisories to a Telegram chat. Repeated
// advisories for the same reason and symbol are suppressed within the
// dedup window so fallback storms do not flood the chat.
func NewTelegramNotifier(cfg *config.Config, log *logger.Logger) (Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	dedupWindow, err := time.ParseDuration(cfg.Telegram.DedupWindow)
	if err != nil || dedupWindow <= 0 {
		dedupWindow = 5 * time.Minute
	}

	return &telegramNotifier{
		bot:         bot,
		chatID:      cfg.Telegram.ChatID,
		log:         log,
		dedupCache:  cache.New(dedupWindow, 2*dedupWindow),
		dedupWindow: dedupWindow,
	}, nil
}

func (n *telegramNotifier) Notify(ctx context.Context, advisory Advisory) {
	dedupKey := fmt.Sprintf("%s:%s", advisory.Reason, advisory.Symbol)
	if _, found := n.dedupCache.Get(dedupKey); found {
		return
	}
	n.dedupCache.Set(dedupKey, struct{}{}, n.dedupWindow)

	msg := tgbotapi.NewMessage(n.chatID, advisory.String())
	if _, err := n.bot.Send(msg); err != nil {
		n.log.ErrorContext(ctx, "Failed to send telegram advisory", logger.ErrorField(err))
	}
}
