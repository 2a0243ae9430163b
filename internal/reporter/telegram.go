// Package reporter delivers run summaries to Telegram. Reporting is best
// effort; a failed send never affects the run outcome.
package reporter

import (
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-aujob-scraper/internal/engine"
)

type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramReporter returns nil without error when token or chat id is
// unset, so callers can treat reporting as optional.
func NewTelegramReporter(token string, chatID int64) (*TelegramReporter, error) {
	if token == "" || chatID == 0 {
		return nil, nil
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}
	return &TelegramReporter{bot: bot, chatID: chatID}, nil
}

// SendSummary posts one formatted run summary.
func (r *TelegramReporter) SendSummary(s *engine.Summary) {
	if r == nil {
		return
	}

	icon := "✅"
	switch s.TerminalReason {
	case engine.ReasonBlocked:
		icon = "🚫"
	case engine.ReasonSessionError:
		icon = "❌"
	case engine.ReasonCancelled:
		icon = "🛑"
	}

	text := fmt.Sprintf(
		"%s <b>Scrape run finished</b>\n\n"+
			"🌐 Source: <b>%s</b>\n"+
			"🆔 Run: <code>%s</code>\n"+
			"📄 Pages visited: %d\n"+
			"💾 New jobs: <b>%d</b>\n"+
			"♻️ Duplicates: %d\n"+
			"⚠️ Errors: %d\n"+
			"⏱ Elapsed: %s\n"+
			"🏁 Outcome: %s",
		icon, s.Source, s.RunID, s.PagesVisited,
		s.Scraped, s.Duplicates, s.Errors,
		s.Elapsed.Round(time.Second), s.TerminalReason,
	)

	msg := tgbotapi.NewMessage(r.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := r.bot.Send(msg); err != nil {
		log.Printf("⚠️ Failed to send Telegram summary: %v", err)
	}
}
