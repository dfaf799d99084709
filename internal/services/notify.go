package services

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier posts batch summaries to the marketing Telegram chat.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewNotifier(botToken string, chatID int64) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &Notifier{bot: bot, chatID: chatID}, nil
}

func (n *Notifier) BatchProcessed(fileName string, summary *UploadSummary) error {
	if n == nil || n.chatID == 0 {
		return nil
	}
	text := fmt.Sprintf(
		"Upload %s processed (batch #%d)\nrows: %d, leads: %d, duplicates: %d, errors: %d, matched: %d",
		fileName, summary.BatchID, summary.TotalRows, summary.ProcessedLeads,
		summary.Duplicates, summary.Errors, summary.MatchedLeads,
	)
	msg := tgbotapi.NewMessage(n.chatID, text)
	_, err := n.bot.Send(msg)
	return err
}
