package error_notificator

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Infra struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewInfra поднимает алерт-бота из TG_ALERT_BOT_TOKEN / TG_ALERT_CHAT_ID.
// Если переменные не заданы — работаем в режиме "только лог", это не ошибка.
func NewInfra() *Infra {
	token := os.Getenv("TG_ALERT_BOT_TOKEN")
	chatStr := os.Getenv("TG_ALERT_CHAT_ID")
	if token == "" || chatStr == "" {
		log.Printf("[error_notificator] telegram alerts disabled (no token/chat id)")
		return &Infra{}
	}

	chatID, err := strconv.ParseInt(chatStr, 10, 64)
	if err != nil {
		log.Printf("[error_notificator] invalid TG_ALERT_CHAT_ID: %v", err)
		return &Infra{}
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Printf("[error_notificator] bot init fail: %v", err)
		return &Infra{}
	}

	return &Infra{bot: bot, chatID: chatID}
}

func (i *Infra) Notify(ctx context.Context, op string, err error, details string) error {
	if i.bot == nil {
		log.Printf("[error_notificator] %s: %v (%s)", op, err, details)
		return nil
	}

	text := fmt.Sprintf(
		"❗ Ошибка в eye_talker (%s)\n\nОшибка: %v\n\nДетали: %s",
		op,
		err,
		details,
	)

	msg := tgbotapi.NewMessage(i.chatID, text)

	_, sendErr := i.bot.Send(msg)
	if sendErr != nil {
		log.Printf("[error_notificator] send fail: %v", sendErr)
		return sendErr
	}

	return nil
}
