package telegram

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sashakosti/snowstorm-bot/internal/game"
)

// Gateway - реализация game.Gateway поверх Bot API. Все отправки
// best-effort: ошибка логируется и глотается, раунд она не ломает.
type Gateway struct {
	bot      MessageSender
	username string
}

func NewGateway(bot MessageSender, username string) *Gateway {
	return &Gateway{bot: bot, username: username}
}

func keyboard(menu game.Menu) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, row := range menu {
		var btns []tgbotapi.InlineKeyboardButton
		for _, b := range row {
			if b.URL != "" {
				btns = append(btns, tgbotapi.NewInlineKeyboardButtonURL(b.Label, b.URL))
			} else {
				btns = append(btns, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Data))
			}
		}
		rows = append(rows, btns)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (gw *Gateway) Broadcast(key game.Key, text string) {
	msg := tgbotapi.NewMessage(key.ChatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.DisableNotification = true
	if _, err := gw.bot.Send(msg); err != nil {
		log.Printf("[gw] broadcast to %d failed: %v", key.ChatID, err)
	}
}

func (gw *Gateway) BroadcastMenu(key game.Key, text string, menu game.Menu) (game.MessageRef, bool) {
	msg := tgbotapi.NewMessage(key.ChatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = keyboard(menu)
	sent, err := gw.bot.Send(msg)
	if err != nil {
		log.Printf("[gw] broadcast menu to %d failed: %v", key.ChatID, err)
		return game.MessageRef{}, false
	}
	return game.MessageRef{ChatID: key.ChatID, MessageID: sent.MessageID}, true
}

func (gw *Gateway) EditMenu(ref game.MessageRef, text string, menu game.Menu) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(ref.ChatID, ref.MessageID, text, keyboard(menu))
	edit.ParseMode = tgbotapi.ModeMarkdown
	if _, err := gw.bot.Send(edit); err != nil {
		log.Printf("[gw] edit %d/%d failed: %v", ref.ChatID, ref.MessageID, err)
	}
}

func (gw *Gateway) DeleteMessage(ref game.MessageRef) {
	if _, err := gw.bot.Request(tgbotapi.NewDeleteMessage(ref.ChatID, ref.MessageID)); err != nil {
		log.Printf("[gw] delete %d/%d failed: %v", ref.ChatID, ref.MessageID, err)
	}
}

// SendDM шлёт в личку. Заблокировавший бота игрок просто ничего
// не получит.
func (gw *Gateway) SendDM(userID int64, text string, menu game.Menu) {
	msg := tgbotapi.NewMessage(userID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if len(menu) > 0 {
		msg.ReplyMarkup = keyboard(menu)
	}
	if _, err := gw.bot.Send(msg); err != nil {
		log.Printf("[gw] dm to %d failed: %v", userID, err)
	}
}

func (gw *Gateway) DeepLink(payload string) string {
	if payload == "" {
		return "https://t.me/" + gw.username
	}
	return "https://t.me/" + gw.username + "?start=" + payload
}
