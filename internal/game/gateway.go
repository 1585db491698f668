package game

import (
	"fmt"
	"strconv"
)

// Key - арена: чат плюс опциональный топик. Одна игра на арену.
type Key struct {
	ChatID   int64
	ThreadID int
}

// String - составной ключ реестра, он же суффикс callback-данных.
func (k Key) String() string {
	if k.ThreadID != 0 {
		return fmt.Sprintf("%d_%d", k.ChatID, k.ThreadID)
	}
	return strconv.FormatInt(k.ChatID, 10)
}

// Button - одна кнопка меню: либо callback (Data), либо ссылка (URL).
type Button struct {
	Label string
	Data  string
	URL   string
}

// Menu - ряды кнопок.
type Menu [][]Button

// MessageRef - ссылка на отправленное сообщение для edit/delete.
type MessageRef struct {
	ChatID    int64
	MessageID int
}

// Gateway - доставка сообщений. Все вызовы best-effort: сбой доставки
// одному участнику не должен ронять раунд.
type Gateway interface {
	Broadcast(key Key, text string)
	BroadcastMenu(key Key, text string, menu Menu) (MessageRef, bool)
	EditMenu(ref MessageRef, text string, menu Menu)
	DeleteMessage(ref MessageRef)
	SendDM(userID int64, text string, menu Menu)
	// DeepLink - ссылка на личку бота; payload "" даёт просто ссылку.
	DeepLink(payload string) string
}

// Profile - снимок прогрессии игрока на момент входа в игру.
type Profile struct {
	Name        string
	Skills      []string // загрузка, отфильтрованная по реальному запасу
	HadEquipped bool
}

// Progress - операции над постоянным профилем, нужные движку.
type Progress interface {
	JoinProfile(id int64, name string) Profile
	ConsumeItem(id int64, skillKey string) bool
	CreditKill(id int64)
	CreditWin(id int64, reward int)
}

// Translator - локализованная строка по ключу с подстановками.
type Translator func(lang, key string, params map[string]any) string
