package telegram

import (
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sashakosti/snowstorm-bot/internal/config"
	"github.com/sashakosti/snowstorm-bot/internal/game"
	"github.com/sashakosti/snowstorm-bot/internal/i18n"
	"github.com/sashakosti/snowstorm-bot/internal/service"
)

type Bot struct {
	bot     *tgbotapi.BotAPI
	handler *Handler
}

func NewBot(cfg *config.Config, svc *service.PlayerService) (*Bot, error) {
	botAPI, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	gw := NewGateway(botAPI, botAPI.Self.UserName)
	games := game.NewManager(game.Config{
		RegistrationTime: cfg.RegistrationTime,
		ExtendTime:       cfg.ExtendTime,
		ReminderInterval: cfg.ReminderInterval,
		RoundTime:        cfg.RoundTime,
		StartDelay:       2 * time.Second,
		RoundBreak:       4 * time.Second,
		StartHP:          cfg.StartHP,
		SkillCooldown:    cfg.SkillCooldown,
		BaseStorm:        cfg.BaseStorm,
		StormIncrement:   cfg.StormIncrement,
		FirstPurge:       cfg.FirstPurge,
		PurgeStep:        cfg.PurgeStep,
		WinReward:        cfg.WinReward,
	}, gw, svc, i18n.T)

	return &Bot{
		bot:     botAPI,
		handler: NewHandler(botAPI, svc, games, cfg.OwnerID),
	}, nil
}

func (b *Bot) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.bot.GetUpdatesChan(u)

	log.Println("Bot started!")

	for update := range updates {
		if update.Message != nil {
			msg := update.Message
			switch msg.Command() {
			case "start":
				b.handler.HandleStart(msg)
			case "help":
				b.handler.HandleHelp(msg)
			case "game":
				b.handler.HandleGame(msg)
			case "extend":
				b.handler.HandleExtend(msg)
			case "stop", "cancel":
				b.handler.HandleStop(msg)
			case "profile":
				b.handler.HandleProfile(msg)
			case "shop":
				b.handler.HandleShop(msg)
			case "equip":
				b.handler.HandleEquip(msg)
			case "gift":
				b.handler.HandleGift(msg)
			case "top", "leaderboard":
				b.handler.HandleTop(msg)
			case "lang":
				b.handler.HandleLang(msg)
			}
		} else if update.CallbackQuery != nil {
			// Колбэки в горутине: пауза подачи результата не должна
			// задерживать чужие апдейты.
			go b.handler.HandleCallback(update.CallbackQuery)
		}
	}
}
