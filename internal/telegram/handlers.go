package telegram

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sashakosti/snowstorm-bot/internal/game"
	"github.com/sashakosti/snowstorm-bot/internal/i18n"
	"github.com/sashakosti/snowstorm-bot/internal/service"
)

// MessageSender определяет интерфейс для отправки сообщений.
type MessageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// BotAPI - MessageSender плюс проверка прав в чате.
type BotAPI interface {
	MessageSender
	GetChatMember(cfg tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
}

type Handler struct {
	Bot     BotAPI
	Service *service.PlayerService
	Games   *game.Manager
	OwnerID int64

	// Пауза между "прицеливаешься..." и результатом. В тестах 0.
	Pacing time.Duration
}

func NewHandler(bot BotAPI, svc *service.PlayerService, games *game.Manager, ownerID int64) *Handler {
	return &Handler{
		Bot:     bot,
		Service: svc,
		Games:   games,
		OwnerID: ownerID,
		Pacing:  1500 * time.Millisecond,
	}
}

func (h *Handler) isAdminOrOwner(chatID, userID int64) bool {
	if userID == h.OwnerID {
		return true
	}
	member, err := h.Bot.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{ChatID: chatID, UserID: userID},
	})
	if err != nil {
		return false
	}
	return member.Status == "creator" || member.Status == "administrator"
}

// langFor - язык арены, по умолчанию английский.
func (h *Handler) langFor(chatKey string) string {
	if lang := h.Service.ChatLang(chatKey); lang != "" {
		return lang
	}
	return i18n.DefaultLang
}

func (h *Handler) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	sendMessage(h.Bot, msg)
}

// ---------------------------------------------------------------
// Команды игры
// ---------------------------------------------------------------

// HandleGame - /game: открыть регистрацию на арене.
func (h *Handler) HandleGame(msg *tgbotapi.Message) {
	if msg.Chat.IsPrivate() {
		return
	}
	key := game.Key{ChatID: msg.Chat.ID}
	lang := h.langFor(key.String())

	_, err := h.Games.StartGame(key, EscapeMarkdown(msg.Chat.Title), lang)
	if errors.Is(err, game.ErrAlreadyActive) {
		h.reply(msg.Chat.ID, i18n.T(lang, "game_active", nil))
	}
}

// HandleStart - /start в личке: вход в игру по deep-link.
func (h *Handler) HandleStart(msg *tgbotapi.Message) {
	if !msg.Chat.IsPrivate() {
		return
	}
	payload := msg.CommandArguments()
	if !strings.HasPrefix(payload, "join_") {
		h.HandleHelp(msg)
		return
	}

	s := h.Games.Get(strings.TrimPrefix(payload, "join_"))
	if s == nil {
		h.reply(msg.Chat.ID, "❌ Closed.")
		return
	}

	info, err := s.Join(msg.From.ID, EscapeMarkdown(msg.From.FirstName))
	switch {
	case errors.Is(err, game.ErrAlreadyJoined):
		h.reply(msg.Chat.ID, "✅ Already joined.")
		return
	case err != nil:
		h.reply(msg.Chat.ID, "❌ Closed.")
		return
	}

	text := s.Tr("joined", map[string]any{"title": info.Title, "hp": info.StartHP})
	if info.EmptyLoadout {
		text += "\n" + s.Tr("inventory_empty", nil)
	}
	h.reply(msg.Chat.ID, text)
}

// HandleExtend - /extend: продлить регистрацию.
func (h *Handler) HandleExtend(msg *tgbotapi.Message) {
	if msg.Chat.IsPrivate() {
		return
	}
	if !h.isAdminOrOwner(msg.Chat.ID, msg.From.ID) {
		return
	}
	key := game.Key{ChatID: msg.Chat.ID}
	if s := h.Games.Get(key.String()); s != nil {
		s.Extend() // сама рассылает подтверждение; вне регистрации молчим
	}
}

// HandleStop - /stop, /cancel: отменить игру (только админ).
func (h *Handler) HandleStop(msg *tgbotapi.Message) {
	if !h.isAdminOrOwner(msg.Chat.ID, msg.From.ID) {
		return
	}
	key := game.Key{ChatID: msg.Chat.ID}
	s := h.Games.Get(key.String())
	if s == nil {
		return
	}
	lang := s.Lang()
	if s.Cancel() {
		h.reply(msg.Chat.ID, i18n.T(lang, "cancelled", nil))
	}
}

// ---------------------------------------------------------------
// Экономика и профиль
// ---------------------------------------------------------------

// HandleProfile - /profile
func (h *Handler) HandleProfile(msg *tgbotapi.Message) {
	u := h.Service.Profile(msg.From.ID, EscapeMarkdown(msg.From.FirstName))

	text := fmt.Sprintf("👤 *PROFILE: %s*\n\n💎 Points: *%d*\n🏆 Wins: %d\n🔪 Kills: %d\n\n",
		u.Name, u.Points, u.Wins, u.Kills)

	text += "🎒 *Inventory (Stock):*\n"
	if len(u.Inventory) == 0 {
		text += "_Empty_\n"
	} else {
		for _, item := range game.SkillsByCost() {
			if count := u.Inventory[item.Key]; count > 0 {
				text += fmt.Sprintf("• %s: *x%d*\n", item.Name, count)
			}
		}
	}

	text += "\n⚡ *Active Loadout:*\n"
	if len(u.Equipped) == 0 {
		text += "_None_"
	} else {
		for _, key := range u.Equipped {
			if item, ok := game.SkillByKey(key); ok {
				text += fmt.Sprintf("• %s\n", item.Name)
			}
		}
	}

	h.reply(msg.Chat.ID, text)
}

func shopKeyboard(u map[string]int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, item := range game.SkillsByCost() {
		label := fmt.Sprintf("💎 Buy %s (Own: %d)", item.Name, u[item.Key])
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "buy_skill_"+item.Key)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// HandleShop - /shop
func (h *Handler) HandleShop(msg *tgbotapi.Message) {
	u := h.Service.Profile(msg.From.ID, "")

	text := fmt.Sprintf("🛒 *SKILL SHOP*\n💎 *Points:* %d\n⚠️ _One item is consumed per game joined._\n\n", u.Points)
	for _, item := range game.SkillsByCost() {
		text += fmt.Sprintf("⚡ *%s* (💎 %d)\n   └ _%s_\n\n", item.Name, item.Cost, item.Desc)
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, text)
	reply.ParseMode = tgbotapi.ModeMarkdown
	reply.ReplyMarkup = shopKeyboard(u.Inventory)
	sendMessage(h.Bot, reply)
}

func equipKeyboard(u map[string]int, equipped []string) tgbotapi.InlineKeyboardMarkup {
	on := make(map[string]bool, len(equipped))
	for _, k := range equipped {
		on[k] = true
	}
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, item := range game.SkillsByCost() {
		if u[item.Key] <= 0 {
			continue
		}
		label := "⬛ " + item.Name
		if on[item.Key] {
			label = "✅ " + item.Name
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "toggle_skill_"+item.Key)))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✅ Done", "equip_done")))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// HandleEquip - /equip: менеджер загрузки.
func (h *Handler) HandleEquip(msg *tgbotapi.Message) {
	u := h.Service.Profile(msg.From.ID, "")
	if len(u.Inventory) == 0 {
		h.reply(msg.Chat.ID, "🎒 Inventory empty! Buy skills in /shop first.")
		return
	}

	text := fmt.Sprintf("⚡ *LOADOUT MANAGER*\nSlots: %d/%d", len(u.Equipped), h.Service.MaxEquip())
	reply := tgbotapi.NewMessage(msg.Chat.ID, text)
	reply.ParseMode = tgbotapi.ModeMarkdown
	reply.ReplyMarkup = equipKeyboard(u.Inventory, u.Equipped)
	sendMessage(h.Bot, reply)
}

// HandleGift - /gift <amount> ответом на сообщение получателя.
func (h *Handler) HandleGift(msg *tgbotapi.Message) {
	if msg.ReplyToMessage == nil || msg.ReplyToMessage.From == nil {
		h.reply(msg.Chat.ID, "Reply to user.")
		return
	}
	amount, err := strconv.Atoi(strings.TrimSpace(msg.CommandArguments()))
	if err != nil || amount <= 0 {
		h.reply(msg.Chat.ID, "Invalid amount.")
		return
	}

	to := msg.ReplyToMessage.From
	err = h.Service.Gift(msg.From.ID, EscapeMarkdown(msg.From.FirstName),
		to.ID, EscapeMarkdown(to.FirstName), amount)
	if errors.Is(err, service.ErrInsufficientFunds) {
		h.reply(msg.Chat.ID, "Insufficient funds.")
		return
	}
	if err != nil {
		log.Printf("[gift] %d -> %d: %v", msg.From.ID, to.ID, err)
		return
	}
	h.reply(msg.Chat.ID, fmt.Sprintf("🎁 Sent 💎 %d to %s!", amount, EscapeMarkdown(to.FirstName)))
}

// HandleTop - /top, /leaderboard
func (h *Handler) HandleTop(msg *tgbotapi.Message) {
	top, err := h.Service.Leaderboard(10)
	if err != nil {
		log.Printf("[top] %v", err)
		return
	}
	text := "🏆 *LEADERBOARD*\n\n"
	for i, p := range top {
		text += fmt.Sprintf("%d. %s | 💎 %d\n", i+1, p.Name, p.Points)
	}
	h.reply(msg.Chat.ID, text)
}

func langKeyboard(current string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, l := range i18n.Supported() {
		label := l.Label
		if l.Code == current {
			label = "✅ " + label
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "set_lang_"+l.Code)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// HandleLang - /lang: выбор языка арены (только админ).
func (h *Handler) HandleLang(msg *tgbotapi.Message) {
	if msg.Chat.IsPrivate() {
		h.reply(msg.Chat.ID, "Use in group.")
		return
	}
	if !h.isAdminOrOwner(msg.Chat.ID, msg.From.ID) {
		h.reply(msg.Chat.ID, "👮 Admins only.")
		return
	}

	key := game.Key{ChatID: msg.Chat.ID}
	reply := tgbotapi.NewMessage(msg.Chat.ID, "🌍 *Select Language for this Group:*")
	reply.ParseMode = tgbotapi.ModeMarkdown
	reply.ReplyMarkup = langKeyboard(h.langFor(key.String()))
	sendMessage(h.Bot, reply)
}

// HandleHelp - /help
func (h *Handler) HandleHelp(msg *tgbotapi.Message) {
	text := "❄️ *Snowstorm Survival* — what I can do:\n\n" +
		"/game - start a game in a group\n" +
		"/extend - extend registration\n" +
		"/stop - cancel the game (admin)\n" +
		"/profile - your profile\n" +
		"/shop - skill shop\n" +
		"/equip - manage your loadout\n" +
		"/gift <amount> - gift points (reply to a user)\n" +
		"/top - leaderboard\n" +
		"/lang - set group language (admin)"
	h.reply(msg.Chat.ID, text)
}

// ---------------------------------------------------------------
// Callback-кнопки
// ---------------------------------------------------------------

func (h *Handler) answer(cb *tgbotapi.CallbackQuery, text string) {
	if _, err := h.Bot.Request(tgbotapi.NewCallback(cb.ID, text)); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}
}

func (h *Handler) edit(cb *tgbotapi.CallbackQuery, text string) {
	e := tgbotapi.NewEditMessageText(cb.Message.Chat.ID, cb.Message.MessageID, text)
	e.ParseMode = tgbotapi.ModeMarkdown
	sendMessage(h.Bot, e)
}

func (h *Handler) editMenu(cb *tgbotapi.CallbackQuery, text string, menu game.Menu) {
	e := tgbotapi.NewEditMessageTextAndMarkup(cb.Message.Chat.ID, cb.Message.MessageID, text, keyboard(menu))
	e.ParseMode = tgbotapi.ModeMarkdown
	sendMessage(h.Bot, e)
}

// answerGameErr переводит ошибку движка в короткий toast.
func (h *Handler) answerGameErr(cb *tgbotapi.CallbackQuery, s *game.Session, err error) {
	var cd game.CooldownError
	switch {
	case errors.As(err, &cd):
		h.answer(cb, s.Tr("cooldown_msg", map[string]any{"rounds": cd.Rounds}))
	case errors.Is(err, game.ErrActionLocked):
		h.answer(cb, s.Tr("action_locked", nil))
	case errors.Is(err, game.ErrDead):
		h.answer(cb, s.Tr("dead_error", nil))
	case errors.Is(err, game.ErrRoundOneLock):
		h.answer(cb, s.Tr("round_1_lock", nil))
	case errors.Is(err, game.ErrNoStock):
		h.answer(cb, s.Tr("skill_no_stock", nil))
	default:
		h.answer(cb, "❌ Ended")
	}
}

// HandleCallback - единая точка входа для всех кнопок.
func (h *Handler) HandleCallback(cb *tgbotapi.CallbackQuery) {
	data := cb.Data
	switch {
	case data == "equip_done":
		if _, err := h.Bot.Request(tgbotapi.NewDeleteMessage(cb.Message.Chat.ID, cb.Message.MessageID)); err != nil {
			log.Printf("Failed to delete message: %v", err)
		}
		h.answer(cb, "")
	case strings.HasPrefix(data, "buy_skill_"):
		h.handleBuy(cb, strings.TrimPrefix(data, "buy_skill_"))
	case strings.HasPrefix(data, "toggle_skill_"):
		h.handleToggle(cb, strings.TrimPrefix(data, "toggle_skill_"))
	case strings.HasPrefix(data, "set_lang_"):
		h.handleSetLang(cb, strings.TrimPrefix(data, "set_lang_"))
	case strings.HasPrefix(data, "force_start_"):
		h.handleForceStart(cb, strings.TrimPrefix(data, "force_start_"))
	case strings.HasPrefix(data, "act_fire_"):
		h.handleFire(cb, strings.TrimPrefix(data, "act_fire_"))
	case strings.HasPrefix(data, "act_loot_"):
		h.handleLoot(cb, strings.TrimPrefix(data, "act_loot_"))
	case strings.HasPrefix(data, "menu_attack_"):
		h.handleAttackMenu(cb, strings.TrimPrefix(data, "menu_attack_"))
	case strings.HasPrefix(data, "menu_skills_"):
		h.handleSkillsMenu(cb, strings.TrimPrefix(data, "menu_skills_"))
	case strings.HasPrefix(data, "back_"):
		h.handleBack(cb, strings.TrimPrefix(data, "back_"))
	case strings.HasPrefix(data, "atk_"):
		h.handleAttack(cb, strings.TrimPrefix(data, "atk_"))
	case strings.HasPrefix(data, "use_skill_"):
		h.handleUseSkill(cb, strings.TrimPrefix(data, "use_skill_"))
	case strings.HasPrefix(data, "skill_atk_"):
		h.handleSkillAttack(cb, strings.TrimPrefix(data, "skill_atk_"))
	default:
		h.answer(cb, "")
	}
}

func (h *Handler) handleBuy(cb *tgbotapi.CallbackQuery, key string) {
	item, ok := game.SkillByKey(key)
	if !ok {
		h.answer(cb, "")
		return
	}
	err := h.Service.Purchase(cb.From.ID, key)
	if errors.Is(err, service.ErrInsufficientFunds) {
		h.answer(cb, "Insufficient Points")
		return
	}
	if err != nil {
		log.Printf("[shop] buy %s for %d: %v", key, cb.From.ID, err)
		h.answer(cb, "Try again later")
		return
	}
	h.answer(cb, fmt.Sprintf("Bought %s!", item.Name))

	u := h.Service.Profile(cb.From.ID, "")
	markup := shopKeyboard(u.Inventory)
	edit := tgbotapi.NewEditMessageReplyMarkup(cb.Message.Chat.ID, cb.Message.MessageID, markup)
	sendMessage(h.Bot, edit)
}

func (h *Handler) handleToggle(cb *tgbotapi.CallbackQuery, key string) {
	_, err := h.Service.ToggleEquip(cb.From.ID, key)
	switch {
	case errors.Is(err, service.ErrNotOwned):
		h.answer(cb, "You don't own this!")
		return
	case errors.Is(err, service.ErrLoadoutFull):
		h.answer(cb, "Max slots full!")
		return
	case err != nil:
		log.Printf("[equip] toggle %s for %d: %v", key, cb.From.ID, err)
		h.answer(cb, "Try again later")
		return
	}

	u := h.Service.Profile(cb.From.ID, "")
	text := fmt.Sprintf("⚡ *LOADOUT MANAGER*\nSlots: %d/%d", len(u.Equipped), h.Service.MaxEquip())
	edit := tgbotapi.NewEditMessageTextAndMarkup(cb.Message.Chat.ID, cb.Message.MessageID,
		text, equipKeyboard(u.Inventory, u.Equipped))
	edit.ParseMode = tgbotapi.ModeMarkdown
	sendMessage(h.Bot, edit)
	h.answer(cb, "")
}

func (h *Handler) handleSetLang(cb *tgbotapi.CallbackQuery, code string) {
	chatID := cb.Message.Chat.ID
	if !h.isAdminOrOwner(chatID, cb.From.ID) {
		h.answer(cb, "Admins only!")
		return
	}
	lang := i18n.Normalize(code)
	key := game.Key{ChatID: chatID}
	if err := h.Service.SetChatLang(key.String(), lang); err != nil {
		log.Printf("[lang] set %s for %s: %v", lang, key, err)
	}

	text := i18n.T(lang, "lang_set", nil)
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, cb.Message.MessageID, text, langKeyboard(lang))
	edit.ParseMode = tgbotapi.ModeMarkdown
	sendMessage(h.Bot, edit)
	h.answer(cb, text)
}

func (h *Handler) handleForceStart(cb *tgbotapi.CallbackQuery, key string) {
	if !h.isAdminOrOwner(cb.Message.Chat.ID, cb.From.ID) {
		h.answer(cb, "Admins only!")
		return
	}
	s := h.Games.Get(key)
	if s == nil {
		h.answer(cb, "")
		return
	}
	if err := s.ForceStart(); err != nil {
		h.answer(cb, "")
		return
	}
	h.answer(cb, "Starting...")
}

func (h *Handler) handleFire(cb *tgbotapi.CallbackQuery, key string) {
	s := h.Games.Get(key)
	if s == nil {
		h.edit(cb, "❌ Ended")
		return
	}
	val, err := s.PickFire(cb.From.ID)
	if err != nil {
		h.answerGameErr(cb, s, err)
		return
	}
	h.edit(cb, s.Tr("act_wait", nil))
	time.Sleep(h.Pacing)
	h.edit(cb, s.Tr("act_fire", map[string]any{"val": val}))
	h.answer(cb, "")
}

func (h *Handler) handleLoot(cb *tgbotapi.CallbackQuery, key string) {
	s := h.Games.Get(key)
	if s == nil {
		h.edit(cb, "❌ Ended")
		return
	}
	found, val, err := s.PickLoot(cb.From.ID)
	if err != nil {
		h.answerGameErr(cb, s, err)
		return
	}
	h.edit(cb, s.Tr("act_search", nil))
	time.Sleep(h.Pacing)
	if found {
		h.edit(cb, s.Tr("act_loot", map[string]any{"val": val}))
	} else {
		h.edit(cb, s.Tr("act_ambush", map[string]any{"val": val}))
	}
	h.answer(cb, "")
}

func (h *Handler) handleAttackMenu(cb *tgbotapi.CallbackQuery, key string) {
	s := h.Games.Get(key)
	if s == nil {
		h.answer(cb, "Ended")
		return
	}
	menu, err := s.TargetMenu(cb.From.ID)
	if err != nil {
		h.answerGameErr(cb, s, err)
		return
	}
	h.editMenu(cb, s.Tr("select_target", nil), menu)
	h.answer(cb, "")
}

func (h *Handler) handleAttack(cb *tgbotapi.CallbackQuery, rest string) {
	idx := strings.LastIndex(rest, "_")
	if idx < 0 {
		return
	}
	key := rest[:idx]
	targetID, err := strconv.ParseInt(rest[idx+1:], 10, 64)
	if err != nil {
		return
	}

	s := h.Games.Get(key)
	if s == nil {
		h.answer(cb, "Ended")
		return
	}
	name, err := s.PickAttack(cb.From.ID, targetID)
	if err != nil {
		h.answerGameErr(cb, s, err)
		return
	}
	h.edit(cb, s.Tr("attack_aim", nil))
	time.Sleep(h.Pacing)
	h.edit(cb, s.Tr("attack_confirm", map[string]any{"target": name}))
	h.answer(cb, "")
}

func (h *Handler) handleSkillsMenu(cb *tgbotapi.CallbackQuery, key string) {
	s := h.Games.Get(key)
	if s == nil {
		h.answer(cb, "Ended")
		return
	}
	menu, err := s.SkillMenu(cb.From.ID)
	if err != nil {
		h.answerGameErr(cb, s, err)
		return
	}
	h.editMenu(cb, s.Tr("btn_skills", nil), menu)
	h.answer(cb, "")
}

func (h *Handler) handleUseSkill(cb *tgbotapi.CallbackQuery, rest string) {
	idx := strings.LastIndex(rest, "_")
	if idx < 0 {
		return
	}
	key, skillKey := rest[:idx], rest[idx+1:]

	s := h.Games.Get(key)
	if s == nil {
		h.answer(cb, "Ended")
		return
	}
	skill, menu, err := s.UseSkill(cb.From.ID, skillKey)
	if err != nil {
		h.answerGameErr(cb, s, err)
		return
	}
	if menu != nil {
		h.editMenu(cb, s.Tr("select_target", nil), menu)
	} else {
		h.edit(cb, s.Tr("skill_used", map[string]any{"skill": skill.Name}))
	}
	h.answer(cb, "")
}

func (h *Handler) handleSkillAttack(cb *tgbotapi.CallbackQuery, rest string) {
	i2 := strings.LastIndex(rest, "_")
	if i2 < 0 {
		return
	}
	targetID, err := strconv.ParseInt(rest[i2+1:], 10, 64)
	if err != nil {
		return
	}
	head := rest[:i2]
	i1 := strings.LastIndex(head, "_")
	if i1 < 0 {
		return
	}
	key, skillKey := head[:i1], head[i1+1:]

	s := h.Games.Get(key)
	if s == nil {
		h.answer(cb, "Ended")
		return
	}
	skill, err := s.UseSkillOn(cb.From.ID, skillKey, targetID)
	if err != nil {
		h.answerGameErr(cb, s, err)
		return
	}
	h.edit(cb, s.Tr("skill_used", map[string]any{"skill": skill.Name}))
	h.answer(cb, "")
}

func (h *Handler) handleBack(cb *tgbotapi.CallbackQuery, key string) {
	s := h.Games.Get(key)
	if s == nil {
		h.edit(cb, "❌ Ended")
		return
	}
	text, menu, err := s.PromptView(cb.From.ID)
	if err != nil {
		h.answerGameErr(cb, s, err)
		return
	}
	h.editMenu(cb, text, menu)
	h.answer(cb, "")
}
