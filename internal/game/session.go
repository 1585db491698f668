package game

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"
)

type Phase int

const (
	PhaseRegister Phase = iota
	PhaseActive
	PhaseFinished
)

// Action - выбор участника на раунд.
type Action int

const (
	ActionNone Action = iota
	ActionFire
	ActionLoot
	ActionLootFail
	ActionAttack
	ActionSkill
	ActionSkillAttack
)

// Participant - состояние игрока внутри одной сессии.
// Живёт и умирает вместе с ней.
type Participant struct {
	ID        int64
	Name      string
	HP        int
	Alive     bool
	Skills    []string        // снимок загрузки на момент входа
	Cooldowns map[string]int  // skill key -> раунд, до которого закрыт
	Consumed  map[string]bool // уже списанные за эту сессию навыки

	// Сбрасывается в начале каждого раунда. Shield не сбрасывается:
	// он живёт до первого поглощённого удара.
	Action     Action
	Val        int
	PendingDmg int
	TargetID   int64
	SkillUsed  string
	Shield     bool
}

// Target - живой противник для меню выбора цели.
type Target struct {
	ID   int64
	Name string
}

// JoinInfo - что показать игроку после входа.
type JoinInfo struct {
	Title        string
	StartHP      int
	EmptyLoadout bool // загрузка была, но запас кончился
}

// Session - одна игра от лобби до финала. Все изменения состояния
// сериализуются mu; таймеры защищены штампом поколения gen.
type Session struct {
	m       *Manager
	key     Key
	gameKey string
	title   string
	lang    string

	mu        sync.Mutex
	phase     Phase
	round     int
	storm     int
	nextPurge int
	players   map[int64]*Participant
	order     []int64 // порядок входа, для стабильных отчётов
	endTime   time.Time

	gen           int // растёт при каждой перестановке фазового таймера
	phaseTimer    *time.Timer
	reminderTimer *time.Timer

	lobbyMsg       MessageRef
	hasLobbyMsg    bool
	reminderMsg    MessageRef
	hasReminderMsg bool
}

func newSession(m *Manager, key Key, title, lang string) *Session {
	return &Session{
		m:         m,
		key:       key,
		gameKey:   key.String(),
		title:     title,
		lang:      lang,
		phase:     PhaseRegister,
		storm:     m.cfg.BaseStorm,
		nextPurge: m.cfg.FirstPurge,
		players:   make(map[int64]*Participant),
	}
}

// Key - арена сессии.
func (g *Session) Key() Key { return g.key }

// Lang - язык сессии.
func (g *Session) Lang() string { return g.lang }

// Tr - локализованная строка на языке сессии.
func (g *Session) Tr(key string, params map[string]any) string {
	return g.m.t(g.lang, key, params)
}

func (g *Session) tr(key string, params map[string]any) string {
	return g.m.t(g.lang, key, params)
}

func mention(p *Participant) string {
	return fmt.Sprintf("[%s](tg://user?id=%d)", p.Name, p.ID)
}

// ---------------------------------------------------------------
// Таймеры
// ---------------------------------------------------------------

// armPhase ставит единственный фазовый таймер. Старый отменяется, а
// уже летящий колбэк отсеет проверка поколения.
func (g *Session) armPhase(d time.Duration, fn func()) {
	g.gen++
	if g.phaseTimer != nil {
		g.phaseTimer.Stop()
	}
	gen := g.gen
	g.phaseTimer = time.AfterFunc(d, func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if g.gen != gen || g.phase == PhaseFinished {
			return
		}
		fn()
	})
}

func (g *Session) armReminder() {
	g.reminderTimer = time.AfterFunc(g.m.cfg.ReminderInterval, func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if g.phase != PhaseRegister {
			return
		}
		g.sendReminderLocked()
		g.armReminder()
	})
}

// destroyLocked - терминальное состояние: таймеры сняты, слот арены
// освобождён (если его всё ещё держит именно эта сессия).
func (g *Session) destroyLocked() {
	g.phase = PhaseFinished
	g.gen++
	if g.phaseTimer != nil {
		g.phaseTimer.Stop()
	}
	if g.reminderTimer != nil {
		g.reminderTimer.Stop()
	}
	g.m.removeSession(g)
}

// ---------------------------------------------------------------
// Регистрация
// ---------------------------------------------------------------

func (g *Session) openRegistration() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.endTime = time.Now().Add(g.m.cfg.RegistrationTime)

	if ref, ok := g.m.gw.BroadcastMenu(g.key, g.tr("game_intro", nil), g.lobbyMenuLocked()); ok {
		g.lobbyMsg, g.hasLobbyMsg = ref, true
	}

	g.armPhase(g.m.cfg.RegistrationTime, g.closeRegistrationLocked)
	g.armReminder()
}

func (g *Session) lobbyMenuLocked() Menu {
	return Menu{
		{{Label: g.tr("join_btn", nil), URL: g.m.gw.DeepLink("join_" + g.gameKey)}},
		{{Label: g.tr("start_btn", nil), Data: "force_start_" + g.gameKey}},
	}
}

// Join добавляет участника, пока открыта регистрация.
func (g *Session) Join(userID int64, rawName string) (JoinInfo, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != PhaseRegister {
		return JoinInfo{}, ErrGameClosed
	}
	if _, ok := g.players[userID]; ok {
		return JoinInfo{}, ErrAlreadyJoined
	}

	prof := g.m.progress.JoinProfile(userID, rawName)
	g.players[userID] = &Participant{
		ID:        userID,
		Name:      prof.Name,
		HP:        g.m.cfg.StartHP,
		Alive:     true,
		Skills:    prof.Skills,
		Cooldowns: make(map[string]int),
		Consumed:  make(map[string]bool),
	}
	g.order = append(g.order, userID)
	g.updateLobbyLocked()

	return JoinInfo{
		Title:        g.title,
		StartHP:      g.m.cfg.StartHP,
		EmptyLoadout: len(prof.Skills) == 0 && prof.HadEquipped,
	}, nil
}

func (g *Session) updateLobbyLocked() {
	if !g.hasLobbyMsg {
		return
	}
	var names []string
	for _, id := range g.order {
		names = append(names, "• "+mention(g.players[id]))
	}
	text := fmt.Sprintf("%s\n\n👥 (%d):\n%s",
		g.tr("game_intro", nil), len(g.order), strings.Join(names, "\n"))
	g.m.gw.EditMenu(g.lobbyMsg, text, g.lobbyMenuLocked())
}

// sendReminderLocked шлёт напоминание, предварительно удалив прошлое,
// чтобы они не копились в чате.
func (g *Session) sendReminderLocked() {
	if g.hasReminderMsg {
		g.m.gw.DeleteMessage(g.reminderMsg)
		g.hasReminderMsg = false
	}

	left := int(math.Ceil(time.Until(g.endTime).Seconds()))
	if left < 0 {
		left = 0
	}
	var names []string
	for _, id := range g.order {
		names = append(names, "• "+mention(g.players[id]))
	}
	roster := strings.Join(names, "\n")
	if roster == "" {
		roster = "_None_"
	}

	text := g.tr("time_left", map[string]any{"time": left, "count": len(g.order), "names": roster})
	menu := Menu{{{Label: g.tr("join_btn", nil), URL: g.m.gw.DeepLink("join_" + g.gameKey)}}}
	if ref, ok := g.m.gw.BroadcastMenu(g.key, text, menu); ok {
		g.reminderMsg, g.hasReminderMsg = ref, true
	}
}

// Extend продлевает регистрацию и переставляет фазовый таймер.
func (g *Session) Extend() (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != PhaseRegister {
		return 0, ErrGameClosed
	}
	g.endTime = g.endTime.Add(g.m.cfg.ExtendTime)
	left := time.Until(g.endTime)
	if left < 0 {
		left = 0
	}
	g.armPhase(left, g.closeRegistrationLocked)

	secs := int(math.Ceil(left.Seconds()))
	g.m.gw.Broadcast(g.key, g.tr("extended", map[string]any{"time": secs}))
	return secs, nil
}

// ForceStart закрывает регистрацию досрочно (право админа проверяет
// вызывающий слой).
func (g *Session) ForceStart() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != PhaseRegister {
		return ErrGameClosed
	}
	g.closeRegistrationLocked()
	return nil
}

// Cancel обрывает игру без наград. false - сессия уже завершена.
func (g *Session) Cancel() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase == PhaseFinished {
		return false
	}
	g.destroyLocked()
	return true
}

func (g *Session) closeRegistrationLocked() {
	if g.reminderTimer != nil {
		g.reminderTimer.Stop()
	}
	if g.hasReminderMsg {
		g.m.gw.DeleteMessage(g.reminderMsg)
		g.hasReminderMsg = false
	}

	if len(g.players) < 2 {
		g.m.gw.Broadcast(g.key, g.tr("not_enough", nil))
		g.destroyLocked()
		return
	}

	g.phase = PhaseActive
	menu := Menu{{{Label: g.tr("check_dm_btn", nil), URL: g.m.gw.DeepLink("")}}}
	g.m.gw.BroadcastMenu(g.key, g.tr("storm_started", nil), menu)
	g.armPhase(g.m.cfg.StartDelay, g.startRoundLocked)
}

// ---------------------------------------------------------------
// Раунды
// ---------------------------------------------------------------

func (g *Session) livingLocked() []*Participant {
	var alive []*Participant
	for _, id := range g.order {
		if p := g.players[id]; p.Alive {
			alive = append(alive, p)
		}
	}
	return alive
}

func (g *Session) startRoundLocked() {
	alive := g.livingLocked()
	if len(alive) <= 1 {
		g.finishLocked(alive)
		return
	}

	g.round++
	if g.round >= 2 {
		g.storm += g.m.cfg.StormIncrement
	}
	for _, p := range alive {
		p.Action = ActionNone
		p.Val = 0
		p.PendingDmg = 0
		p.TargetID = 0
		p.SkillUsed = ""
	}

	banner := g.tr("round_title", map[string]any{"round": g.round, "temp": g.storm})
	if g.round == 2 {
		banner += g.tr("santa_visit", nil)
	}
	menu := Menu{{{Label: g.tr("play_turn_btn", nil), URL: g.m.gw.DeepLink("")}}}
	g.m.gw.BroadcastMenu(g.key, banner, menu)

	// Личка каждому независимо: заблокировавший бота не задержит остальных.
	for _, p := range alive {
		text, m := g.promptLocked(p)
		g.m.gw.SendDM(p.ID, text, m)
	}

	g.armPhase(g.m.cfg.RoundTime, g.resolveRoundLocked)
}

func (g *Session) promptLocked(p *Participant) (string, Menu) {
	text := fmt.Sprintf("%s\n%s %d",
		g.tr("round_title", map[string]any{"round": g.round, "temp": g.storm}),
		g.tr("hp_tag", nil), p.HP)

	menu := Menu{
		{{Label: g.tr("btn_fire", nil), Data: "act_fire_" + g.gameKey}},
		{{Label: g.tr("btn_loot", nil), Data: "act_loot_" + g.gameKey}},
		{{Label: g.tr("btn_attack", nil), Data: "menu_attack_" + g.gameKey}},
	}
	if len(p.Skills) > 0 {
		menu = append(menu, []Button{{Label: g.tr("btn_skills", nil), Data: "menu_skills_" + g.gameKey}})
	}
	return text, menu
}

func (g *Session) finishLocked(alive []*Participant) {
	if len(alive) == 1 {
		w := alive[0]
		g.m.progress.CreditWin(w.ID, g.m.cfg.WinReward)
		g.m.gw.Broadcast(g.key, g.tr("winner", map[string]any{"name": mention(w)}))
	} else {
		g.m.gw.Broadcast(g.key, g.tr("game_over", nil))
	}
	g.destroyLocked()
}

// ---------------------------------------------------------------
// Выбор действий
// ---------------------------------------------------------------

func (g *Session) actingLocked(userID int64) (*Participant, error) {
	if g.phase != PhaseActive {
		return nil, ErrGameClosed
	}
	p, ok := g.players[userID]
	if !ok {
		return nil, ErrNotInGame
	}
	if !p.Alive {
		return nil, ErrDead
	}
	return p, nil
}

func (g *Session) readyLocked(p *Participant) {
	g.m.gw.Broadcast(g.key, g.tr("ready_msg", map[string]any{"name": mention(p)}))
}

// PickFire - костёр: самолечение в фиксированном диапазоне.
func (g *Session) PickFire(userID int64) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, err := g.actingLocked(userID)
	if err != nil {
		return 0, err
	}
	if p.Action != ActionNone {
		return 0, ErrActionLocked
	}
	p.Action = ActionFire
	p.Val = between(g.m.rng, fireHealMin, fireHealMax)
	g.readyLocked(p)
	return p.Val, nil
}

// PickLoot - вылазка: чаще припасы, иногда засада.
func (g *Session) PickLoot(userID int64) (bool, int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, err := g.actingLocked(userID)
	if err != nil {
		return false, 0, err
	}
	if p.Action != ActionNone {
		return false, 0, ErrActionLocked
	}
	if g.m.rng.Float64() < lootSuccessChance {
		p.Action = ActionLoot
		p.Val = between(g.m.rng, lootHealMin, lootHealMax)
		g.readyLocked(p)
		return true, p.Val, nil
	}
	p.Action = ActionLootFail
	p.Val = between(g.m.rng, lootFailMin, lootFailMax)
	g.readyLocked(p)
	return false, p.Val, nil
}

func (g *Session) targetsLocked(p *Participant) []Target {
	var out []Target
	for _, id := range g.order {
		if t := g.players[id]; t.Alive && t.ID != p.ID {
			out = append(out, Target{ID: t.ID, Name: t.Name})
		}
	}
	return out
}

// TargetMenu - список живых целей для обычной атаки.
func (g *Session) TargetMenu(userID int64) (Menu, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, err := g.actingLocked(userID)
	if err != nil {
		return nil, err
	}
	if p.Action != ActionNone {
		return nil, ErrActionLocked
	}
	var menu Menu
	for _, t := range g.targetsLocked(p) {
		menu = append(menu, []Button{{
			Label: "☃️ " + t.Name,
			Data:  fmt.Sprintf("atk_%s_%d", g.gameKey, t.ID),
		}})
	}
	menu = append(menu, []Button{{Label: g.tr("btn_back", nil), Data: "back_" + g.gameKey}})
	return menu, nil
}

// PickAttack фиксирует атаку по живой цели.
func (g *Session) PickAttack(userID, targetID int64) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, err := g.actingLocked(userID)
	if err != nil {
		return "", err
	}
	if p.Action != ActionNone {
		return "", ErrActionLocked
	}
	vic, ok := g.players[targetID]
	if !ok || !vic.Alive || vic.ID == p.ID {
		return "", ErrBadTarget
	}
	p.Action = ActionAttack
	p.PendingDmg = between(g.m.rng, attackDmgMin, attackDmgMax)
	p.TargetID = targetID
	g.readyLocked(p)
	return vic.Name, nil
}

// SkillMenu - принесённые навыки, занятые помечены песочными часами.
func (g *Session) SkillMenu(userID int64) (Menu, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, err := g.actingLocked(userID)
	if err != nil {
		return nil, err
	}
	var menu Menu
	for _, key := range p.Skills {
		skill, ok := SkillByKey(key)
		if !ok {
			continue
		}
		label := skill.Name
		if p.Cooldowns[key] > g.round {
			label += " (⏳)"
		}
		menu = append(menu, []Button{{
			Label: label,
			Data:  fmt.Sprintf("use_skill_%s_%s", g.gameKey, key),
		}})
	}
	menu = append(menu, []Button{{Label: g.tr("btn_back", nil), Data: "back_" + g.gameKey}})
	return menu, nil
}

// consumeLocked списывает запас навыка не больше одного раза за сессию.
func (g *Session) consumeLocked(p *Participant, key string) bool {
	if p.Consumed[key] {
		return true
	}
	if !g.m.progress.ConsumeItem(p.ID, key) {
		return false
	}
	p.Consumed[key] = true
	return true
}

// UseSkill применяет навык. Для атакующих навыков возвращает меню целей
// вместо фиксации действия.
func (g *Session) UseSkill(userID int64, key string) (Skill, Menu, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, err := g.actingLocked(userID)
	if err != nil {
		return Skill{}, nil, err
	}
	if p.Action != ActionNone {
		return Skill{}, nil, ErrActionLocked
	}
	skill, ok := SkillByKey(key)
	if !ok || !contains(p.Skills, key) {
		return Skill{}, nil, ErrNoStock
	}
	if g.round == 1 {
		return Skill{}, nil, ErrRoundOneLock
	}
	if cd := p.Cooldowns[key]; cd > g.round {
		return Skill{}, nil, CooldownError{Rounds: cd - g.round}
	}
	if !g.consumeLocked(p, key) {
		return Skill{}, nil, ErrNoStock
	}

	if skill.Type == SkillAttack {
		var menu Menu
		for _, t := range g.targetsLocked(p) {
			menu = append(menu, []Button{{
				Label: t.Name,
				Data:  fmt.Sprintf("skill_atk_%s_%s_%d", g.gameKey, key, t.ID),
			}})
		}
		return skill, menu, nil
	}

	p.Action = ActionSkill
	p.SkillUsed = key
	p.Val = skill.Val
	p.Cooldowns[key] = g.round + g.m.cfg.SkillCooldown
	g.readyLocked(p)
	return skill, nil, nil
}

// UseSkillOn фиксирует атакующий навык по выбранной цели.
func (g *Session) UseSkillOn(userID int64, key string, targetID int64) (Skill, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, err := g.actingLocked(userID)
	if err != nil {
		return Skill{}, err
	}
	if p.Action != ActionNone {
		return Skill{}, ErrActionLocked
	}
	skill, ok := SkillByKey(key)
	if !ok || !g.consumeLocked(p, key) {
		return Skill{}, ErrNoStock
	}
	vic, okT := g.players[targetID]
	if !okT || !vic.Alive || vic.ID == p.ID {
		return Skill{}, ErrBadTarget
	}

	p.Action = ActionSkillAttack
	p.SkillUsed = key
	p.TargetID = targetID
	p.PendingDmg = skill.Val
	p.Cooldowns[key] = g.round + g.m.cfg.SkillCooldown
	g.readyLocked(p)
	return skill, nil
}

// PromptView - главное меню хода, для навигации "назад".
func (g *Session) PromptView(userID int64) (string, Menu, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, err := g.actingLocked(userID)
	if err != nil {
		return "", nil, err
	}
	text, menu := g.promptLocked(p)
	return text, menu, nil
}

func contains(list []string, key string) bool {
	for _, k := range list {
		if k == key {
			return true
		}
	}
	return false
}
