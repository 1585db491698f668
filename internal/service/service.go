package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/sashakosti/snowstorm-bot/internal/game"
	"github.com/sashakosti/snowstorm-bot/internal/storage"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotOwned          = errors.New("skill not owned")
	ErrLoadoutFull       = errors.New("loadout is full")
	ErrUnknownSkill      = errors.New("unknown skill")
	ErrInvalidAmount     = errors.New("invalid amount")
)

// Store - контракт хранилища: загрузка/сохранение снимков профиля.
type Store interface {
	LoadPlayer(ctx context.Context, tgID int64) (*storage.Player, error)
	SavePlayer(ctx context.Context, p *storage.Player) error
	AllPlayers(ctx context.Context) ([]storage.Player, error)
	ChatLang(ctx context.Context, chatKey string) (string, error)
	SetChatLang(ctx context.Context, chatKey, lang string) error
}

// PlayerService держит профили в памяти и сбрасывает каждое изменение
// в хранилище. Ошибка загрузки деградирует в свежий профиль, а не в падение.
type PlayerService struct {
	storage     Store
	ctx         context.Context
	startPoints int
	maxEquip    int

	mu    sync.Mutex
	cache map[int64]*storage.Player
	langs map[string]string
}

func New(store Store, startPoints, maxEquip int) *PlayerService {
	return &PlayerService{
		storage:     store,
		ctx:         context.Background(),
		startPoints: startPoints,
		maxEquip:    maxEquip,
		cache:       make(map[int64]*storage.Player),
		langs:       make(map[string]string),
	}
}

// getOrCreate - профиль из кэша/базы, либо новый с дефолтами.
// Непустое имя всегда обновляет сохранённое. Вызывать под s.mu.
func (s *PlayerService) getOrCreate(tgID int64, name string) *storage.Player {
	p, ok := s.cache[tgID]
	if !ok {
		loaded, err := s.storage.LoadPlayer(s.ctx, tgID)
		if err != nil {
			log.Printf("[store] load player %d failed, using defaults: %v", tgID, err)
		}
		if loaded != nil {
			p = loaded
		} else {
			p = &storage.Player{
				TGID:      tgID,
				Name:      "Survivor",
				Points:    s.startPoints,
				Inventory: map[string]int{},
			}
		}
		if p.Inventory == nil {
			p.Inventory = map[string]int{}
		}
		s.cache[tgID] = p
	}
	if name != "" {
		p.Name = name
	}
	return p
}

// flush сбрасывает профиль в хранилище сразу после изменения.
func (s *PlayerService) flush(p *storage.Player) error {
	if err := s.storage.SavePlayer(s.ctx, p); err != nil {
		return fmt.Errorf("failed to save player %d: %w", p.TGID, err)
	}
	return nil
}

// MaxEquip - предел слотов загрузки.
func (s *PlayerService) MaxEquip() int { return s.maxEquip }

// Profile - снимок профиля для /profile.
func (s *PlayerService) Profile(tgID int64, name string) storage.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getOrCreate(tgID, name)
	if name != "" {
		if err := s.flush(p); err != nil {
			log.Printf("[store] %v", err)
		}
	}
	return snapshot(p)
}

// Purchase - покупка навыка в магазине.
func (s *PlayerService) Purchase(tgID int64, skillKey string) error {
	skill, ok := game.SkillByKey(skillKey)
	if !ok {
		return ErrUnknownSkill
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getOrCreate(tgID, "")
	if p.Points < skill.Cost {
		return ErrInsufficientFunds
	}
	p.Points -= skill.Cost
	p.Inventory[skillKey]++
	return s.flush(p)
}

// ToggleEquip переключает навык в загрузке. Возвращает новое состояние.
func (s *PlayerService) ToggleEquip(tgID int64, skillKey string) (bool, error) {
	if _, ok := game.SkillByKey(skillKey); !ok {
		return false, ErrUnknownSkill
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getOrCreate(tgID, "")
	if p.Inventory[skillKey] <= 0 {
		return false, ErrNotOwned
	}

	for i, k := range p.Equipped {
		if k == skillKey {
			p.Equipped = append(p.Equipped[:i], p.Equipped[i+1:]...)
			return false, s.flush(p)
		}
	}
	if len(p.Equipped) >= s.maxEquip {
		return false, ErrLoadoutFull
	}
	p.Equipped = append(p.Equipped, skillKey)
	return true, s.flush(p)
}

// Gift - перевод очков между игроками.
func (s *PlayerService) Gift(senderID int64, senderName string, recipientID int64, recipientName string, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sender := s.getOrCreate(senderID, senderName)
	if sender.Points < amount {
		return ErrInsufficientFunds
	}
	recipient := s.getOrCreate(recipientID, recipientName)

	sender.Points -= amount
	recipient.Points += amount
	if err := s.flush(sender); err != nil {
		return err
	}
	return s.flush(recipient)
}

// Leaderboard - топ профилей по очкам.
func (s *PlayerService) Leaderboard(limit int) ([]storage.Player, error) {
	players, err := s.storage.AllPlayers(s.ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(players, func(i, j int) bool { return players[i].Points > players[j].Points })
	if len(players) > limit {
		players = players[:limit]
	}
	return players, nil
}

// ChatLang - язык арены, "" если не задан.
func (s *PlayerService) ChatLang(chatKey string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if lang, ok := s.langs[chatKey]; ok {
		return lang
	}
	lang, err := s.storage.ChatLang(s.ctx, chatKey)
	if err != nil {
		log.Printf("[store] load chat lang %s: %v", chatKey, err)
		return ""
	}
	if lang != "" {
		s.langs[chatKey] = lang
	}
	return lang
}

// SetChatLang сохраняет язык арены.
func (s *PlayerService) SetChatLang(chatKey, lang string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.langs[chatKey] = lang
	return s.storage.SetChatLang(s.ctx, chatKey, lang)
}

// ---------------------------------------------------------------
// game.Progress - прогрессия, которую дёргает игровой движок.
// ---------------------------------------------------------------

// JoinProfile - снимок профиля на момент входа в игру: имя и навыки
// из загрузки, на которые реально есть запас.
func (s *PlayerService) JoinProfile(tgID int64, name string) game.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getOrCreate(tgID, name)
	if err := s.flush(p); err != nil {
		log.Printf("[store] %v", err)
	}

	var bring []string
	for _, key := range p.Equipped {
		if p.Inventory[key] > 0 {
			bring = append(bring, key)
		}
	}
	return game.Profile{
		Name:        p.Name,
		Skills:      bring,
		HadEquipped: len(p.Equipped) > 0,
	}
}

// ConsumeItem списывает одну единицу запаса. false - запаса нет.
func (s *PlayerService) ConsumeItem(tgID int64, skillKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getOrCreate(tgID, "")
	if p.Inventory[skillKey] <= 0 {
		return false
	}
	p.Inventory[skillKey]--
	if p.Inventory[skillKey] == 0 {
		delete(p.Inventory, skillKey)
	}
	if err := s.flush(p); err != nil {
		log.Printf("[store] %v", err)
	}
	return true
}

// CreditKill - засчитать убийство.
func (s *PlayerService) CreditKill(tgID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getOrCreate(tgID, "")
	p.Kills++
	if err := s.flush(p); err != nil {
		log.Printf("[store] %v", err)
	}
}

// CreditWin - победа и награда. Сбой записи не блокирует объявление
// победителя, только логируется.
func (s *PlayerService) CreditWin(tgID int64, reward int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getOrCreate(tgID, "")
	p.Wins++
	p.Points += reward
	if err := s.flush(p); err != nil {
		log.Printf("[store] %v", err)
	}
}

func snapshot(p *storage.Player) storage.Player {
	out := *p
	out.Inventory = make(map[string]int, len(p.Inventory))
	for k, v := range p.Inventory {
		out.Inventory[k] = v
	}
	out.Equipped = append([]string(nil), p.Equipped...)
	return out
}
