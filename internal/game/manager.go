package game

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	ErrAlreadyActive = errors.New("game already active in this arena")
	ErrGameClosed    = errors.New("game closed or not found")
	ErrAlreadyJoined = errors.New("already joined")
	ErrNotInGame     = errors.New("not a participant")
	ErrDead          = errors.New("participant is dead")
	ErrActionLocked  = errors.New("action already locked for this round")
	ErrRoundOneLock  = errors.New("skills are locked on round 1")
	ErrNoStock       = errors.New("no stock for skill")
	ErrBadTarget     = errors.New("invalid target")
)

// CooldownError - навык ещё на перезарядке.
type CooldownError struct {
	Rounds int
}

func (e CooldownError) Error() string {
	return fmt.Sprintf("skill on cooldown for %d more round(s)", e.Rounds)
}

// Config - баланс и тайминги движка.
type Config struct {
	RegistrationTime time.Duration
	ExtendTime       time.Duration
	ReminderInterval time.Duration
	RoundTime        time.Duration
	StartDelay       time.Duration // пауза между анонсом игры и раундом 1
	RoundBreak       time.Duration // пауза между отчётом и новым раундом

	StartHP        int
	SkillCooldown  int
	BaseStorm      int
	StormIncrement int
	FirstPurge     int
	PurgeStep      int
	WinReward      int
}

// Manager - реестр живых игр: не больше одной сессии на арену.
// Все компоненты ищут сессию только через него.
type Manager struct {
	cfg      Config
	gw       Gateway
	progress Progress
	t        Translator
	rng      Rand

	mu    sync.Mutex
	games map[string]*Session
}

// Option - настройка менеджера (используется тестами).
type Option func(*Manager)

// WithRand подменяет источник случайности.
func WithRand(r Rand) Option {
	return func(m *Manager) { m.rng = r }
}

func NewManager(cfg Config, gw Gateway, progress Progress, t Translator, opts ...Option) *Manager {
	m := &Manager{
		cfg:      cfg,
		gw:       gw,
		progress: progress,
		t:        t,
		rng:      stdRand{},
		games:    make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// StartGame создаёт сессию и открывает регистрацию.
// ErrAlreadyActive, если на арене уже идёт игра.
func (m *Manager) StartGame(key Key, title, lang string) (*Session, error) {
	m.mu.Lock()
	gameKey := key.String()
	if _, ok := m.games[gameKey]; ok {
		m.mu.Unlock()
		return nil, ErrAlreadyActive
	}
	s := newSession(m, key, title, lang)
	m.games[gameKey] = s
	m.mu.Unlock()

	s.openRegistration()
	return s, nil
}

// Get - сессия по составному ключу, nil если её нет.
func (m *Manager) Get(gameKey string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.games[gameKey]
}

// Stop отменяет игру на арене (без наград). false - игры не было.
func (m *Manager) Stop(gameKey string) bool {
	s := m.Get(gameKey)
	if s == nil {
		return false
	}
	return s.Cancel()
}

// removeSession удаляет сессию, только если реестр всё ещё держит именно
// её: отставший таймер не должен снести игру, пересозданную на той же арене.
func (m *Manager) removeSession(s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.games[s.gameKey] == s {
		delete(m.games, s.gameKey)
	}
}
