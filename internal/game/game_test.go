package game

import (
	"sync"
	"testing"
	"time"
)

// scriptRand выдаёт заранее заданную последовательность; после её
// исчерпания Intn даёт 0, а Float64 - 1 (ветки событий не срабатывают).
type scriptRand struct {
	ints   []int
	floats []float64
	i, f   int
}

func (r *scriptRand) Intn(n int) int {
	if r.i < len(r.ints) {
		v := r.ints[r.i]
		r.i++
		return v % n
	}
	return 0
}

func (r *scriptRand) Float64() float64 {
	if r.f < len(r.floats) {
		v := r.floats[r.f]
		r.f++
		return v
	}
	return 1
}

type fakeGateway struct {
	mu         sync.Mutex
	broadcasts []string
	dms        map[int64][]string
	deleted    int
}

func (g *fakeGateway) Broadcast(_ Key, text string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.broadcasts = append(g.broadcasts, text)
}

func (g *fakeGateway) BroadcastMenu(key Key, text string, _ Menu) (MessageRef, bool) {
	g.Broadcast(key, text)
	return MessageRef{ChatID: key.ChatID, MessageID: len(g.broadcasts)}, true
}

func (g *fakeGateway) EditMenu(_ MessageRef, _ string, _ Menu) {}

func (g *fakeGateway) DeleteMessage(_ MessageRef) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.deleted++
}

func (g *fakeGateway) SendDM(userID int64, text string, _ Menu) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.dms == nil {
		g.dms = map[int64][]string{}
	}
	g.dms[userID] = append(g.dms[userID], text)
}

func (g *fakeGateway) DeepLink(payload string) string { return "https://t.me/test?start=" + payload }

func (g *fakeGateway) lastBroadcast() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.broadcasts) == 0 {
		return ""
	}
	return g.broadcasts[len(g.broadcasts)-1]
}

type fakeProgress struct {
	mu       sync.Mutex
	profiles map[int64]Profile
	stock    map[int64]map[string]int
	consumed map[int64]map[string]int
	kills    map[int64]int
	wins     map[int64]int
	rewards  map[int64]int
}

func newFakeProgress() *fakeProgress {
	return &fakeProgress{
		profiles: map[int64]Profile{},
		stock:    map[int64]map[string]int{},
		consumed: map[int64]map[string]int{},
		kills:    map[int64]int{},
		wins:     map[int64]int{},
		rewards:  map[int64]int{},
	}
}

func (f *fakeProgress) JoinProfile(id int64, name string) Profile {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.profiles[id]; ok {
		return p
	}
	return Profile{Name: name}
}

func (f *fakeProgress) ConsumeItem(id int64, key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stock[id][key] <= 0 {
		return false
	}
	f.stock[id][key]--
	if f.consumed[id] == nil {
		f.consumed[id] = map[string]int{}
	}
	f.consumed[id][key]++
	return true
}

func (f *fakeProgress) CreditKill(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kills[id]++
}

func (f *fakeProgress) CreditWin(id int64, reward int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.wins[id]++
	f.rewards[id] += reward
}

// testT отдаёт ключ как есть: в отчёте тестам достаточно ключей.
func testT(_ string, key string, _ map[string]any) string { return key }

func testConfig() Config {
	return Config{
		RegistrationTime: time.Hour,
		ExtendTime:       30 * time.Second,
		ReminderInterval: time.Hour,
		RoundTime:        time.Hour,
		StartDelay:       time.Hour,
		RoundBreak:       time.Hour,
		StartHP:          100,
		SkillCooldown:    5,
		BaseStorm:        10,
		StormIncrement:   10,
		FirstPurge:       5,
		PurgeStep:        5,
		WinReward:        200,
	}
}

// newTestGame создаёт сессию с перечисленными игроками и запускает её.
func newTestGame(t *testing.T, rng Rand, ids ...int64) (*Manager, *Session, *fakeGateway, *fakeProgress) {
	t.Helper()
	gw := &fakeGateway{}
	pr := newFakeProgress()
	m := NewManager(testConfig(), gw, pr, testT, WithRand(rng))

	s, err := m.StartGame(Key{ChatID: -1001}, "Test Arena", "en")
	if err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	for _, id := range ids {
		if _, err := s.Join(id, "P"); err != nil {
			t.Fatalf("Join %d: %v", id, err)
		}
	}
	return m, s, gw, pr
}

// driveRound вручную стартует раунд (вместо фазового таймера).
func driveRound(s *Session) {
	s.mu.Lock()
	s.startRoundLocked()
	s.mu.Unlock()
}

// resolveNow вручную развязывает текущий раунд.
func resolveNow(s *Session) {
	s.mu.Lock()
	s.resolveRoundLocked()
	s.mu.Unlock()
}

func activate(t *testing.T, s *Session) {
	t.Helper()
	if err := s.ForceStart(); err != nil {
		t.Fatalf("ForceStart: %v", err)
	}
}

func player(s *Session, id int64) *Participant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.players[id]
}
