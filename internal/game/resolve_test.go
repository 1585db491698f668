package game

import (
	"strings"
	"testing"
)

// setRound подкручивает состояние раунда напрямую, чтобы не гонять
// сценарий через все промежуточные развязки.
func setRound(s *Session, round, storm int) {
	s.mu.Lock()
	s.round = round
	s.storm = storm
	s.mu.Unlock()
}

func setAction(s *Session, id int64, a Action, val int) {
	s.mu.Lock()
	p := s.players[id]
	p.Action = a
	p.Val = val
	s.mu.Unlock()
}

func TestResolveFireAndStorm(t *testing.T) {
	rng := &scriptRand{ints: []int{5, 7}}
	_, s, _, _ := newTestGame(t, rng, 1, 2)
	activate(t, s)
	driveRound(s)

	if got := player(s, 1); got.HP != 100 {
		t.Fatalf("стартовое HP = %d, ждали 100", got.HP)
	}

	v1, err := s.PickFire(1)
	if err != nil {
		t.Fatalf("PickFire(1): %v", err)
	}
	if v1 != 20 {
		t.Errorf("лечение у костра = %d, ждали 20", v1)
	}
	if _, err := s.PickFire(2); err != nil {
		t.Fatalf("PickFire(2): %v", err)
	}

	resolveNow(s)

	// 100 + лечение - буря первого раунда (10).
	if got := player(s, 1).HP; got != 110 {
		t.Errorf("HP игрока 1 = %d, ждали 110", got)
	}
	if got := player(s, 2).HP; got != 112 {
		t.Errorf("HP игрока 2 = %d, ждали 112", got)
	}

	// Буря крепчает только со второго раунда.
	driveRound(s)
	s.mu.Lock()
	round, storm := s.round, s.storm
	s.mu.Unlock()
	if round != 2 || storm != 20 {
		t.Errorf("раунд %d / буря %d, ждали 2 / 20", round, storm)
	}
}

func TestResolveFreezePenalty(t *testing.T) {
	rng := &scriptRand{}
	_, s, gw, _ := newTestGame(t, rng, 1, 2)
	activate(t, s)
	driveRound(s)

	// Игрок 1 бездействует, игрок 2 греется без эффекта.
	setAction(s, 2, ActionFire, 0)
	resolveNow(s)

	if got := player(s, 1).HP; got != 70 {
		t.Errorf("HP замёрзшего = %d, ждали 70 (100-20-10)", got)
	}
	if got := player(s, 2).HP; got != 90 {
		t.Errorf("HP у костра = %d, ждали 90", got)
	}
	if !strings.Contains(gw.lastBroadcast(), "log_freeze") {
		t.Error("в отчёте нет строки про замерзание")
	}
}

func TestResolveMiracleAndWinner(t *testing.T) {
	rng := &scriptRand{}
	m, s, gw, pr := newTestGame(t, rng, 1, 2)
	activate(t, s)
	driveRound(s)

	s.mu.Lock()
	s.players[1].HP = 5
	s.players[2].HP = 1
	s.mu.Unlock()

	// Оба бездействуют и уходят в минус, но раунд не может выкосить всех:
	// лучший из погибших возвращается с 1 HP и сразу побеждает.
	resolveNow(s)

	p1, p2 := player(s, 1), player(s, 2)
	if !p1.Alive || p1.HP != 1 {
		t.Errorf("игрок 1: alive=%v hp=%d, ждали возврата с 1 HP", p1.Alive, p1.HP)
	}
	if p2.Alive {
		t.Error("игрок 2 должен остаться мёртвым")
	}
	if pr.wins[1] != 1 || pr.rewards[1] != 200 {
		t.Errorf("победа не засчитана: wins=%d reward=%d", pr.wins[1], pr.rewards[1])
	}
	if m.Get(s.gameKey) != nil {
		t.Error("завершённая сессия осталась в реестре")
	}
	report := strings.Join(gw.broadcasts, "\n")
	if !strings.Contains(report, "miracle") || !strings.Contains(report, "winner") {
		t.Error("в отчёте нет чуда и объявления победителя")
	}
}

func TestResolveReaperPicksWeakest(t *testing.T) {
	// Float64: 0.8 - событие не срабатывает. Intn не нужен: слабейший один.
	rng := &scriptRand{floats: []float64{0.8}}
	m, s, _, _ := newTestGame(t, rng, 1, 2, 3)
	activate(t, s)
	driveRound(s)
	setRound(s, 5, 0)

	s.mu.Lock()
	s.players[1].HP = 100
	s.players[2].HP = 50
	s.players[3].HP = 30
	for _, p := range s.players {
		p.Action = ActionFire
	}
	s.mu.Unlock()

	resolveNow(s)

	if p := player(s, 3); p.Alive || p.HP != 0 {
		t.Errorf("жнец не забрал слабейшего: alive=%v hp=%d", p.Alive, p.HP)
	}
	if player(s, 1).Alive != true || player(s, 2).Alive != true {
		t.Error("жнец забрал лишних")
	}
	s.mu.Lock()
	nextPurge := s.nextPurge
	s.mu.Unlock()
	if nextPurge != 10 {
		t.Errorf("следующая жатва в раунде %d, ждали 10", nextPurge)
	}
	if m.Get(s.gameKey) == nil {
		t.Error("игра с двумя выжившими не должна завершаться")
	}
}

func TestResolveReaperTieBreak(t *testing.T) {
	// Intn(2)=1 выбирает второго из равных по HP.
	rng := &scriptRand{ints: []int{1}, floats: []float64{0.8}}
	_, s, _, _ := newTestGame(t, rng, 1, 2, 3)
	activate(t, s)
	driveRound(s)
	setRound(s, 5, 0)

	s.mu.Lock()
	s.players[1].HP = 100
	s.players[2].HP = 40
	s.players[3].HP = 40
	for _, p := range s.players {
		p.Action = ActionFire
	}
	s.mu.Unlock()

	resolveNow(s)

	if player(s, 2).Alive != true {
		t.Error("первый из равных не должен был выбыть")
	}
	if player(s, 3).Alive {
		t.Error("жребий указывал на второго из равных")
	}
}

func TestResolveSantaRound(t *testing.T) {
	// Каждому живому независимо: 0.3 - щит, 0.7 - глинтвейн.
	rng := &scriptRand{floats: []float64{0.3, 0.7}}
	_, s, gw, _ := newTestGame(t, rng, 1, 2)
	activate(t, s)
	driveRound(s)
	setRound(s, 2, 20)
	setAction(s, 1, ActionFire, 0)
	setAction(s, 2, ActionFire, 0)

	resolveNow(s)

	// Щит гасит бурю и сгорает, глинтвейн лечит до бури.
	p1, p2 := player(s, 1), player(s, 2)
	if p1.HP != 100 || p1.Shield {
		t.Errorf("игрок 1: hp=%d shield=%v, ждали 100 и сгоревший щит", p1.HP, p1.Shield)
	}
	if p2.HP != 105 {
		t.Errorf("игрок 2: hp=%d, ждали 105 (100+25-20)", p2.HP)
	}
	if len(gw.dms[1]) == 0 || len(gw.dms[2]) == 0 {
		t.Error("санта не отписался в личку")
	}
	report := gw.lastBroadcast()
	if !strings.Contains(report, "santa_shield_log") || !strings.Contains(report, "santa_wine_log") {
		t.Error("в отчёте нет строк санты")
	}
}

func TestResolveShieldSingleUse(t *testing.T) {
	rng := &scriptRand{floats: []float64{0.8, 0.8}}
	_, s, _, _ := newTestGame(t, rng, 1, 2)
	activate(t, s)
	driveRound(s)
	setRound(s, 3, 10)

	s.mu.Lock()
	s.players[1].Shield = true
	s.players[1].Action = ActionFire
	s.players[2].Action = ActionFire
	s.mu.Unlock()

	resolveNow(s)
	if p := player(s, 1); p.HP != 100 || p.Shield {
		t.Fatalf("щит не погасил бурю: hp=%d shield=%v", p.HP, p.Shield)
	}

	setRound(s, 4, 10)
	setAction(s, 1, ActionFire, 0)
	setAction(s, 2, ActionFire, 0)
	resolveNow(s)
	if p := player(s, 1); p.HP != 90 {
		t.Errorf("щит должен работать один раз: hp=%d, ждали 90", p.HP)
	}
}

func TestResolveWolvesEvent(t *testing.T) {
	// 0.5 - событие, 0.3 - ночь, 0.5 - волки. Жертв 1+Intn(3)=3,
	// выборка без повторов, урон по 25+Intn(21)=30.
	rng := &scriptRand{
		ints:   []int{2, 0, 0, 0, 5, 5, 5},
		floats: []float64{0.5, 0.3, 0.5},
	}
	_, s, gw, _ := newTestGame(t, rng, 1, 2, 3)
	activate(t, s)
	driveRound(s)
	setRound(s, 3, 0)

	s.mu.Lock()
	for _, p := range s.players {
		p.Action = ActionFire
	}
	s.mu.Unlock()

	resolveNow(s)

	for _, id := range []int64{1, 2, 3} {
		if got := player(s, id).HP; got != 70 {
			t.Errorf("игрок %d: hp=%d, ждали 70", id, got)
		}
	}
	if n := strings.Count(gw.lastBroadcast(), "event_wolves"); n != 3 {
		t.Errorf("строк про волков %d, ждали 3", n)
	}
}

func TestResolveDemonIgnoresShield(t *testing.T) {
	// 0.5 - событие, 0.3 - ночь, 0.9 - демон. Одна жертва: игрок 1.
	rng := &scriptRand{
		ints:   []int{0, 0},
		floats: []float64{0.5, 0.3, 0.9},
	}
	_, s, _, _ := newTestGame(t, rng, 1, 2)
	activate(t, s)
	driveRound(s)
	setRound(s, 3, 10)

	s.mu.Lock()
	s.players[1].Shield = true
	s.players[1].Action = ActionFire
	s.players[2].Action = ActionFire
	s.mu.Unlock()

	resolveNow(s)

	// Демон бьёт сквозь щит (-99), а вот бурю щит ещё гасит.
	p1 := player(s, 1)
	if p1.HP != 1 || !p1.Alive {
		t.Errorf("игрок 1: hp=%d alive=%v, ждали 1 HP", p1.HP, p1.Alive)
	}
	if p1.Shield {
		t.Error("щит должен сгореть на буре")
	}
	if got := player(s, 2).HP; got != 90 {
		t.Errorf("игрок 2: hp=%d, ждали 90", got)
	}
}

func TestResolveBearBlockedByShield(t *testing.T) {
	// 0.5 - событие, 0.6 - день, 0.3 - медведь. Одна жертва: игрок 1.
	rng := &scriptRand{
		ints:   []int{0, 0},
		floats: []float64{0.5, 0.6, 0.3},
	}
	_, s, gw, _ := newTestGame(t, rng, 1, 2)
	activate(t, s)
	driveRound(s)
	setRound(s, 3, 10)

	s.mu.Lock()
	s.players[1].Shield = true
	s.players[1].Action = ActionFire
	s.players[2].Action = ActionFire
	s.mu.Unlock()

	resolveNow(s)

	// Щит съел медведя, значит буря прошла полностью.
	if got := player(s, 1).HP; got != 90 {
		t.Errorf("игрок 1: hp=%d, ждали 90", got)
	}
	if !strings.Contains(gw.lastBroadcast(), "log_shield_block") {
		t.Error("в отчёте нет блока щитом")
	}
}

func TestResolveAttackCreditsKill(t *testing.T) {
	rng := &scriptRand{}
	_, s, _, pr := newTestGame(t, rng, 1, 2)
	activate(t, s)
	driveRound(s)

	s.mu.Lock()
	p1 := s.players[1]
	p1.Action = ActionAttack
	p1.TargetID = 2
	p1.PendingDmg = 200
	s.players[2].Action = ActionFire
	s.mu.Unlock()

	resolveNow(s)

	if player(s, 2).Alive {
		t.Error("жертва пережила смертельный урон")
	}
	if pr.kills[1] != 1 {
		t.Errorf("убийств засчитано %d, ждали 1", pr.kills[1])
	}
	if pr.wins[1] != 1 {
		t.Errorf("последний выживший не получил победу: wins=%d", pr.wins[1])
	}
}
