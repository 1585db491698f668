package game

import (
	"fmt"
	"sort"
	"strings"
)

// Баланс раунда. Значения заданы правилами игры, а не конфигом.
const (
	fireHealMin, fireHealMax   = 15, 25
	lootSuccessChance          = 0.6
	lootHealMin, lootHealMax   = 25, 45
	lootFailMin, lootFailMax   = 15, 25
	attackDmgMin, attackDmgMax = 15, 25
	freezePenalty              = 20

	santaRound        = 2
	santaShieldChance = 0.5
	santaHeal         = 25

	eventChance            = 0.75
	nightChance            = 0.4
	wolvesChance           = 0.6
	wolfDmgMin, wolfDmgMax = 25, 45
	demonDamage            = 99
	bearChance             = 0.5
	bearDmgMin, bearDmgMax = 40, 60
	blizzardDamage         = 25
)

// sample - случайная выборка без повторов, не больше n участников.
func sample(r Rand, pool []*Participant, n int) []*Participant {
	if n > len(pool) {
		n = len(pool)
	}
	picked := append([]*Participant(nil), pool...)
	for i := 0; i < n; i++ {
		j := i + r.Intn(len(picked)-i)
		picked[i], picked[j] = picked[j], picked[i]
	}
	return picked[:n]
}

// resolveRoundLocked - развязка раунда. Порядок шагов жёсткий: поздние
// шаги читают HP, изменённый ранними (санта -> PvP -> свои действия ->
// событие -> буря -> смерти -> чудо -> жнец -> отчёт -> проверка победы).
func (g *Session) resolveRoundLocked() {
	rng := g.m.rng
	alive := g.livingLocked()
	var dead []*Participant

	var b strings.Builder
	b.WriteString(g.tr("round_title", map[string]any{"round": g.round, "temp": g.storm}))
	b.WriteString("\n")

	// Санта: каждому живому независимо щит или глинтвейн, плюс личка.
	if g.round == santaRound {
		b.WriteString(g.tr("santa_visit", nil) + "\n")
		for _, p := range alive {
			if rng.Float64() < santaShieldChance {
				p.Shield = true
				g.m.gw.SendDM(p.ID, g.tr("santa_shield_dm", nil), nil)
				b.WriteString(g.tr("santa_shield_log", map[string]any{"name": mention(p)}) + "\n")
			} else {
				p.HP += santaHeal
				g.m.gw.SendDM(p.ID, g.tr("santa_wine_dm", nil), nil)
				b.WriteString(g.tr("santa_wine_log", map[string]any{"name": mention(p)}) + "\n")
			}
		}
		b.WriteString("\n")
	}

	// PvP: урон по ещё живым целям, добивание даёт счёт убийств.
	for _, p := range alive {
		if p.Action != ActionAttack && p.Action != ActionSkillAttack {
			continue
		}
		vic, ok := g.players[p.TargetID]
		if !ok || !vic.Alive {
			b.WriteString(g.tr("log_miss", map[string]any{"name": mention(p)}) + "\n")
			continue
		}
		vic.HP -= p.PendingDmg
		if p.Action == ActionSkillAttack {
			skill, _ := SkillByKey(p.SkillUsed)
			b.WriteString(g.tr("log_skill_atk", map[string]any{
				"name": mention(p), "skill": skill.Name, "val": p.PendingDmg}) + "\n")
		} else {
			b.WriteString(g.tr("log_attack", map[string]any{
				"name": mention(p), "target": mention(vic), "val": p.PendingDmg}) + "\n")
		}
		if vic.HP <= 0 {
			g.m.progress.CreditKill(p.ID)
		}
	}

	// Свои действия; бездействие карается.
	for _, p := range alive {
		switch p.Action {
		case ActionFire:
			p.HP += p.Val
			b.WriteString(g.tr("log_fire", map[string]any{"name": mention(p), "val": p.Val}) + "\n")
		case ActionLoot:
			p.HP += p.Val
			b.WriteString(g.tr("log_loot", map[string]any{"name": mention(p), "val": p.Val}) + "\n")
		case ActionLootFail:
			p.HP -= p.Val
			b.WriteString(g.tr("log_ambush", map[string]any{"name": mention(p), "val": p.Val}) + "\n")
		case ActionAttack, ActionSkillAttack:
			// уже в отчёте
		case ActionSkill:
			skill, _ := SkillByKey(p.SkillUsed)
			switch skill.Type {
			case SkillHeal:
				p.HP += skill.Val
				b.WriteString(g.tr("log_heal", map[string]any{"name": mention(p), "val": skill.Val}) + "\n")
			case SkillBuff:
				b.WriteString(g.tr("log_bunker", map[string]any{"name": mention(p)}) + "\n")
				if skill.Shield {
					p.Shield = true
				}
				if skill.Heal > 0 {
					p.HP += skill.Heal
					b.WriteString(g.tr("log_radar", map[string]any{"name": mention(p), "val": skill.Heal}) + "\n")
				}
			}
		default:
			p.HP -= freezePenalty
			b.WriteString(g.tr("log_freeze", map[string]any{"name": mention(p)}) + "\n")
		}
	}

	// Случайное событие после вводных раундов.
	if g.round > santaRound && rng.Float64() < eventChance {
		if rng.Float64() < nightChance {
			b.WriteString(g.tr("event_night", nil) + "\n")
			if rng.Float64() < wolvesChance {
				for _, v := range sample(rng, alive, between(rng, 1, 3)) {
					dmg := between(rng, wolfDmgMin, wolfDmgMax)
					v.HP -= dmg
					b.WriteString(g.tr("event_wolves", map[string]any{"name": mention(v), "val": dmg}) + "\n")
				}
			} else {
				// Демона щит не останавливает.
				for _, v := range sample(rng, alive, between(rng, 1, 2)) {
					v.HP -= demonDamage
					b.WriteString(g.tr("event_demon", map[string]any{"name": mention(v)}) + "\n")
				}
			}
		} else {
			b.WriteString(g.tr("event_day", nil) + "\n")
			if rng.Float64() < bearChance {
				for _, v := range sample(rng, alive, between(rng, 1, 2)) {
					if v.Shield {
						v.Shield = false
						b.WriteString(g.tr("log_shield_block", map[string]any{"name": mention(v)}) + "\n")
						continue
					}
					dmg := between(rng, bearDmgMin, bearDmgMax)
					v.HP -= dmg
					b.WriteString(g.tr("event_bear", map[string]any{"name": mention(v), "val": dmg}) + "\n")
				}
			} else {
				for _, p := range alive {
					p.HP -= blizzardDamage
				}
				b.WriteString(g.tr("event_blizzard", nil) + "\n")
			}
		}
		b.WriteString("\n")
	}

	// Буря: щит гасит ровно один удар.
	b.WriteString(g.tr("storm_damage", map[string]any{"val": g.storm}))
	for _, p := range alive {
		if p.Shield {
			p.Shield = false
			b.WriteString(g.tr("storm_blocked", map[string]any{"name": mention(p)}) + "\n")
			continue
		}
		p.HP -= g.storm
	}

	// Смерти. HP не ограничивается снизу: отрицательные значения
	// участвуют в выборе кандидата на чудо.
	for _, p := range alive {
		if p.HP <= 0 {
			p.Alive = false
			dead = append(dead, p)
		}
	}

	// Чудо: раунд не имеет права выкосить всех - лучший из погибших
	// возвращается с 1 HP.
	survivors := g.livingLocked()
	if len(survivors) == 0 && len(dead) > 0 {
		lucky, idx := dead[0], 0
		for i, p := range dead {
			if p.HP > lucky.HP {
				lucky, idx = p, i
			}
		}
		lucky.Alive = true
		lucky.HP = 1
		dead = append(dead[:idx], dead[idx+1:]...)
		b.WriteString(g.tr("miracle", map[string]any{"name": mention(lucky)}) + "\n")
		survivors = []*Participant{lucky}
	}

	// Жнец: в назначенный раунд слабейший выбывает принудительно.
	if g.round == g.nextPurge && len(survivors) > 1 {
		minHP := survivors[0].HP
		for _, p := range survivors {
			if p.HP < minHP {
				minHP = p.HP
			}
		}
		var ties []*Participant
		for _, p := range survivors {
			if p.HP == minHP {
				ties = append(ties, p)
			}
		}
		victim := ties[rng.Intn(len(ties))]
		victim.Alive = false
		victim.HP = 0
		dead = append(dead, victim)
		b.WriteString(g.tr("reaper", map[string]any{"name": mention(victim)}) + "\n")
		g.nextPurge += g.m.cfg.PurgeStep
	}

	if len(dead) > 0 {
		seen := make(map[int64]bool)
		var names []string
		for _, p := range dead {
			if !seen[p.ID] {
				seen[p.ID] = true
				names = append(names, mention(p))
			}
		}
		b.WriteString(g.tr("died", map[string]any{"names": strings.Join(names, ", ")}))
	}

	final := g.livingLocked()
	sort.Slice(final, func(i, j int) bool { return final[i].HP > final[j].HP })
	if len(final) > 0 {
		var status []string
		for _, p := range final {
			status = append(status, fmt.Sprintf("%s(%d)", mention(p), p.HP))
		}
		b.WriteString(g.tr("status_header", nil) + strings.Join(status, ", "))
	}

	g.m.gw.Broadcast(g.key, b.String())

	if len(final) <= 1 {
		g.finishLocked(final)
		return
	}
	g.armPhase(g.m.cfg.RoundBreak, g.startRoundLocked)
}
