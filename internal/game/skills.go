package game

import (
	_ "embed"
	"encoding/json"
	"log"
	"sort"
)

// Типы эффектов навыков.
const (
	SkillHeal   = "heal"
	SkillBuff   = "buff"
	SkillAttack = "atk"
)

// Skill - запись каталога. Эффект описан полностью данными:
// никаких особых случаев по ключу в движке нет.
type Skill struct {
	Key    string `json:"-"`
	Name   string `json:"name"`
	Desc   string `json:"desc"`
	Cost   int    `json:"cost"`
	Type   string `json:"type"`
	Val    int    `json:"val"`
	Heal   int    `json:"heal,omitempty"`   // доп. лечение (для баффов)
	Shield bool   `json:"shield,omitempty"` // бафф выдаёт одноразовый щит
}

//go:embed skills.json
var skillsRaw []byte

var skills = mustLoadSkills()

func mustLoadSkills() map[string]Skill {
	table := map[string]Skill{}
	if err := json.Unmarshal(skillsRaw, &table); err != nil {
		log.Fatalf("failed to load skill catalog: %v", err)
	}
	for key, s := range table {
		s.Key = key
		table[key] = s
	}
	return table
}

// SkillByKey возвращает навык из каталога.
func SkillByKey(key string) (Skill, bool) {
	s, ok := skills[key]
	return s, ok
}

// SkillsByCost - весь каталог, отсортированный по цене (для магазина).
func SkillsByCost() []Skill {
	list := make([]Skill, 0, len(skills))
	for _, s := range skills {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Cost < list[j].Cost })
	return list
}
