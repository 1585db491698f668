package storage

// Player - постоянный профиль игрока, живёт между играми.
type Player struct {
	TGID      int64
	Name      string
	Points    int
	Wins      int
	Kills     int
	Inventory map[string]int // skill key -> запас, нулевые записи не храним
	Equipped  []string       // активная загрузка, порядок важен
}
