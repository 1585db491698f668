package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Storage struct {
	db *pgxpool.Pool
}

// New - Создание подключения
func New(dsn string) (*Storage, error) {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	s := &Storage{db: pool}
	if err := s.ensureSchema(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}
	return s, nil
}

func (s *Storage) ensureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS players (
			tg_id  BIGINT PRIMARY KEY,
			name   TEXT NOT NULL,
			points INT NOT NULL DEFAULT 0,
			wins   INT NOT NULL DEFAULT 0,
			kills  INT NOT NULL DEFAULT 0
		);
		CREATE TABLE IF NOT EXISTS player_items (
			tg_id     BIGINT NOT NULL REFERENCES players(tg_id),
			skill_key TEXT NOT NULL,
			count     INT NOT NULL,
			PRIMARY KEY (tg_id, skill_key)
		);
		CREATE TABLE IF NOT EXISTS player_loadout (
			tg_id     BIGINT NOT NULL REFERENCES players(tg_id),
			slot      INT NOT NULL,
			skill_key TEXT NOT NULL,
			PRIMARY KEY (tg_id, slot)
		);
		CREATE TABLE IF NOT EXISTS chat_settings (
			chat_key TEXT PRIMARY KEY,
			lang     TEXT NOT NULL
		);
	`)
	return err
}

// Ping - проверка подключения к DB
func (s *Storage) Ping() error {
	return s.db.Ping(context.Background())
}

// LoadPlayer возвращает профиль со снаряжением или nil, если игрока ещё нет.
func (s *Storage) LoadPlayer(ctx context.Context, tgID int64) (*Player, error) {
	p := Player{Inventory: map[string]int{}}
	err := s.db.QueryRow(ctx,
		"SELECT tg_id, name, points, wins, kills FROM players WHERE tg_id=$1", tgID).
		Scan(&p.TGID, &p.Name, &p.Points, &p.Wins, &p.Kills)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx,
		"SELECT skill_key, count FROM player_items WHERE tg_id=$1", tgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		if count > 0 {
			p.Inventory[key] = count
		}
	}

	lrows, err := s.db.Query(ctx,
		"SELECT skill_key FROM player_loadout WHERE tg_id=$1 ORDER BY slot ASC", tgID)
	if err != nil {
		return nil, err
	}
	defer lrows.Close()
	for lrows.Next() {
		var key string
		if err := lrows.Scan(&key); err != nil {
			return nil, err
		}
		p.Equipped = append(p.Equipped, key)
	}

	return &p, nil
}

// SavePlayer пишет профиль целиком (снимок last-write-wins).
func (s *Storage) SavePlayer(ctx context.Context, p *Player) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO players (tg_id, name, points, wins, kills)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (tg_id) DO UPDATE
		 SET name=$2, points=$3, wins=$4, kills=$5`,
		p.TGID, p.Name, p.Points, p.Wins, p.Kills)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, "DELETE FROM player_items WHERE tg_id=$1", p.TGID); err != nil {
		return err
	}
	for key, count := range p.Inventory {
		if count <= 0 {
			continue
		}
		_, err := tx.Exec(ctx,
			"INSERT INTO player_items (tg_id, skill_key, count) VALUES ($1, $2, $3)",
			p.TGID, key, count)
		if err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, "DELETE FROM player_loadout WHERE tg_id=$1", p.TGID); err != nil {
		return err
	}
	for slot, key := range p.Equipped {
		_, err := tx.Exec(ctx,
			"INSERT INTO player_loadout (tg_id, slot, skill_key) VALUES ($1, $2, $3)",
			p.TGID, slot, key)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// AllPlayers - базовые профили без снаряжения, для рейтинга.
func (s *Storage) AllPlayers(ctx context.Context) ([]Player, error) {
	rows, err := s.db.Query(ctx,
		"SELECT tg_id, name, points, wins, kills FROM players")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.TGID, &p.Name, &p.Points, &p.Wins, &p.Kills); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}

// ChatLang возвращает язык арены, "" если не настроен.
func (s *Storage) ChatLang(ctx context.Context, chatKey string) (string, error) {
	var lang string
	err := s.db.QueryRow(ctx,
		"SELECT lang FROM chat_settings WHERE chat_key=$1", chatKey).Scan(&lang)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	return lang, err
}

// SetChatLang сохраняет язык арены.
func (s *Storage) SetChatLang(ctx context.Context, chatKey, lang string) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO chat_settings (chat_key, lang) VALUES ($1, $2)
		 ON CONFLICT (chat_key) DO UPDATE SET lang=$2`,
		chatKey, lang)
	return err
}
