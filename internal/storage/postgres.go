package storage

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/meur/mctiers/internal/models"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Store handles all database operations against the hosted Postgres
type Store struct {
	db *sql.DB
}

// Open opens the connection pool (pgx stdlib) and verifies health.
func Open(ctx context.Context, url string) (*Store, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(1 * time.Hour)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate applies all embedded migrations.
func (s *Store) Migrate() error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(s.db, "migrations")
}

// --- Players ---

// ListPlayers returns all players, newest first
func (s *Store) ListPlayers(ctx context.Context) ([]models.Player, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, username, skin_url, is_premium, is_tested, is_featured, featured_rank, game_modes, created_at
		FROM players ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		var p models.Player
		var rank sql.NullInt64
		var gameModes []byte
		err := rows.Scan(&p.ID, &p.Username, &p.SkinURL, &p.IsPremium, &p.IsTested,
			&p.IsFeatured, &rank, &gameModes, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		if rank.Valid {
			r := int(rank.Int64)
			p.FeaturedRank = &r
		}
		json.Unmarshal(gameModes, &p.GameModes)
		players = append(players, p)
	}
	return players, rows.Err()
}

// CreatePlayer inserts a new player row and returns it
func (s *Store) CreatePlayer(ctx context.Context, create *models.PlayerCreate) (*models.Player, error) {
	id := uuid.New().String()
	gameModes, _ := json.Marshal(create.GameModes)
	now := time.Now()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO players (id, username, skin_url, is_premium, is_tested, is_featured, game_modes, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, $6, $7)
	`, id, create.Username, create.SkinURL, create.IsPremium, create.IsTested, gameModes, now)
	if err != nil {
		return nil, err
	}

	return &models.Player{
		ID:        id,
		Username:  create.Username,
		SkinURL:   create.SkinURL,
		IsPremium: create.IsPremium,
		IsTested:  create.IsTested,
		GameModes: create.GameModes,
		CreatedAt: now,
	}, nil
}

// UpdatePlayer updates the provided fields of an existing player. Nil
// fields are not sent, so absent values never overwrite remote ones.
func (s *Store) UpdatePlayer(ctx context.Context, id string, update *models.PlayerUpdate) error {
	var sets []string
	var args []interface{}
	add := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if update.Username != nil {
		add("username", *update.Username)
	}
	if update.SkinURL != nil {
		add("skin_url", *update.SkinURL)
	}
	if update.IsPremium != nil {
		add("is_premium", *update.IsPremium)
	}
	if update.IsTested != nil {
		add("is_tested", *update.IsTested)
	}
	if update.IsFeatured != nil {
		add("is_featured", *update.IsFeatured)
	}
	if update.FeaturedRank != nil {
		add("featured_rank", *update.FeaturedRank)
	} else if update.ClearFeaturedRank {
		sets = append(sets, "featured_rank = NULL")
	}
	if update.GameModes != nil {
		gameModes, _ := json.Marshal(update.GameModes)
		add("game_modes", gameModes)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE players SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	_, err := s.db.ExecContext(ctx, query, args...)
	return err
}

// DeletePlayer removes a player row by ID
func (s *Store) DeletePlayer(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM players WHERE id = $1`, id)
	return err
}

// --- Users ---

// ListUsers returns all users, newest first
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, discord_id, is_owner, created_at
		FROM users ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.DiscordID, &u.IsOwner, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CreateUser inserts a new user row and returns it. The discord ID is
// expected to be normalized (lowercased, trimmed) by the caller.
func (s *Store) CreateUser(ctx context.Context, discordID string, isOwner bool) (*models.User, error) {
	id := uuid.New().String()
	now := time.Now()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, discord_id, is_owner, created_at)
		VALUES ($1, $2, $3, $4)
	`, id, discordID, isOwner, now)
	if err != nil {
		return nil, err
	}

	return &models.User{
		ID:        id,
		DiscordID: discordID,
		IsOwner:   isOwner,
		CreatedAt: now,
	}, nil
}

// DeleteUser removes a user row by ID. The user's player records, if any,
// are a separate entity and stay untouched.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}

// --- Game modes ---

// ListGameModes returns all administered game modes in alphabetical order
func (s *Store) ListGameModes(ctx context.Context) ([]models.GameMode, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, created_at
		FROM game_modes ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var modes []models.GameMode
	for rows.Next() {
		var gm models.GameMode
		if err := rows.Scan(&gm.ID, &gm.Name, &gm.CreatedAt); err != nil {
			return nil, err
		}
		modes = append(modes, gm)
	}
	return modes, rows.Err()
}

// CreateGameMode inserts a game mode by name
func (s *Store) CreateGameMode(ctx context.Context, name string) (*models.GameMode, error) {
	id := uuid.New().String()
	now := time.Now()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO game_modes (id, name, created_at)
		VALUES ($1, $2, $3)
	`, id, name, now)
	if err != nil {
		return nil, err
	}

	return &models.GameMode{ID: id, Name: name, CreatedAt: now}, nil
}

// DeleteGameMode removes a game mode by name. Players already referencing
// the name keep their entries.
func (s *Store) DeleteGameMode(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM game_modes WHERE name = $1`, name)
	return err
}
