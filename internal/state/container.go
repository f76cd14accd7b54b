// Package state holds the synchronized in-memory mirror of the remote
// tables. The snapshot is only ever replaced wholesale after a full
// reload, never patched in place; that discipline is what keeps readers
// safe without any locking beyond a single RWMutex.
package state

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/meur/mctiers/internal/models"
)

// Gateway is the slice of the remote data gateway the container drives.
// *storage.Store satisfies it.
type Gateway interface {
	ListPlayers(ctx context.Context) ([]models.Player, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListGameModes(ctx context.Context) ([]models.GameMode, error)

	CreatePlayer(ctx context.Context, create *models.PlayerCreate) (*models.Player, error)
	UpdatePlayer(ctx context.Context, id string, update *models.PlayerUpdate) error
	DeletePlayer(ctx context.Context, id string) error

	CreateUser(ctx context.Context, discordID string, isOwner bool) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error

	CreateGameMode(ctx context.Context, name string) (*models.GameMode, error)
	DeleteGameMode(ctx context.Context, name string) error
}

// Feed opens the change feed; fn receives the table name per remote event
// and the returned func releases the feed.
type Feed func(ctx context.Context, fn func(table string)) (func(), error)

// Snapshot is the last-fetched copy of all three tables. All three
// collections swap together, never partially.
type Snapshot struct {
	Players   []models.Player
	Users     []models.User
	GameModes []models.GameMode
}

// Container mirrors the remote tables and tracks the current user.
type Container struct {
	gw      Gateway
	feed    Feed
	ownerID string // normalized owner discord identity
	logger  *slog.Logger

	mu      sync.RWMutex
	snap    Snapshot
	current *models.User
}

// New creates a Container bound to the given gateway and change feed.
func New(gw Gateway, feed Feed, ownerDiscordID string, logger *slog.Logger) *Container {
	if logger == nil {
		logger = slog.Default()
	}
	return &Container{
		gw:      gw,
		feed:    feed,
		ownerID: normalize(ownerDiscordID),
		logger:  logger,
	}
}

func normalize(discordID string) string {
	return strings.ToLower(strings.TrimSpace(discordID))
}

// Load fetches all players (newest first), users (newest first) and game
// modes (alphabetical) and swaps the snapshot in one step. On any fetch
// failure the previous snapshot stays in place; there is no retry.
func (c *Container) Load(ctx context.Context) error {
	players, err := c.gw.ListPlayers(ctx)
	if err != nil {
		return fmt.Errorf("load players: %w", err)
	}
	users, err := c.gw.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	modes, err := c.gw.ListGameModes(ctx)
	if err != nil {
		return fmt.Errorf("load game modes: %w", err)
	}

	c.mu.Lock()
	c.snap = Snapshot{Players: players, Users: users, GameModes: modes}
	c.mu.Unlock()
	return nil
}

// Snapshot returns the current snapshot. Callers must treat the slices as
// read-only; the next reload replaces them rather than mutating them.
func (c *Container) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Subscribe opens the change feed and reloads the snapshot on every
// remote insert/update/delete. Reloads are not coalesced; rapid changes
// each trigger one. The returned handle releases the feed and is safe
// against double calls, but the caller owns invoking it on shutdown.
func (c *Container) Subscribe(ctx context.Context) (func(), error) {
	unsubscribe, err := c.feed(ctx, func(table string) {
		if err := c.Load(ctx); err != nil {
			c.logger.Error("reload after remote change failed", "table", table, "error", err)
		}
	})
	if err != nil {
		return nil, err
	}
	var once sync.Once
	return func() { once.Do(unsubscribe) }, nil
}

// reload refreshes the snapshot after a remote write. The change feed
// usually triggers the same refresh again shortly after, which is
// harmless: the snapshot is rebuilt from a full fetch either way.
func (c *Container) reload(ctx context.Context) {
	if err := c.Load(ctx); err != nil {
		c.logger.Error("reload failed", "error", err)
	}
}

// --- Auth ---

// Login adopts the user registered under identity as current, recomputing
// the owner flag against the configured owner identity. The owner
// identity logs in even without an account; one is created on the fly.
// ok is false when no matching user exists (a normal outcome).
func (c *Container) Login(ctx context.Context, identity string) (user *models.User, ok bool) {
	id := normalize(identity)
	if id == "" {
		return nil, false
	}
	isOwner := id == c.ownerID

	if existing := c.findUser(id); existing != nil {
		adopted := *existing
		adopted.IsOwner = isOwner
		c.setCurrent(&adopted)
		return &adopted, true
	}

	if !isOwner {
		return nil, false
	}

	// First owner login auto-creates the owner account.
	created, err := c.gw.CreateUser(ctx, id, true)
	if err != nil {
		c.logger.Error("create owner account failed", "error", err)
		return nil, false
	}
	c.setCurrent(created)
	c.reload(ctx)
	return created, true
}

// Register creates an account for identity and makes it current. ok is
// false when a user already exists under case-insensitive, trimmed
// comparison, or when the remote insert fails.
func (c *Container) Register(ctx context.Context, identity string) (user *models.User, ok bool) {
	id := normalize(identity)
	if id == "" {
		return nil, false
	}
	if c.findUser(id) != nil {
		return nil, false
	}

	created, err := c.gw.CreateUser(ctx, id, id == c.ownerID)
	if err != nil {
		c.logger.Error("register failed", "discord_id", id, "error", err)
		return nil, false
	}
	c.setCurrent(created)
	c.reload(ctx)
	return created, true
}

// Logout clears the current user. It has no remote effect.
func (c *Container) Logout() {
	c.setCurrent(nil)
}

// CurrentUser returns the current user, or nil when nobody is logged in.
func (c *Container) CurrentUser() *models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

func (c *Container) setCurrent(u *models.User) {
	c.mu.Lock()
	c.current = u
	c.mu.Unlock()
}

func (c *Container) findUser(normalizedID string) *models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.snap.Users {
		if normalize(c.snap.Users[i].DiscordID) == normalizedID {
			u := c.snap.Users[i]
			return &u
		}
	}
	return nil
}

// FindUserByID returns the snapshot user with the given row ID, or nil.
func (c *Container) FindUserByID(id string) *models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.snap.Users {
		if c.snap.Users[i].ID == id {
			u := c.snap.Users[i]
			return &u
		}
	}
	return nil
}

// --- Players ---

// AddPlayer inserts a player row. Remote failures are logged and
// swallowed; the view simply stays unchanged until the next reload.
func (c *Container) AddPlayer(ctx context.Context, create *models.PlayerCreate) {
	if _, err := c.gw.CreatePlayer(ctx, create); err != nil {
		c.logger.Error("add player failed", "username", create.Username, "error", err)
		return
	}
	c.reload(ctx)
}

// UpdatePlayer sends the explicitly provided fields of update to the
// gateway; absent fields never overwrite remote values.
func (c *Container) UpdatePlayer(ctx context.Context, id string, update *models.PlayerUpdate) {
	if err := c.gw.UpdatePlayer(ctx, id, update); err != nil {
		c.logger.Error("update player failed", "player_id", id, "error", err)
		return
	}
	c.reload(ctx)
}

// DeletePlayer removes a player row.
func (c *Container) DeletePlayer(ctx context.Context, id string) {
	if err := c.gw.DeletePlayer(ctx, id); err != nil {
		c.logger.Error("delete player failed", "player_id", id, "error", err)
		return
	}
	c.reload(ctx)
}

// SetFeaturedPlayer gives the player the exclusive featured slot rank
// (1..3). The slot is freed first: whichever player currently holds rank
// is cleared with one update, then the target is set with a second. The
// two writes are not atomic; a crash between them leaves the slot
// temporarily empty until a later reload converges. That window is part
// of the contract, not something this method papers over.
func (c *Container) SetFeaturedPlayer(ctx context.Context, id string, rank int) {
	if rank < models.FeaturedRankMin || rank > models.FeaturedRankMax {
		return
	}
	defer c.reload(ctx)

	if holder := c.rankHolder(rank); holder != nil && holder.ID != id {
		off := false
		cleared := &models.PlayerUpdate{IsFeatured: &off, ClearFeaturedRank: true}
		if err := c.gw.UpdatePlayer(ctx, holder.ID, cleared); err != nil {
			c.logger.Error("clear featured slot failed", "player_id", holder.ID, "rank", rank, "error", err)
			return
		}
	}

	on := true
	r := rank
	set := &models.PlayerUpdate{IsFeatured: &on, FeaturedRank: &r}
	if err := c.gw.UpdatePlayer(ctx, id, set); err != nil {
		c.logger.Error("set featured failed", "player_id", id, "rank", rank, "error", err)
	}
}

// RemoveFeatured clears the featured flag and rank on one player.
func (c *Container) RemoveFeatured(ctx context.Context, id string) {
	off := false
	update := &models.PlayerUpdate{IsFeatured: &off, ClearFeaturedRank: true}
	if err := c.gw.UpdatePlayer(ctx, id, update); err != nil {
		c.logger.Error("remove featured failed", "player_id", id, "error", err)
		return
	}
	c.reload(ctx)
}

func (c *Container) rankHolder(rank int) *models.Player {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.snap.Players {
		p := c.snap.Players[i]
		if p.FeaturedRank != nil && *p.FeaturedRank == rank {
			return &p
		}
	}
	return nil
}

// --- Users ---

// DeleteUser removes a user row. Player records are a separate entity and
// are not touched.
func (c *Container) DeleteUser(ctx context.Context, id string) {
	if err := c.gw.DeleteUser(ctx, id); err != nil {
		c.logger.Error("delete user failed", "user_id", id, "error", err)
		return
	}
	c.reload(ctx)
}

// --- Game modes ---

// AddGameMode inserts a game mode by name. Whitespace-only names are a
// silent no-op.
func (c *Container) AddGameMode(ctx context.Context, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if _, err := c.gw.CreateGameMode(ctx, name); err != nil {
		c.logger.Error("add game mode failed", "name", name, "error", err)
		return
	}
	c.reload(ctx)
}

// RemoveGameMode deletes a game mode by name. Whitespace-only names are a
// silent no-op; players already referencing the name keep their entries.
func (c *Container) RemoveGameMode(ctx context.Context, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if err := c.gw.DeleteGameMode(ctx, name); err != nil {
		c.logger.Error("remove game mode failed", "name", name, "error", err)
		return
	}
	c.reload(ctx)
}
