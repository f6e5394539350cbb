package storage

import "github.com/vovakirdan/dolphin-dash/internal/core"

// Keeper binds the store to one game's best score.
type Keeper struct {
	store  *Store
	gameID string
}

var _ core.ScoreKeeper = (*Keeper)(nil)

// Keeper returns the score keeper for gameID.
func (s *Store) Keeper(gameID string) *Keeper {
	return &Keeper{store: s, gameID: gameID}
}

// LoadHighScore returns the stored best.
func (k *Keeper) LoadHighScore() (int, error) {
	return k.store.HighScore(k.gameID)
}

// SaveHighScore raises the stored best.
func (k *Keeper) SaveHighScore(score int) error {
	return k.store.SetHighScore(k.gameID, score)
}
