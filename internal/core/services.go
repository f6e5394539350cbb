package core

// Audio receives fire-and-forget sound notifications from a simulation.
// Implementations must not block the tick.
type Audio interface {
	JumpSound()
	CollectSound()
	GameOverSound()
}

// ScoreKeeper persists the best score of one game. It is read once when a
// world is created and written at game over when the run beat it.
type ScoreKeeper interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// SilentAudio discards every sound.
type SilentAudio struct{}

func (SilentAudio) JumpSound()     {}
func (SilentAudio) CollectSound()  {}
func (SilentAudio) GameOverSound() {}

// MemoryScores keeps the best score in memory only.
type MemoryScores struct {
	Best int
}

// LoadHighScore returns the stored best.
func (m *MemoryScores) LoadHighScore() (int, error) {
	return m.Best, nil
}

// SaveHighScore stores the best.
func (m *MemoryScores) SaveHighScore(score int) error {
	m.Best = score
	return nil
}
