package config

// DifficultyManager turns the current score into obstacle bonuses.
// Bonuses are linear in score and never decrease as score grows.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Progress returns the score that drives scaling: the live score, capped at
// max_at when set, or 0 when progression is off.
func (d *DifficultyManager) Progress(score int) int {
	if !d.IsEnabled() || score < 0 {
		return 0
	}
	if maxAt := d.cfg.Progression.MaxAt; maxAt > 0 && score > maxAt {
		return maxAt
	}
	return score
}

// RadiusBonus returns how much larger an obstacle spawned at this score is.
func (d *DifficultyManager) RadiusBonus(score int) float64 {
	return float64(d.Progress(score)) * d.cfg.Scaling.RadiusPerScore
}

// SpeedBonus returns how much faster an obstacle spawned at this score falls.
func (d *DifficultyManager) SpeedBonus(score int) float64 {
	return float64(d.Progress(score)) * d.cfg.Scaling.SpeedPerScore
}
