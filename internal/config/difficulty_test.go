package config

import "testing"

func TestDifficultyBonusLinear(t *testing.T) {
	d := NewDifficultyManager(DefaultDodgerConfig().Difficulty)

	for _, score := range []int{0, 1, 5, 37} {
		if got, want := d.RadiusBonus(score), float64(score)*2; got != want {
			t.Errorf("RadiusBonus(%d) = %v, expected %v", score, got, want)
		}
		if got, want := d.SpeedBonus(score), float64(score)*10; got != want {
			t.Errorf("SpeedBonus(%d) = %v, expected %v", score, got, want)
		}
	}
}

func TestDifficultyNonDecreasing(t *testing.T) {
	cfg := DefaultDodgerConfig().Difficulty
	cfg.Progression.MaxAt = 20
	d := NewDifficultyManager(cfg)

	prevR, prevS := -1.0, -1.0
	for score := 0; score <= 50; score++ {
		r, s := d.RadiusBonus(score), d.SpeedBonus(score)
		if r < prevR || s < prevS {
			t.Fatalf("bonus decreased at score %d", score)
		}
		prevR, prevS = r, s
	}
	if d.Progress(50) != 20 {
		t.Errorf("Progress(50) = %d, expected cap 20", d.Progress(50))
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultDodgerConfig().Difficulty
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if d.RadiusBonus(10) != 0 || d.SpeedBonus(10) != 0 {
		t.Error("disabled progression should give no bonus")
	}

	cfg = DefaultDodgerConfig().Difficulty
	cfg.Progression.Type = "none"
	if NewDifficultyManager(cfg).SpeedBonus(10) != 0 {
		t.Error(`progression type "none" should give no bonus`)
	}
}
