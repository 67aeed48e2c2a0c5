package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageOf(t *testing.T) {
	tests := []struct {
		name string
		xp   int
		want int
	}{
		{name: "zero xp is stage 0", xp: 0, want: 0},
		{name: "just below first boundary", xp: 24, want: 0},
		{name: "first boundary", xp: 25, want: 1},
		{name: "mid stage", xp: 30, want: 1},
		{name: "several stages", xp: 125, want: 5},
		{name: "large total", xp: 10_000, want: 400},
		{name: "negative clamps to 0", xp: -5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StageOf(tt.xp))
		})
	}
}

func TestStageOfMonotonic(t *testing.T) {
	prev := StageOf(0)
	for xp := 1; xp <= 500; xp++ {
		cur := StageOf(xp)
		assert.GreaterOrEqual(t, cur, prev, "stage must never decrease as xp grows (xp=%d)", xp)
		prev = cur
	}
}

func TestWithinStage(t *testing.T) {
	tests := []struct {
		name      string
		xp        int
		wantStage int
		wantStart int
		wantNext  int
		wantFrac  float64
	}{
		{name: "fresh plant", xp: 0, wantStage: 0, wantStart: 0, wantNext: 25, wantFrac: 0},
		{name: "partway through stage 0", xp: 20, wantStage: 0, wantStart: 0, wantNext: 25, wantFrac: 0.8},
		{name: "exact boundary resets fraction", xp: 25, wantStage: 1, wantStart: 25, wantNext: 50, wantFrac: 0},
		{name: "partway through stage 2", xp: 60, wantStage: 2, wantStart: 50, wantNext: 75, wantFrac: 0.4},
		{name: "negative xp clamps", xp: -10, wantStage: 0, wantStart: 0, wantNext: 25, wantFrac: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := WithinStage(tt.xp)
			assert.Equal(t, tt.wantStage, p.Stage)
			assert.Equal(t, tt.wantStart, p.StageStartXP)
			assert.Equal(t, tt.wantNext, p.NextStageXP)
			assert.InDelta(t, tt.wantFrac, p.Fraction, 1e-9)
		})
	}
}

func TestWithinStageFractionBounds(t *testing.T) {
	for xp := 0; xp <= 300; xp++ {
		p := WithinStage(xp)
		assert.GreaterOrEqual(t, p.Fraction, 0.0)
		assert.LessOrEqual(t, p.Fraction, 1.0)
		if xp%StageXPUnit == 0 {
			assert.Zero(t, p.Fraction, "fraction must be 0 exactly at stage boundaries (xp=%d)", xp)
		} else {
			assert.Positive(t, p.Fraction, "fraction must be positive off boundaries (xp=%d)", xp)
		}
	}
}
