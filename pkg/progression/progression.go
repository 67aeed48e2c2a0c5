// Package progression maps accumulated XP to growth stages. All functions
// are pure and total; the stage is always recomputed from XP and a stored
// stage value is never consulted.
package progression

// StageXPUnit is the XP span of one growth stage.
const StageXPUnit = 25

// Progress describes where an XP total sits inside its current stage.
type Progress struct {
	Stage        int     // Current stage, floor(xp/StageXPUnit).
	StageStartXP int     // XP at which the current stage began.
	NextStageXP  int     // XP at which the next stage begins.
	Fraction     float64 // Completion of the current stage, in [0,1].
}

// StageOf returns the growth stage for an XP total: floor(xp/StageXPUnit).
// XP is non-negative by invariant; a negative value from a corrupt upstream
// row clamps to stage 0 rather than producing a negative stage.
func StageOf(xp int) int {
	if xp < 0 {
		return 0
	}
	return xp / StageXPUnit
}

// WithinStage returns the sub-stage progress for an XP total. Fraction is
// clamped to [0,1] to guard against inconsistent stored XP upstream.
func WithinStage(xp int) Progress {
	stage := StageOf(xp)
	start := stage * StageXPUnit
	frac := float64(xp-start) / float64(StageXPUnit)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return Progress{
		Stage:        stage,
		StageStartXP: start,
		NextStageXP:  start + StageXPUnit,
		Fraction:     frac,
	}
}
