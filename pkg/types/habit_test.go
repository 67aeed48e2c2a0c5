package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHabitValidate(t *testing.T) {
	tests := []struct {
		name    string
		habit   Habit
		wantErr error
	}{
		{
			name:  "valid daily habit",
			habit: Habit{Title: "Drink water", Frequency: FrequencyDaily, XPReward: 5},
		},
		{
			name:  "valid weekly habit",
			habit: Habit{Title: "Water the fern", Frequency: FrequencyWeekly, XPReward: 25},
		},
		{
			name:  "zero reward allowed",
			habit: Habit{Title: "Stretch", Frequency: FrequencyDaily, XPReward: 0},
		},
		{
			name:  "reward at upper bound",
			habit: Habit{Title: "Marathon", Frequency: FrequencyWeekly, XPReward: MaxXPReward},
		},
		{
			name:    "empty title rejected",
			habit:   Habit{Title: "", Frequency: FrequencyDaily, XPReward: 5},
			wantErr: ErrInvalidTitle,
		},
		{
			name:    "unknown frequency rejected",
			habit:   Habit{Title: "Nap", Frequency: "hourly", XPReward: 5},
			wantErr: ErrInvalidFrequency,
		},
		{
			name:    "empty frequency rejected",
			habit:   Habit{Title: "Nap", Frequency: "", XPReward: 5},
			wantErr: ErrInvalidFrequency,
		},
		{
			name:    "negative reward rejected",
			habit:   Habit{Title: "Read", Frequency: FrequencyDaily, XPReward: -1},
			wantErr: ErrInvalidXPReward,
		},
		{
			name:    "reward above bound rejected",
			habit:   Habit{Title: "Read", Frequency: FrequencyDaily, XPReward: MaxXPReward + 1},
			wantErr: ErrInvalidXPReward,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.habit.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPlantValidate(t *testing.T) {
	p := &Plant{Name: "Ferdinand", Species: "fern"}
	assert.NoError(t, p.Validate())

	p.Name = ""
	assert.ErrorIs(t, p.Validate(), ErrInvalidName)
}
