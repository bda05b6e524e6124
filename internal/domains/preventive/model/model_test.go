package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"reception/internal/domains/preventive/model"
)

func TestFrequency_NextFrom(t *testing.T) {
	base := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		frequency model.Frequency
		want      time.Time
	}{
		{frequency: model.FrequencyDaily, want: base.AddDate(0, 0, 1)},
		{frequency: model.FrequencyWeekly, want: base.AddDate(0, 0, 7)},
		{frequency: model.FrequencyMonthly, want: base.AddDate(0, 1, 0)},
		{frequency: model.FrequencyQuarterly, want: base.AddDate(0, 3, 0)},
		{frequency: model.FrequencyYearly, want: base.AddDate(1, 0, 0)},
		{frequency: model.Frequency("fortnightly"), want: base.AddDate(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(string(tt.frequency), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.frequency.NextFrom(base))
		})
	}
}

func TestFrequency_Valid(t *testing.T) {
	assert.True(t, model.FrequencyDaily.Valid())
	assert.True(t, model.FrequencyYearly.Valid())
	assert.False(t, model.Frequency("fortnightly").Valid())
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, model.StatusScheduled.Valid())
	assert.True(t, model.StatusOverdue.Valid())
	assert.False(t, model.Status("paused").Valid())
}
