package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeTimeAt(t *testing.T) {
	now := time.Date(2025, 11, 20, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"moins d'une minute", 59 * time.Second, "Il y a 0 minute"},
		{"une minute", 90 * time.Second, "Il y a 1 minute"},
		{"plusieurs minutes", 5 * time.Minute, "Il y a 5 minutes"},
		{"juste sous une heure", 3599 * time.Second, "Il y a 59 minutes"},
		{"une heure pile", 3600 * time.Second, "Il y a 1 heure"},
		{"plusieurs heures", 5 * time.Hour, "Il y a 5 heures"},
		{"juste sous un jour", 86399 * time.Second, "Il y a 23 heures"},
		{"un jour pile", 86400 * time.Second, "Hier"},
		{"juste sous deux jours", 172799 * time.Second, "Hier"},
		{"deux jours pile", 172800 * time.Second, "Il y a 2 jours"},
		{"une semaine", 7 * 24 * time.Hour, "Il y a 7 jours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activity := Activity{CreatedAt: now.Add(-tt.elapsed)}
			assert.Equal(t, tt.want, activity.RelativeTimeAt(now))
		})
	}
}

func TestIsValidActivityType(t *testing.T) {
	assert.True(t, IsValidActivityType("rdv"))
	assert.True(t, IsValidActivityType("devis"))
	assert.True(t, IsValidActivityType("other"))
	assert.False(t, IsValidActivityType("meeting"))
	assert.False(t, IsValidActivityType(""))
}
