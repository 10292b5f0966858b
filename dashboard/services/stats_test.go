package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccuracyPercent(t *testing.T) {
	tests := []struct {
		name    string
		correct int64
		total   int64
		want    string
	}{
		{"perfect score", 10, 10, "100"},
		{"two thirds rounds to one decimal", 2, 3, "66.7"},
		{"one third rounds to one decimal", 1, 3, "33.3"},
		{"half", 5, 10, "50"},
		{"no attempts", 0, 0, "0"},
		{"no correct answers", 0, 8, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AccuracyPercent(tt.correct, tt.total)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
