package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id, err := GenerateID()
		require.NoError(t, err)
		assert.Len(t, id, idLength)

		_, duplicated := seen[id]
		assert.False(t, duplicated)
		seen[id] = struct{}{}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  *time.Time
		expectErr bool
	}{
		{name: "Data vazia", input: ""},
		{name: "Data válida", input: "2024-03-15", expected: func() *time.Time { d := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC); return &d }()},
		{name: "Formato inválido", input: "15/03/2024", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDate(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, date)
			assert.Equal(t, tt.input, FormatDate(date))
		})
	}
}
