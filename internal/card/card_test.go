package card

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrint(t *testing.T) {
	tests := []struct {
		id   Card
		want string
	}{
		{0, "2-H "},
		{8, "10-H "},
		{12, "A-H "},
		{13, "2-S "},
		{31, "7-D "},
		{49, "J-C "},
		{51, "A-C "},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		require.NoError(t, Print(&buf, tt.id))
		assert.Equal(t, tt.want, buf.String(), "card %d", int(tt.id))
	}
}

func TestValue(t *testing.T) {
	tests := []struct {
		id   Card
		want int
	}{
		{0, 2},   // 2-H
		{8, 10},  // 10-H
		{9, 10},  // J-H
		{10, 10}, // Q-H
		{11, 10}, // K-H
		{12, 11}, // A-H
		{25, 11}, // A-S
		{44, 7},  // 7-C
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.id.Value(), "card %s", tt.id)
	}
}

func TestRankAndSuit(t *testing.T) {
	c := Card(31)
	assert.Equal(t, 5, c.Rank())
	assert.Equal(t, 2, c.Suit())
	assert.False(t, c.IsAce())
	assert.True(t, Card(38).IsAce())
}

func TestEveryCardIsDistinct(t *testing.T) {
	seen := make(map[string]bool, Count)
	for id := Card(0); id < Count; id++ {
		s := id.String()
		assert.False(t, seen[s], "duplicate label %s", s)
		seen[s] = true
	}
	assert.Len(t, seen, Count)
}

func TestParse(t *testing.T) {
	c, err := Parse("51")
	require.NoError(t, err)
	assert.Equal(t, Card(51), c)

	_, err = Parse("52")
	assert.Error(t, err)

	_, err = Parse("-1")
	assert.Error(t, err)

	_, err = Parse("ace")
	assert.Error(t, err)
}
