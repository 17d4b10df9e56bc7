package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardKey(t *testing.T) {
	assert.Equal(t, "iron_sword", CardKey("Iron Sword"))
	assert.Equal(t, "iron_sword", CardKey("  IRON   sword "))
	assert.Equal(t, "", CardKey("   "))
}

func TestSameCard(t *testing.T) {
	assert.True(t, SameCard("War Cry", "war  cry"))
	assert.False(t, SameCard("War Cry", "Potion"))
	assert.False(t, SameCard("", ""))
}
