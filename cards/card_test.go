package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAccessCard_missingFields(t *testing.T) {
	card := newAccessCard(nil, map[string]interface{}{
		"id": "key_123",
	})

	assert.Equal(t, "key_123", card.ID)
	assert.Empty(t, card.InstallURL)
	assert.Empty(t, card.State)
	assert.Empty(t, card.FullName)
	assert.Empty(t, card.ExpirationDate)

	card = newAccessCard(nil, map[string]interface{}{})
	assert.Empty(t, card.ID)

	card = newAccessCard(nil, nil)
	assert.Empty(t, card.ID)
}

func TestNewAccessCard_tolerantDecode(t *testing.T) {
	// unknown keys are ignored, mistyped values degrade instead of failing
	card := newAccessCard(nil, map[string]interface{}{
		"id":       12345,
		"state":    "active",
		"whatever": []string{"x"},
	})

	assert.Equal(t, "12345", card.ID)
	assert.Equal(t, "active", card.State)
}
