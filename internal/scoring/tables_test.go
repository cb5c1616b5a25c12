package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightTableCoversKnownValues(t *testing.T) {
	// Every form option ships with an explicit weight so the permissive
	// unknown-value rule only fires for genuinely unexpected input.
	expected := map[string][]string{
		FieldTrack:        {"general", "technological", "professional"},
		FieldGradeBand:    {"<11", "11-13", "14-15", "16+"},
		FieldEnglishLevel: {"A2", "B1", "B2", "C1"},
		FieldObjective:    {"long-studies", "entrepreneurship", "quick-job", "undecided"},
	}

	for field, values := range expected {
		for _, value := range values {
			_, ok := DefaultWeights[field][value]
			assert.True(t, ok, "missing weight for %s=%s", field, value)
		}
	}
}

func TestEveryScoredFieldHasARule(t *testing.T) {
	for field := range DefaultWeights {
		_, ok := DefaultFields[field]
		assert.True(t, ok, "field %s has weights but no selection rule", field)
	}
}

func TestLookupUnknown(t *testing.T) {
	assert.Equal(t, Weight{}, DefaultWeights.Lookup(FieldTrack, "nope"))
	assert.Equal(t, Weight{}, DefaultWeights.Lookup("nope", "nope"))
}
