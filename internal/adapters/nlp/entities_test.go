package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glean/internal/core/domain"
)

func TestEntityRecognizer_Extract(t *testing.T) {
	t.Parallel()

	recognizer := NewEntityRecognizer()

	t.Run("finds money amounts", func(t *testing.T) {
		t.Parallel()

		entities, err := recognizer.Extract("I paid $1,299.99 for it and another 50 dollars for shipping.")
		require.NoError(t, err)

		money := labelsOf(entities)[LabelMoney]
		assert.Contains(t, money, "$1,299.99")
		assert.Contains(t, money, "50 dollars")
	})

	t.Run("finds dates", func(t *testing.T) {
		t.Parallel()

		entities, err := recognizer.Extract("Ordered on 12/24/2025, delivered January 3, 2026.")
		require.NoError(t, err)

		dates := labelsOf(entities)[LabelDate]
		assert.Contains(t, dates, "12/24/2025")
		assert.Contains(t, dates, "January 3, 2026")
	})

	t.Run("finds organization suffixes", func(t *testing.T) {
		t.Parallel()

		entities, err := recognizer.Extract("Bought it from Acme Widgets Inc. last week.")
		require.NoError(t, err)

		orgs := labelsOf(entities)[LabelOrg]
		require.NotEmpty(t, orgs)
		assert.Contains(t, orgs[0], "Acme Widgets")
	})

	t.Run("empty text yields no entities", func(t *testing.T) {
		t.Parallel()

		entities, err := recognizer.Extract("")
		require.NoError(t, err)
		assert.Empty(t, entities)
	})

	t.Run("keeps duplicate mentions", func(t *testing.T) {
		t.Parallel()

		entities, err := recognizer.Extract("Cost $5 today, cost $5 yesterday.")
		require.NoError(t, err)
		assert.Len(t, labelsOf(entities)[LabelMoney], 2)
	})
}

func labelsOf(entities []domain.Entity) map[string][]string {
	grouped := map[string][]string{}
	for _, ent := range entities {
		grouped[ent.Label] = append(grouped[ent.Label], ent.Text)
	}
	return grouped
}
