package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glean/internal/core/domain"
)

func sparseTable() *domain.Table {
	return &domain.Table{Columns: []domain.Column{
		{Name: "a", Values: []domain.Value{
			domain.Number(1), domain.Missing(), domain.Number(3), domain.Number(1),
		}},
		{Name: "b", Values: []domain.Value{
			domain.String("x"), domain.String("y"), domain.Missing(), domain.String("x"),
		}},
	}}
}

func TestPipeline_CleanData(t *testing.T) {
	t.Parallel()

	t.Run("drop removes rows with missing cells", func(t *testing.T) {
		t.Parallel()

		p := newTestFactory(t, nil).New()
		p.table = sparseTable()

		p.CleanData(domain.CleanDrop)
		require.Equal(t, 2, p.table.Rows())
		assert.Equal(t, domain.Number(1), p.table.Columns[0].Values[0])
		assert.Equal(t, domain.Number(1), p.table.Columns[0].Values[1])
	})

	t.Run("fill replaces missing with zero", func(t *testing.T) {
		t.Parallel()

		p := newTestFactory(t, nil).New()
		p.table = sparseTable()

		p.CleanData(domain.CleanFill)
		assert.Equal(t, domain.Number(0), p.table.Columns[0].Values[1])
		assert.Equal(t, domain.Number(0), p.table.Columns[1].Values[2])
	})

	t.Run("forward fill carries previous values", func(t *testing.T) {
		t.Parallel()

		p := newTestFactory(t, nil).New()
		p.table = sparseTable()

		p.CleanData(domain.CleanForwardFill)
		assert.Equal(t, domain.Number(1), p.table.Columns[0].Values[1])
		assert.Equal(t, domain.String("y"), p.table.Columns[1].Values[2])
	})

	t.Run("forward fill leaves leading missing cells", func(t *testing.T) {
		t.Parallel()

		p := newTestFactory(t, nil).New()
		p.table = &domain.Table{Columns: []domain.Column{
			{Name: "a", Values: []domain.Value{domain.Missing(), domain.Number(2)}},
		}}

		p.CleanData(domain.CleanForwardFill)
		assert.Equal(t, domain.Missing(), p.table.Columns[0].Values[0])
	})

	t.Run("duplicate rows are removed", func(t *testing.T) {
		t.Parallel()

		p := newTestFactory(t, nil).New()
		p.table = &domain.Table{Columns: []domain.Column{
			{Name: "a", Values: []domain.Value{
				domain.Number(1), domain.Number(1), domain.Number(2),
			}},
		}}

		p.CleanData(domain.CleanFill)
		assert.Equal(t, 2, p.table.Rows())
	})

	t.Run("missing and zero are distinct rows", func(t *testing.T) {
		t.Parallel()

		p := newTestFactory(t, nil).New()
		p.table = &domain.Table{Columns: []domain.Column{
			{Name: "a", Values: []domain.Value{domain.Missing(), domain.String("")}},
		}}

		p.CleanData(domain.CleanForwardFill)
		assert.Equal(t, 2, p.table.Rows())
	})

	t.Run("unknown strategy is a warned no-op", func(t *testing.T) {
		t.Parallel()

		p := newTestFactory(t, nil).New()
		p.table = sparseTable()

		p.CleanData("median")
		assert.Equal(t, 4, p.table.Rows())
	})

	t.Run("no table is a warned no-op", func(t *testing.T) {
		t.Parallel()

		p := newTestFactory(t, nil).New()
		assert.Same(t, p, p.CleanData(domain.CleanDrop))
	})
}

func TestPipeline_CleanText(t *testing.T) {
	t.Parallel()

	t.Run("strips urls emails and special characters", func(t *testing.T) {
		t.Parallel()

		p := newTestFactory(t, nil).New()
		p.texts = []string{
			"Check https://example.com/page for more!",
			"Mail me at someone@example.com please",
			"So   much    whitespace",
			"!!!",
		}

		p.CleanText()
		assert.Equal(t, []string{
			"Check for more",
			"Mail me at please",
			"So much whitespace",
		}, p.texts)
	})

	t.Run("no text is a warned no-op", func(t *testing.T) {
		t.Parallel()

		p := newTestFactory(t, nil).New()
		assert.Same(t, p, p.CleanText())
	})
}
