package exql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCTE(t *testing.T) {
	tpl := defaultTemplateT(t)

	cte := &CTE{
		Alias:     RawValue("active_users"),
		Statement: RawSQL(`SELECT * FROM users WHERE active = 1`),
	}

	s, err := cte.Compile(tpl)
	assert.NoError(t, err)
	assert.Equal(t, `active_users AS (SELECT * FROM users WHERE active = 1)`, s)
}

func TestRecursiveCTE(t *testing.T) {
	tpl := defaultTemplateT(t)

	cte := &RecursiveCTE{
		Alias:  RawValue("numbers"),
		Anchor: RawSQL(`SELECT 1 AS n`),
		Step:   RawSQL(`SELECT n + 1 FROM numbers WHERE n < 5`),
	}

	s, err := cte.Compile(tpl)
	assert.NoError(t, err)
	assert.Equal(t, `numbers AS (SELECT 1 AS n UNION ALL SELECT n + 1 FROM numbers WHERE n < 5)`, s)
}

func TestWith(t *testing.T) {
	tpl := defaultTemplateT(t)

	t.Run("NoCTEs", func(t *testing.T) {
		with := &With{
			Statement: RawSQL(`SELECT 1`),
		}

		s, err := with.Compile(tpl)
		assert.NoError(t, err)
		assert.Equal(t, `SELECT 1`, s)
	})

	t.Run("Plain", func(t *testing.T) {
		with := &With{
			CTEs: []Fragment{
				&CTE{Alias: RawValue("q"), Statement: RawSQL(`SELECT 1`)},
			},
			Statement: RawSQL(`SELECT * FROM q`),
		}

		s, err := with.Compile(tpl)
		assert.NoError(t, err)
		assert.Equal(t, `WITH q AS (SELECT 1) SELECT * FROM q`, s)
	})

	t.Run("Recursive", func(t *testing.T) {
		with := &With{
			Recursive: true,
			CTEs: []Fragment{
				&RecursiveCTE{
					Alias:  RawValue("numbers"),
					Anchor: RawSQL(`SELECT 1 AS n`),
					Step:   RawSQL(`SELECT n + 1 FROM numbers WHERE n < 5`),
				},
			},
			Statement: RawSQL(`SELECT n FROM numbers`),
		}

		s, err := with.Compile(tpl)
		assert.NoError(t, err)
		assert.Equal(t,
			`WITH RECURSIVE numbers AS (SELECT 1 AS n UNION ALL SELECT n + 1 FROM numbers WHERE n < 5) SELECT n FROM numbers`,
			s,
		)
	})

	t.Run("Mixed", func(t *testing.T) {
		with := &With{
			Recursive: true,
			CTEs: []Fragment{
				&CTE{Alias: RawValue("seed"), Statement: RawSQL(`SELECT 1`)},
				&RecursiveCTE{
					Alias:  RawValue("numbers"),
					Anchor: RawSQL(`SELECT 1 AS n`),
					Step:   RawSQL(`SELECT n + 1 FROM numbers WHERE n < 3`),
				},
			},
			Statement: RawSQL(`SELECT n FROM numbers`),
		}

		s, err := with.Compile(tpl)
		assert.NoError(t, err)
		assert.Equal(t,
			`WITH RECURSIVE seed AS (SELECT 1), numbers AS (SELECT 1 AS n UNION ALL SELECT n + 1 FROM numbers WHERE n < 3) SELECT n FROM numbers`,
			s,
		)
	})
}
