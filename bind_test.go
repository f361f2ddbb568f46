package compose

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upper/compose/sqlbuilder"
)

func questionMark(int) string { return `?` }

func dollarSign(n int) string { return fmt.Sprintf(`$%d`, n) }

func TestBindNamed(t *testing.T) {
	t.Run("OrdinalPlaceholders", func(t *testing.T) {
		stmt, args, err := bindNamed(
			`SELECT * FROM users WHERE id = :id AND name = :name`,
			map[string]interface{}{"id": 1, "name": "peter"},
			nil,
			questionMark,
		)
		require.NoError(t, err)
		assert.Equal(t, `SELECT * FROM users WHERE id = ? AND name = ?`, stmt)
		assert.Equal(t, []interface{}{1, "peter"}, args)
	})

	t.Run("NumberedPlaceholders", func(t *testing.T) {
		stmt, args, err := bindNamed(
			`SELECT * FROM users WHERE id = :id AND id <> :id`,
			map[string]interface{}{"id": 7},
			nil,
			dollarSign,
		)
		require.NoError(t, err)
		assert.Equal(t, `SELECT * FROM users WHERE id = $1 AND id <> $2`, stmt)
		assert.Equal(t, []interface{}{7, 7}, args)
	})

	t.Run("SliceExpansion", func(t *testing.T) {
		stmt, args, err := bindNamed(
			`SELECT * FROM users WHERE id IN (:ids)`,
			map[string]interface{}{"ids": []int{1, 2, 3}},
			map[string]sqlbuilder.Type{"ids": sqlbuilder.TypeIntSlice},
			dollarSign,
		)
		require.NoError(t, err)
		assert.Equal(t, `SELECT * FROM users WHERE id IN ($1, $2, $3)`, stmt)
		assert.Equal(t, []interface{}{1, 2, 3}, args)
	})

	t.Run("SliceHintRequiresSlice", func(t *testing.T) {
		_, _, err := bindNamed(
			`SELECT :ids`,
			map[string]interface{}{"ids": 1},
			map[string]sqlbuilder.Type{"ids": sqlbuilder.TypeIntSlice},
			questionMark,
		)
		assert.Error(t, err)
	})

	t.Run("MissingParameter", func(t *testing.T) {
		_, _, err := bindNamed(
			`SELECT * FROM users WHERE id = :id`,
			nil,
			nil,
			questionMark,
		)
		assert.ErrorIs(t, err, ErrMissingParameter)
	})

	t.Run("StringLiteralsAreLeftAlone", func(t *testing.T) {
		stmt, args, err := bindNamed(
			`SELECT * FROM users WHERE note = ':id' AND id = :id`,
			map[string]interface{}{"id": 1},
			nil,
			questionMark,
		)
		require.NoError(t, err)
		assert.Equal(t, `SELECT * FROM users WHERE note = ':id' AND id = ?`, stmt)
		assert.Equal(t, []interface{}{1}, args)
	})

	t.Run("EscapedQuoteInsideLiteral", func(t *testing.T) {
		stmt, args, err := bindNamed(
			`SELECT 'it''s :not_a_param', :id`,
			map[string]interface{}{"id": 1},
			nil,
			questionMark,
		)
		require.NoError(t, err)
		assert.Equal(t, `SELECT 'it''s :not_a_param', ?`, stmt)
		assert.Equal(t, []interface{}{1}, args)
	})

	t.Run("CastsSurvive", func(t *testing.T) {
		stmt, args, err := bindNamed(
			`SELECT id::text FROM users WHERE id = :id`,
			map[string]interface{}{"id": 1},
			nil,
			dollarSign,
		)
		require.NoError(t, err)
		assert.Equal(t, `SELECT id::text FROM users WHERE id = $1`, stmt)
		assert.Equal(t, []interface{}{1}, args)
	})

	t.Run("BareColon", func(t *testing.T) {
		stmt, args, err := bindNamed(`SELECT ':'`, nil, nil, questionMark)
		require.NoError(t, err)
		assert.Equal(t, `SELECT ':'`, stmt)
		assert.Empty(t, args)
	})
}

func TestColumn(t *testing.T) {
	t.Run("Parse", func(t *testing.T) {
		assert.Equal(t, Column{Name: "id"}, NewColumn("id"))
		assert.Equal(t, Column{Table: "u", Name: "id"}, NewColumn("u.id"))
	})

	t.Run("In", func(t *testing.T) {
		assert.Equal(t, "cte.id", NewColumn("u.id").In("cte").String())
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "id", NewColumn("id").String())
		assert.Equal(t, "u.id", NewColumn("u.id").String())
	})
}

func TestComparison(t *testing.T) {
	t.Run("Eq", func(t *testing.T) {
		c := Eq(NewColumn("u.id"), NewColumn("cte.id"))
		assert.Equal(t, ComparisonOperatorEqual, c.Operator())
		assert.Equal(t, `u.id = cte.id`, c.String())
	})

	t.Run("IsNull", func(t *testing.T) {
		assert.Equal(t, `cte.id IS NULL`, IsNull(NewColumn("cte.id")).String())
	})

	t.Run("IsNotNull", func(t *testing.T) {
		assert.Equal(t, `cte.id IS NOT NULL`, IsNotNull(NewColumn("cte.id")).String())
	})
}

func TestJoinOntoCTE(t *testing.T) {
	t.Run("SameColumn", func(t *testing.T) {
		j := JoinOntoCTE("matching", "i", NewColumn("i.id"))
		assert.Equal(t, Join{
			From:   "i",
			Target: "matching",
			Alias:  "matching",
			On:     `i.id = matching.id`,
		}, j)
	})

	t.Run("DifferentRightColumn", func(t *testing.T) {
		j := JoinOntoCTE("recent", "o", NewColumn("o.customer_id"), NewColumn("customer"))
		assert.Equal(t, `o.customer_id = recent.customer`, j.On)
	})
}
