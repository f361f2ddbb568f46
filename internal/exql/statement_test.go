package exql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTemplateT(t *testing.T) *Template {
	tpl := DefaultTemplate()
	require.NotNil(t, tpl)
	return tpl
}

func TestRawValue(t *testing.T) {
	raw := RawValue(`NOW()`)

	s, err := raw.Compile(defaultTemplateT(t))
	assert.NoError(t, err)
	assert.Equal(t, `NOW()`, s)
	assert.Equal(t, `NOW()`, raw.String())
}

func TestTableAlias(t *testing.T) {
	tpl := defaultTemplateT(t)

	t.Run("Bare", func(t *testing.T) {
		s, err := TableWithName("users").Compile(tpl)
		assert.NoError(t, err)
		assert.Equal(t, `users`, s)
	})

	t.Run("Aliased", func(t *testing.T) {
		s, err := (&Table{Name: "users", Alias: "u"}).Compile(tpl)
		assert.NoError(t, err)
		assert.Equal(t, `users AS u`, s)
	})

	t.Run("RedundantAlias", func(t *testing.T) {
		s, err := (&Table{Name: "users", Alias: "users"}).Compile(tpl)
		assert.NoError(t, err)
		assert.Equal(t, `users`, s)
	})
}

func TestColumns(t *testing.T) {
	tpl := defaultTemplateT(t)

	columns := JoinColumns(
		RawValue("id"),
		RawValue("customer"),
		RawValue("service_id"),
	)

	s, err := columns.Compile(tpl)
	assert.NoError(t, err)
	assert.Equal(t, `id, customer, service_id`, s)
}

func TestWhere(t *testing.T) {
	tpl := defaultTemplateT(t)

	t.Run("SingleCondition", func(t *testing.T) {
		where := WhereConditions(RawValue(`t.id = 1`))

		s, err := where.Compile(tpl)
		assert.NoError(t, err)
		assert.Equal(t, ` WHERE t.id = 1`, s)
	})

	t.Run("MultipleConditions", func(t *testing.T) {
		where := WhereConditions(
			RawValue(`t.id = 1`),
			RawValue(`t.customer = :customer`),
		)

		s, err := where.Compile(tpl)
		assert.NoError(t, err)
		assert.Equal(t, ` WHERE (t.id = 1) AND (t.customer = :customer)`, s)
	})

	t.Run("NoConditions", func(t *testing.T) {
		s, err := WhereConditions().Compile(tpl)
		assert.NoError(t, err)
		assert.Equal(t, ``, s)
	})
}

func TestJoins(t *testing.T) {
	tpl := defaultTemplateT(t)

	t.Run("InnerJoin", func(t *testing.T) {
		join := &Join{
			Table: &Table{Name: "books", Alias: "b"},
			On:    &On{Conds: RawValue(`b.author_id = a.id`)},
		}

		s, err := join.Compile(tpl)
		assert.NoError(t, err)
		assert.Equal(t, ` INNER JOIN books AS b ON b.author_id = a.id`, s)
	})

	t.Run("LeftJoin", func(t *testing.T) {
		join := &Join{
			Type:  "LEFT",
			Table: TableWithName("payments"),
			On:    &On{Conds: RawValue(`payments.customer = users.id`)},
		}

		s, err := join.Compile(tpl)
		assert.NoError(t, err)
		assert.Equal(t, ` LEFT JOIN payments ON payments.customer = users.id`, s)
	})

	t.Run("Chained", func(t *testing.T) {
		joins := JoinConditions(
			&Join{Table: TableWithName("a"), On: &On{Conds: RawValue(`a.id = t.a_id`)}},
			&Join{Type: "LEFT", Table: TableWithName("b"), On: &On{Conds: RawValue(`b.id = t.b_id`)}},
		)

		s, err := joins.Compile(tpl)
		assert.NoError(t, err)
		assert.Equal(t, ` INNER JOIN a ON a.id = t.a_id LEFT JOIN b ON b.id = t.b_id`, s)
	})
}

func TestOrderBy(t *testing.T) {
	tpl := defaultTemplateT(t)

	orderBy := JoinSortColumns(
		&SortColumn{Column: RawValue("customer")},
		&SortColumn{Column: RawValue("service_id"), Order: Descendent},
		&SortColumn{Column: RawValue("id"), Order: Ascendent},
	)

	s, err := orderBy.Compile(tpl)
	assert.NoError(t, err)
	assert.Equal(t, ` ORDER BY customer, service_id DESC, id ASC`, s)
}

func TestGroupBy(t *testing.T) {
	tpl := defaultTemplateT(t)

	groupBy := GroupByColumns(RawValue("country"), RawValue("city"))

	s, err := groupBy.Compile(tpl)
	assert.NoError(t, err)
	assert.Equal(t, ` GROUP BY country, city`, s)
}

func TestSelectStatement(t *testing.T) {
	tpl := defaultTemplateT(t)

	t.Run("Bare", func(t *testing.T) {
		stmt := &Statement{Type: Select}

		s, err := stmt.Compile(tpl)
		assert.NoError(t, err)
		assert.Equal(t, `SELECT *`, s)
	})

	t.Run("Full", func(t *testing.T) {
		stmt := &Statement{
			Type:    Select,
			Columns: JoinColumns(RawValue("u.id"), RawValue("u.name")),
			Table:   &Table{Name: "users", Alias: "u"},
			Joins: JoinConditions(
				&Join{
					Type:  "LEFT",
					Table: TableWithName("payments"),
					On:    &On{Conds: RawValue(`payments.customer = u.id`)},
				},
			),
			Where:   WhereConditions(RawValue(`u.active = 1`)),
			GroupBy: GroupByColumns(RawValue("u.id")),
			OrderBy: JoinSortColumns(&SortColumn{Column: RawValue("u.name")}),
			Limit:   10,
			Offset:  20,
		}

		s, err := stmt.Compile(tpl)
		assert.NoError(t, err)
		assert.Equal(t,
			`SELECT u.id, u.name FROM users AS u`+
				` LEFT JOIN payments ON payments.customer = u.id`+
				` WHERE u.active = 1`+
				` GROUP BY u.id`+
				` ORDER BY u.name`+
				` LIMIT 10 OFFSET 20`,
			s,
		)
	})

	t.Run("Distinct", func(t *testing.T) {
		stmt := &Statement{
			Type:     Select,
			Distinct: true,
			Columns:  JoinColumns(RawValue("country")),
			Table:    TableWithName("users"),
		}

		s, err := stmt.Compile(tpl)
		assert.NoError(t, err)
		assert.Equal(t, `SELECT DISTINCT country FROM users`, s)
	})

	t.Run("RawSQL", func(t *testing.T) {
		stmt := RawSQL(`SELECT 1`)

		s, err := stmt.Compile(tpl)
		assert.NoError(t, err)
		assert.Equal(t, `SELECT 1`, s)
	})

	t.Run("Deterministic", func(t *testing.T) {
		stmt := &Statement{
			Type:  Select,
			Table: TableWithName("users"),
			Where: WhereConditions(RawValue(`id = 1`)),
		}

		first, err := stmt.Compile(tpl)
		assert.NoError(t, err)

		second, err := stmt.Compile(tpl)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func BenchmarkCompileSelect(b *testing.B) {
	tpl := DefaultTemplate()
	for i := 0; i < b.N; i++ {
		stmt := &Statement{
			Type:  Select,
			Table: TableWithName("users"),
			Where: WhereConditions(RawValue(`id = 1`)),
		}
		_, _ = stmt.Compile(tpl)
	}
}
