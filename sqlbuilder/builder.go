// Copyright (c) 2012-present The upper.io/db authors. All rights reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining
// a copy of this software and associated documentation files (the
// "Software"), to deal in the Software without restriction, including
// without limitation the rights to use, copy, modify, merge, publish,
// distribute, sublicense, and/or sell copies of the Software, and to
// permit persons to whom the Software is furnished to do so, subject to
// the following conditions:
//
// The above copyright notice and this permission notice shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
// LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
// OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
// WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package sqlbuilder provides a fluent builder for single SELECT statements
// with named parameters. Builders render deterministic SQL text through an
// exql template and can be deep-copied, two copies never share state.
package sqlbuilder

import (
	"strings"

	"github.com/upper/compose/internal/exql"
)

// Type hints how a named parameter must be bound at execution time. Slice
// types expand into a comma-separated placeholder list, which is what makes
// `IN (:ids)` work.
type Type uint8

// Parameter types.
const (
	TypeDefault = Type(iota)
	TypeBool
	TypeInt
	TypeFloat
	TypeString
	TypeTime
	TypeIntSlice
	TypeStringSlice
)

type join struct {
	typ   string
	from  string
	table string
	alias string
	on    string
}

// Builder represents one in-progress SELECT statement.
type Builder struct {
	t *exql.Template

	distinct bool
	columns  []string
	tables   []string
	joins    []join
	conds    []string
	groupBy  []string
	orderBy  []string
	limit    int
	offset   int

	params     map[string]interface{}
	paramTypes map[string]Type
}

// New returns an empty builder that renders against the given template.
func New(t *exql.Template) *Builder {
	return &Builder{
		t:          t,
		params:     map[string]interface{}{},
		paramTypes: map[string]Type{},
	}
}

// Template returns the template the builder renders against.
func (b *Builder) Template() *exql.Template {
	return b.t
}

// Select replaces the list of selected columns.
func (b *Builder) Select(columns ...string) *Builder {
	b.columns = append([]string(nil), columns...)
	return b
}

// AddSelect appends columns to the selected list.
func (b *Builder) AddSelect(columns ...string) *Builder {
	b.columns = append(b.columns, columns...)
	return b
}

// Distinct marks the statement as SELECT DISTINCT.
func (b *Builder) Distinct() *Builder {
	b.distinct = true
	return b
}

// From replaces the list of source tables. A table may carry an inline
// alias, as in "users AS u".
func (b *Builder) From(tables ...string) *Builder {
	b.tables = append([]string(nil), tables...)
	return b
}

// Join appends an inner join. fromAlias names the side of the statement the
// join hangs off; it is kept for bookkeeping but does not alter rendering
// order, joins render in declaration order.
func (b *Builder) Join(fromAlias, table, alias, on string) *Builder {
	b.joins = append(b.joins, join{typ: "INNER", from: fromAlias, table: table, alias: alias, on: on})
	return b
}

// LeftJoin appends a left outer join.
func (b *Builder) LeftJoin(fromAlias, table, alias, on string) *Builder {
	b.joins = append(b.joins, join{typ: "LEFT", from: fromAlias, table: table, alias: alias, on: on})
	return b
}

// Where replaces all conditions with the given one.
func (b *Builder) Where(cond string) *Builder {
	b.conds = []string{cond}
	return b
}

// AndWhere appends a condition, ANDed with the previous ones.
func (b *Builder) AndWhere(cond string) *Builder {
	b.conds = append(b.conds, cond)
	return b
}

// GroupBy replaces the GROUP BY columns.
func (b *Builder) GroupBy(columns ...string) *Builder {
	b.groupBy = append([]string(nil), columns...)
	return b
}

// OrderBy replaces the ORDER BY columns. A column prefixed with "-" or
// suffixed with "DESC" sorts in descending order.
func (b *Builder) OrderBy(columns ...string) *Builder {
	b.orderBy = append([]string(nil), columns...)
	return b
}

// Limit sets the LIMIT clause.
func (b *Builder) Limit(n int) *Builder {
	b.limit = n
	return b
}

// Offset sets the OFFSET clause.
func (b *Builder) Offset(n int) *Builder {
	b.offset = n
	return b
}

// SetParameter binds a value to a named parameter referenced from the
// statement as `:name`. The optional type hints how the value is bound at
// execution time.
func (b *Builder) SetParameter(name string, value interface{}, paramType ...Type) *Builder {
	b.params[name] = value
	if len(paramType) > 0 {
		b.paramTypes[name] = paramType[0]
	} else {
		delete(b.paramTypes, name)
	}
	return b
}

// Parameters returns a copy of the bound parameter values.
func (b *Builder) Parameters() map[string]interface{} {
	params := make(map[string]interface{}, len(b.params))
	for k, v := range b.params {
		params[k] = v
	}
	return params
}

// ParameterTypes returns a copy of the bound parameter types.
func (b *Builder) ParameterTypes() map[string]Type {
	types := make(map[string]Type, len(b.paramTypes))
	for k, v := range b.paramTypes {
		types[k] = v
	}
	return types
}

// Clone returns an independent deep copy of the builder. Mutating the copy
// never affects the original.
func (b *Builder) Clone() *Builder {
	c := &Builder{
		t:        b.t,
		distinct: b.distinct,
		columns:  append([]string(nil), b.columns...),
		tables:   append([]string(nil), b.tables...),
		joins:    append([]join(nil), b.joins...),
		conds:    append([]string(nil), b.conds...),
		groupBy:  append([]string(nil), b.groupBy...),
		orderBy:  append([]string(nil), b.orderBy...),
		limit:    b.limit,
		offset:   b.offset,
	}
	c.params = b.Parameters()
	c.paramTypes = b.ParameterTypes()
	return c
}

func (b *Builder) statement() *exql.Statement {
	stmt := &exql.Statement{
		Type:     exql.Select,
		Distinct: b.distinct,
		Limit:    b.limit,
		Offset:   b.offset,
	}

	if len(b.columns) > 0 {
		fragments := make([]exql.Fragment, 0, len(b.columns))
		for i := range b.columns {
			fragments = append(fragments, exql.RawValue(b.columns[i]))
		}
		stmt.Columns = exql.JoinColumns(fragments...)
	}

	if len(b.tables) > 0 {
		stmt.Table = exql.RawValue(strings.Join(b.tables, ", "))
	}

	if len(b.joins) > 0 {
		joins := make([]*exql.Join, 0, len(b.joins))
		for i := range b.joins {
			j := &exql.Join{
				Type:  b.joins[i].typ,
				Table: &exql.Table{Name: b.joins[i].table, Alias: b.joins[i].alias},
			}
			if b.joins[i].on != "" {
				j.On = &exql.On{Conds: exql.RawValue(b.joins[i].on)}
			}
			joins = append(joins, j)
		}
		stmt.Joins = exql.JoinConditions(joins...)
	}

	if len(b.conds) > 0 {
		conds := make([]exql.Fragment, 0, len(b.conds))
		for i := range b.conds {
			conds = append(conds, exql.RawValue(b.conds[i]))
		}
		stmt.Where = exql.WhereConditions(conds...)
	}

	if len(b.groupBy) > 0 {
		columns := make([]exql.Fragment, 0, len(b.groupBy))
		for i := range b.groupBy {
			columns = append(columns, exql.RawValue(b.groupBy[i]))
		}
		stmt.GroupBy = exql.GroupByColumns(columns...)
	}

	if len(b.orderBy) > 0 {
		columns := make([]*exql.SortColumn, 0, len(b.orderBy))
		for i := range b.orderBy {
			columns = append(columns, sortColumn(b.orderBy[i]))
		}
		stmt.OrderBy = exql.JoinSortColumns(columns...)
	}

	return stmt
}

func sortColumn(value string) *exql.SortColumn {
	if strings.HasPrefix(value, "-") {
		return &exql.SortColumn{
			Column: exql.RawValue(value[1:]),
			Order:  exql.Descendent,
		}
	}

	chunks := strings.SplitN(value, " ", 2)
	order := exql.DefaultOrder
	if len(chunks) > 1 && strings.EqualFold(strings.TrimSpace(chunks[1]), "DESC") {
		order = exql.Descendent
	}

	return &exql.SortColumn{
		Column: exql.RawValue(chunks[0]),
		Order:  order,
	}
}

// String renders the statement. Rendering has no side effects and two calls
// without intervening mutation return identical text.
func (b *Builder) String() string {
	s, _ := b.statement().Compile(b.t)
	return s
}
