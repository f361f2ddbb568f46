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

package compose

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/upper/compose/internal/exql"
	"github.com/upper/compose/sqlbuilder"
)

type subQuery struct {
	alias   string
	builder *sqlbuilder.Builder
}

type recursiveSubQuery struct {
	alias  string
	anchor *sqlbuilder.Builder
	step   *sqlbuilder.Builder
}

// Query is a composite statement: one main query plus an ordered registry
// of named sub-queries, rendered together under a WITH clause.
//
// A Query is meant for single-owner, single-threaded use. Builders are
// never shared between two live queries, every derivation deep-copies them.
type Query struct {
	sess *Session
	main *sqlbuilder.Builder

	subQueries          []subQuery
	recursiveSubQueries []recursiveSubQuery
}

// NewQuery creates an empty composite query bound to the session.
func NewQuery(sess *Session) *Query {
	return &Query{
		sess: sess,
		main: sess.Builder(),
	}
}

// Session returns the session the query is bound to.
func (q *Query) Session() *Session {
	return q.sess
}

// Main returns the main query builder. It is always present and can be
// mutated freely.
func (q *Query) Main() *sqlbuilder.Builder {
	return q.main
}

// AddSubQuery registers a builder as a plain sub-query under the given
// alias. Registering an alias twice silently replaces the previous builder
// and keeps its position in the WITH clause; the plain and recursive
// namespaces are not checked against each other.
func (q *Query) AddSubQuery(alias string, b *sqlbuilder.Builder) error {
	if alias == "" {
		return ErrMissingAlias
	}
	if b == nil {
		return ErrNilBuilder
	}

	for i := range q.subQueries {
		if q.subQueries[i].alias == alias {
			q.subQueries[i].builder = b
			return nil
		}
	}
	q.subQueries = append(q.subQueries, subQuery{alias: alias, builder: b})
	return nil
}

// CreateSubQuery allocates a fresh builder, registers it under the given
// alias and returns it for the caller to mutate.
func (q *Query) CreateSubQuery(alias string) (*sqlbuilder.Builder, error) {
	b := q.sess.Builder()
	if err := q.AddSubQuery(alias, b); err != nil {
		return nil, err
	}
	return b, nil
}

// HasSubQuery reports whether a plain sub-query is registered under the
// given alias.
func (q *Query) HasSubQuery(alias string) bool {
	for i := range q.subQueries {
		if q.subQueries[i].alias == alias {
			return true
		}
	}
	return false
}

// SubQuery returns the builder registered under the given alias.
func (q *Query) SubQuery(alias string) (*sqlbuilder.Builder, error) {
	for i := range q.subQueries {
		if q.subQueries[i].alias == alias {
			return q.subQueries[i].builder, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoSuchSubQuery, alias)
}

// AddRecursiveSubQuery registers an anchor/step builder pair as a recursive
// sub-query under the given alias. The pair is registered and replaced as a
// unit, with the same overwrite semantics as AddSubQuery.
func (q *Query) AddRecursiveSubQuery(alias string, anchor, step *sqlbuilder.Builder) error {
	if alias == "" {
		return ErrMissingAlias
	}
	if anchor == nil || step == nil {
		return ErrNilBuilder
	}

	for i := range q.recursiveSubQueries {
		if q.recursiveSubQueries[i].alias == alias {
			q.recursiveSubQueries[i].anchor = anchor
			q.recursiveSubQueries[i].step = step
			return nil
		}
	}
	q.recursiveSubQueries = append(q.recursiveSubQueries, recursiveSubQuery{
		alias:  alias,
		anchor: anchor,
		step:   step,
	})
	return nil
}

// CreateRecursiveSubQuery allocates a fresh anchor/step builder pair,
// registers it under the given alias and returns both halves.
func (q *Query) CreateRecursiveSubQuery(alias string) (anchor *sqlbuilder.Builder, step *sqlbuilder.Builder, err error) {
	anchor = q.sess.Builder()
	step = q.sess.Builder()
	if err = q.AddRecursiveSubQuery(alias, anchor, step); err != nil {
		return nil, nil, err
	}
	return anchor, step, nil
}

// HasRecursiveSubQuery reports whether a recursive sub-query is registered
// under the given alias.
func (q *Query) HasRecursiveSubQuery(alias string) bool {
	for i := range q.recursiveSubQueries {
		if q.recursiveSubQueries[i].alias == alias {
			return true
		}
	}
	return false
}

// RecursiveSubQuery returns both halves of the recursive sub-query
// registered under the given alias.
func (q *Query) RecursiveSubQuery(alias string) (anchor *sqlbuilder.Builder, step *sqlbuilder.Builder, err error) {
	for i := range q.recursiveSubQueries {
		if q.recursiveSubQueries[i].alias == alias {
			return q.recursiveSubQueries[i].anchor, q.recursiveSubQueries[i].step, nil
		}
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrNoSuchRecursiveSubQuery, alias)
}

// RecursiveSubQueryBase returns the anchor half of the recursive sub-query
// registered under the given alias.
func (q *Query) RecursiveSubQueryBase(alias string) (*sqlbuilder.Builder, error) {
	anchor, _, err := q.RecursiveSubQuery(alias)
	return anchor, err
}

// RecursiveSubQueryStep returns the step half of the recursive sub-query
// registered under the given alias.
func (q *Query) RecursiveSubQueryStep(alias string) (*sqlbuilder.Builder, error) {
	_, step, err := q.RecursiveSubQuery(alias)
	return step, err
}

// String assembles the composite statement. With empty registries the main
// query renders verbatim; otherwise every sub-query becomes a CTE, plain
// ones first, then recursive ones, under a single WITH (or WITH RECURSIVE)
// prefix. Rendering is read-only and idempotent.
func (q *Query) String() string {
	if len(q.subQueries) == 0 && len(q.recursiveSubQueries) == 0 {
		return q.main.String()
	}

	ctes := make([]exql.Fragment, 0, len(q.subQueries)+len(q.recursiveSubQueries))
	for i := range q.subQueries {
		ctes = append(ctes, &exql.CTE{
			Alias:     exql.RawValue(q.subQueries[i].alias),
			Statement: exql.RawSQL(q.subQueries[i].builder.String()),
		})
	}
	for i := range q.recursiveSubQueries {
		ctes = append(ctes, &exql.RecursiveCTE{
			Alias:  exql.RawValue(q.recursiveSubQueries[i].alias),
			Anchor: exql.RawSQL(q.recursiveSubQueries[i].anchor.String()),
			Step:   exql.RawSQL(q.recursiveSubQueries[i].step.String()),
		})
	}

	with := &exql.With{
		Recursive: len(q.recursiveSubQueries) > 0,
		CTEs:      ctes,
		Statement: exql.RawSQL(q.main.String()),
	}

	s, _ := with.Compile(q.sess.adapter.Template)
	return s
}

// QueryContext assembles the statement, merges the bound parameters of
// every plain sub-query and of the main query, and executes the result
// against the session. On alias collision later sub-queries win and the
// main query wins over all of them.
//
// Parameters bound on recursive sub-query builders are not merged; bind
// values used inside a recursive sub-query must be bound on the main
// builder as well.
func (q *Query) QueryContext(ctx context.Context) (*sql.Rows, error) {
	params := map[string]interface{}{}
	types := map[string]sqlbuilder.Type{}

	for i := range q.subQueries {
		mergeParams(params, types, q.subQueries[i].builder)
	}
	mergeParams(params, types, q.main)

	return q.sess.QueryContext(ctx, q.String(), params, types)
}

// Query is like QueryContext with the background context.
func (q *Query) Query() (*sql.Rows, error) {
	return q.QueryContext(context.Background())
}

func mergeParams(params map[string]interface{}, types map[string]sqlbuilder.Type, b *sqlbuilder.Builder) {
	for k, v := range b.Parameters() {
		params[k] = v
	}
	for k, v := range b.ParameterTypes() {
		types[k] = v
	}
}

func (q *Query) clone() *Query {
	c := &Query{
		sess: q.sess,
		main: q.main.Clone(),
	}
	for i := range q.subQueries {
		c.subQueries = append(c.subQueries, subQuery{
			alias:   q.subQueries[i].alias,
			builder: q.subQueries[i].builder.Clone(),
		})
	}
	for i := range q.recursiveSubQueries {
		c.recursiveSubQueries = append(c.recursiveSubQueries, recursiveSubQuery{
			alias:  q.recursiveSubQueries[i].alias,
			anchor: q.recursiveSubQueries[i].anchor.Clone(),
			step:   q.recursiveSubQueries[i].step.Clone(),
		})
	}
	return c
}

// Map returns a new query with an independent deep copy of the main builder
// and of every registered sub-query, with fn applied to the copied main
// builder. The transform never sees the original's builders; returning nil
// keeps the copy untouched. The receiver remains valid and independently
// mutable.
func (q *Query) Map(fn func(*sqlbuilder.Builder) *sqlbuilder.Builder) *Query {
	c := q.clone()
	if fn != nil {
		if main := fn(c.main); main != nil {
			c.main = main
		}
	}
	return c
}

// MoveMainQueryToSubQuery returns a new query whose single plain sub-query,
// registered under the given alias, is a copy of this query's main query,
// and whose main query is fresh and empty. The receiver is not mutated.
func (q *Query) MoveMainQueryToSubQuery(alias string) (*Query, error) {
	if alias == "" {
		return nil, ErrMissingAlias
	}

	c := NewQuery(q.sess)
	if err := c.AddSubQuery(alias, q.main.Clone()); err != nil {
		return nil, err
	}
	return c, nil
}
