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
	"fmt"

	"github.com/upper/compose/sqlbuilder"
)

// Join describes how to join a query onto a named sub-query: which side it
// hangs off, the sub-query to join, the alias to join it under and the
// boolean condition. It is consumed by a builder's join mutators and not
// retained.
type Join struct {
	From   string
	Target string
	Alias  string
	On     string
}

// JoinOntoCTE builds a join descriptor equating column, qualified by
// fromAlias, with rightColumn (the same column when omitted) qualified by
// the sub-query alias.
func JoinOntoCTE(cteAlias string, fromAlias string, column Column, rightColumn ...Column) Join {
	right := column
	if len(rightColumn) > 0 && !rightColumn[0].Empty() {
		right = rightColumn[0]
	}

	return Join{
		From:   fromAlias,
		Target: cteAlias,
		Alias:  cteAlias,
		On:     Eq(column.In(fromAlias), right.In(cteAlias)).String(),
	}
}

// JoinOnMatchingLookupTableRecords registers a pre-filtered lookup set as a
// plain sub-query and left-joins the target builder (the main query by
// default) onto it through joinColumn. The returned column is bound to the
// sub-query alias, wrap it in an IS NULL or IS NOT NULL predicate to detect
// rows without or with a matching lookup record.
//
// joinColumn must carry the qualifying table or alias of the joining side.
func (q *Query) JoinOnMatchingLookupTableRecords(alias string, sub *sqlbuilder.Builder, joinColumn Column, target ...*sqlbuilder.Builder) (Column, error) {
	if joinColumn.Table == "" {
		return Column{}, fmt.Errorf("%w: %q", ErrMissingColumnTable, joinColumn.Name)
	}

	if err := q.AddSubQuery(alias, sub); err != nil {
		return Column{}, err
	}

	t := q.main
	if len(target) > 0 && target[0] != nil {
		t = target[0]
	}

	j := JoinOntoCTE(alias, joinColumn.Table, joinColumn)
	t.LeftJoin(j.From, j.Target, j.Alias, j.On)

	return joinColumn.In(alias), nil
}
