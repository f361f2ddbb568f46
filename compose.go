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

/*
Package compose assembles SQL statements out of a main query plus any number
of named common table expressions, including recursive ones, and executes
the result through database/sql.

A Query owns one main builder plus an ordered registry of named sub-queries.
Each sub-query is an ordinary sqlbuilder.Builder that can be mutated
independently; on execution the registry is walked in insertion order, every
entry is rendered under a `WITH` (or `WITH RECURSIVE`) prefix and every
fragment's named parameters are merged into a single call against the
session:

	sess, err := compose.Open("sqlite", ":memory:")
	...
	q := compose.NewQuery(sess)

	recent, err := q.CreateSubQuery("recent_orders")
	...
	recent.Select("customer_id").
		From("orders").
		Where("created_at > :since").
		SetParameter("since", cutoff, sqlbuilder.TypeTime)

	q.Main().
		Select("c.id", "c.name").
		From("customers AS c").
		Join("c", "recent_orders", "ro", "ro.customer_id = c.id")

	rows, err := q.Query()

Adapters provide the dialect template and the database/sql driver; import
one for its side effects the same way you would import a bare driver:

	import _ "github.com/upper/compose/adapter/sqlite"
*/
package compose
