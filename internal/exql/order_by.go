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

package exql

import (
	"strings"
)

// Order is the sort direction of a column.
type Order uint8

// Sort directions.
const (
	DefaultOrder = Order(iota)
	Ascendent
	Descendent
)

// SortColumn represents a column-order relation in an ORDER BY clause.
type SortColumn struct {
	Column Fragment
	Order
}

var _ = Fragment(&SortColumn{})

type sortColumnT struct {
	Column string
	Order  string
}

// Hash returns a unique identifier for the struct.
func (sc *SortColumn) Hash() uint64 {
	return quickHash(FragmentType_SortColumn, sc.Column, uint8(sc.Order))
}

// Compile transforms the sort column into its SQL representation.
func (sc *SortColumn) Compile(layout *Template) (string, error) {
	if z, ok := layout.Read(sc); ok {
		return z, nil
	}

	column, err := layout.compile(sc.Column)
	if err != nil {
		return "", err
	}

	order := ""
	switch sc.Order {
	case Ascendent:
		order = layout.AscKeyword
	case Descendent:
		order = layout.DescKeyword
	}

	compiled := mustParse(layout.SortByColumnLayout, sortColumnT{Column: column, Order: order})
	layout.Write(sc, compiled)

	return compiled, nil
}

// OrderBy represents an ORDER BY clause.
type OrderBy struct {
	SortColumns []Fragment
}

var _ = Fragment(&OrderBy{})

type orderByT struct {
	SortColumns string
}

// JoinSortColumns creates an ORDER BY clause.
func JoinSortColumns(columns ...*SortColumn) *OrderBy {
	fragments := make([]Fragment, len(columns))
	for i := range columns {
		fragments[i] = columns[i]
	}
	return &OrderBy{SortColumns: fragments}
}

// Hash returns a unique identifier for the struct.
func (ob *OrderBy) Hash() uint64 {
	h := quickHash(FragmentType_OrderBy)
	for i := range ob.SortColumns {
		h = addToHash(h, ob.SortColumns[i])
	}
	return h
}

// Empty reports whether the clause has no columns.
func (ob *OrderBy) Empty() bool {
	return ob == nil || len(ob.SortColumns) == 0
}

// Compile transforms the ORDER BY clause into its SQL representation.
func (ob *OrderBy) Compile(layout *Template) (string, error) {
	if len(ob.SortColumns) == 0 {
		return "", nil
	}

	if z, ok := layout.Read(ob); ok {
		return z, nil
	}

	parts := make([]string, 0, len(ob.SortColumns))
	for i := range ob.SortColumns {
		s, err := ob.SortColumns[i].Compile(layout)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}

	compiled := mustParse(layout.OrderByLayout, orderByT{
		SortColumns: strings.Join(parts, layout.IdentifierSeparator),
	})
	layout.Write(ob, compiled)

	return compiled, nil
}
