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

// Where represents the conditions of the WHERE clause, ANDed together.
type Where struct {
	Conds []Fragment
}

var _ = Fragment(&Where{})

type whereT struct {
	Conds string
}

// WhereConditions creates a WHERE clause from the given conditions.
func WhereConditions(conds ...Fragment) *Where {
	return &Where{Conds: conds}
}

// Hash returns a unique identifier for the struct.
func (w *Where) Hash() uint64 {
	h := quickHash(FragmentType_Where)
	for i := range w.Conds {
		h = addToHash(h, w.Conds[i])
	}
	return h
}

// Empty reports whether the clause has no conditions.
func (w *Where) Empty() bool {
	return w == nil || len(w.Conds) == 0
}

// Compile transforms the WHERE clause into its SQL representation. A single
// condition renders bare, multiple conditions are grouped and glued with the
// AND keyword.
func (w *Where) Compile(layout *Template) (string, error) {
	if len(w.Conds) == 0 {
		return "", nil
	}

	if z, ok := layout.Read(w); ok {
		return z, nil
	}

	parts := make([]string, 0, len(w.Conds))
	for i := range w.Conds {
		s, err := w.Conds[i].Compile(layout)
		if err != nil {
			return "", err
		}
		if len(w.Conds) > 1 {
			s = mustParse(layout.ClauseGroup, s)
		}
		parts = append(parts, s)
	}

	glue := mustParse(layout.ClauseOperator, layout.AndKeyword)
	compiled := mustParse(layout.WhereLayout, whereT{Conds: strings.Join(parts, glue)})
	layout.Write(w, compiled)

	return compiled, nil
}
