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

// GroupBy represents a GROUP BY clause.
type GroupBy struct {
	Columns Fragment
}

var _ = Fragment(&GroupBy{})

type groupByT struct {
	Columns string
}

// GroupByColumns creates a GROUP BY clause.
func GroupByColumns(columns ...Fragment) *GroupBy {
	return &GroupBy{Columns: JoinColumns(columns...)}
}

// Hash returns a unique identifier for the struct.
func (g *GroupBy) Hash() uint64 {
	return quickHash(FragmentType_GroupBy, g.Columns)
}

// Compile transforms the GROUP BY clause into its SQL representation.
func (g *GroupBy) Compile(layout *Template) (string, error) {
	if z, ok := layout.Read(g); ok {
		return z, nil
	}

	columns, err := layout.compile(g.Columns)
	if err != nil {
		return "", err
	}
	if columns == "" {
		return "", nil
	}

	compiled := mustParse(layout.GroupByLayout, groupByT{Columns: columns})
	layout.Write(g, compiled)

	return compiled, nil
}
