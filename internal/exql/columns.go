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

// Columns represents an array of column expressions.
type Columns struct {
	Columns []Fragment
}

var _ = Fragment(&Columns{})

// JoinColumns creates and returns an array of column expressions.
func JoinColumns(columns ...Fragment) *Columns {
	return &Columns{Columns: columns}
}

// Hash returns a unique identifier for the struct.
func (c *Columns) Hash() uint64 {
	h := quickHash(FragmentType_Columns)
	for i := range c.Columns {
		h = addToHash(h, c.Columns[i])
	}
	return h
}

// Empty reports whether the list has no columns.
func (c *Columns) Empty() bool {
	return c == nil || len(c.Columns) == 0
}

// Compile joins the columns with the identifier separator.
func (c *Columns) Compile(layout *Template) (string, error) {
	if z, ok := layout.Read(c); ok {
		return z, nil
	}

	parts := make([]string, 0, len(c.Columns))
	for i := range c.Columns {
		s, err := c.Columns[i].Compile(layout)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}

	compiled := strings.Join(parts, layout.IdentifierSeparator)
	layout.Write(c, compiled)

	return compiled, nil
}
