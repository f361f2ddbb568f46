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
	"strings"
)

// Column is a reference to a column, optionally qualified by the table or
// alias it belongs to.
type Column struct {
	Table string
	Name  string
}

// NewColumn parses a column reference of the form "name" or "table.name".
func NewColumn(name string) Column {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return Column{Table: name[:i], Name: name[i+1:]}
	}
	return Column{Name: name}
}

// In returns the same column rebound to a different qualifying table or
// alias.
func (c Column) In(table string) Column {
	c.Table = table
	return c
}

// Empty reports whether the column has no name.
func (c Column) Empty() bool {
	return c.Name == ""
}

// String renders the qualified selector.
func (c Column) String() string {
	if c.Table == "" {
		return c.Name
	}
	return c.Table + "." + c.Name
}
