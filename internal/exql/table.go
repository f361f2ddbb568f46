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

// Table represents a table reference, optionally aliased.
type Table struct {
	Name  string
	Alias string
}

var _ = Fragment(&Table{})

type tableT struct {
	Name  string
	Alias string
}

// TableWithName creates a table reference with no alias.
func TableWithName(name string) *Table {
	return &Table{Name: name}
}

// Hash returns a unique identifier for the struct.
func (t *Table) Hash() uint64 {
	return quickHash(FragmentType_Table, t.Name, t.Alias)
}

// Compile transforms the table reference into its SQL representation.
func (t *Table) Compile(layout *Template) (string, error) {
	if z, ok := layout.Read(t); ok {
		return z, nil
	}

	data := tableT{
		Name:  t.Name,
		Alias: t.Alias,
	}
	// "t AS t" adds nothing, render the bare name.
	if data.Alias == data.Name {
		data.Alias = ""
	}

	compiled := mustParse(layout.TableAliasLayout, data)
	layout.Write(t, compiled)

	return compiled, nil
}
