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

// On represents the ON clause of a JOIN.
type On struct {
	Conds Fragment
}

var _ = Fragment(&On{})

type onT struct {
	Conds string
}

// Hash returns a unique identifier for the struct.
func (o *On) Hash() uint64 {
	return quickHash(FragmentType_On, o.Conds)
}

// Compile transforms the ON clause into its SQL representation.
func (o *On) Compile(layout *Template) (string, error) {
	if z, ok := layout.Read(o); ok {
		return z, nil
	}

	conds, err := layout.compile(o.Conds)
	if err != nil {
		return "", err
	}
	if conds == "" {
		return "", nil
	}

	compiled := mustParse(layout.OnLayout, onT{Conds: conds})
	layout.Write(o, compiled)

	return compiled, nil
}

// Join represents a table join.
type Join struct {
	Type  string
	Table Fragment
	On    Fragment
}

var _ = Fragment(&Join{})

type joinT struct {
	Type  string
	Table string
	On    string
}

// Hash returns a unique identifier for the struct.
func (j *Join) Hash() uint64 {
	return quickHash(FragmentType_Join, j.Type, j.Table, j.On)
}

// Compile transforms the join into its SQL representation.
func (j *Join) Compile(layout *Template) (string, error) {
	if z, ok := layout.Read(j); ok {
		return z, nil
	}

	table, err := layout.compile(j.Table)
	if err != nil {
		return "", err
	}
	on, err := layout.compile(j.On)
	if err != nil {
		return "", err
	}

	data := joinT{
		Type:  j.Type,
		Table: table,
		On:    on,
	}
	if data.Type == "" {
		data.Type = "INNER"
	}

	compiled := mustParse(layout.JoinLayout, data)
	layout.Write(j, compiled)

	return compiled, nil
}

// Joins represents the ordered list of joins of a statement.
type Joins struct {
	Conditions []Fragment
}

var _ = Fragment(&Joins{})

// JoinConditions creates a Joins fragment.
func JoinConditions(joins ...*Join) *Joins {
	fragments := make([]Fragment, len(joins))
	for i := range joins {
		fragments[i] = joins[i]
	}
	return &Joins{Conditions: fragments}
}

// Hash returns a unique identifier for the struct.
func (j *Joins) Hash() uint64 {
	h := quickHash(FragmentType_Joins)
	for i := range j.Conditions {
		h = addToHash(h, j.Conditions[i])
	}
	return h
}

// Empty reports whether the list has no joins.
func (j *Joins) Empty() bool {
	return j == nil || len(j.Conditions) == 0
}

// Compile concatenates the joins in declaration order. Each join layout
// begins with a blank, no extra separator is needed.
func (j *Joins) Compile(layout *Template) (string, error) {
	if z, ok := layout.Read(j); ok {
		return z, nil
	}

	compiled := ""
	for i := range j.Conditions {
		s, err := j.Conditions[i].Compile(layout)
		if err != nil {
			return "", err
		}
		compiled = compiled + s
	}

	layout.Write(j, compiled)

	return compiled, nil
}
