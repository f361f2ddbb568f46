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
	"errors"
	"strings"
)

var errUnknownTemplateType = errors.New(`unknown template type`)

// Type is the type of SQL statement the fragment represents.
type Type uint

// Values for Type.
const (
	NoOp = Type(iota)

	Select

	SQL
)

// Statement represents a SQL statement.
type Statement struct {
	Type
	Distinct bool
	Columns  Fragment
	Table    Fragment
	Joins    Fragment
	Where    Fragment
	GroupBy  Fragment
	OrderBy  Fragment

	Limit  int
	Offset int

	SQL string
}

var _ = Fragment(&Statement{})

type statementT struct {
	Distinct bool
	Columns  string
	Table    string
	Joins    string
	Where    string
	GroupBy  string
	OrderBy  string
	Limit    int
	Offset   int
}

// RawSQL wraps a raw SQL string as a statement.
func RawSQL(s string) *Statement {
	return &Statement{
		Type: SQL,
		SQL:  s,
	}
}

// Hash returns a unique identifier for the struct.
func (s *Statement) Hash() uint64 {
	return quickHash(FragmentType_Statement,
		uint64(s.Type),
		s.Distinct,
		s.Columns,
		s.Table,
		s.Joins,
		s.Where,
		s.GroupBy,
		s.OrderBy,
		s.Limit,
		s.Offset,
		s.SQL,
	)
}

// Compile transforms the Statement into an equivalent SQL query.
func (s *Statement) Compile(layout *Template) (string, error) {
	if s.Type == SQL {
		// No need to hit the cache.
		return s.SQL, nil
	}

	if z, ok := layout.Read(s); ok {
		return z, nil
	}

	data := statementT{
		Distinct: s.Distinct,
		Limit:    s.Limit,
		Offset:   s.Offset,
	}

	var err error
	if data.Columns, err = layout.compile(s.Columns); err != nil {
		return "", err
	}
	if data.Table, err = layout.compile(s.Table); err != nil {
		return "", err
	}
	if data.Joins, err = layout.compile(s.Joins); err != nil {
		return "", err
	}
	if data.Where, err = layout.compile(s.Where); err != nil {
		return "", err
	}
	if data.GroupBy, err = layout.compile(s.GroupBy); err != nil {
		return "", err
	}
	if data.OrderBy, err = layout.compile(s.OrderBy); err != nil {
		return "", err
	}

	var compiled string
	switch s.Type {
	case Select:
		compiled = mustParse(layout.SelectLayout, data)
	default:
		return "", errUnknownTemplateType
	}

	compiled = strings.TrimSpace(compiled)
	layout.Write(s, compiled)

	return compiled, nil
}
