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

// CTE represents a plain common table expression, `alias AS (statement)`.
type CTE struct {
	Alias     Fragment
	Statement Fragment
}

var _ = Fragment(&CTE{})

type cteT struct {
	Alias     string
	Statement string
}

// Hash returns a unique identifier for the struct.
func (ct *CTE) Hash() uint64 {
	return quickHash(FragmentType_CTE, ct.Alias, ct.Statement)
}

// Compile transforms the CTE into its SQL representation.
func (ct *CTE) Compile(layout *Template) (string, error) {
	if z, ok := layout.Read(ct); ok {
		return z, nil
	}

	alias, err := layout.compile(ct.Alias)
	if err != nil {
		return "", err
	}
	statement, err := layout.compile(ct.Statement)
	if err != nil {
		return "", err
	}

	compiled := mustParse(layout.CTELayout, cteT{
		Alias:     alias,
		Statement: statement,
	})
	layout.Write(ct, compiled)

	return compiled, nil
}

// RecursiveCTE represents a recursive common table expression,
// `alias AS (anchor UNION ALL step)`.
type RecursiveCTE struct {
	Alias  Fragment
	Anchor Fragment
	Step   Fragment
}

var _ = Fragment(&RecursiveCTE{})

type recursiveCTET struct {
	Alias  string
	Anchor string
	Step   string
}

// Hash returns a unique identifier for the struct.
func (ct *RecursiveCTE) Hash() uint64 {
	return quickHash(FragmentType_RecursiveCTE, ct.Alias, ct.Anchor, ct.Step)
}

// Compile transforms the recursive CTE into its SQL representation.
func (ct *RecursiveCTE) Compile(layout *Template) (string, error) {
	if z, ok := layout.Read(ct); ok {
		return z, nil
	}

	alias, err := layout.compile(ct.Alias)
	if err != nil {
		return "", err
	}
	anchor, err := layout.compile(ct.Anchor)
	if err != nil {
		return "", err
	}
	step, err := layout.compile(ct.Step)
	if err != nil {
		return "", err
	}

	compiled := mustParse(layout.RecursiveCTELayout, recursiveCTET{
		Alias:  alias,
		Anchor: anchor,
		Step:   step,
	})
	layout.Write(ct, compiled)

	return compiled, nil
}

// With represents a full statement under a WITH clause: the ordered list of
// common table expressions followed by the main statement.
type With struct {
	Recursive bool
	CTEs      []Fragment
	Statement Fragment
}

var _ = Fragment(&With{})

type withT struct {
	Recursive bool
	CTEs      string
	Statement string
}

// Hash returns a unique identifier for the struct.
func (w *With) Hash() uint64 {
	h := quickHash(FragmentType_With, w.Recursive, w.Statement)
	for i := range w.CTEs {
		h = addToHash(h, w.CTEs[i])
	}
	return h
}

// Compile transforms the WITH clause into its SQL representation.
func (w *With) Compile(layout *Template) (string, error) {
	if len(w.CTEs) == 0 {
		return layout.compile(w.Statement)
	}

	if z, ok := layout.Read(w); ok {
		return z, nil
	}

	parts := make([]string, 0, len(w.CTEs))
	for i := range w.CTEs {
		s, err := w.CTEs[i].Compile(layout)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}

	statement, err := layout.compile(w.Statement)
	if err != nil {
		return "", err
	}

	compiled := mustParse(layout.WithLayout, withT{
		Recursive: w.Recursive,
		CTEs:      strings.Join(parts, layout.IdentifierSeparator),
		Statement: statement,
	})
	compiled = strings.TrimSpace(compiled)
	layout.Write(w, compiled)

	return compiled, nil
}
