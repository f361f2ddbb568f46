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

// Raw represents a value that is meant to be used in a query without being
// altered in any way.
type Raw struct {
	Value string
}

var _ = Fragment(&Raw{})

// RawValue creates and returns a new Raw fragment.
func RawValue(v string) *Raw {
	return &Raw{Value: v}
}

// Hash returns a unique identifier for the struct.
func (r *Raw) Hash() uint64 {
	return quickHash(FragmentType_Raw, r.Value)
}

// Compile returns the raw value verbatim.
func (r *Raw) Compile(*Template) (string, error) {
	return r.Value, nil
}

func (r *Raw) String() string {
	return r.Value
}
