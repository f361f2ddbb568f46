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
	"fmt"
	"reflect"
	"strings"

	"github.com/upper/compose/sqlbuilder"
)

// bindNamed rewrites every `:name` token in query into the adapter's
// positional placeholder and collects the matching argument values in
// order. Tokens inside single-quoted strings are left alone, and `::` is
// skipped so casts survive. Parameters hinted as slice types expand into a
// comma-separated placeholder list.
func bindNamed(query string, params map[string]interface{}, types map[string]sqlbuilder.Type, placeholder func(n int) string) (string, []interface{}, error) {
	var out strings.Builder
	out.Grow(len(query))

	args := make([]interface{}, 0, len(params))
	n := 0

	for i := 0; i < len(query); {
		c := query[i]

		switch {
		case c == '\'':
			// Copy the string literal verbatim, honoring the '' escape.
			out.WriteByte(c)
			i++
			for i < len(query) {
				out.WriteByte(query[i])
				if query[i] == '\'' {
					if i+1 < len(query) && query[i+1] == '\'' {
						out.WriteByte(query[i+1])
						i += 2
						continue
					}
					i++
					break
				}
				i++
			}

		case c == ':' && i+1 < len(query) && query[i+1] == ':':
			out.WriteString(`::`)
			i += 2

		case c == ':':
			j := i + 1
			for j < len(query) && isNameByte(query[j]) {
				j++
			}
			if j == i+1 {
				out.WriteByte(c)
				i++
				continue
			}
			name := query[i+1 : j]

			value, ok := params[name]
			if !ok {
				return "", nil, fmt.Errorf("%w: %q", ErrMissingParameter, name)
			}

			values, err := expandParam(name, value, types[name])
			if err != nil {
				return "", nil, err
			}
			for k := range values {
				if k > 0 {
					out.WriteString(`, `)
				}
				n++
				out.WriteString(placeholder(n))
				args = append(args, values[k])
			}
			i = j

		default:
			out.WriteByte(c)
			i++
		}
	}

	return out.String(), args, nil
}

func isNameByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func expandParam(name string, value interface{}, t sqlbuilder.Type) ([]interface{}, error) {
	switch t {
	case sqlbuilder.TypeIntSlice, sqlbuilder.TypeStringSlice:
		v := reflect.ValueOf(value)
		if v.Kind() != reflect.Slice {
			return nil, fmt.Errorf("parameter %q: expecting a slice value, got %T", name, value)
		}
		values := make([]interface{}, v.Len())
		for i := 0; i < v.Len(); i++ {
			values[i] = v.Index(i).Interface()
		}
		return values, nil
	}
	return []interface{}{value}, nil
}
