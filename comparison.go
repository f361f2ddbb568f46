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

// ComparisonOperator is the base type for comparison operators.
type ComparisonOperator uint8

// Comparison operators
const (
	ComparisonOperatorNone ComparisonOperator = iota

	ComparisonOperatorEqual

	ComparisonOperatorIs
	ComparisonOperatorIsNot
)

var comparisonOperators = map[ComparisonOperator]string{
	ComparisonOperatorEqual: `=`,
	ComparisonOperatorIs:    `IS`,
	ComparisonOperatorIsNot: `IS NOT`,
}

// Comparison is a boolean SQL expression relating two operands.
type Comparison struct {
	t     ComparisonOperator
	left  string
	right string
}

// Operator returns the comparison operator.
func (c *Comparison) Operator() ComparisonOperator {
	return c.t
}

// String renders the comparison as a SQL boolean expression.
func (c *Comparison) String() string {
	return c.left + ` ` + comparisonOperators[c.t] + ` ` + c.right
}

// Eq returns a comparison that means: left equals right.
func Eq(left, right Column) *Comparison {
	return &Comparison{
		t:     ComparisonOperatorEqual,
		left:  left.String(),
		right: right.String(),
	}
}

// IsNull returns a comparison that means: the column is NULL.
func IsNull(column Column) *Comparison {
	return &Comparison{
		t:     ComparisonOperatorIs,
		left:  column.String(),
		right: `NULL`,
	}
}

// IsNotNull returns a comparison that means: the column is not NULL.
func IsNotNull(column Column) *Comparison {
	return &Comparison{
		t:     ComparisonOperatorIsNot,
		left:  column.String(),
		right: `NULL`,
	}
}
