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
	"github.com/upper/compose/internal/cache"
)

// Layouts are kept on a single line on purpose, compiled statements carry no
// incidental whitespace and render identically on every call.
const (
	defaultColumnSeparator     = `.`
	defaultIdentifierSeparator = `, `
	defaultAndKeyword          = `AND`
	defaultAscKeyword          = `ASC`
	defaultDescKeyword         = `DESC`
	defaultClauseGroup         = `({{.}})`
	defaultClauseOperator      = ` {{.}} `
	defaultTableAliasLayout    = `{{.Name}}{{if .Alias}} AS {{.Alias}}{{end}}`
	defaultSortByColumnLayout  = `{{.Column}}{{if .Order}} {{.Order}}{{end}}`

	defaultWhereLayout   = ` WHERE {{.Conds}}`
	defaultOnLayout      = ` ON {{.Conds}}`
	defaultJoinLayout    = ` {{.Type}} JOIN {{.Table}}{{.On}}`
	defaultGroupByLayout = ` GROUP BY {{.Columns}}`
	defaultOrderByLayout = ` ORDER BY {{.SortColumns}}`

	defaultSelectLayout = `SELECT {{if .Distinct}}DISTINCT {{end}}` +
		`{{if .Columns}}{{.Columns}}{{else}}*{{end}}` +
		`{{if .Table}} FROM {{.Table}}{{end}}` +
		`{{.Joins}}` +
		`{{.Where}}` +
		`{{.GroupBy}}` +
		`{{.OrderBy}}` +
		`{{if .Limit}} LIMIT {{.Limit}}{{end}}` +
		`{{if .Offset}} OFFSET {{.Offset}}{{end}}`

	defaultCTELayout          = `{{.Alias}} AS ({{.Statement}})`
	defaultRecursiveCTELayout = `{{.Alias}} AS ({{.Anchor}} UNION ALL {{.Step}})`
	defaultWithLayout         = `WITH {{if .Recursive}}RECURSIVE {{end}}{{.CTEs}} {{.Statement}}`
)

// DefaultTemplate returns a template with the generic SQL layouts, suitable
// for tests and for dialects that do not need to override anything.
func DefaultTemplate() *Template {
	return &Template{
		AndKeyword:          defaultAndKeyword,
		AscKeyword:          defaultAscKeyword,
		ClauseGroup:         defaultClauseGroup,
		ClauseOperator:      defaultClauseOperator,
		ColumnSeparator:     defaultColumnSeparator,
		CTELayout:           defaultCTELayout,
		DescKeyword:         defaultDescKeyword,
		GroupByLayout:       defaultGroupByLayout,
		IdentifierSeparator: defaultIdentifierSeparator,
		JoinLayout:          defaultJoinLayout,
		OnLayout:            defaultOnLayout,
		OrderByLayout:       defaultOrderByLayout,
		RecursiveCTELayout:  defaultRecursiveCTELayout,
		SelectLayout:        defaultSelectLayout,
		SortByColumnLayout:  defaultSortByColumnLayout,
		TableAliasLayout:    defaultTableAliasLayout,
		WhereLayout:         defaultWhereLayout,
		WithLayout:          defaultWithLayout,
		Cache:               cache.NewCache(),
	}
}
