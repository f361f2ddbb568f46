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
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/upper/compose/internal/exql"
)

// Adapter describes a SQL dialect: the database/sql driver to execute
// against, the template statements render with, and the positional
// placeholder format named parameters are rewritten to.
type Adapter struct {
	// DriverName is the name the driver registered with database/sql.
	DriverName string

	// Template is the dialect vocabulary.
	Template *exql.Template

	// Placeholder formats the n-th (1-based) positional placeholder. When
	// nil, `?` is used.
	Placeholder func(n int) string
}

func (a *Adapter) placeholder() func(n int) string {
	if a.Placeholder == nil {
		return func(int) string { return `?` }
	}
	return a.Placeholder
}

// This map holds all registered adapters.
var adapters = make(map[string]*Adapter)

// RegisterAdapter associates a name with an adapter. Panics if the name is
// empty, the adapter is nil or the name was already taken.
func RegisterAdapter(name string, adapter *Adapter) {
	if name == `` {
		panic(`Missing adapter name.`)
	}
	if adapter == nil || adapter.Template == nil {
		panic(`Missing adapter template.`)
	}
	if _, ok := adapters[name]; ok {
		panic(`RegisterAdapter() called twice for adapter: ` + name)
	}
	adapters[name] = adapter
}

// Open creates a session using the given adapter's name and DSN. The
// connection is established lazily, on first use, as database/sql does.
func Open(adapterName string, dsn string) (*Session, error) {
	adapter, ok := adapters[adapterName]
	if !ok {
		// Using panic instead of returning an error because attempting to
		// use an adapter that was never imported will never succeed.
		panic(fmt.Sprintf(`Open: unknown adapter %q, did you forget to import it?`, adapterName))
	}

	sqlDB, err := sql.Open(adapter.DriverName, dsn)
	if err != nil {
		return nil, err
	}

	return &Session{
		id:      uuid.New(),
		adapter: adapter,
		sqlDB:   sqlDB,
	}, nil
}
