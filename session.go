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
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/upper/compose/sqlbuilder"
)

// Session binds an adapter to a database handle. It creates builders that
// render in the adapter's dialect and executes assembled statements.
type Session struct {
	id      uuid.UUID
	adapter *Adapter
	sqlDB   *sql.DB
}

// ID returns the session identifier reported in query logs.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Builder returns a fresh single-statement builder bound to the session's
// dialect.
func (s *Session) Builder() *sqlbuilder.Builder {
	return sqlbuilder.New(s.adapter.Template)
}

// SQLDB returns the underlying database/sql handle.
func (s *Session) SQLDB() *sql.DB {
	return s.sqlDB
}

// Close closes the underlying database handle.
func (s *Session) Close() error {
	return s.sqlDB.Close()
}

// QueryContext executes a statement with named parameters and returns a row
// cursor owned by the caller. Named parameters are rewritten to the
// adapter's positional placeholders before execution; execution errors come
// back from the backend unmodified.
func (s *Session) QueryContext(ctx context.Context, query string, params map[string]interface{}, types map[string]sqlbuilder.Type) (*sql.Rows, error) {
	stmt, args, err := bindNamed(query, params, types, s.adapter.placeholder())
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rows, err := s.sqlDB.QueryContext(ctx, stmt, args...)

	if Conf.LoggingEnabled() || err != nil {
		Log(&QueryStatus{
			SessionID: s.id.String(),
			Query:     stmt,
			Args:      params,
			Err:       err,
			Start:     start,
			End:       time.Now(),
		})
	}

	return rows, err
}

// Query is like QueryContext with the background context.
func (s *Session) Query(query string, params map[string]interface{}, types map[string]sqlbuilder.Type) (*sql.Rows, error) {
	return s.QueryContext(context.Background(), query, params, types)
}
