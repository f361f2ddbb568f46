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
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// EnvEnableDebug can be set to a non-empty value to print all executed
// statements to the standard logger.
//
// Example:
//
//	COMPOSE_DB_DEBUG=1 go test
const EnvEnableDebug = `COMPOSE_DB_DEBUG`

func init() {
	if os.Getenv(EnvEnableDebug) != "" {
		Conf.SetLogger(&defaultLogger{l: logrus.New()})
		Conf.SetLogging(true)
	}
}

// QueryStatus represents a query after being executed.
type QueryStatus struct {
	SessionID string

	Query string
	Args  map[string]interface{}

	Err error

	Start time.Time
	End   time.Time
}

// Logger represents a logging collector. Pass a collector to
// Conf.SetLogger(collector) to make it receive a QueryStatus message after
// every executed query.
type Logger interface {
	Log(*QueryStatus)
}

// Log sends a query status report to the configured logger, if any.
func Log(m *QueryStatus) {
	if lg := Conf.Logger(); lg != nil {
		lg.Log(m)
	}
}

var reInvisibleChars = regexp.MustCompile(`[\s\r\n\t]+`)

type defaultLogger struct {
	l *logrus.Logger
}

func (lg *defaultLogger) Log(m *QueryStatus) {
	query := reInvisibleChars.ReplaceAllString(m.Query, ` `)
	query = strings.TrimSpace(query)

	entry := lg.l.WithFields(logrus.Fields{
		"session": m.SessionID,
		"elapsed": m.End.Sub(m.Start).String(),
	})
	if len(m.Args) > 0 {
		entry = entry.WithField("args", m.Args)
	}

	if m.Err != nil {
		entry.WithError(m.Err).Error(query)
		return
	}
	entry.Info(query)
}
