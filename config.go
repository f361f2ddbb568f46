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
	"sync/atomic"
)

// Settings holds the global configuration knobs of the package.
type Settings interface {
	// Logger returns the query logging collector, if any.
	Logger() Logger

	// SetLogger sets the query logging collector.
	SetLogger(Logger)

	// SetLogging enables or disables query logging.
	SetLogging(bool)

	// LoggingEnabled reports whether query logging is on.
	LoggingEnabled() bool
}

type conf struct {
	loggingEnabled uint32
	queryLogger    atomic.Value
}

func (c *conf) Logger() Logger {
	if lg := c.queryLogger.Load(); lg != nil {
		return lg.(Logger)
	}
	return nil
}

func (c *conf) SetLogger(lg Logger) {
	c.queryLogger.Store(lg)
}

func (c *conf) SetLogging(value bool) {
	if value {
		atomic.StoreUint32(&c.loggingEnabled, 1)
		return
	}
	atomic.StoreUint32(&c.loggingEnabled, 0)
}

func (c *conf) LoggingEnabled() bool {
	return atomic.LoadUint32(&c.loggingEnabled) == 1
}

// Conf has the global configuration settings for this package.
var Conf Settings = &conf{}
