package parse

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("simparse.parse")

// Trace wraps p so that every invocation logs its outcome at debug level
// under the given name. Tracing is purely observational: the wrapped parser's
// value, failure, and cursor movement pass through unchanged.
func Trace(name string, p Parser) Parser {
	return func(c *Cursor) (string, error) {
		start := c.Pos()
		v, err := p(c)
		if err != nil {
			log.Debugf("%s: no match at %d (cursor now %d): %s", name, start, c.Pos(), err)
			return "", err
		}
		log.Debugf("%s: matched %q at %d..%d", name, v, start, c.Pos())
		return v, nil
	}
}
