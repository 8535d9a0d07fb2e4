package harrier

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
)

// QueryParser turns a raw query string, without its leading "?", into
// values. url.ParseQuery is a QueryParser.
type QueryParser func(rawQuery string) (url.Values, error)

// DefaultQueryParser parses rawQuery leniently: malformed pairs are dropped
// instead of failing the navigation.
func DefaultQueryParser(rawQuery string) (url.Values, error) {
	values, _ := url.ParseQuery(rawQuery)
	return values, nil
}

func queryMiddleware(parser QueryParser) HandlerFunc {
	return func(ctx *Context) {
		query, err := parser(ctx.Request.RawQuery())
		if err != nil {
			ctx.Error = fmt.Errorf("parsing query string: %w", err)
			return
		}
		ctx.Request.Query = query
		ctx.Next()
	}
}

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.SetAliasTag("query")
	decoder.IgnoreUnknownKeys(true)
	return decoder
}

func trimQueryPrefix(search string) string {
	return strings.TrimPrefix(search, "?")
}
