package harrier

import (
	"errors"
	"net/url"
	"strings"

	"github.com/grafana/regexp"
)

// Pattern is a compiled route pattern matched against base relative request
// paths. Patterns support static segments ('/users/list'), named parameters
// ('/users/:id'), wildcards ('/files/**'), and modifiers (:id?, :tags+,
// :path*). Use NewPattern to create patterns from strings.
type Pattern struct {
	str      string
	segments []segment
	regExp   *regexp.Regexp
}

// NewPattern compiles a pattern string. Supported syntax: static segments
// ('/users'), named parameters (':id'), custom sub patterns (':id([0-9]+)'),
// wildcards ('*', '**'), and modifiers ('?' optional, '+' one or more, '*'
// zero or more). Examples: '/users/:id', '/files/**', '/docs/:lang?/intro'.
// Returns an error if the pattern string is invalid.
func NewPattern(patternStr string) (*Pattern, error) {
	segments, err := parseSegments(patternStr)
	if err != nil {
		return nil, err
	}

	re, err := regexp.Compile(segmentsRegExp(segments))
	if err != nil {
		return nil, err
	}

	return &Pattern{
		str:      patternStr,
		segments: segments,
		regExp:   re,
	}, nil
}

// Match compares a path to the pattern and returns the named parameters it
// extracts, path unescaped. The second return value reports whether the path
// matched.
func (p *Pattern) Match(path string) (Params, bool) {
	var params Params
	if !p.MatchInto(path, &params) {
		return nil, false
	}
	return params, true
}

// MatchInto is like Match but reuses an existing Params map instead of
// allocating a new one. The map is cleared before it is filled. Returns true
// if the path matches the pattern.
func (p *Pattern) MatchInto(path string, params *Params) bool {
	indices := p.regExp.FindStringSubmatchIndex(path)
	if indices == nil {
		return false
	}

	names := p.regExp.SubexpNames()
	if *params == nil {
		*params = make(Params, len(names))
	}
	for key := range *params {
		delete(*params, key)
	}

	for i, name := range names {
		if i == 0 || name == "" {
			continue
		}
		start, end := indices[i*2], indices[i*2+1]
		if start < 0 {
			(*params)[name] = ""
			continue
		}
		(*params)[name] = unescapeParam(path[start:end])
	}

	return true
}

// Path builds a path from the pattern, filling dynamic segments from params
// and wildcard segments from wildcards in order. Parameter values are path
// escaped; wildcard values are used as given. Optional segments are left out
// when their parameter is missing. A missing required parameter, or too few
// wildcards, is an error.
func (p *Pattern) Path(params Params, wildcards []string) (string, error) {
	var b strings.Builder
	nextWildcard := 0

	for _, seg := range p.segments {
		switch seg.kind {
		case staticSegment:
			b.WriteString("/" + seg.source)

		case paramSegment:
			value, ok := params[seg.name]
			if !ok {
				if seg.modifier == optional || seg.modifier == zeroOrMore {
					continue
				}
				return "", errors.New("missing required parameter: " + seg.name)
			}
			b.WriteString("/" + escapeParam(value, seg.modifier))

		case wildcardSegment:
			if nextWildcard >= len(wildcards) {
				return "", errors.New("not enough wildcard values provided")
			}
			b.WriteString("/" + wildcards[nextWildcard])
			nextWildcard += 1
		}
	}

	if b.Len() == 0 {
		return "/", nil
	}
	return b.String(), nil
}

// String returns the pattern as it was written.
func (p *Pattern) String() string {
	return p.str
}

// unescapeParam decodes percent escapes in a matched segment. Browsers
// report pathnames escaped; a segment that fails to decode is kept as is.
func unescapeParam(value string) string {
	unescaped, err := url.PathUnescape(value)
	if err != nil {
		return value
	}
	return unescaped
}

// escapeParam escapes a parameter value for use in a path. Repeating
// parameters keep their separators.
func escapeParam(value string, modifier segmentModifier) string {
	if modifier != oneOrMore && modifier != zeroOrMore {
		return url.PathEscape(value)
	}
	parts := strings.Split(value, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}

type segmentKind int

const (
	emptySegment segmentKind = iota
	staticSegment
	paramSegment
	wildcardSegment
)

type segmentModifier int

const (
	single segmentModifier = iota
	optional
	oneOrMore
	zeroOrMore
)

// segment is one slash separated part of a pattern. source is the literal
// text of a static segment or the sub pattern of a parameter or wildcard.
type segment struct {
	kind     segmentKind
	modifier segmentModifier
	name     string
	source   string
}

func parseSegments(patternStr string) ([]segment, error) {
	if !strings.HasPrefix(patternStr, "/") {
		return nil, errors.New("pattern must start with a leading slash")
	}

	parts := strings.Split(patternStr[1:], "/")
	segments := make([]segment, 0, len(parts))
	for _, part := range parts {
		seg, err := parseSegment(part)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

func parseSegment(part string) (segment, error) {
	seg := segment{}
	if part == "" {
		return seg, nil
	}

	runes := []rune(part)
	switch runes[0] {
	case ':':
		seg.kind = paramSegment
		runes = runes[1:]
	case '*':
		seg.kind = wildcardSegment
		runes = runes[1:]
	case '(':
		seg.kind = wildcardSegment
	default:
		seg.kind = staticSegment
	}

	for i := 0; i < len(runes); i += 1 {
		r := runes[i]

		if r == '(' {
			if seg.kind == paramSegment && seg.name == "" {
				return seg, errors.New("parameter segments must have a name")
			}
			if seg.source != "" {
				return seg, errors.New("a segment cannot contain more than one sub pattern")
			}
			for j := i + 1; j < len(runes); j += 1 {
				if runes[j] == ')' {
					seg.source = string(runes[i+1 : j])
					i = j
					break
				}
			}
			continue
		}

		if i == len(runes)-1 {
			if modifier, ok := modifierFor(r); ok {
				seg.modifier = modifier
				continue
			}
		}

		switch seg.kind {
		case paramSegment:
			seg.name += string(r)
		case staticSegment:
			seg.source += string(r)
		}
	}

	return seg, nil
}

func modifierFor(r rune) (segmentModifier, bool) {
	switch r {
	case '?':
		return optional, true
	case '+':
		return oneOrMore, true
	case '*':
		return zeroOrMore, true
	}
	return single, false
}

// segmentsRegExp builds the anchored expression for a pattern. A trailing
// slash is always allowed.
func segmentsRegExp(segments []segment) string {
	var b strings.Builder
	b.WriteString("^")

	for _, seg := range segments {
		if seg.kind == emptySegment {
			continue
		}

		source := seg.source
		if source == "" {
			source = `[^\/]+`
		}
		repeated := source + `(?:\/` + source + `)*`

		if seg.kind == paramSegment {
			group := func(inner string) string {
				return `(?P<` + seg.name + `>` + inner + `)`
			}
			switch seg.modifier {
			case single:
				b.WriteString(`\/` + group(source))
			case optional:
				b.WriteString(`(?:\/` + group(source) + `)?`)
			case oneOrMore:
				b.WriteString(`\/` + group(`(?:`+source+`)(?:\/`+source+`)*`))
			case zeroOrMore:
				b.WriteString(`(?:\/` + group(repeated) + `)?`)
			}
			continue
		}

		switch seg.modifier {
		case single:
			b.WriteString(`\/` + source)
		case optional:
			b.WriteString(`(?:\/` + source + `)?`)
		case oneOrMore:
			b.WriteString(`\/` + repeated)
		case zeroOrMore:
			b.WriteString(`(?:\/` + repeated + `)?`)
		}
	}

	b.WriteString(`\/?$`)
	return b.String()
}
