package query

import (
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"time"
)

// cursorSeparator splits the sort-column value from the primary-key value
// inside a token. Unit separator, never part of either value's encoding.
const cursorSeparator = "\x1f"

var errInvalidCursor = errors.New("invalid cursor token")

// Cursor is the decoded position of the last row of a previous page. The
// compound (sort value, primary key) form makes the walk exact-once even when
// the sort column has duplicate values: the comparison is strictly-greater on
// the pair, with the primary key breaking ties.
type Cursor struct {
	Value string
	PK    string
}

// CursorSource exposes an entity's column values for cursor construction.
// Implementations format timestamps as RFC 3339 (nanosecond precision) and
// numbers in base 10.
type CursorSource interface {
	CursorValue(column string) (string, bool)
}

// EncodeCursor wraps the boundary row's position in an opaque token.
func EncodeCursor(c Cursor) string {
	return base64.RawURLEncoding.EncodeToString([]byte(c.Value + cursorSeparator + c.PK))
}

// DecodeCursor unwraps a token. Callers in permissive mode treat an error as
// "no cursor" so a stale or tampered token degrades to the first page.
func DecodeCursor(token string) (Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, errInvalidCursor
	}
	value, pk, ok := strings.Cut(string(raw), cursorSeparator)
	if !ok {
		return Cursor{}, errInvalidCursor
	}
	return Cursor{Value: value, PK: pk}, nil
}

// typedCursorValue converts the string carried in a token back to a value of
// the column's declared kind. Guessing the type from the value shape would
// misbind numeric-looking text (a code like "12345" decoded as bigint has no
// comparison operator against a varchar column on postgres), so the kind
// always comes from the entity spec. A value that does not parse as its
// declared kind marks the whole token invalid.
func typedCursorValue(kind ColumnKind, s string) (any, error) {
	switch kind {
	case ColumnInt:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, errInvalidCursor
		}
		return n, nil
	case ColumnTime:
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return nil, errInvalidCursor
		}
		return t, nil
	default:
		return s, nil
	}
}

// cursorFromRow builds a cursor from one returned row.
func cursorFromRow(src CursorSource, spec EntitySpec, column string) (Cursor, bool) {
	value, ok := src.CursorValue(column)
	if !ok {
		return Cursor{}, false
	}
	pk, ok := src.CursorValue(spec.PrimaryKey)
	if !ok {
		return Cursor{}, false
	}
	return Cursor{Value: value, PK: pk}, true
}
