package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const cursorPrefix = "o:"

// Page cursors are opaque to clients. Internally they carry the absolute
// record offset of the next page, so a cursor stays valid across requests
// as long as the caller keeps the same filter criteria.
func encodeCursor(offset int) string {
	return base64.RawURLEncoding.EncodeToString([]byte(cursorPrefix + strconv.Itoa(offset)))
}

func decodeCursor(cursor string) (int, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, fmt.Errorf("decodeCursorFailed: %w", err)
	}

	payload, ok := strings.CutPrefix(string(raw), cursorPrefix)
	if !ok {
		return 0, fmt.Errorf("decodeCursorFailed: unknown cursor payload")
	}

	offset, err := strconv.Atoi(payload)
	if err != nil {
		return 0, fmt.Errorf("decodeCursorFailed: %w", err)
	}
	if offset < 0 {
		return 0, fmt.Errorf("decodeCursorFailed: negative offset")
	}
	return offset, nil
}
