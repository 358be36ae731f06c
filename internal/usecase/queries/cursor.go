package queries

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"wedding-console/internal/usecase/readmodel"

	"github.com/google/uuid"
)

const (
	MaxListLimit     = 200
	DefaultListLimit = 20
	CursorVersionV1  = "v1"
)

type Cursor struct {
	After string `json:"after,omitempty"`
}

// Uses microsecond precision to match the marketplace's timestamps
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	cursorData := fmt.Sprintf("%s:%d-%s", CursorVersionV1, t.UnixMicro(), id.String())
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	if cursor == "" {
		return time.Time{}, uuid.Nil, fmt.Errorf("cursor cannot be empty")
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid cursor encoding: %w", err)
	}

	decodedStr := string(decoded)
	if !strings.HasPrefix(decodedStr, CursorVersionV1+":") {
		return time.Time{}, uuid.Nil, fmt.Errorf("unsupported cursor version")
	}

	payload := strings.TrimPrefix(decodedStr, CursorVersionV1+":")
	parts := strings.SplitN(payload, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid cursor format: expected '<micros>-<uuid>'")
	}

	timestamp, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	id, err := uuid.Parse(parts[1])
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid UUID: %w", err)
	}

	return time.UnixMicro(timestamp).UTC(), id, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// pageBookings orders bookings newest first and returns the page after the
// cursor. The marketplace has no paging, so the keyset walk happens here.
func pageBookings(all []readmodel.BookingRM, after *Cursor, limit int) ([]readmodel.BookingRM, *Cursor, error) {
	limit = ValidateLimit(limit)

	sorted := slices.Clone(all)
	slices.SortFunc(sorted, compareBookings)

	start := 0
	if after != nil && after.After != "" {
		t, id, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, err
		}
		start = len(sorted)
		for i, b := range sorted {
			if isAfter(b, t, id) {
				start = i
				break
			}
		}
	}

	end := min(start+limit, len(sorted))
	page := sorted[start:end]

	var next *Cursor
	if end < len(sorted) && len(page) > 0 {
		last := page[len(page)-1]
		next = &Cursor{After: EncodeAfterCursor(last.BookedAt, last.ID)}
	}
	return page, next, nil
}

func compareBookings(a, b readmodel.BookingRM) int {
	at, bt := a.BookedAt.Truncate(time.Microsecond), b.BookedAt.Truncate(time.Microsecond)
	if !at.Equal(bt) {
		if at.After(bt) {
			return -1
		}
		return 1
	}
	return -bytes.Compare(a.ID[:], b.ID[:])
}

func isAfter(b readmodel.BookingRM, t time.Time, id uuid.UUID) bool {
	bt := b.BookedAt.Truncate(time.Microsecond)
	if !bt.Equal(t) {
		return bt.Before(t)
	}
	return bytes.Compare(b.ID[:], id[:]) < 0
}
