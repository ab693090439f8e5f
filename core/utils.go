package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NowFunc returns the current time. mockable
var NowFunc = func() time.Time { return time.Now().UTC() }

// NewID mints an id that is unique within every collection.
func NewID() string {
	return uuid.New().String()
}

// Today returns the current date at midnight UTC.
func Today() time.Time {
	return Date(NowFunc())
}

// Date truncates t to midnight UTC.
func Date(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MustParseDate parses a "2006-01-02" date. It panics on malformed input and is meant for seed data.
func MustParseDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// MustParseTime parses an RFC 3339 timestamp. It panics on malformed input and is meant for seed data.
func MustParseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// MatchesSearch reports whether `term` is a case-insensitive substring of any of `fields`.
// An empty term matches everything.
func MatchesSearch(term string, fields ...string) bool {
	term = CleanString(term, true)
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// MatchesFilter reports whether `value` passes the enum filter `filter`; "" and "all" mean no filtering.
func MatchesFilter(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}

// FilterAll disables an enum filter.
const FilterAll = "all"

// Getwd tries to find the project root (the directory holding go.mod).
// go-test changes the working directory to the test package being run during tests,
// so config lookups walk up from there. Falls back to the working directory.
func Getwd() string {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	currDir := wd
	for {
		if fi, err := os.Stat(filepath.Join(currDir, "go.mod")); err == nil && !fi.IsDir() {
			return currDir
		}
		newDir := filepath.Dir(currDir)
		if newDir == string(os.PathSeparator) || newDir == currDir {
			return wd
		}
		currDir = newDir
	}
}
