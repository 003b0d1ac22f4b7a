package sqlite

import (
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mattn/go-sqlite3"
)

// DriverName is a go-sqlite3 driver with a regexp(pattern, value) function,
// which SQLite calls for "value REGEXP pattern".
const DriverName = "sqlite3_search"

func init() {
	sql.Register(DriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("regexp", matchRegexp, true)
		},
	})
}

// Open opens a database on the regexp-enabled driver.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// POSIX word-boundary markers have no RE2 spelling other than \b.
var wordBoundaries = strings.NewReplacer("[[:<:]]", `\b`, "[[:>:]]", `\b`)

// patternCacheSize bounds the compiled patterns kept across queries.
const patternCacheSize = 1024

var patternCache = mustPatternCache(patternCacheSize)

func mustPatternCache(size int) *lru.Cache[string, *regexp.Regexp] {
	c, err := lru.New[string, *regexp.Regexp](size)
	if err != nil {
		panic(fmt.Sprintf("sqlite: pattern cache: %v", err))
	}
	return c
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	if re, ok := patternCache.Get(pattern); ok {
		return re, nil
	}
	re, err := regexp.Compile(wordBoundaries.Replace(pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	patternCache.Add(pattern, re)
	return re, nil
}

func matchRegexp(pattern, value any) (bool, error) {
	if pattern == nil || value == nil {
		return false, nil
	}
	re, err := compilePattern(asText(pattern))
	if err != nil {
		return false, err
	}
	return re.MatchString(asText(value)), nil
}

func asText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
