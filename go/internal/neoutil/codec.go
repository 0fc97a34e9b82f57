// Package neoutil converts between graph property values and the JSON
// contract: request fields into query parameters, node properties into
// plain strings and numbers.
package neoutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05Z"
	timeLayout     = "15:04:05"
)

// FormatTemporal renders graph temporal values as ISO-8601 strings.
func FormatTemporal(v any) (string, bool) {
	switch t := v.(type) {
	case dbtype.Date:
		return time.Time(t).Format(dateLayout), true
	case dbtype.LocalDateTime:
		return time.Time(t).Format(dateTimeLayout), true
	case time.Time:
		return t.UTC().Format(dateTimeLayout), true
	case dbtype.LocalTime:
		return time.Time(t).Format(timeLayout), true
	case dbtype.Time:
		return time.Time(t).Format(timeLayout), true
	case dbtype.Duration:
		return t.String(), true
	}
	return "", false
}

// String reads the first non-null property among keys as text.
func String(props map[string]any, keys ...string) *string {
	for _, key := range keys {
		v, ok := props[key]
		if !ok || v == nil {
			continue
		}
		s := text(v)
		return &s
	}
	return nil
}

// Date reads the first non-null property among keys, normalizing temporal
// values to ISO strings.
func Date(props map[string]any, keys ...string) *string {
	for _, key := range keys {
		v, ok := props[key]
		if !ok || v == nil {
			continue
		}
		if s, ok := FormatTemporal(v); ok {
			return &s
		}
		s := text(v)
		return &s
	}
	return nil
}

// Int reads an integer property. Numeric strings are accepted; other
// values read as absent.
func Int(props map[string]any, key string) *int64 {
	v, ok := props[key]
	if !ok || v == nil {
		return nil
	}

	var n int64
	switch t := v.(type) {
	case int64:
		n = t
	case int:
		n = int64(t)
	case int32:
		n = int64(t)
	case float64:
		i, ok := floatToInt64(t)
		if !ok {
			return nil
		}
		n = i
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil
		}
		i, ok := floatToInt64(parsed)
		if !ok {
			return nil
		}
		n = i
	default:
		return nil
	}
	return &n
}

// NodeFrom extracts a node column from a record. Null columns from an
// OPTIONAL MATCH report false.
func NodeFrom(rec *neo4j.Record, key string) (dbtype.Node, bool) {
	if rec == nil {
		return dbtype.Node{}, false
	}
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return dbtype.Node{}, false
	}
	node, ok := v.(dbtype.Node)
	return node, ok
}

// StringFrom extracts a text column from a record.
func StringFrom(rec *neo4j.Record, key string) *string {
	if rec == nil {
		return nil
	}
	v, ok := rec.Get(key)
	if !ok || v == nil {
		return nil
	}
	s := text(v)
	return &s
}

// IntFrom extracts an integer column from a record.
func IntFrom(rec *neo4j.Record, key string) int64 {
	if rec == nil {
		return 0
	}
	v, _ := rec.Get(key)
	n := Int(map[string]any{key: v}, key)
	if n == nil {
		return 0
	}
	return *n
}

func text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	if s, ok := FormatTemporal(v); ok {
		return s
	}
	return fmt.Sprint(v)
}
