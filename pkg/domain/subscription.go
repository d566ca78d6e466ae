package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// SourceKind is the tag of a content source subscription
type SourceKind string

// recognized source kinds
const (
	KindBilibiliUser SourceKind = "bilibili_user" // video platform user
	KindRSSFeed      SourceKind = "rss_feed"
	KindHotList      SourceKind = "hot_list" // trending list
)

// Kinds returns recognized kinds in the order they are flattened and sent to the remote service
func Kinds() []SourceKind {
	return []SourceKind{KindBilibiliUser, KindRSSFeed, KindHotList}
}

// Known reports whether the kind is one of the recognized kinds
func (k SourceKind) Known() bool {
	switch k {
	case KindBilibiliUser, KindRSSFeed, KindHotList:
		return true
	default:
		return false
	}
}

// Subscription is a single content source of a persona.
// UID is set for bilibili users only, URL for rss feeds only. Zero ID means not persisted.
type Subscription struct {
	ID             int64     `json:"id,omitempty"`
	Name           string    `json:"name"`
	Enabled        bool      `json:"enabled"`
	ViewsThreshold Threshold `json:"viewsThreshold"`
	UID            string    `json:"uid,omitempty"`
	URL            string    `json:"url,omitempty"`
}

// Threshold is a minimal views count. Decoding is lenient because the UI sends whatever was typed in:
// numbers, numeric strings, null or garbage. Anything unparseable becomes 0.
type Threshold int

// UnmarshalJSON decodes a number or a string, never fails on a well-formed json value.
// Numbers are kept as json.Number, so values beyond float64 range are still accepted.
func (t *Threshold) UnmarshalJSON(data []byte) error {
	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	*t = Threshold(ParseThreshold(v))
	return nil
}

// ParseThreshold coerces a loosely typed value to int. Strings are parsed by their leading integer
// part ("42", " 7 ", "12.5" -> 12), numbers are truncated, everything else is 0. Sign is preserved,
// values out of int range saturate to math.MaxInt or math.MinInt.
func ParseThreshold(v any) int {
	switch val := v.(type) {
	case nil:
		return 0
	case int:
		return val
	case int64:
		return int(val)
	case Threshold:
		return int(val)
	case float64:
		return floatToInt(val)
	case json.Number:
		return parseNumber(val.String())
	case string:
		return parseIntPrefix(val)
	default:
		return 0
	}
}

// parseIntPrefix parses optional sign and leading digits, ignoring the rest
func parseIntPrefix(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return saturate(s[0] == '-')
	}
	return n
}

// parseNumber parses a json number literal, including exponent forms like 1e3 or 1e400
func parseNumber(s string) int {
	n, err := strconv.Atoi(s)
	if err == nil {
		return n
	}
	if errors.Is(err, strconv.ErrRange) {
		return saturate(strings.HasPrefix(s, "-"))
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return parseIntPrefix(s)
	}
	return floatToInt(f) // ParseFloat returns ±Inf on overflow
}

// floatToInt truncates f, saturating values beyond int range. NaN is 0.
func floatToInt(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt: // float64(math.MaxInt) is 2^63, already out of range
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	default:
		return int(f)
	}
}

func saturate(negative bool) int {
	if negative {
		return math.MinInt
	}
	return math.MaxInt
}
