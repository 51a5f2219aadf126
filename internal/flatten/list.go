package flatten

import "strings"

// JoinList re-encodes an ordered list as one delimiter-joined string,
// preserving list order. A delimiter or backslash inside an item is
// backslash-escaped so the join stays reversible; an empty list joins to
// the empty string.
func JoinList(items []string, delim string) string {
	if len(items) == 0 {
		return ""
	}
	escaped := make([]string, len(items))
	for i, item := range items {
		item = strings.ReplaceAll(item, `\`, `\\`)
		item = strings.ReplaceAll(item, delim, `\`+delim)
		escaped[i] = item
	}
	return strings.Join(escaped, delim)
}

// SplitList is the inverse of JoinList. Splitting the empty string yields
// an empty list, matching the join of one.
func SplitList(s, delim string) []string {
	if s == "" {
		return nil
	}
	var items []string
	var cur strings.Builder
	for i := 0; i < len(s); {
		switch {
		case s[i] == '\\' && i+1 < len(s):
			cur.WriteByte(s[i+1])
			i += 2
		case strings.HasPrefix(s[i:], delim):
			items = append(items, cur.String())
			cur.Reset()
			i += len(delim)
		default:
			cur.WriteByte(s[i])
			i++
		}
	}
	items = append(items, cur.String())
	return items
}
