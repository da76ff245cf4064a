package jsondoc

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

type member struct {
	key string
	raw string
}

// normalize rewrites value so that repeated object keys collapse into one
// member holding the last value, at the position of the first, and string
// escapes are reduced to the form quote produces. The bool reports whether
// anything differs from value.Raw.
func normalize(value gjson.Result) (string, bool) {
	switch {
	case value.IsObject():
		return normalizeObject(value)
	case value.IsArray():
		return normalizeArray(value)
	case value.Type == gjson.String:
		return normalizeString(value)
	default:
		return value.Raw, false
	}
}

func normalizeObject(value gjson.Result) (string, bool) {
	var members []member
	index := map[string]int{}
	changed := false
	value.ForEach(func(key, v gjson.Result) bool {
		keyRaw, keyChanged := normalizeString(key)
		raw, valueChanged := normalize(v)
		if keyChanged || valueChanged {
			changed = true
		}
		name := key.String()
		if i, ok := index[name]; ok {
			members[i].raw = raw
			changed = true
			return true
		}
		index[name] = len(members)
		members = append(members, member{key: keyRaw, raw: raw})
		return true
	})
	if !changed {
		return value.Raw, false
	}

	var b strings.Builder
	b.WriteByte('{')
	for i, m := range members {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(m.key)
		b.WriteByte(':')
		b.WriteString(m.raw)
	}
	b.WriteByte('}')
	return b.String(), true
}

func normalizeArray(value gjson.Result) (string, bool) {
	var items []string
	changed := false
	value.ForEach(func(_, v gjson.Result) bool {
		raw, itemChanged := normalize(v)
		if itemChanged {
			changed = true
		}
		items = append(items, raw)
		return true
	})
	if !changed {
		return value.Raw, false
	}
	return "[" + strings.Join(items, ",") + "]", true
}

func normalizeString(value gjson.Result) (string, bool) {
	if !strings.Contains(value.Raw, `\`) {
		return value.Raw, false
	}
	quoted := quote(value.String())
	return quoted, quoted != value.Raw
}

// quote encodes s as a JSON string. Non-ASCII runes and <, > and & are
// written as-is.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return `""`
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
