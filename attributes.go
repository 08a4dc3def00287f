package gffutils

import "strings"

// Filetype names the annotation dialect of a file or record.
type Filetype string

const (
	GFF Filetype = "gff"
	GTF Filetype = "gtf"
)

// fieldSep is the separator between a key and its value inside one
// attribute segment.
func (ft Filetype) fieldSep() string {
	if ft == GFF {
		return "="
	}
	return " "
}

// Value is one attribute value: a bare string, or an ordered list of
// strings produced by comma-splitting.
type Value struct {
	items  []string
	isList bool
}

func Scalar(s string) Value { return Value{items: []string{s}} }

func List(items ...string) Value { return Value{items: items, isList: true} }

func (v Value) IsList() bool { return v.isList }

// First returns the scalar value, or the first element of a list.
func (v Value) First() string {
	if len(v.items) == 0 {
		return ""
	}
	return v.items[0]
}

// Items returns all elements; a scalar yields a single-element slice.
func (v Value) Items() []string { return v.items }

func (v Value) text() string { return strings.Join(v.items, ",") }

func parseValue(s string) Value {
	parts := strings.Split(s, ",")
	if len(parts) == 1 {
		return Scalar(parts[0])
	}
	return List(parts...)
}

type entry struct {
	key       string
	value     Value
	leadSpace bool
}

// Attributes holds the parsed 9th column of a record: an ordered set of
// key/value entries plus the formatting needed to reproduce the original
// string byte for byte.
type Attributes struct {
	filetype    Filetype
	entries     []entry
	index       map[string]int
	trailingSep bool
	dot         bool
}

// ParseAttributes parses an attribute string of the given dialect.
// Segments are split on ';'; each segment must contain the dialect's
// field separator exactly once. Surrounding quotes are stripped from
// values, which are then comma-split into lists when multi-valued.
// A duplicated key keeps its first position but its last value.
func ParseAttributes(s string, filetype Filetype) (*Attributes, error) {
	a := &Attributes{filetype: filetype, index: make(map[string]int)}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == "." {
		a.dot = trimmed == "."
		return a, nil
	}
	a.trailingSep = strings.HasSuffix(trimmed, ";")
	sep := filetype.fieldSep()
	for _, seg := range strings.Split(trimmed, ";") {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		lead := strings.HasPrefix(seg, " ")
		body := strings.TrimSpace(seg)
		if strings.Count(body, sep) != 1 {
			return nil, &MalformedAttributeError{Segment: seg}
		}
		kv := strings.SplitN(body, sep, 2)
		key := kv[0]
		value := parseValue(strings.Trim(kv[1], `"`))
		if i, ok := a.index[key]; ok {
			a.entries[i].value = value
			continue
		}
		a.index[key] = len(a.entries)
		a.entries = append(a.entries, entry{key: key, value: value, leadSpace: lead})
	}
	return a, nil
}

// String reproduces the attribute string. For any unmutated parse this is
// the original input, byte for byte.
func (a *Attributes) String() string {
	if len(a.entries) == 0 {
		if a.dot {
			return "."
		}
		return ""
	}
	var b strings.Builder
	for i, e := range a.entries {
		if i > 0 {
			b.WriteByte(';')
		}
		if e.leadSpace {
			b.WriteByte(' ')
		}
		b.WriteString(e.key)
		b.WriteString(a.filetype.fieldSep())
		if a.filetype == GTF {
			b.WriteByte('"')
			b.WriteString(e.value.text())
			b.WriteByte('"')
		} else {
			b.WriteString(e.value.text())
		}
	}
	if a.trailingSep {
		b.WriteByte(';')
	}
	return b.String()
}

func (a *Attributes) Filetype() Filetype { return a.filetype }

func (a *Attributes) Len() int { return len(a.entries) }

// Keys returns the attribute keys in field order.
func (a *Attributes) Keys() []string {
	keys := make([]string, len(a.entries))
	for i, e := range a.entries {
		keys[i] = e.key
	}
	return keys
}

func (a *Attributes) Get(key string) (Value, bool) {
	i, ok := a.index[key]
	if !ok {
		return Value{}, false
	}
	return a.entries[i].value, true
}

// Set assigns a value, overwriting in place if the key exists. A new key
// is appended with the dialect's conventional spacing: none for gff, a
// leading space for gtf.
func (a *Attributes) Set(key string, v Value) {
	if i, ok := a.index[key]; ok {
		a.entries[i].value = v
		return
	}
	if a.index == nil {
		a.index = make(map[string]int)
	}
	a.index[key] = len(a.entries)
	a.entries = append(a.entries, entry{key: key, value: v, leadSpace: a.filetype == GTF})
}

// Del removes a key; later entries shift down one position.
func (a *Attributes) Del(key string) {
	i, ok := a.index[key]
	if !ok {
		return
	}
	a.entries = append(a.entries[:i], a.entries[i+1:]...)
	delete(a.index, key)
	for j := i; j < len(a.entries); j++ {
		a.index[a.entries[j].key] = j
	}
}
