package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteEDN writes v as EDN. Values go through encoding/json first so json
// tags decide key names; object keys become keywords.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := ednEncoder{pretty: pretty, indent: 2}
	enc.value(&buf, x, 0)
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

type ednEncoder struct {
	pretty bool
	indent int
}

func (e ednEncoder) value(buf *bytes.Buffer, v any, level int) {
	switch t := v.(type) {
	case nil:
		buf.WriteString("nil")
	case bool:
		buf.WriteString(strconv.FormatBool(t))
	case string:
		buf.WriteString(strconv.Quote(t))
	case json.Number:
		buf.WriteString(ednNumber(t))
	case []any:
		items := make([]func(), len(t))
		for i, it := range t {
			it := it
			items[i] = func() { e.value(buf, it, level+1) }
		}
		e.coll(buf, '[', ']', items, level)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		items := make([]func(), len(keys))
		for i, k := range keys {
			k := k
			items[i] = func() {
				buf.WriteByte(':')
				buf.WriteString(ednKeyword(k))
				buf.WriteByte(' ')
				e.value(buf, t[k], level+1)
			}
		}
		e.coll(buf, '{', '}', items, level)
	default:
		buf.WriteString(strconv.Quote(fmt.Sprintf("%v", v)))
	}
}

// coll writes a delimited collection, one element per line when pretty.
func (e ednEncoder) coll(buf *bytes.Buffer, open, close byte, items []func(), level int) {
	buf.WriteByte(open)
	if len(items) == 0 {
		buf.WriteByte(close)
		return
	}
	pad := strings.Repeat(" ", (level+1)*e.indent)
	for i, write := range items {
		if e.pretty {
			buf.WriteByte('\n')
			buf.WriteString(pad)
		} else if i > 0 {
			buf.WriteByte(' ')
		}
		write()
	}
	if e.pretty {
		buf.WriteByte('\n')
		buf.WriteString(strings.Repeat(" ", level*e.indent))
	}
	buf.WriteByte(close)
}

// ednNumber keeps integers integral and prints floats without exponent.
func ednNumber(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	f, err := n.Float64()
	if err != nil {
		return strconv.Quote(n.String())
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func ednKeyword(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "_"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', ',', '(', ')', '[', ']', '{', '}', '"', ';':
			return '-'
		}
		return r
	}, s)
}
