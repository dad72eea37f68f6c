// Package markup writes escaped HTML for components built with templ.ComponentFunc.
package markup

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/a-h/templ"
)

// Attr is a single HTML attribute.
type Attr struct {
	key     string
	value   string
	boolean bool
	skip    bool
}

// A is a key="value" attribute that is always written.
func A(key, value string) Attr { return Attr{key: key, value: value} }

// Opt is written only when value is not empty.
func Opt(key, value string) Attr { return Attr{key: key, value: value, skip: value == ""} }

// Bool is a boolean attribute written as a bare key when on.
func Bool(key string, on bool) Attr { return Attr{key: key, boolean: true, skip: !on} }

// Href is an href attribute sanitised by templ.URL.
func Href(url string) Attr { return Attr{key: "href", value: string(templ.URL(url))} }

// Class is an optional class attribute.
func Class(classes string) Attr { return Opt("class", classes) }

// Extra converts caller-supplied attributes into Attrs sorted by key. Boolean values
// become bare attributes.
func Extra(attrs templ.Attributes) []Attr {
	if len(attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Attr, 0, len(keys))
	for _, k := range keys {
		switch v := attrs[k].(type) {
		case bool:
			out = append(out, Bool(k, v))
		case string:
			out = append(out, A(k, v))
		case templ.SafeURL:
			out = append(out, A(k, string(v)))
		case nil:
			out = append(out, Bool(k, true))
		default:
			out = append(out, A(k, fmt.Sprint(v)))
		}
	}
	return out
}

// Writer writes markup to an io.Writer and keeps the first error. Later calls become
// no-ops once a write has failed.
type Writer struct {
	ctx context.Context
	w   io.Writer
	err error
}

// New returns a Writer targeting w. ctx is passed to nested components.
func New(ctx context.Context, w io.Writer) *Writer {
	return &Writer{ctx: ctx, w: w}
}

// Err returns the first error encountered.
func (m *Writer) Err() error { return m.err }

// Raw writes s without escaping.
func (m *Writer) Raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

// Text writes s HTML-escaped.
func (m *Writer) Text(s string) {
	m.Raw(templ.EscapeString(s))
}

// Open writes a start tag.
func (m *Writer) Open(tag string, attrs ...Attr) {
	m.Raw("<" + tag)
	m.attrs(attrs)
	m.Raw(">")
}

// Void writes a self-contained element such as input or img.
func (m *Writer) Void(tag string, attrs ...Attr) {
	m.Open(tag, attrs...)
}

// Close writes an end tag.
func (m *Writer) Close(tag string) {
	m.Raw("</" + tag + ">")
}

// Element writes tag wrapping escaped text.
func (m *Writer) Element(tag, text string, attrs ...Attr) {
	m.Open(tag, attrs...)
	m.Text(text)
	m.Close(tag)
}

// Render writes nested components in order. Nil components are skipped.
func (m *Writer) Render(components ...templ.Component) {
	for _, c := range components {
		if m.err != nil || c == nil {
			continue
		}
		m.err = c.Render(m.ctx, m.w)
	}
}

func (m *Writer) attrs(attrs []Attr) {
	for _, a := range attrs {
		if a.skip || a.key == "" {
			continue
		}
		if a.boolean {
			m.Raw(" " + templ.EscapeString(a.key))
			continue
		}
		m.Raw(" " + templ.EscapeString(a.key) + `="` + templ.EscapeString(a.value) + `"`)
	}
}

// Text returns a component rendering escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Group renders components one after another.
func Group(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := New(ctx, w)
		m.Render(components...)
		return m.Err()
	})
}
