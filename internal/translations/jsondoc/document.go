// Package jsondoc edits JSON objects in place while keeping the source key
// order and raw number text of everything it does not touch.
package jsondoc

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	apperrors "github.com/louisbranch/i18n-overlay/internal/platform/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

const defaultFileMode fs.FileMode = 0o644

// Indent is the indentation written by Bytes.
const Indent = "\t"

var prettyOptions = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   Indent,
	SortKeys: false,
}

// Document is a mutable JSON object.
type Document struct {
	source   string
	original []byte
	data     []byte
}

// NewObject returns an empty object.
func NewObject() *Document {
	return &Document{data: []byte("{}")}
}

// Parse validates data and wraps it. The root value must be an object.
func Parse(data []byte) (*Document, error) {
	return parse("", data)
}

// Load reads and parses the file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		meta := map[string]string{"Path": path}
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.WrapWithMetadata(apperrors.CodeNotFound, "open translation file", meta, err)
		}
		return nil, apperrors.WrapWithMetadata(apperrors.CodeRead, "read translation file", meta, err)
	}
	return parse(path, data)
}

func parse(source string, data []byte) (*Document, error) {
	meta := map[string]string{"Path": source}
	if !utf8.Valid(data) {
		return nil, apperrors.WithMetadata(apperrors.CodeParse, "parse "+describe(source)+": invalid utf-8", meta)
	}
	if !gjson.ValidBytes(data) {
		return nil, apperrors.WithMetadata(apperrors.CodeParse, "parse "+describe(source)+": invalid json", meta)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		meta["Key"] = "document root"
		return nil, apperrors.WithMetadata(apperrors.CodeNotObject, "parse "+describe(source)+": root is not an object", meta)
	}

	doc := &Document{source: source, original: make([]byte, len(data))}
	copy(doc.original, data)
	if raw, changed := normalize(root); changed {
		doc.data = []byte(raw)
	} else {
		doc.data = make([]byte, len(data))
		copy(doc.data, data)
	}
	return doc, nil
}

// Raw returns the bytes the document was parsed from.
func (d *Document) Raw() []byte {
	out := make([]byte, len(d.original))
	copy(out, d.original)
	return out
}

// Get looks up the value at the key path.
func (d *Document) Get(keys ...string) gjson.Result {
	return gjson.GetBytes(d.data, Path(keys...))
}

// EnsureObject creates an empty object for each missing key along the path.
// Existing objects are kept with their content.
func (d *Document) EnsureObject(keys ...string) error {
	for i := range keys {
		p := Path(keys[:i+1]...)
		current := d.Get(keys[:i+1]...)
		if !current.Exists() {
			out, err := sjson.SetRawBytes(d.data, p, []byte("{}"))
			if err != nil {
				return d.setError(keys[:i+1], err)
			}
			d.data = out
			continue
		}
		if !current.IsObject() {
			return apperrors.WithMetadata(
				apperrors.CodeNotObject,
				describe(d.source)+": "+strings.Join(keys[:i+1], ".")+" is not an object",
				map[string]string{"Path": d.source, "Key": strings.Join(keys[:i+1], ".")},
			)
		}
	}
	return nil
}

// SetString overwrites the value at the key path with a string.
func (d *Document) SetString(value string, keys ...string) error {
	out, err := sjson.SetRawBytes(d.data, Path(keys...), []byte(quote(value)))
	if err != nil {
		return d.setError(keys, err)
	}
	d.data = out
	return nil
}

// SetObject overwrites the value at the key path with obj.
func (d *Document) SetObject(obj *Document, keys ...string) error {
	out, err := sjson.SetRawBytes(d.data, Path(keys...), obj.data)
	if err != nil {
		return d.setError(keys, err)
	}
	d.data = out
	return nil
}

// Bytes renders the document with tab indentation and a trailing newline.
func (d *Document) Bytes() []byte {
	return pretty.PrettyOptions(d.data, prettyOptions)
}

// Save overwrites the file at path with Bytes, keeping its permissions.
func (d *Document) Save(path string) error {
	mode := defaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, d.Bytes(), mode); err != nil {
		return apperrors.WrapWithMetadata(apperrors.CodeWrite, "write translation file", map[string]string{"Path": path}, err)
	}
	return nil
}

// Path joins keys into an escaped gjson/sjson path.
func Path(keys ...string) string {
	escaped := make([]string, len(keys))
	for i, key := range keys {
		escaped[i] = gjson.Escape(key)
	}
	return strings.Join(escaped, ".")
}

func (d *Document) setError(keys []string, err error) error {
	return apperrors.WrapWithMetadata(
		apperrors.CodeUnknown,
		describe(d.source)+": set "+strings.Join(keys, "."),
		map[string]string{"Path": d.source, "Key": strings.Join(keys, ".")},
		err,
	)
}

func describe(source string) string {
	if source == "" {
		return "document"
	}
	return source
}
