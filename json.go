package fluent

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned when the input is not valid JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// Document is a raw JSON value that can be used as the subject of any builder.
// Field paths use gjson syntax ("detail.userId", "items.#", ...).
type Document []byte

// ParseDocument checks that raw is valid JSON and returns it as a Document.
func ParseDocument(raw []byte) (Document, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrInvalidJSON
	}
	return Document(raw), nil
}

// Has returns true if the path exists in the document.
func (d Document) Has(path string) bool {
	return gjson.GetBytes(d, path).Exists()
}

// String returns the string value at path, or false if not found
// or not a string.
func (d Document) String(path string) (string, bool) {
	r := gjson.GetBytes(d, path)
	if !r.Exists() {
		return "", false
	}
	if r.Type != gjson.String {
		return "", false
	}
	return r.String(), true
}

// Get returns the raw gjson result at path.
func (d Document) Get(path string) gjson.Result {
	return gjson.GetBytes(d, path)
}

// HasFields returns a Predicate that holds when all paths exist.
func HasFields(paths ...string) Predicate[Document] {
	return func(d Document) bool {
		for _, p := range paths {
			if !d.Has(p) {
				return false
			}
		}
		return true
	}
}

// FieldEquals returns a Predicate that holds when the path exists
// and equals the given string value.
func FieldEquals(path, value string) Predicate[Document] {
	return func(d Document) bool {
		s, ok := d.String(path)
		return ok && s == value
	}
}

// Path returns a projection for use with Field. A missing path projects to a
// result that is not present, so the check fails regardless of its predicate.
//
//	v.Validate(fluent.Field(fluent.Path("user.email"), func(r gjson.Result) bool {
//	    return strings.Contains(r.String(), "@")
//	}), "email is invalid")
func Path(path string) func(Document) gjson.Result {
	return func(d Document) gjson.Result {
		return d.Get(path)
	}
}
