// Package codec centralizes the structured encoding of persisted indexes.
//
// Changing the codec of an existing index is a breaking change only if the
// new codec cannot read the old bytes. All built-in codecs speak JSON, so an
// index written by one can be read by any other.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// Used to map configuration values (CLI flags, environment variables) to
// codecs.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "jsoniter":
		return JSONIter{}, true
	default:
		return nil, false
	}
}

// Names returns the names accepted by ByName.
func Names() []string {
	return []string{"go-json", "json", "jsoniter"}
}
