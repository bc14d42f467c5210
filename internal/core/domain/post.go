package domain

// FieldValue is the set of value kinds a metadata field may hold:
// string, bool, or []string. Anything else is coerced to its string
// form when the block is serialised.
type FieldValue = any

// Field is a single metadata key/value pair.
type Field struct {
	// Key is the field name as it appears in the metadata block.
	Key string

	// Value is a string, bool, or []string.
	Value FieldValue
}

// PostMetadata is the ordered metadata block of a post.
// Title and Date are free-form text; Tags and Categories are always
// non-nil, even when the source block omits them. Extra preserves every
// other field in order of first appearance so the block round-trips
// without reshuffling keys.
type PostMetadata struct {
	// Title is the post title. Empty if absent.
	Title string

	// Date is the publication timestamp text. Not parsed or validated.
	Date string

	// Tags is the ordered tag list. Never nil.
	Tags []string

	// Categories is the ordered category list. Never nil.
	Categories []string

	// Extra holds the remaining fields in first-set order.
	Extra []Field
}

// NewPostMetadata returns metadata with empty, non-nil tag and
// category lists.
func NewPostMetadata() PostMetadata {
	return PostMetadata{
		Tags:       []string{},
		Categories: []string{},
	}
}

// Set stores an extra field, updating in place if the key was already
// set so serialisation order is stable.
func (m *PostMetadata) Set(key string, value FieldValue) {
	for i := range m.Extra {
		if m.Extra[i].Key == key {
			m.Extra[i].Value = value
			return
		}
	}
	m.Extra = append(m.Extra, Field{Key: key, Value: value})
}

// Lookup returns the value of an extra field and whether it was set.
func (m *PostMetadata) Lookup(key string) (FieldValue, bool) {
	for i := range m.Extra {
		if m.Extra[i].Key == key {
			return m.Extra[i].Value, true
		}
	}
	return nil, false
}

// ParsedDocument is a post split into its metadata block and body.
// Raw always holds the unmodified input; Body is the text after the
// block, or the whole input when no block was found.
type ParsedDocument struct {
	Metadata PostMetadata
	Body     string
	Raw      string
}

// PostInfo is a listing row for a post file.
type PostInfo struct {
	// Filename is the name within the posts directory, not a full path.
	Filename string

	// Title and Date come from the metadata block.
	Title string
	Date  string

	// Tags and Categories come from the metadata block. Never nil.
	Tags       []string
	Categories []string
}
