package domain

// Record is one row of a content index. Columns named like "nameJa"/"nameEn"
// are folded into Fields["name"]; every other column except the id lands in
// Attributes untouched.
type Record struct {
	ID         string                   `json:"id"`
	Fields     map[string]LocalizedText `json:"fields"`
	Attributes map[string]string        `json:"attributes"`
}

func NewRecord(id string) Record {
	return Record{
		ID:         id,
		Fields:     make(map[string]LocalizedText),
		Attributes: make(map[string]string),
	}
}

// Localized returns the localized pair for base, zero value when absent
func (r Record) Localized(base string) LocalizedText {
	return r.Fields[base]
}

// Attr returns a pass-through attribute, "" when absent
func (r Record) Attr(name string) string {
	return r.Attributes[name]
}
