package domain

// LabeledExample is one reference snippet from the labeled corpus.
// Examples are compiled in and never mutated after process start.
type LabeledExample struct {
	ID       string `json:"id"`
	Label    Label  `json:"label"`
	Text     string `json:"text"`
	Source   string `json:"source"`   // provenance, display only
	Language string `json:"language"` // "English" or "Nepali", display only
	Category string `json:"category"` // display only

	// Keywords are short substrings hand-tagged as diagnostic of the
	// example's label. Matched case-insensitively against input text.
	Keywords []string `json:"keywords"`
}
