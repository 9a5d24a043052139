package catalog

// Example is a usage sentence for an item, in the source language and
// the learner's language.
type Example struct {
	SourceText    string `json:"source_text"`
	LocalizedText string `json:"localized_text"`
}

// Item is a single learnable vocabulary unit. Items are authored
// content and never change at runtime.
type Item struct {
	ID                   string    `json:"id"`
	Word                 string    `json:"word"`
	Translation          string    `json:"translation"`
	TranslationLocalized string    `json:"translation_localized"`
	Category             string    `json:"category"`
	Level                string    `json:"level"`
	Examples             []Example `json:"examples,omitempty"`
	Distractors          []string  `json:"distractors,omitempty"`
}

// HasExamples reports whether the item carries at least one example
// sentence, which gates fill-in-the-blank exercises.
func (it Item) HasExamples() bool {
	return len(it.Examples) > 0
}
