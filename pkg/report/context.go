// Package report renders the three audience-specific Markdown reports
// from one scoring result. All renderers are pure: identical result and
// context yield byte-identical text, and no renderer recomputes or
// alters a scored fact.
package report

// FreeTextAnswer is one verbatim answer from the intake form.
type FreeTextAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Context carries the rendering inputs that are not part of the scored
// result: identity, the assessment coordinates, qualitative profile
// notes, and the verbatim free-text answers.
type Context struct {
	StudentName  string           `json:"studentName"`
	Track        string           `json:"track"`
	Level        string           `json:"level"`
	Stage        string           `json:"stage"`
	ProfileNotes []string         `json:"profileNotes,omitempty"`
	FreeText     []FreeTextAnswer `json:"freeText,omitempty"`
}
