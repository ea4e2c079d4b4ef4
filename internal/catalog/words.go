package catalog

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Word is one entry in the spelling and vocabulary games. Words are stored
// lowercase; DisplayName applies title casing for screens and tables.
type Word struct {
	Text string
	Lang string
}

var words = []Word{
	{Text: "cat", Lang: "en"},
	{Text: "dog", Lang: "en"},
	{Text: "sun", Lang: "en"},
	{Text: "star", Lang: "en"},
	{Text: "tree", Lang: "en"},
	{Text: "fish", Lang: "en"},
	{Text: "book", Lang: "en"},
	{Text: "cake", Lang: "en"},
	{Text: "gato", Lang: "es"},
	{Text: "perro", Lang: "es"},
	{Text: "sol", Lang: "es"},
	{Text: "luna", Lang: "es"},
}

var titleCaser = cases.Title(language.Und)

// Words returns the vocabulary list in lesson order.
func Words() []Word {
	out := make([]Word, len(words))
	copy(out, words)
	return out
}

// DisplayName returns the title-cased form of a display string.
func DisplayName(text string) string {
	return titleCaser.String(text)
}

// Languages returns the language tags narration is produced in.
func Languages() []string {
	return []string{"en", "es"}
}
