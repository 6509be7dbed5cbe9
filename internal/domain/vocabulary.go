package domain

// Sheet column names recognized by the transformer and filters.
// The header row of the spreadsheet is the source of truth; rows are keyed
// by whatever the header row contains, and these constants name the columns
// the service itself reads.
const (
	ColUniqueID        = "Unique ID"
	ColEnglishWord     = "English Word"
	ColMasculine       = "Masculine"
	ColFeminine        = "Feminine"
	ColNoGender        = "No Gender"
	ColPronunciation   = "Pronunciation"
	ColFrenchSentence  = "French Sentence"
	ColEnglishSentence = "English Sentence"
	ColCEFRLevel       = "CEFR Level"
	ColCategory        = "Category"
	ColSubCategory     = "Sub Category"
)

// Record is one spreadsheet row keyed by column name. Absent cells read as
// empty strings. Rows are passed through as fetched: a missing or duplicate
// Unique ID is a data-source problem, not something the service corrects.
type Record map[string]string

// Gender identifies which word-form column a form entry came from.
// The enum values double as the column names of the sheet.
type Gender string

const (
	GenderMasculine Gender = "Masculine"
	GenderFeminine  Gender = "Feminine"
	GenderNone      Gender = "No Gender"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderMasculine, GenderFeminine, GenderNone:
		return true
	}
	return false
}

// Column returns the sheet column holding the word for this gender.
func (g Gender) Column() string { return string(g) }

// PronunciationColumn returns the sheet column holding the per-gender
// pronunciation, e.g. "Pronunciation - Masculine".
func (g Gender) PronunciationColumn() string { return "Pronunciation - " + string(g) }

// Label returns the display label the frontend renders for this gender.
func (g Gender) Label() string {
	switch g {
	case GenderMasculine:
		return "Masculine ♂"
	case GenderFeminine:
		return "Feminine ♀"
	case GenderNone:
		return "Neutral"
	}
	return string(g)
}

// ColorClass returns the frontend color tag for this gender.
func (g Gender) ColorClass() string {
	switch g {
	case GenderMasculine:
		return "text-sky-500"
	case GenderFeminine:
		return "text-pink-500"
	case GenderNone:
		return "text-gray-500"
	}
	return ""
}

// genderOrder fixes the order form entries appear in a flashcard.
var genderOrder = []Gender{GenderMasculine, GenderFeminine, GenderNone}

// Form is one gender variant of a vocabulary word.
type Form struct {
	Word          string
	Gender        Gender
	Pronunciation string
}

// Flashcard is the frontend-facing shape of one vocabulary entry. It is
// derived from a Record per request and never stored.
type Flashcard struct {
	ID            string
	English       string
	Forms         []Form
	ExampleTarget string
	ExampleNative string
	Phonetic      string
	Level         string
	Category      string
	SubCategory   string
}

// ToFlashcard converts one sheet row into a Flashcard. It is pure and
// deterministic: one form entry per non-empty gender column, in masculine,
// feminine, no-gender order, each carrying its own pronunciation column.
// A row with all gender columns empty yields an empty (non-nil) forms
// sequence, not an error.
func ToFlashcard(r Record) Flashcard {
	forms := make([]Form, 0, len(genderOrder))
	for _, g := range genderOrder {
		word := r[g.Column()]
		if word == "" {
			continue
		}
		forms = append(forms, Form{
			Word:          word,
			Gender:        g,
			Pronunciation: r[g.PronunciationColumn()],
		})
	}

	// The top-level Pronunciation column wins; otherwise fall back to the
	// first form that has one.
	phonetic := r[ColPronunciation]
	if phonetic == "" {
		for _, f := range forms {
			if f.Pronunciation != "" {
				phonetic = f.Pronunciation
				break
			}
		}
	}

	return Flashcard{
		ID:            r[ColUniqueID],
		English:       r[ColEnglishWord],
		Forms:         forms,
		ExampleTarget: r[ColFrenchSentence],
		ExampleNative: r[ColEnglishSentence],
		Phonetic:      phonetic,
		Level:         r[ColCEFRLevel],
		Category:      r[ColCategory],
		SubCategory:   r[ColSubCategory],
	}
}

// ToFlashcards converts a fetched sequence in order.
func ToFlashcards(records []Record) []Flashcard {
	cards := make([]Flashcard, 0, len(records))
	for _, r := range records {
		cards = append(cards, ToFlashcard(r))
	}
	return cards
}
