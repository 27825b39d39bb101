package domain

// Sentinel is the example sentence recorded when no sentence was found.
const Sentinel = "-"

// Record is one vocabulary row: the three input columns plus the example
// sentence added by enrichment.
type Record struct {
	Word            string
	Reading         string
	Meaning         string
	ExampleSentence string
}

// LookupKey returns the text used to search for an example sentence.
// Words written only in kana are exported with an empty word column,
// in which case the reading is used unchanged. A present word is
// normalized with NormalizeKey.
func (r Record) LookupKey() string {
	if r.Word == "" {
		return r.Reading
	}
	return NormalizeKey(r.Word)
}

// HasSentence reports whether the record carries a real example sentence.
func (r Record) HasSentence() bool {
	return r.ExampleSentence != Sentinel
}

// FailedWord identifies a row for which no example sentence was found.
// Row is the 1-based position of the record in the input file.
type FailedWord struct {
	Word string
	Row  int
}
