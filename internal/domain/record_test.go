package domain

import "testing"

func TestRecord_LookupKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		record Record
		want   string
	}{
		{name: "word present", record: Record{Word: "食べる", Reading: "たべる"}, want: "食べる"},
		{name: "empty word uses reading", record: Record{Word: "", Reading: "これ"}, want: "これ"},
		{name: "both empty", record: Record{}, want: ""},
		{name: "word trimmed", record: Record{Word: " 猫 ", Reading: "ねこ"}, want: "猫"},
		{name: "word composed", record: Record{Word: "\u304b\u3099\u3063\u3053\u3046", Reading: "がっこう"}, want: "\u304c\u3063\u3053\u3046"},
		{name: "reading used verbatim with spaces", record: Record{Word: "", Reading: " ねこ"}, want: " ねこ"},
		{name: "reading used verbatim when decomposed", record: Record{Word: "", Reading: "\u304b\u3099"}, want: "\u304b\u3099"},
		{name: "whitespace word is not empty", record: Record{Word: "  ", Reading: "ねこ"}, want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.record.LookupKey(); got != tt.want {
				t.Errorf("LookupKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecord_HasSentence(t *testing.T) {
	t.Parallel()

	if (Record{ExampleSentence: Sentinel}).HasSentence() {
		t.Error("sentinel should not count as a sentence")
	}
	if !(Record{ExampleSentence: "猫が好きです。"}).HasSentence() {
		t.Error("real sentence should count")
	}
}
