package csvfile

import (
	"errors"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/heartmarshall/jisho-examples/internal/domain"
)

func testdataPath(t *testing.T, name string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(file), "testdata", name)
}

func TestRead_JishoExport(t *testing.T) {
	records, err := Read(testdataPath(t, "jisho_export.csv"))
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}

	want := []domain.Record{
		{Word: "食べる", Reading: "たべる", Meaning: "to eat"},
		{Word: "", Reading: "これ", Meaning: "this"},
		{Word: "日本, 語", Reading: "にほんご", Meaning: `Japanese "language"`},
		{Word: "猫", Reading: "ねこ", Meaning: ""},
	}

	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(records))
	}
	for i := range want {
		if records[i] != want[i] {
			t.Errorf("records[%d] = %+v, want %+v", i, records[i], want[i])
		}
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadRecords(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []domain.Record
		wantErr bool
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "no header row consumed",
			input: "word,reading,meaning\n",
			want:  []domain.Record{{Word: "word", Reading: "reading", Meaning: "meaning"}},
		},
		{
			name:  "extra columns ignored",
			input: "猫,ねこ,cat,noun,common\n",
			want:  []domain.Record{{Word: "猫", Reading: "ねこ", Meaning: "cat"}},
		},
		{
			name:  "crlf line endings",
			input: "犬,いぬ,dog\r\n鳥,とり,bird\r\n",
			want: []domain.Record{
				{Word: "犬", Reading: "いぬ", Meaning: "dog"},
				{Word: "鳥", Reading: "とり", Meaning: "bird"},
			},
		},
		{
			name:  "multiline quoted meaning",
			input: "本,ほん,\"book\nvolume\"\n",
			want:  []domain.Record{{Word: "本", Reading: "ほん", Meaning: "book\nvolume"}},
		},
		{
			name:  "bare quote in unquoted field",
			input: "a\"b,c,d\n",
			want:  []domain.Record{{Word: `a"b`, Reading: "c", Meaning: "d"}},
		},
		{
			name:  "inch mark in meaning",
			input: "テレビ,てれび,32\" screen TV\n猫,ねこ,cat\n",
			want: []domain.Record{
				{Word: "テレビ", Reading: "てれび", Meaning: `32" screen TV`},
				{Word: "猫", Reading: "ねこ", Meaning: "cat"},
			},
		},
		{
			name:    "read failure",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r io.Reader = strings.NewReader(tt.input)
			if tt.wantErr {
				r = iotest.ErrReader(errors.New("disk read failed"))
			}
			got, err := ReadRecords(r)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadRecords() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("record %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
