// Package report prints the run banner and the end-of-run summary.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/heartmarshall/jisho-examples/internal/domain"
)

// Banner prints the title shown before the prompts.
func Banner(w io.Writer) {
	fmt.Fprintln(w, "=================== Jisho Example Sentences ===================")
	fmt.Fprintln(w, "This tool will update the CSV file exported from the Jisho app with example sentences from yourei.jp")
}

// Done prints the completion line with the elapsed time in seconds.
func Done(w io.Writer, elapsed time.Duration) {
	fmt.Fprintf(w, "========================== DONE (took %.5fs) ===========================\n", elapsed.Seconds())
}

// FailedWords lists the rows that still need a sentence found by hand.
// Nothing is printed when failed is empty.
func FailedWords(w io.Writer, failed []domain.FailedWord) {
	if len(failed) == 0 {
		return
	}

	fmt.Fprintln(w, "Words that weren't on yourei.jp (need to manually find example sentences for):")

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(table.Row{"Word", "At row"})
	for _, f := range failed {
		t.AppendRow(table.Row{f.Word, f.Row})
	}
	t.Render()
}
