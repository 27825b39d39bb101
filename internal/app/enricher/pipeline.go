// Package enricher adds an example sentence to every vocabulary record.
package enricher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/heartmarshall/jisho-examples/internal/domain"
	"github.com/heartmarshall/jisho-examples/pkg/ctxutil"
)

// SentenceProvider looks up one example sentence for a word.
// It returns domain.Sentinel when no sentence exists.
type SentenceProvider interface {
	FetchSentence(ctx context.Context, word string) (string, error)
}

// RecordWriter persists one enriched record.
type RecordWriter interface {
	Write(rec domain.Record) error
}

// Result holds enrichment statistics.
type Result struct {
	Total    int
	Found    int
	Failed   []domain.FailedWord
	Duration time.Duration
}

// Pipeline enriches records one at a time, in input order.
type Pipeline struct {
	log      *slog.Logger
	provider SentenceProvider
	out      io.Writer
}

// NewPipeline creates a Pipeline. Progress lines are written to out.
func NewPipeline(log *slog.Logger, provider SentenceProvider, out io.Writer) *Pipeline {
	return &Pipeline{
		log:      log,
		provider: provider,
		out:      out,
	}
}

// Run looks up a sentence for every record and writes each enriched record
// to w before moving on to the next. It returns the rows whose lookup found
// nothing. On a lookup or write error Run stops; rows already written stay.
func (p *Pipeline) Run(ctx context.Context, records []domain.Record, w RecordWriter) (Result, error) {
	start := time.Now()
	result := Result{Total: len(records)}

	log := p.log
	if id, ok := ctxutil.RunIDFromCtx(ctx); ok {
		log = log.With(slog.String("run_id", id.String()))
	}
	log.InfoContext(ctx, "enrichment started", slog.Int("records", len(records)))

	for i, rec := range records {
		row := i + 1

		key := rec.LookupKey()
		// The word column is empty for words written only in kana.
		if rec.Word == "" {
			rec.Word = rec.Reading
		}

		sentence, err := p.provider.FetchSentence(ctx, key)
		if err != nil {
			return result, fmt.Errorf("row %d (%s): lookup: %w", row, rec.Word, err)
		}
		rec.ExampleSentence = sentence

		progress := fmt.Sprintf("(%d/%d)", row, result.Total)
		if rec.HasSentence() {
			result.Found++
			fmt.Fprintln(p.out, "Done:", rec.Word, progress)
		} else {
			result.Failed = append(result.Failed, domain.FailedWord{Word: rec.Word, Row: row})
			fmt.Fprintln(p.out, "Couldn't find any example sentences for", rec.Word, progress)
			log.DebugContext(ctx, "no example sentence", slog.String("key", key), slog.Int("row", row))
		}

		if err := w.Write(rec); err != nil {
			return result, fmt.Errorf("row %d (%s): write: %w", row, rec.Word, err)
		}
	}

	result.Duration = time.Since(start)

	log.InfoContext(ctx, "enrichment complete",
		slog.Int("total", result.Total),
		slog.Int("found", result.Found),
		slog.Int("failed", len(result.Failed)),
		slog.Duration("duration", result.Duration),
	)
	return result, nil
}
