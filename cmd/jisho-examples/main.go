// Command jisho-examples adds an example sentence from yourei.jp to every
// row of a vocabulary CSV exported from the Jisho app.
//
// The input file has three unnamed columns (word, reading, meaning). The
// output file repeats them and appends the example sentence, or "-" when
// none was found. Paths not given by flag or config are asked for
// interactively.
//
// Exit codes: 0 = success (including rows without a sentence), 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
