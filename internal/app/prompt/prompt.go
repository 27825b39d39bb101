// Package prompt asks the user for file paths on the terminal.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
)

// ErrAborted is returned when the user closes input (Ctrl-D) or interrupts (Ctrl-C).
var ErrAborted = errors.New("prompt: aborted")

// LineReader is the subset of *readline.Instance used by Prompter.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

// Prompter asks questions until it gets an acceptable answer.
type Prompter struct {
	rl     LineReader
	exists func(path string) bool
}

// New creates a Prompter reading from stdin and echoing to stdout, with
// file path completion on Tab. Call Close when done.
func New(stdin io.ReadCloser, stdout io.Writer) (*Prompter, io.Closer, error) {
	rl, err := readline.NewEx(&readline.Config{
		Stdin:           stdin,
		Stdout:          stdout,
		AutoComplete:    pathCompleter{},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, nil, fmt.Errorf("prompt: init readline: %w", err)
	}
	return NewWithReader(rl), rl, nil
}

// NewWithReader creates a Prompter over an existing line reader.
func NewWithReader(rl LineReader) *Prompter {
	return &Prompter{rl: rl, exists: pathExists}
}

// AskFilePath repeats question until the answer is non-blank and, when
// mustExist is set, names an existing path. Surrounding whitespace and
// quotes (added by terminal drag-and-drop) are removed from the answer.
func (p *Prompter) AskFilePath(question string, mustExist bool) (string, error) {
	p.rl.SetPrompt(question)
	for {
		line, err := p.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		if err != nil {
			return "", fmt.Errorf("prompt: read line: %w", err)
		}

		path := cleanPath(line)
		if path == "" {
			continue
		}
		if mustExist && !p.exists(path) {
			continue
		}
		return path, nil
	}
}

func cleanPath(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
