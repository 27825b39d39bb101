package prompt

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// pathCompleter completes the file or directory name under the cursor.
type pathCompleter struct{}

// Do implements readline.AutoCompleter. It returns the missing suffixes of
// every entry whose name starts with the typed prefix; directories get a
// trailing separator.
func (pathCompleter) Do(line []rune, pos int) ([][]rune, int) {
	typed := string(line[:pos])
	dir, prefix := filepath.Split(typed)

	lookIn := dir
	if lookIn == "" {
		lookIn = "."
	}
	entries, err := os.ReadDir(lookIn)
	if err != nil {
		return nil, 0
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(prefix, ".") {
			continue
		}
		if e.IsDir() {
			name += string(filepath.Separator)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	candidates := make([][]rune, 0, len(names))
	for _, name := range names {
		candidates = append(candidates, []rune(name[len(prefix):]))
	}
	return candidates, len([]rune(prefix))
}
