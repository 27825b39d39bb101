package yourei

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/heartmarshall/jisho-examples/internal/domain"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

const (
	// sentenceSelector matches the text of the first example on a result page.
	sentenceSelector = "#sentence-1 > .the-sentence"

	// furiganaSelector matches ruby annotations: the reading itself (rt) and
	// the parentheses shown by browsers without ruby support (rp).
	furiganaSelector = "rt, rp"
)

// extractSentence parses a result page and returns the text of the first
// sentence with furigana stripped, or domain.Sentinel if there is none.
func extractSentence(r io.Reader, contentType string) (string, error) {
	body, err := charset.NewReader(r, contentType)
	if err != nil {
		return "", fmt.Errorf("decode body: %w", err)
	}

	root, err := html.Parse(body)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	return sentenceFromDocument(goquery.NewDocumentFromNode(root)), nil
}

func sentenceFromDocument(doc *goquery.Document) string {
	sentence := doc.Find(sentenceSelector).First()
	if sentence.Length() == 0 {
		return domain.Sentinel
	}

	sentence.Find(furiganaSelector).Remove()

	return sentence.Text()
}
