package render

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Outline lists the text of the h3 headings in rich text, in order
func Outline(rich string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rich))
	if err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}

	var headings []string
	doc.Find("h3").Each(func(_ int, s *goquery.Selection) {
		if text := strings.Join(strings.Fields(s.Text()), " "); text != "" {
			headings = append(headings, text)
		}
	})
	return headings, nil
}
