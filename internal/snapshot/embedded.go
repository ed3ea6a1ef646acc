package snapshot

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selectors tried in order when the snapshot is inlined in the client page
var embeddedSelectors = []string{
	"script#events-snapshot",
	`script[type="application/json"][data-snapshot]`,
}

var errNoEmbeddedSnapshot = errors.New("no embedded snapshot found in HTML")

// extractEmbedded returns the JSON text of the first snapshot script tag
func extractEmbedded(r io.Reader) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range embeddedSelectors {
		var payload string
		doc.Find(sel).EachWithBreak(func(i int, s *goquery.Selection) bool {
			payload = strings.TrimSpace(s.Text())
			return payload == ""
		})
		if payload != "" {
			return []byte(payload), nil
		}
	}

	return nil, errNoEmbeddedSnapshot
}
