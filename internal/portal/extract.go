package portal

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Extractor is one scraping routine: reach a report screen from the home
// screen, then turn its DOM into records. Follow is optional and may drive the
// page further to complete the parsed records.
type Extractor[T any] struct {
	Name     string
	Navigate func(ctx context.Context, p Page) error
	Parse    func(doc *goquery.Document) (T, error)
	Follow   func(ctx context.Context, p Page, v T) (T, error)
}

// Extract runs ex against an authenticated page positioned on the home screen.
// The page is left on the report screen; call Home before the next routine.
func Extract[T any](ctx context.Context, p Page, ex Extractor[T]) (T, error) {
	var zero T

	if err := ex.Navigate(ctx, p); err != nil {
		return zero, fmt.Errorf("%s: navigate: %w", ex.Name, err)
	}

	doc, err := p.Document(ctx)
	if err != nil {
		return zero, fmt.Errorf("%s: read page: %w", ex.Name, err)
	}

	out, err := ex.Parse(doc)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", ex.Name, err)
	}

	if ex.Follow != nil {
		if out, err = ex.Follow(ctx, p, out); err != nil {
			return zero, fmt.Errorf("%s: follow: %w", ex.Name, err)
		}
	}

	return out, nil
}

// Attachment is a downloadable file linked from a report.
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func textOf(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

func attachmentsOf(doc *goquery.Document, s *goquery.Selection) []Attachment {
	out := []Attachment{}
	s.Find(AttachmentRef).Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "javascript:") || href == "#" {
			return
		}

		out = append(out, Attachment{
			Name: textOf(a),
			URL:  resolveURL(doc.Url, href),
		})
	})

	return out
}

func resolveURL(base *url.URL, href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if u.IsAbs() || base == nil {
		return u.String()
	}

	return base.ResolveReference(u).String()
}
