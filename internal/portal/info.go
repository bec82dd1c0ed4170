package portal

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

type Notice struct {
	Category    string       `json:"category"`
	Title       string       `json:"title"`
	Sender      string       `json:"sender"`
	Date        string       `json:"date"`
	Read        bool         `json:"read"`
	Content     string       `json:"content,omitempty"`
	Attachments []Attachment `json:"attachments"`

	// link opens the detail screen; empty when the title is not a link.
	link string
}

type InfoOptions struct {
	// ListAll switches the list from recent notices to every notice.
	ListAll bool
	// SkipRead drops notices already opened.
	SkipRead bool
	// Content opens each notice to read its body.
	Content bool
}

// InfoExtractor builds the notice routine for the given options.
func InfoExtractor(opts InfoOptions) Extractor[[]Notice] {
	open := clickThrough(NavInfo, NavInfoLink)

	ex := Extractor[[]Notice]{
		Name: "info",
		Navigate: func(ctx context.Context, p Page) error {
			if err := open(ctx, p); err != nil {
				return err
			}
			if !opts.ListAll {
				return nil
			}

			return WaitForNavigation(ctx, p, func(ctx context.Context) error {
				return p.Click(ctx, InfoShowAll)
			})
		},
		Parse: func(doc *goquery.Document) ([]Notice, error) {
			return ParseInfo(doc, opts.SkipRead)
		},
	}
	if opts.Content {
		ex.Follow = readNoticeBodies
	}

	return ex
}

func ParseInfo(doc *goquery.Document, skipRead bool) ([]Notice, error) {
	out := []Notice{}

	doc.Find(InfoRows).Each(func(i int, tr *goquery.Selection) {
		tds := tr.ChildrenFiltered("td")
		if tds.Length() < 4 {
			return
		}

		n := Notice{
			Category:    textOf(tds.Eq(0)),
			Title:       textOf(tds.Eq(1)),
			Sender:      textOf(tds.Eq(2)),
			Date:        textOf(tds.Eq(3)),
			Read:        !tr.HasClass("unread"),
			Attachments: attachmentsOf(doc, tds.Eq(4)),
		}
		if skipRead && n.Read {
			return
		}
		if tr.Find(InfoTitle).Length() > 0 {
			n.link = noticeLink(i + 1)
		}

		out = append(out, n)
	})

	return out, nil
}

// noticeLink addresses the title link of the row-th notice, counted from 1.
func noticeLink(row int) string {
	return fmt.Sprintf("%s:nth-child(%d) > %s", InfoRows, row, InfoTitle)
}

// readNoticeBodies opens every linked notice, copies its body and returns to
// the list. Detail attachments are merged with the ones from the list row.
func readNoticeBodies(ctx context.Context, p Page, notices []Notice) ([]Notice, error) {
	for i := range notices {
		n := &notices[i]
		if n.link == "" {
			continue
		}

		err := WaitForNavigation(ctx, p, func(ctx context.Context) error {
			return p.Click(ctx, n.link)
		})
		if err != nil {
			return nil, fmt.Errorf("open %q: %w", n.Title, err)
		}

		doc, err := p.Document(ctx)
		if err != nil {
			return nil, err
		}
		body := doc.Find(InfoBody).First()
		n.Content = textOf(body)
		n.Attachments = mergeAttachments(n.Attachments, attachmentsOf(doc, body))

		err = WaitForNavigation(ctx, p, func(ctx context.Context) error {
			return p.Click(ctx, InfoBack)
		})
		if err != nil {
			return nil, fmt.Errorf("back from %q: %w", n.Title, err)
		}
	}

	return notices, nil
}

func mergeAttachments(have, more []Attachment) []Attachment {
	seen := make(map[string]bool, len(have))
	for _, a := range have {
		seen[a.URL] = true
	}
	for _, a := range more {
		if !seen[a.URL] {
			seen[a.URL] = true
			have = append(have, a)
		}
	}
	return have
}
