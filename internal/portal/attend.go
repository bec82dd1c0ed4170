package portal

import (
	"context"
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// AttendExtractor submits a lecture's attendance code and returns the portal's
// confirmation text. A refused code is an *AttendRejectedError.
func AttendExtractor(code string) Extractor[string] {
	code = strings.TrimSpace(code)
	open := clickThrough(NavAttendance, NavAttendRegister)

	return Extractor[string]{
		Name: "attend",
		Navigate: func(ctx context.Context, p Page) error {
			if code == "" {
				return errors.New("attendance code is empty")
			}
			if err := open(ctx, p); err != nil {
				return err
			}
			if err := p.Type(ctx, AttendCode, code); err != nil {
				return err
			}

			return WaitForNavigation(ctx, p, func(ctx context.Context) error {
				return p.Click(ctx, AttendSubmit)
			})
		},
		Parse: ParseAttendResult,
	}
}

func ParseAttendResult(doc *goquery.Document) (string, error) {
	if sel := doc.Find(AttendError).First(); sel.Length() > 0 {
		msg := textOf(sel)
		if msg == "" {
			msg = "the portal refused the code"
		}
		return "", &AttendRejectedError{Message: msg}
	}

	msg := textOf(doc.Find(AttendMessage).First())
	if msg == "" {
		msg = "attendance registered"
	}
	return msg, nil
}
