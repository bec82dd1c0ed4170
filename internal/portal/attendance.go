package portal

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

const (
	// codeWidth is the fixed width of the course code inside the subject cell.
	codeWidth = 8
	// leadingColumns precede the per-date cells: index, subject and rate.
	leadingColumns = 3
)

type AttendanceRecord struct {
	Status Status `json:"status"`
	Date   string `json:"date"`
}

type Attendance struct {
	Code    string             `json:"code"`
	Title   string             `json:"title"`
	Rate    string             `json:"rate"`
	Records []AttendanceRecord `json:"records"`
}

var AttendanceExtractor = AttendanceFor(0)

// AttendanceFor reads the attendance of quarter q, or the default term for 0.
func AttendanceFor(q Quarter) Extractor[[]Attendance] {
	return Extractor[[]Attendance]{
		Name:     "attendance",
		Navigate: inQuarter(clickThrough(NavAttendance, NavAttendanceLink), q),
		Parse:    ParseAttendance,
	}
}

type subject struct {
	code  string
	title string
}

type attendanceRow struct {
	rate    string
	records []AttendanceRecord
}

// ParseAttendance reads the attendance table. Subject cells and rows come
// from two queries on the same table and are joined by position.
func ParseAttendance(doc *goquery.Document) ([]Attendance, error) {
	var subjects []subject
	doc.Find(AttendanceSubjects).Each(func(_ int, s *goquery.Selection) {
		code, title := SplitCodeTitle(textOf(s))
		subjects = append(subjects, subject{code: code, title: title})
	})

	var rows []attendanceRow
	var rowErr error
	doc.Find(AttendanceRows).EachWithBreak(func(i int, tr *goquery.Selection) bool {
		row, err := parseAttendanceRow(tr)
		if err != nil {
			rowErr = fmt.Errorf("row %d: %w", i+1, err)
			return false
		}
		rows = append(rows, row)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	if len(subjects) != len(rows) {
		return nil, fmt.Errorf("%w: %d subjects, %d rows", ErrRowMismatch, len(subjects), len(rows))
	}

	out := make([]Attendance, len(subjects))
	for i, s := range subjects {
		out[i] = Attendance{
			Code:    s.code,
			Title:   s.title,
			Rate:    rows[i].rate,
			Records: rows[i].records,
		}
	}

	return out, nil
}

func parseAttendanceRow(tr *goquery.Selection) (attendanceRow, error) {
	tds := tr.ChildrenFiltered("td")

	row := attendanceRow{
		rate:    textOf(tds.Eq(leadingColumns - 1)),
		records: []AttendanceRecord{},
	}

	var err error
	tds.Slice(min(leadingColumns, tds.Length()), tds.Length()).EachWithBreak(func(_ int, td *goquery.Selection) bool {
		var status Status
		status, err = ResolveStatus(textOf(td.Find(AttendanceMark).First()))
		if err != nil {
			return false
		}

		row.records = append(row.records, AttendanceRecord{
			Status: status,
			Date:   textOf(td.Find(AttendanceDate).First()),
		})
		return true
	})

	return row, err
}

// SplitCodeTitle splits the fixed-width subject cell. The first eight
// characters are the course code, the rest is the title.
func SplitCodeTitle(blob string) (code, title string) {
	r := []rune(blob)
	if len(r) <= codeWidth {
		return blob, ""
	}

	return string(r[:codeWidth]), string(r[codeWidth:])
}
