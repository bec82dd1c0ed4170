package portal

import (
	"github.com/PuerkitoBio/goquery"
)

type Grade struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Teacher  string `json:"teacher"`
	Credit   string `json:"credit"`
	Grade    string `json:"grade"`
	Score    string `json:"score"`
	Year     string `json:"year"`
}

type GPA struct {
	GPA    string  `json:"gpa"`
	Grades []Grade `json:"grades"`
}

var GPAExtractor = Extractor[GPA]{
	Name:     "gpa",
	Navigate: clickThrough(NavGrades, NavGradesLink),
	Parse:    ParseGPA,
}

func ParseGPA(doc *goquery.Document) (GPA, error) {
	out := GPA{
		GPA:    textOf(doc.Find(GradeGPA).First()),
		Grades: []Grade{},
	}

	doc.Find(GradeRows).Each(func(_ int, tr *goquery.Selection) {
		tds := tr.ChildrenFiltered("td")
		// category header rows span the whole table
		if tds.Length() < 7 {
			return
		}

		out.Grades = append(out.Grades, Grade{
			Category: textOf(tds.Eq(0)),
			Title:    textOf(tds.Eq(1)),
			Teacher:  textOf(tds.Eq(2)),
			Credit:   textOf(tds.Eq(3)),
			Grade:    textOf(tds.Eq(4)),
			Score:    textOf(tds.Eq(5)),
			Year:     textOf(tds.Eq(6)),
		})
	})

	return out, nil
}
