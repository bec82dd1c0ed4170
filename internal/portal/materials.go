package portal

import (
	"github.com/PuerkitoBio/goquery"
)

type Material struct {
	Title       string       `json:"title"`
	Date        string       `json:"date"`
	Attachments []Attachment `json:"attachments"`
}

type CourseMaterials struct {
	Course    string     `json:"course"`
	Materials []Material `json:"materials"`
}

var MaterialsExtractor = Extractor[[]CourseMaterials]{
	Name:     "materials",
	Navigate: clickThrough(NavClassProfile, NavMaterialsLink),
	Parse:    ParseMaterials,
}

func ParseMaterials(doc *goquery.Document) ([]CourseMaterials, error) {
	out := []CourseMaterials{}

	doc.Find(CourseBlocks).Each(func(_ int, block *goquery.Selection) {
		cm := CourseMaterials{
			Course:    textOf(block.Find(CourseTitle).First()),
			Materials: []Material{},
		}

		block.Find(MaterialRows).Each(func(_ int, tr *goquery.Selection) {
			tds := tr.ChildrenFiltered("td")
			if tds.Length() < 3 {
				return
			}

			cm.Materials = append(cm.Materials, Material{
				Title:       textOf(tds.Eq(0)),
				Date:        textOf(tds.Eq(1)),
				Attachments: attachmentsOf(doc, tds.Eq(2)),
			})
		})

		out = append(out, cm)
	})

	return out, nil
}
