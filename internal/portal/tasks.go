package portal

import (
	"github.com/PuerkitoBio/goquery"
)

// TaskDone is the status text of a submitted or closed task.
const TaskDone = "提出済"

type Task struct {
	Title    string `json:"title"`
	Kind     string `json:"kind"`
	Status   string `json:"status"`
	Deadline string `json:"deadline"`
}

func (t Task) Done() bool {
	return t.Status == TaskDone
}

type CourseTasks struct {
	Course string `json:"course"`
	Tasks  []Task `json:"tasks"`
}

var TasksExtractor = TasksFor(0)

func TasksFor(q Quarter) Extractor[[]CourseTasks] {
	return Extractor[[]CourseTasks]{
		Name:     "tasks",
		Navigate: inQuarter(clickThrough(NavClassProfile, NavClassProfileLink), q),
		Parse:    ParseTasks,
	}
}

func ParseTasks(doc *goquery.Document) ([]CourseTasks, error) {
	out := []CourseTasks{}

	doc.Find(CourseBlocks).Each(func(_ int, block *goquery.Selection) {
		ct := CourseTasks{
			Course: textOf(block.Find(CourseTitle).First()),
			Tasks:  []Task{},
		}

		block.Find(TaskRows).Each(func(_ int, tr *goquery.Selection) {
			tds := tr.ChildrenFiltered("td")
			if tds.Length() < 4 {
				return
			}

			ct.Tasks = append(ct.Tasks, Task{
				Title:    textOf(tds.Eq(0)),
				Kind:     textOf(tds.Eq(1)),
				Status:   textOf(tds.Eq(2)),
				Deadline: textOf(tds.Eq(3)),
			})
		})

		out = append(out, ct)
	})

	return out, nil
}
