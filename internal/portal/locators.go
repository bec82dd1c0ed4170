package portal

// EntryURL is the portal's login screen.
const EntryURL = "https://portal.dhw.ac.jp/uprx/"

// Login form.
const (
	LoginID       = `#loginForm\:userId`
	LoginPassword = `#loginForm\:password`
	LoginSubmit   = `#loginForm\:loginButton`
	LoginError    = `.ui-messages-error-detail`
)

// Main menu entries and the sub-links that open each report screen.
// The menu click only expands a panel, the sub-link triggers a full page load.
const (
	NavHome = `#menuForm\:mainMenu > ul > li:nth-child(1) > a`

	NavAttendance     = `#menuForm\:mainMenu > ul > li:nth-child(4) > a`
	NavAttendanceLink = `#menuForm\:mainMenu > ul > li:nth-child(4) > ul > li:nth-child(1) > a`
	NavAttendRegister = `#menuForm\:mainMenu > ul > li:nth-child(4) > ul > li:nth-child(2) > a`

	NavGrades     = `#menuForm\:mainMenu > ul > li:nth-child(5) > a`
	NavGradesLink = `#menuForm\:mainMenu > ul > li:nth-child(5) > ul > li:nth-child(1) > a`

	NavClassProfile     = `#menuForm\:mainMenu > ul > li:nth-child(3) > a`
	NavClassProfileLink = `#menuForm\:mainMenu > ul > li:nth-child(3) > ul > li:nth-child(1) > a`
	NavMaterialsLink    = `#menuForm\:mainMenu > ul > li:nth-child(3) > ul > li:nth-child(2) > a`

	NavInfo     = `#menuForm\:mainMenu > ul > li:nth-child(2) > a`
	NavInfoLink = `#menuForm\:mainMenu > ul > li:nth-child(2) > ul > li:nth-child(1) > a`
	InfoShowAll = `#infoForm\:showAll`
)

// QuarterTabs lists one tab per quarter on the attendance and class profile
// screens. The n-th child selects quarter n.
const QuarterTabs = `ul.quarter-tabs > li`

// Attendance code registration.
const (
	AttendCode    = `#attendForm\:code`
	AttendSubmit  = `#attendForm\:submit`
	AttendMessage = `.ui-messages-info-detail`
	AttendError   = `.ui-messages-error-detail`
)

// Attendance report. Both queries address the same table: one yields the
// subject column, the other the whole row.
const (
	AttendanceSubjects = `div.scroll_div:nth-child(1) > table:nth-child(1) > tbody:nth-child(2) > tr > td:nth-child(2)`
	AttendanceRows     = `div.scroll_div:nth-child(1) > table:nth-child(1) > tbody:nth-child(2) > tr`
	AttendanceMark     = `span`
	AttendanceDate     = `p`
)

// Grade report.
const (
	GradeRows = `#gradeForm\:gradeTable > tbody > tr`
	GradeGPA  = `#gradeForm\:gpa .gpa-value`
)

// Class profile (tasks) and materials screens share the per-course block layout.
const (
	CourseBlocks  = `div.course-block`
	CourseTitle   = `.course-title`
	TaskRows      = `table.task-table > tbody > tr`
	MaterialRows  = `table.material-table > tbody > tr`
	AttachmentRef = `a[href]`
)

// Notice list and the detail screen behind each title link.
const (
	InfoRows  = `#infoForm\:infoTable > tbody > tr`
	InfoTitle = `td:nth-child(2) a`
	InfoBody  = `#infoDetailForm\:body`
	InfoBack  = `#infoDetailForm\:back`
)
