package portal

// StatusMark is the glyph the portal renders in an attendance cell.
type StatusMark string

const (
	MarkPresent           StatusMark = "〇"
	MarkLeftEarly         StatusMark = "▽"
	MarkLate              StatusMark = "△"
	MarkAbsent            StatusMark = "×"
	MarkOfficialAbsence   StatusMark = "公"
	MarkCancelled         StatusMark = "休"
	MarkNotApplicable     StatusMark = "－"
	MarkExamNotApplicable StatusMark = "外"
	// MarkExam is the empty cell of exam-period columns.
	MarkExam StatusMark = ""
)

// Status is the label a StatusMark stands for.
type Status string

const (
	StatusPresent           Status = "出席"
	StatusLeftEarly         Status = "早退"
	StatusLate              Status = "遅刻"
	StatusAbsent            Status = "欠席"
	StatusOfficialAbsence   Status = "公欠"
	StatusCancelled         Status = "休講"
	StatusNotApplicable     Status = "授業対象外"
	StatusExamNotApplicable Status = "試験対象外"
	StatusExam              Status = "期試験/追試験/再試験"
)

// Marks lists the closed vocabulary in display order.
var Marks = []StatusMark{
	MarkPresent,
	MarkLeftEarly,
	MarkLate,
	MarkAbsent,
	MarkOfficialAbsence,
	MarkCancelled,
	MarkNotApplicable,
	MarkExamNotApplicable,
	MarkExam,
}

// Status resolves the mark. Anything outside the vocabulary is an
// *UnknownStatusMarkError.
func (m StatusMark) Status() (Status, error) {
	switch m {
	case MarkPresent:
		return StatusPresent, nil
	case MarkLeftEarly:
		return StatusLeftEarly, nil
	case MarkLate:
		return StatusLate, nil
	case MarkAbsent:
		return StatusAbsent, nil
	case MarkOfficialAbsence:
		return StatusOfficialAbsence, nil
	case MarkCancelled:
		return StatusCancelled, nil
	case MarkNotApplicable:
		return StatusNotApplicable, nil
	case MarkExamNotApplicable:
		return StatusExamNotApplicable, nil
	case MarkExam:
		return StatusExam, nil
	}

	return "", &UnknownStatusMarkError{Mark: string(m)}
}

func ResolveStatus(mark string) (Status, error) {
	return StatusMark(mark).Status()
}
