package question

// Record is a single quiz item with its expected answer and feedback text.
type Record struct {
	Question        string `json:"question" yaml:"question"`
	Answer          string `json:"answer" yaml:"answer"`
	CorrectFeedback string `json:"correct_feedback" yaml:"correct_feedback"`
	WrongFeedback   string `json:"wrong_feedback" yaml:"wrong_feedback"`
	Hint            string `json:"hint" yaml:"hint"`
}

// Document is the structured (YAML or JSON) form of a question file.
type Document struct {
	Version   int      `json:"version" yaml:"version"`
	Questions []Record `json:"questions" yaml:"questions"`
}

// rawDocument keeps the keys each structured question actually sets, since
// the typed decode cannot tell a missing field from an empty one.
type rawDocument struct {
	Questions []map[string]any `json:"questions" yaml:"questions"`
}

// Column names a tabular data file header must carry.
const (
	ColumnQuestion        = "question"
	ColumnAnswer          = "answer"
	ColumnCorrectFeedback = "correct_feedback"
	ColumnWrongFeedback   = "wrong_feedback"
	ColumnHint            = "hint"
)

// RequiredColumns lists the header columns in their canonical order.
var RequiredColumns = []string{
	ColumnQuestion,
	ColumnAnswer,
	ColumnCorrectFeedback,
	ColumnWrongFeedback,
	ColumnHint,
}
