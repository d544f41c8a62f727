package grade

import "errors"

var ErrNotFound = errors.New("grade record not found")

type (
	Repository interface {
		GetRecord(studentID int) (Record, error)
		QueryAllRecords() ([]Record, error)
		// UpsertRecordScore creates the record if needed and overwrites
		// the one category.
		UpsertRecordScore(studentID int, category string, value float64) (Record, error)
		UpsertRecordNote(studentID int, note string) (Record, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Upsert applies one score-sheet cell edit. Numeric inputs that do not
// parse are stored as zero; the note field is stored verbatim.
func (svc *Service) Upsert(studentID int, ug UpsertGrade) (Record, error) {
	if ug.Category == NoteField {
		return svc.repo.UpsertRecordNote(studentID, ug.Value)
	}
	return svc.repo.UpsertRecordScore(studentID, ug.Category, ParseScore(ug.Value))
}

// Get returns the student's record, or an empty record when none
// exists yet; a missing record is not an error for read purposes.
func (svc *Service) Get(studentID int) (Record, error) {
	rec, err := svc.repo.GetRecord(studentID)
	if err == ErrNotFound {
		return Record{StudentID: studentID, Scores: map[string]float64{}}, nil
	}
	return rec, err
}

func (svc *Service) QueryAll() ([]Record, error) {
	return svc.repo.QueryAllRecords()
}
