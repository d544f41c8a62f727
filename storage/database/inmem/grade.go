package inmemdb

import (
	"sort"

	"github.com/mediaeduka/webramadhan/core/grade"
)

type gradeRepository struct {
	db *gradeTable
}

func NewGradeRepository(db *DB) grade.Repository {
	return &gradeRepository{db: db.grade}
}

// copyRecord snapshots a record so callers never share the live score map.
func copyRecord(rec *grade.Record) grade.Record {
	cp := grade.Record{StudentID: rec.StudentID, Note: rec.Note, Scores: make(map[string]float64, len(rec.Scores))}
	for cat, v := range rec.Scores {
		cp.Scores[cat] = v
	}
	return cp
}

func (repo *gradeRepository) getOrCreate(studentID int) *grade.Record {
	rec, ok := repo.db.table[studentID]
	if !ok {
		rec = &grade.Record{StudentID: studentID, Scores: make(map[string]float64)}
		repo.db.table[studentID] = rec
	}
	return rec
}

func (repo *gradeRepository) GetRecord(studentID int) (grade.Record, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if rec, ok := repo.db.table[studentID]; ok {
		return copyRecord(rec), nil
	}
	return grade.Record{}, grade.ErrNotFound
}

func (repo *gradeRepository) QueryAllRecords() ([]grade.Record, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	records := make([]grade.Record, 0, len(repo.db.table))
	for _, rec := range repo.db.table {
		records = append(records, copyRecord(rec))
	}
	sort.Slice(records, func(i, j int) bool { return records[i].StudentID < records[j].StudentID })
	return records, nil
}

func (repo *gradeRepository) UpsertRecordScore(studentID int, category string, value float64) (grade.Record, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	rec := repo.getOrCreate(studentID)
	rec.Scores[category] = value
	return copyRecord(rec), nil
}

func (repo *gradeRepository) UpsertRecordNote(studentID int, note string) (grade.Record, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	rec := repo.getOrCreate(studentID)
	rec.Note = note
	return copyRecord(rec), nil
}
