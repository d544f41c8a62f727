package inmemdb

import "github.com/mediaeduka/webramadhan/core/journal"

var (
	journalPKCount        int
	teacherJournalPKCount int
)

type journalRepository struct {
	db *journalTable
}

func NewJournalRepository(db *DB) journal.Repository {
	return &journalRepository{db: db.journal}
}

func (repo *journalRepository) query() []journal.Entry {
	entries := make([]journal.Entry, 0, len(repo.db.entries))
	for _, ent := range repo.db.entries {
		entries = append(entries, *ent)
	}
	return entries
}

// CreateEntry prepends so reads come out newest-first.
func (repo *journalRepository) CreateEntry(ent journal.Entry) (journal.Entry, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	journalPKCount++
	ent.ID = journalPKCount
	repo.db.entries = append([]*journal.Entry{&ent}, repo.db.entries...)
	return ent, nil
}

func (repo *journalRepository) QueryAllEntries() ([]journal.Entry, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *journalRepository) GetEntryByID(id int) (journal.Entry, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, ent := range repo.db.entries {
		if ent.ID == id {
			return *ent, nil
		}
	}
	return journal.Entry{}, journal.ErrNotFound
}

func (repo *journalRepository) FilterEntriesByClass(class string) ([]journal.Entry, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	entries := make([]journal.Entry, 0)
	for _, ent := range repo.db.entries {
		if ent.Class == class {
			entries = append(entries, *ent)
		}
	}
	return entries, nil
}

func (repo *journalRepository) FilterEntriesByStudent(studentID int) ([]journal.Entry, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	entries := make([]journal.Entry, 0)
	for _, ent := range repo.db.entries {
		if ent.StudentID == studentID {
			entries = append(entries, *ent)
		}
	}
	return entries, nil
}

// UpdateEntryGrade mutates the entry in its slot; the collection order
// never changes on grading.
func (repo *journalRepository) UpdateEntryGrade(id, points int, teacherNote string) (journal.Entry, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, ent := range repo.db.entries {
		if ent.ID == id {
			ent.Points = points
			ent.TeacherNote = teacherNote
			ent.Status = journal.StatusGraded
			return *ent, nil
		}
	}
	return journal.Entry{}, journal.ErrNotFound
}

func (repo *journalRepository) CreateTeacherEntry(ent journal.TeacherEntry) (journal.TeacherEntry, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	teacherJournalPKCount++
	ent.ID = teacherJournalPKCount
	repo.db.teacherEntries = append([]*journal.TeacherEntry{&ent}, repo.db.teacherEntries...)
	return ent, nil
}

func (repo *journalRepository) QueryAllTeacherEntries() ([]journal.TeacherEntry, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	entries := make([]journal.TeacherEntry, 0, len(repo.db.teacherEntries))
	for _, ent := range repo.db.teacherEntries {
		entries = append(entries, *ent)
	}
	return entries, nil
}

func (repo *journalRepository) FilterTeacherEntriesByClass(class string) ([]journal.TeacherEntry, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	entries := make([]journal.TeacherEntry, 0)
	for _, ent := range repo.db.teacherEntries {
		if ent.Class == class {
			entries = append(entries, *ent)
		}
	}
	return entries, nil
}
