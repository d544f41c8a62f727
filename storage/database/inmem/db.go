// Package inmemdb holds all portal state in process memory. There is
// no persistence boundary: the portal serves one classroom for one
// session and every aggregate is recomputed from these tables on read.
package inmemdb

import (
	"sync"

	"github.com/mediaeduka/webramadhan/core/grade"
	"github.com/mediaeduka/webramadhan/core/journal"
	"github.com/mediaeduka/webramadhan/core/staff"
	"github.com/mediaeduka/webramadhan/core/student"
)

type (
	DB struct {
		student *studentTable
		staff   *staffTable
		journal *journalTable
		grade   *gradeTable
	}

	studentTable struct {
		table map[int]*student.Student
		mutex sync.RWMutex
	}

	staffTable struct {
		table map[int]*staff.Staff
		mutex sync.RWMutex
	}

	// journalTable keeps slices, not maps: newest-first order is part
	// of the store's contract.
	journalTable struct {
		entries        []*journal.Entry
		teacherEntries []*journal.TeacherEntry
		mutex          sync.RWMutex
	}

	gradeTable struct {
		table map[int]*grade.Record
		mutex sync.RWMutex
	}
)

func Open() (*DB, error) {
	db := &DB{
		student: &studentTable{table: make(map[int]*student.Student)},
		staff:   &staffTable{table: make(map[int]*staff.Staff)},
		journal: &journalTable{},
		grade:   &gradeTable{table: make(map[int]*grade.Record)},
	}
	return db, nil
}
