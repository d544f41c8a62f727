// Package board computes the class leaderboard from journal snapshots.
// Everything here is a pure function of its inputs: the board is cheap
// enough to recompute from scratch on every read, so nothing is cached.
package board

import (
	"github.com/mediaeduka/webramadhan/core/journal"
	"github.com/mediaeduka/webramadhan/core/student"
)

type (
	TopStudent struct {
		Name   string `json:"name"`
		Points int    `json:"points"`
	}

	ClassRank struct {
		Class      string     `json:"class"`
		TopStudent TopStudent `json:"top_student"`
	}
)

// ComputeLeaderboard ranks each class by its top student. Only graded
// entries count; a student with several graded entries accumulates
// their points. Classes without a single graded entry are omitted.
//
// Tie-break: within a class the first student seen (in entry order) to
// hold the maximum keeps it; a later student must be strictly greater
// to take over. Entries of students no longer on the roster still
// count, since class and name are carried on the entry itself.
func ComputeLeaderboard(entries []journal.Entry) []ClassRank {
	ranks := make([]ClassRank, 0, len(student.Classes))
	for _, cls := range student.Classes {
		var names []string // first-seen order
		points := make(map[string]int)
		for _, ent := range entries {
			if ent.Class != cls || ent.Status != journal.StatusGraded {
				continue
			}
			if _, seen := points[ent.StudentName]; !seen {
				names = append(names, ent.StudentName)
			}
			points[ent.StudentName] += ent.Points
		}
		if len(names) == 0 {
			continue
		}

		top := TopStudent{Name: names[0], Points: points[names[0]]}
		for _, name := range names[1:] {
			if pts := points[name]; pts > top.Points {
				top = TopStudent{Name: name, Points: pts}
			}
		}
		ranks = append(ranks, ClassRank{Class: cls, TopStudent: top})
	}
	return ranks
}

// OverallWinner picks the class whose top student scored highest. When
// classes tie at the maximum the one listed first wins; ranks come out
// of ComputeLeaderboard in the fixed Kelas 1..6 order, so the
// lowest-numbered class takes exact ties. The second return is false
// when the leaderboard is empty.
func OverallWinner(ranks []ClassRank) (ClassRank, bool) {
	if len(ranks) == 0 {
		return ClassRank{}, false
	}
	win := ranks[0]
	for _, r := range ranks[1:] {
		if r.TopStudent.Points > win.TopStudent.Points {
			win = r
		}
	}
	return win, true
}
