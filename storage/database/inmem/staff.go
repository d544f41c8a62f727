package inmemdb

import (
	"time"

	"github.com/mediaeduka/webramadhan/core/staff"
)

var staffPKCount int

type staffRepository struct {
	db *staffTable
}

func NewStaffRepository(db *DB) staff.Repository {
	return &staffRepository{db: db.staff}
}

func (repo *staffRepository) CreateStaff(stf staff.Staff) (staff.Staff, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	staffPKCount++
	stf.ID = staffPKCount
	repo.db.table[stf.ID] = &stf
	return stf, nil
}

func (repo *staffRepository) GetStaffByID(id int) (staff.Staff, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if stf, ok := repo.db.table[id]; ok {
		return *stf, nil
	}
	return staff.Staff{}, staff.ErrNotFound
}

func (repo *staffRepository) GetStaffByUsername(username string) (staff.Staff, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, stf := range repo.db.table {
		if stf.Username == username {
			return *stf, nil
		}
	}
	return staff.Staff{}, staff.ErrNotFound
}

func (repo *staffRepository) SetStaffLastLogin(id int, t time.Time) (staff.Staff, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	stf, ok := repo.db.table[id]
	if !ok {
		return staff.Staff{}, staff.ErrNotFound
	}
	stf.LastLogin = t
	return *stf, nil
}
