package staff

import (
	"errors"
	"time"

	"github.com/mediaeduka/webramadhan/core"
)

var ErrNotFound = errors.New("staff not found")

type (
	Repository interface {
		CreateStaff(stf Staff) (Staff, error)
		GetStaffByID(id int) (Staff, error)
		GetStaffByUsername(username string) (Staff, error)
		SetStaffLastLogin(id int, t time.Time) (Staff, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ns NewStaff) (Staff, error) {
	stf := Staff{
		Name:      core.CleanString(ns.Name),
		Username:  core.CleanString(ns.Username, true /* lower */),
		CreatedAt: time.Now().UTC(),
	}
	if err := stf.SetPassword(ns.Password); err != nil {
		return Staff{}, err
	}
	return svc.repo.CreateStaff(stf)
}

func (svc *Service) GetByID(id int) (Staff, error) {
	return svc.repo.GetStaffByID(id)
}

func (svc *Service) GetByUsername(uname string) (Staff, error) {
	return svc.repo.GetStaffByUsername(core.CleanString(uname, true /* lower */))
}

func (svc *Service) SetLastLogin(stf Staff) (Staff, error) {
	return svc.repo.SetStaffLastLogin(stf.ID, time.Now().UTC())
}
