package student

import (
	"errors"
	"time"

	"github.com/mediaeduka/webramadhan/core"
)

var (
	ErrNotFound       = errors.New("student not found")
	ErrUsernameExists = errors.New("a student with this username already exists")
)

type (
	Repository interface {
		CheckUsernameUniqueness(username string, excludedStudents ...Student) error
		CreateStudent(std Student) (Student, error)
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id int) (Student, error)
		// GetStudentByUsername does a case-insensitive exact match;
		// the caller is expected to lower the username beforehand.
		GetStudentByUsername(username string) (Student, error)
		FilterStudentsByClass(class string) ([]Student, error)
		UpdateStudent(std Student) (Student, error)
		DeleteStudentsByID(ids ...int) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) CheckUniqueness(uname string, exclStudents ...Student) error {
	if err := svc.repo.CheckUsernameUniqueness(uname, exclStudents...); err != nil {
		if err == ErrUsernameExists {
			return core.NewValidationError(err, core.FieldError{Field: "username", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *Service) Create(ns NewStudent) (Student, error) {
	now := time.Now().UTC()
	std := Student{
		Name:      ns.Name,
		Username:  ns.Username,
		Class:     ns.Class,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return svc.repo.CreateStudent(std)
}

func (svc *Service) QueryAll() ([]Student, error) {
	return svc.repo.QueryAllStudents()
}

func (svc *Service) GetByID(id int) (Student, error) {
	return svc.repo.GetStudentByID(id)
}

func (svc *Service) GetByUsername(uname string) (Student, error) {
	return svc.repo.GetStudentByUsername(core.CleanString(uname, true /* lower */))
}

func (svc *Service) FilterByClass(class string) ([]Student, error) {
	return svc.repo.FilterStudentsByClass(class)
}

func (svc *Service) Update(id int, us UpdateStudent) (Student, error) {
	std := Student{
		ID:        id,
		Name:      us.Name,
		Username:  us.Username,
		Class:     us.Class,
		UpdatedAt: time.Now().UTC(),
	}
	return svc.repo.UpdateStudent(std)
}

// Delete removes students from the roster. Journals and grade records
// they authored are left in place; downstream aggregation tolerates the
// orphans.
func (svc *Service) Delete(ids ...int) error {
	return svc.repo.DeleteStudentsByID(ids...)
}
