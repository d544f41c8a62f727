package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/mediaeduka/webramadhan/apps/api/echo"
	"github.com/mediaeduka/webramadhan/core"
	"github.com/mediaeduka/webramadhan/core/grade"
	"github.com/mediaeduka/webramadhan/core/journal"
	"github.com/mediaeduka/webramadhan/core/staff"
	"github.com/mediaeduka/webramadhan/core/student"
	logsvc "github.com/mediaeduka/webramadhan/services/logger"
	inmemdb "github.com/mediaeduka/webramadhan/storage/database/inmem"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewConsoleLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
	)

	// all state is in-process; it lives and dies with this session
	db, err := inmemdb.Open()
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening store: %v", err), err)
	}

	studentSvc := student.NewService(inmemdb.NewStudentRepository(db))
	staffSvc := staff.NewService(inmemdb.NewStaffRepository(db))
	journalSvc := journal.NewService(inmemdb.NewJournalRepository(db))
	gradeSvc := grade.NewService(inmemdb.NewGradeRepository(db))

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("%s initializing : env %q", conf.AppName, conf.Env))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	student.InitValidators(validate, translator)
	journal.InitValidators(validate, translator)
	grade.InitValidators(validate, translator)

	if err = seed(conf, staffSvc, studentSvc); err != nil {
		logger.Fatal(fmt.Sprintf("seeding: %v", err), err)
	}

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:       conf,
			Logger:     logger,
			Validate:   validate,
			Translator: translator,
			StudentSvc: studentSvc,
			StaffSvc:   staffSvc,
			JournalSvc: journalSvc,
			GradeSvc:   gradeSvc,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

// seed bootstraps the teacher account and, in demo mode, the roster the
// program starts the month with.
func seed(conf *core.Config, staffSvc *staff.Service, studentSvc *student.Service) error {
	if _, err := staffSvc.Create(staff.NewStaff{Name: "Bapak/Ibu Guru", Username: "guru", Password: "admin123"}); err != nil {
		return err
	}

	if !conf.SeedDemo {
		return nil
	}
	demo := []student.NewStudent{
		{Name: "Ahmad Fauzi", Username: "ahmad", Class: "Kelas 4"},
		{Name: "Siti Aminah", Username: "siti", Class: "Kelas 5"},
		{Name: "Putra Galuh", Username: "putra", Class: "Kelas 5"},
	}
	for _, ns := range demo {
		if _, err := studentSvc.Create(ns); err != nil {
			return err
		}
	}
	return nil
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
