package usecase

import (
	"context"
	"errors"

	"provider-directory/internal/converter"
	"provider-directory/internal/delivery/dto"
	"provider-directory/internal/domain/entity"
	"provider-directory/internal/domain/repository"
	"provider-directory/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrDoctorHasDependents = errors.New("doctor still has licenses or affiliations")
	ErrInvalidDate         = errors.New("invalid date value")
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID int) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	UpdateDoctor(ctx context.Context, doctorID int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, doctorID int) error
}

type doctorUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	doctorRepo  repository.DoctorRepository
	rosterCache service.RosterCache
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	rosterCache service.RosterCache,
) DoctorUsecase {
	return &doctorUsecase{
		db:          db,
		log:         log,
		doctorRepo:  doctorRepo,
		rosterCache: rosterCache,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	dateOfBirth, err := parseDatePtr(req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDate
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor := &entity.Doctor{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Specialty:   req.Specialty,
		Email:       req.Email,
		Phone:       req.Phone,
		DateOfBirth: dateOfBirth,
	}
	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.rosterCache.Invalidate(ctx)

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID int) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	responses := converter.DoctorsToResponses(doctors)

	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID int, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if req.FirstName != "" {
		doctor.FirstName = req.FirstName
	}
	if req.LastName != "" {
		doctor.LastName = req.LastName
	}
	if req.Specialty != "" {
		doctor.Specialty = req.Specialty
	}
	if req.Email != "" {
		doctor.Email = req.Email
	}
	if req.Phone != "" {
		doctor.Phone = req.Phone
	}
	if req.DateOfBirth != "" {
		dateOfBirth, err := parseDatePtr(req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDate
		}
		doctor.DateOfBirth = dateOfBirth
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.rosterCache.Invalidate(ctx)

	return converter.DoctorToResponse(doctor), nil
}

// DeleteDoctor removes a doctor. The schema defines no cascade on the
// license and affiliation foreign keys, so deletion is refused while
// dependent rows exist instead of leaving the decision to a FK error.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	dependents, err := u.doctorRepo.CountDependents(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to count doctor dependents: %+v", err)
		return err
	}
	if dependents > 0 {
		return ErrDoctorHasDependents
	}

	affected, err := u.doctorRepo.Delete(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrDoctorNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.rosterCache.Invalidate(ctx)

	return nil
}
