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
	ErrAffiliationNotFound = errors.New("affiliation not found")
)

type AffiliationUsecase interface {
	CreateAffiliation(ctx context.Context, req *dto.CreateAffiliationRequest) (*dto.AffiliationResponse, error)
	GetAffiliation(ctx context.Context, affiliationID int) (*dto.AffiliationResponse, error)
	GetAffiliationsByDoctor(ctx context.Context, doctorID int) (*dto.AffiliationListResponse, error)
	GetAffiliationsByPractice(ctx context.Context, practiceID int) (*dto.AffiliationListResponse, error)
	UpdateAffiliation(ctx context.Context, affiliationID int, req *dto.UpdateAffiliationRequest) (*dto.AffiliationResponse, error)
	DeleteAffiliation(ctx context.Context, affiliationID int) error
}

type affiliationUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	affiliationRepo repository.DoctorPracticeRepository
	doctorRepo      repository.DoctorRepository
	practiceRepo    repository.PracticeRepository
	rosterCache     service.RosterCache
}

func NewAffiliationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	affiliationRepo repository.DoctorPracticeRepository,
	doctorRepo repository.DoctorRepository,
	practiceRepo repository.PracticeRepository,
	rosterCache service.RosterCache,
) AffiliationUsecase {
	return &affiliationUsecase{
		db:              db,
		log:             log,
		affiliationRepo: affiliationRepo,
		doctorRepo:      doctorRepo,
		practiceRepo:    practiceRepo,
		rosterCache:     rosterCache,
	}
}

func (u *affiliationUsecase) CreateAffiliation(ctx context.Context, req *dto.CreateAffiliationRequest) (*dto.AffiliationResponse, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	endDate, err := parseDatePtr(req.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affiliation := &entity.DoctorPractice{
		DoctorID:     req.DoctorID,
		PracticeID:   req.PracticeID,
		Role:         req.Role,
		StartDate:    startDate,
		EndDate:      endDate,
		IsPrimary:    req.IsPrimary,
		HoursPerWeek: req.HoursPerWeek,
	}
	if err := u.affiliationRepo.Create(tx, affiliation); err != nil {
		u.log.Warnf("Failed to create affiliation: %+v", err)
		if isForeignKeyError(err, "doctor_id") {
			return nil, ErrDoctorNotFound
		}
		if isForeignKeyError(err, "practice_id") {
			return nil, ErrPracticeNotFound
		}
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.rosterCache.Invalidate(ctx)

	return converter.AffiliationToResponse(affiliation), nil
}

func (u *affiliationUsecase) GetAffiliation(ctx context.Context, affiliationID int) (*dto.AffiliationResponse, error) {
	affiliation, err := u.affiliationRepo.FindByID(u.db.WithContext(ctx), affiliationID)
	if err != nil {
		u.log.Warnf("Failed to find affiliation: %+v", err)
		return nil, err
	}
	if affiliation == nil {
		return nil, ErrAffiliationNotFound
	}

	return converter.AffiliationToResponse(affiliation), nil
}

func (u *affiliationUsecase) GetAffiliationsByDoctor(ctx context.Context, doctorID int) (*dto.AffiliationListResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	affiliations, err := u.affiliationRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find affiliations: %+v", err)
		return nil, err
	}

	responses := converter.AffiliationsToResponses(affiliations)

	return &dto.AffiliationListResponse{
		Affiliations: responses,
		Total:        len(responses),
	}, nil
}

func (u *affiliationUsecase) GetAffiliationsByPractice(ctx context.Context, practiceID int) (*dto.AffiliationListResponse, error) {
	practice, err := u.practiceRepo.FindByID(u.db.WithContext(ctx), practiceID)
	if err != nil {
		u.log.Warnf("Failed to find practice: %+v", err)
		return nil, err
	}
	if practice == nil {
		return nil, ErrPracticeNotFound
	}

	affiliations, err := u.affiliationRepo.FindByPracticeID(u.db.WithContext(ctx), practiceID)
	if err != nil {
		u.log.Warnf("Failed to find affiliations: %+v", err)
		return nil, err
	}

	responses := converter.AffiliationsToResponses(affiliations)

	return &dto.AffiliationListResponse{
		Affiliations: responses,
		Total:        len(responses),
	}, nil
}

func (u *affiliationUsecase) UpdateAffiliation(ctx context.Context, affiliationID int, req *dto.UpdateAffiliationRequest) (*dto.AffiliationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affiliation, err := u.affiliationRepo.FindByID(tx, affiliationID)
	if err != nil {
		u.log.Warnf("Failed to find affiliation: %+v", err)
		return nil, err
	}
	if affiliation == nil {
		return nil, ErrAffiliationNotFound
	}

	if req.Role != "" {
		affiliation.Role = req.Role
	}
	if req.StartDate != "" {
		startDate, err := parseDate(req.StartDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		affiliation.StartDate = startDate
	}
	if req.ClearEndDate {
		// Reopening an affiliation: null end date means currently active
		affiliation.EndDate = nil
	} else if req.EndDate != "" {
		endDate, err := parseDatePtr(req.EndDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		affiliation.EndDate = endDate
	}
	if req.IsPrimary != nil {
		affiliation.IsPrimary = *req.IsPrimary
	}
	if req.HoursPerWeek != nil {
		affiliation.HoursPerWeek = req.HoursPerWeek
	}

	if err := u.affiliationRepo.Update(tx, affiliation); err != nil {
		u.log.Warnf("Failed to update affiliation: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.rosterCache.Invalidate(ctx)

	return converter.AffiliationToResponse(affiliation), nil
}

func (u *affiliationUsecase) DeleteAffiliation(ctx context.Context, affiliationID int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.affiliationRepo.Delete(tx, affiliationID)
	if err != nil {
		u.log.Warnf("Failed to delete affiliation: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrAffiliationNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.rosterCache.Invalidate(ctx)

	return nil
}
