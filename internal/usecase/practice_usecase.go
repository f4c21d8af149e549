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
	ErrPracticeNotFound   = errors.New("practice not found")
	ErrPracticeReferenced = errors.New("practice still has doctor affiliations")
)

type PracticeUsecase interface {
	CreatePractice(ctx context.Context, req *dto.CreatePracticeRequest) (*dto.PracticeResponse, error)
	GetPractice(ctx context.Context, practiceID int) (*dto.PracticeResponse, error)
	GetAllPractices(ctx context.Context) (*dto.PracticeListResponse, error)
	UpdatePractice(ctx context.Context, practiceID int, req *dto.UpdatePracticeRequest) (*dto.PracticeResponse, error)
	DeletePractice(ctx context.Context, practiceID int) error
}

type practiceUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	practiceRepo repository.PracticeRepository
	rosterCache  service.RosterCache
}

func NewPracticeUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	practiceRepo repository.PracticeRepository,
	rosterCache service.RosterCache,
) PracticeUsecase {
	return &practiceUsecase{
		db:           db,
		log:          log,
		practiceRepo: practiceRepo,
		rosterCache:  rosterCache,
	}
}

func (u *practiceUsecase) CreatePractice(ctx context.Context, req *dto.CreatePracticeRequest) (*dto.PracticeResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	practice := &entity.Practice{
		PracticeName: req.PracticeName,
		AddressLine1: req.AddressLine1,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Phone:        req.Phone,
		Email:        req.Email,
	}
	if req.AddressLine2 != "" {
		practice.AddressLine2 = &req.AddressLine2
	}
	if req.Website != "" {
		practice.Website = &req.Website
	}

	if err := u.practiceRepo.Create(tx, practice); err != nil {
		u.log.Warnf("Failed to create practice: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.rosterCache.Invalidate(ctx)

	return converter.PracticeToResponse(practice), nil
}

func (u *practiceUsecase) GetPractice(ctx context.Context, practiceID int) (*dto.PracticeResponse, error) {
	practice, err := u.practiceRepo.FindByID(u.db.WithContext(ctx), practiceID)
	if err != nil {
		u.log.Warnf("Failed to find practice: %+v", err)
		return nil, err
	}
	if practice == nil {
		return nil, ErrPracticeNotFound
	}

	return converter.PracticeToResponse(practice), nil
}

func (u *practiceUsecase) GetAllPractices(ctx context.Context) (*dto.PracticeListResponse, error) {
	practices, err := u.practiceRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all practices: %+v", err)
		return nil, err
	}

	responses := converter.PracticesToResponses(practices)

	return &dto.PracticeListResponse{
		Practices: responses,
		Total:     len(responses),
	}, nil
}

func (u *practiceUsecase) UpdatePractice(ctx context.Context, practiceID int, req *dto.UpdatePracticeRequest) (*dto.PracticeResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	practice, err := u.practiceRepo.FindByID(tx, practiceID)
	if err != nil {
		u.log.Warnf("Failed to find practice: %+v", err)
		return nil, err
	}
	if practice == nil {
		return nil, ErrPracticeNotFound
	}

	if req.PracticeName != "" {
		practice.PracticeName = req.PracticeName
	}
	if req.AddressLine1 != "" {
		practice.AddressLine1 = req.AddressLine1
	}
	if req.AddressLine2 != "" {
		practice.AddressLine2 = &req.AddressLine2
	}
	if req.City != "" {
		practice.City = req.City
	}
	if req.State != "" {
		practice.State = req.State
	}
	if req.ZipCode != "" {
		practice.ZipCode = req.ZipCode
	}
	if req.Phone != "" {
		practice.Phone = req.Phone
	}
	if req.Email != "" {
		practice.Email = req.Email
	}
	if req.Website != "" {
		practice.Website = &req.Website
	}

	if err := u.practiceRepo.Update(tx, practice); err != nil {
		u.log.Warnf("Failed to update practice: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.rosterCache.Invalidate(ctx)

	return converter.PracticeToResponse(practice), nil
}

func (u *practiceUsecase) DeletePractice(ctx context.Context, practiceID int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.practiceRepo.Delete(tx, practiceID)
	if err != nil {
		u.log.Warnf("Failed to delete practice: %+v", err)
		if isForeignKeyError(err, "practice_id") {
			return ErrPracticeReferenced
		}
		return err
	}
	if affected == 0 {
		return ErrPracticeNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.rosterCache.Invalidate(ctx)

	return nil
}
