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
	ErrLicenseNotFound      = errors.New("license not found")
	ErrLicenseInvalidStatus = errors.New("license status is not one of Active, Expired, Suspended, Revoked")
	ErrLicenseDoctorMissing = errors.New("license references a nonexistent doctor")
)

type LicenseUsecase interface {
	CreateLicense(ctx context.Context, req *dto.CreateLicenseRequest) (*dto.LicenseResponse, error)
	GetLicense(ctx context.Context, licenseID int) (*dto.LicenseResponse, error)
	GetLicensesByDoctor(ctx context.Context, doctorID int) (*dto.LicenseListResponse, error)
	GetAllLicenses(ctx context.Context) (*dto.LicenseListResponse, error)
	UpdateLicense(ctx context.Context, licenseID int, req *dto.UpdateLicenseRequest) (*dto.LicenseResponse, error)
	DeleteLicense(ctx context.Context, licenseID int) error
}

type licenseUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	licenseRepo repository.LicenseRepository
	doctorRepo  repository.DoctorRepository
	rosterCache service.RosterCache
}

func NewLicenseUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	licenseRepo repository.LicenseRepository,
	doctorRepo repository.DoctorRepository,
	rosterCache service.RosterCache,
) LicenseUsecase {
	return &licenseUsecase{
		db:          db,
		log:         log,
		licenseRepo: licenseRepo,
		doctorRepo:  doctorRepo,
		rosterCache: rosterCache,
	}
}

func (u *licenseUsecase) CreateLicense(ctx context.Context, req *dto.CreateLicenseRequest) (*dto.LicenseResponse, error) {
	status := entity.LicenseStatus(req.Status)
	if !status.IsValid() {
		return nil, ErrLicenseInvalidStatus
	}

	issueDate, err := parseDate(req.IssueDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	expiryDate, err := parseDate(req.ExpiryDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	license := &entity.License{
		DoctorID:      req.DoctorID,
		LicenseNumber: req.LicenseNumber,
		LicenseType:   req.LicenseType,
		State:         req.State,
		IssueDate:     issueDate,
		ExpiryDate:    expiryDate,
		Status:        status,
	}
	if err := u.licenseRepo.Create(tx, license); err != nil {
		u.log.Warnf("Failed to create license: %+v", err)
		if isForeignKeyError(err, "doctor_id") {
			return nil, ErrLicenseDoctorMissing
		}
		if isCheckConstraintError(err, "status") {
			return nil, ErrLicenseInvalidStatus
		}
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.rosterCache.Invalidate(ctx)

	return converter.LicenseToResponse(license), nil
}

func (u *licenseUsecase) GetLicense(ctx context.Context, licenseID int) (*dto.LicenseResponse, error) {
	license, err := u.licenseRepo.FindByID(u.db.WithContext(ctx), licenseID)
	if err != nil {
		u.log.Warnf("Failed to find license: %+v", err)
		return nil, err
	}
	if license == nil {
		return nil, ErrLicenseNotFound
	}

	return converter.LicenseToResponse(license), nil
}

func (u *licenseUsecase) GetLicensesByDoctor(ctx context.Context, doctorID int) (*dto.LicenseListResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	licenses, err := u.licenseRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find licenses: %+v", err)
		return nil, err
	}

	responses := converter.LicensesToResponses(licenses)

	return &dto.LicenseListResponse{
		Licenses: responses,
		Total:    len(responses),
	}, nil
}

func (u *licenseUsecase) GetAllLicenses(ctx context.Context) (*dto.LicenseListResponse, error) {
	licenses, err := u.licenseRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all licenses: %+v", err)
		return nil, err
	}

	responses := converter.LicensesToResponses(licenses)

	return &dto.LicenseListResponse{
		Licenses: responses,
		Total:    len(responses),
	}, nil
}

func (u *licenseUsecase) UpdateLicense(ctx context.Context, licenseID int, req *dto.UpdateLicenseRequest) (*dto.LicenseResponse, error) {
	if req.Status != "" && !entity.LicenseStatus(req.Status).IsValid() {
		return nil, ErrLicenseInvalidStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	license, err := u.licenseRepo.FindByID(tx, licenseID)
	if err != nil {
		u.log.Warnf("Failed to find license: %+v", err)
		return nil, err
	}
	if license == nil {
		return nil, ErrLicenseNotFound
	}

	if req.LicenseNumber != "" {
		license.LicenseNumber = req.LicenseNumber
	}
	if req.LicenseType != "" {
		license.LicenseType = req.LicenseType
	}
	if req.State != "" {
		license.State = req.State
	}
	if req.IssueDate != "" {
		issueDate, err := parseDate(req.IssueDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		license.IssueDate = issueDate
	}
	if req.ExpiryDate != "" {
		expiryDate, err := parseDate(req.ExpiryDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		license.ExpiryDate = expiryDate
	}
	if req.Status != "" {
		// No transition ordering is enforced; any of the four values
		// may replace any other.
		license.Status = entity.LicenseStatus(req.Status)
	}

	if err := u.licenseRepo.Update(tx, license); err != nil {
		u.log.Warnf("Failed to update license: %+v", err)
		if isCheckConstraintError(err, "status") {
			return nil, ErrLicenseInvalidStatus
		}
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.rosterCache.Invalidate(ctx)

	return converter.LicenseToResponse(license), nil
}

func (u *licenseUsecase) DeleteLicense(ctx context.Context, licenseID int) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.licenseRepo.Delete(tx, licenseID)
	if err != nil {
		u.log.Warnf("Failed to delete license: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrLicenseNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.rosterCache.Invalidate(ctx)

	return nil
}
