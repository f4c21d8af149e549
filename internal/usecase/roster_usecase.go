package usecase

import (
	"context"

	"provider-directory/internal/converter"
	"provider-directory/internal/delivery/dto"
	"provider-directory/internal/domain/repository"
	"provider-directory/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type RosterUsecase interface {
	GetRoster(ctx context.Context) (*dto.RosterResponse, error)
}

type rosterUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	rosterRepo  repository.RosterRepository
	rosterCache service.RosterCache
}

func NewRosterUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	rosterRepo repository.RosterRepository,
	rosterCache service.RosterCache,
) RosterUsecase {
	return &rosterUsecase{
		db:          db,
		log:         log,
		rosterRepo:  rosterRepo,
		rosterCache: rosterCache,
	}
}

// GetRoster returns the flattened doctor/practice/license listing. The
// report is read-through cached; any write to the underlying tables
// invalidates the cache, so a hit reflects the last committed state.
func (u *rosterUsecase) GetRoster(ctx context.Context) (*dto.RosterResponse, error) {
	if entries, ok := u.rosterCache.Get(ctx); ok {
		responses := converter.RosterEntriesToResponses(entries)
		return &dto.RosterResponse{Entries: responses, Total: len(responses)}, nil
	}

	entries, err := u.rosterRepo.List(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to run roster query: %+v", err)
		return nil, err
	}

	u.rosterCache.Set(ctx, entries)

	responses := converter.RosterEntriesToResponses(entries)
	return &dto.RosterResponse{Entries: responses, Total: len(responses)}, nil
}
