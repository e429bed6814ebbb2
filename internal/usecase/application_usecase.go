package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/fadilmartias/talentflow/internal/dto"
	"github.com/fadilmartias/talentflow/internal/model"
	"github.com/fadilmartias/talentflow/internal/repository"
	"github.com/fadilmartias/talentflow/internal/service"
	"github.com/fadilmartias/talentflow/internal/util"
	"github.com/fadilmartias/talentflow/internal/validator"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const maxIDAttempts = 5

type ApplicationUsecase struct {
	store    *repository.ApplicationStore
	notifier service.DecisionNotifierInterface
	reviewer string
	now      func() time.Time
	newID    func() string
	log      *logrus.Entry
}

func NewApplicationUsecase(store *repository.ApplicationStore, notifier service.DecisionNotifierInterface, reviewer string, log *logrus.Logger) *ApplicationUsecase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ApplicationUsecase{
		store:    store,
		notifier: notifier,
		reviewer: reviewer,
		now:      time.Now,
		newID:    uuid.NewString,
		log:      log.WithField("component", "applications"),
	}
}

// stamp drops the monotonic reading so stored and reloaded times compare equal.
func (uc *ApplicationUsecase) stamp() time.Time {
	return uc.now().UTC().Round(0)
}

func (uc *ApplicationUsecase) Submit(ctx context.Context, draft dto.DraftApplication) (model.ApplicationRecord, error) {
	if errs := validator.Validate(draft); len(errs) > 0 {
		return model.ApplicationRecord{}, util.NewFormError("application is incomplete", errs)
	}

	var created model.ApplicationRecord
	_, err := uc.store.Mutate(ctx, func(records []model.ApplicationRecord) ([]model.ApplicationRecord, error) {
		var lastErr error
		for attempt := 0; attempt < maxIDAttempts; attempt++ {
			created = NewRecord(draft, uc.newID(), uc.stamp())
			next, err := AppendRecord(records, created)
			if err == nil {
				return next, nil
			}
			lastErr = err
		}
		return nil, lastErr
	})
	if err != nil {
		return model.ApplicationRecord{}, err
	}

	uc.log.WithFields(logrus.Fields{
		"application_id": created.ID,
		"position":       created.Position,
		"department":     created.Department,
	}).Info("application submitted")
	return created, nil
}

// Review resolves a pending application. An empty reviewer falls back to the configured name.
func (uc *ApplicationUsecase) Review(ctx context.Context, id, decision, reviewer string) (model.ApplicationRecord, error) {
	status, err := ParseDecision(decision)
	if err != nil {
		return model.ApplicationRecord{}, err
	}
	if reviewer == "" {
		reviewer = uc.reviewer
	}

	records, err := uc.store.Mutate(ctx, func(records []model.ApplicationRecord) ([]model.ApplicationRecord, error) {
		return ApplyReview(records, id, status, reviewer, uc.stamp())
	})
	if err != nil {
		if errors.Is(err, ErrIllegalTransition) {
			uc.log.WithField("application_id", id).Warn("rejected review of resolved application")
		}
		return model.ApplicationRecord{}, err
	}

	var reviewed model.ApplicationRecord
	for _, r := range records {
		if r.ID == id {
			reviewed = r
			break
		}
	}

	log := uc.log.WithFields(logrus.Fields{
		"application_id": reviewed.ID,
		"status":         reviewed.Status,
		"reviewed_by":    reviewed.ReviewedBy,
	})
	log.Info("application reviewed")
	if uc.notifier != nil {
		if err := uc.notifier.NotifyDecision(ctx, reviewed); err != nil {
			log.WithError(err).Error("could not deliver decision notification")
		}
	}
	return reviewed, nil
}

func (uc *ApplicationUsecase) Get(id string) (model.ApplicationRecord, error) {
	rec, ok := uc.store.Get(id)
	if !ok {
		return model.ApplicationRecord{}, ErrNotFound
	}
	return rec, nil
}

// List applies the search text and status filter; stats always cover the whole collection.
func (uc *ApplicationUsecase) List(search, status string) ([]model.ApplicationRecord, dto.StatsDTO, error) {
	filter, err := ParseStatusFilter(status)
	if err != nil {
		return nil, dto.StatsDTO{}, err
	}
	records := uc.store.Snapshot()
	return FilterApplications(records, search, filter), CountByStatus(records), nil
}

func (uc *ApplicationUsecase) Stats() dto.StatsDTO {
	return CountByStatus(uc.store.Snapshot())
}
