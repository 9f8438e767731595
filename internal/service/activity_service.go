package service

import (
	"courses_platform_backend/internal/model"
	"courses_platform_backend/internal/repository"
	"courses_platform_backend/internal/util"
	"courses_platform_backend/pkg/monitoring"
	"time"

	"gorm.io/gorm"
)

// ActivityService is the ingest path: one validated append per call, no
// dedup, no retries.
type ActivityService struct {
	ActivityRepo *repository.ActivityRepository
	UserRepo     *repository.UserRepository
	MaterialRepo *repository.MaterialRepository
}

func NewActivityService(
	activityRepo *repository.ActivityRepository,
	userRepo *repository.UserRepository,
	materialRepo *repository.MaterialRepository,
) *ActivityService {
	return &ActivityService{
		ActivityRepo: activityRepo,
		UserRepo:     userRepo,
		MaterialRepo: materialRepo,
	}
}

// Record appends one immutable activity row. The referenced user and
// material must exist; an explicit timestamp is preserved verbatim,
// otherwise server time is assigned. Returns the persisted row including
// its id.
func (s *ActivityService) Record(activity *model.Activity) error {
	if _, err := s.UserRepo.FindByID(activity.UserID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrUserNotFound
		}
		return err
	}
	if _, err := s.MaterialRepo.FindByID(activity.MaterialID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrMaterialNotFound
		}
		return err
	}

	if activity.Timestamp.IsZero() {
		activity.Timestamp = time.Now()
	}

	if err := s.ActivityRepo.Create(activity); err != nil {
		return err
	}

	monitoring.ActivityIngestCounter.Inc()
	return nil
}

func (s *ActivityService) List(userID, materialID uint, action string) ([]model.Activity, error) {
	return s.ActivityRepo.List(userID, materialID, action)
}
