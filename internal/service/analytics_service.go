package service

import (
	"context"
	"courses_platform_backend/internal/model"
	"courses_platform_backend/internal/repository"
	"courses_platform_backend/pkg/logger"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// topMaterialsLimit is the fixed ranking depth of the top-materials view.
const topMaterialsLimit = 5

// courseStatsCacheTTL bounds how stale a cached course-statistics payload
// may be.
const courseStatsCacheTTL = time.Minute

// AnalyticsService turns raw activity rows into derived metrics. Every
// computation is a pure pass over a snapshot read from the repositories;
// nothing here writes store state.
type AnalyticsService struct {
	ActivityRepo *repository.ActivityRepository
	MaterialRepo *repository.MaterialRepository
	Redis        *redis.Client
}

func NewAnalyticsService(
	activityRepo *repository.ActivityRepository,
	materialRepo *repository.MaterialRepository,
	rdb *redis.Client,
) *AnalyticsService {
	return &AnalyticsService{
		ActivityRepo: activityRepo,
		MaterialRepo: materialRepo,
		Redis:        rdb,
	}
}

// UserProgress groups the user's activities by course and reports standing
// per course. total_materials counts every material of the course, not just
// the ones the user touched.
func (s *AnalyticsService) UserProgress(userID uint) (map[uint]*model.CourseProgress, error) {
	rows, err := s.ActivityRepo.FindDetailed(repository.ActivityFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	progress := computeUserProgress(rows)

	for courseID, p := range progress {
		total, err := s.MaterialRepo.CountByCourse(courseID)
		if err != nil {
			return nil, err
		}
		p.TotalMaterials = int(total)
		if total > 0 {
			p.CompletionPercentage = float64(p.CompletedMaterials) / float64(total) * 100
		}
	}

	return progress, nil
}

// CourseStatistics aggregates all activity on a course's materials. The
// result is cached briefly in Redis; a cache miss or unreachable cache
// falls through to a fresh computation.
func (s *AnalyticsService) CourseStatistics(courseID uint) (*model.CourseStatistics, error) {
	cacheKey := fmt.Sprintf("analytics:course:%d:statistics", courseID)

	if s.Redis != nil {
		if val, err := s.Redis.Get(context.Background(), cacheKey).Result(); err == nil {
			var cached model.CourseStatistics
			if json.Unmarshal([]byte(val), &cached) == nil {
				return &cached, nil
			}
		}
	}

	rows, err := s.ActivityRepo.FindDetailed(repository.ActivityFilter{CourseID: courseID})
	if err != nil {
		return nil, err
	}

	stats := computeCourseStatistics(rows)

	if s.Redis != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := s.Redis.Set(context.Background(), cacheKey, data, courseStatsCacheTTL).Err(); err != nil {
				logger.Log.Warn("course statistics cache write failed",
					zap.Uint("courseId", courseID), zap.Error(err))
			}
		}
	}

	return stats, nil
}

// DailyCompletions counts "complete" actions per calendar date for one
// course. Dates without completions are absent from the map.
func (s *AnalyticsService) DailyCompletions(courseID uint) (map[string]int, error) {
	rows, err := s.ActivityRepo.FindDetailed(repository.ActivityFilter{
		CourseID: courseID,
		Action:   model.ActionComplete,
	})
	if err != nil {
		return nil, err
	}

	return computeDailyCompletions(rows), nil
}

// TopMaterials ranks a course's materials by total interaction count, any
// action included.
func (s *AnalyticsService) TopMaterials(courseID uint) ([]model.TopMaterial, error) {
	rows, err := s.ActivityRepo.FindDetailed(repository.ActivityFilter{CourseID: courseID})
	if err != nil {
		return nil, err
	}

	return computeTopMaterials(rows, topMaterialsLimit), nil
}

// CourseAverageTestScore averages scored quiz activity across a course.
func (s *AnalyticsService) CourseAverageTestScore(courseID uint) (*model.AverageTestScore, error) {
	rows, err := s.ActivityRepo.FindDetailed(repository.ActivityFilter{
		CourseID:     courseID,
		MaterialType: model.Quiz,
	})
	if err != nil {
		return nil, err
	}

	return &model.AverageTestScore{AvgTestScore: computeAverageScore(rows)}, nil
}

// UserAverageTestScore averages scored quiz activity for one user across
// all courses.
func (s *AnalyticsService) UserAverageTestScore(userID uint) (*model.AverageTestScore, error) {
	rows, err := s.ActivityRepo.FindDetailed(repository.ActivityFilter{
		UserID:       userID,
		MaterialType: model.Quiz,
	})
	if err != nil {
		return nil, err
	}

	return &model.AverageTestScore{AvgTestScore: computeAverageScore(rows)}, nil
}

// computeUserProgress folds the user's joined rows into one CourseProgress
// per course. TotalMaterials and CompletionPercentage are filled in later
// from the store-wide material count.
func computeUserProgress(rows []model.ActivityDetail) map[uint]*model.CourseProgress {
	progress := make(map[uint]*model.CourseProgress)
	completed := make(map[uint]map[uint]bool)
	scoreSums := make(map[uint]float64)
	scoreCounts := make(map[uint]int)

	for _, row := range rows {
		p, ok := progress[row.CourseID]
		if !ok {
			p = &model.CourseProgress{CourseTitle: row.CourseTitle}
			progress[row.CourseID] = p
			completed[row.CourseID] = make(map[uint]bool)
		}

		if row.Duration != nil {
			p.TotalTime += *row.Duration
		}
		if row.Action == model.ActionComplete {
			completed[row.CourseID][row.MaterialID] = true
		}
		if row.Score != nil {
			scoreSums[row.CourseID] += *row.Score
			scoreCounts[row.CourseID]++
		}
	}

	for courseID, p := range progress {
		p.CompletedMaterials = len(completed[courseID])
		if n := scoreCounts[courseID]; n > 0 {
			p.AvgScore = scoreSums[courseID] / float64(n)
		}
	}

	return progress
}

func computeCourseStatistics(rows []model.ActivityDetail) *model.CourseStatistics {
	stats := &model.CourseStatistics{}
	students := make(map[uint]bool)
	var scoreSum float64
	var scoreCount int

	for _, row := range rows {
		students[row.UserID] = true
		if row.Duration != nil {
			stats.TotalTimeSpent += *row.Duration
		}
		if row.Score != nil {
			scoreSum += *row.Score
			scoreCount++
		}
		if row.Action == model.ActionComplete {
			stats.TotalCompletions++
		}
	}

	stats.TotalStudents = len(students)
	if scoreCount > 0 {
		stats.AverageScore = scoreSum / float64(scoreCount)
	}
	if stats.TotalStudents > 0 {
		stats.EngagementRate = float64(stats.TotalCompletions) / float64(stats.TotalStudents)
	}

	return stats
}

func computeDailyCompletions(rows []model.ActivityDetail) map[string]int {
	daily := make(map[string]int)
	for _, row := range rows {
		if row.Action != model.ActionComplete {
			continue
		}
		daily[row.Timestamp.Format("2006-01-02")]++
	}
	return daily
}

// computeTopMaterials orders by activity count descending, material id
// ascending on equal counts so the ranking is deterministic.
func computeTopMaterials(rows []model.ActivityDetail, limit int) []model.TopMaterial {
	counts := make(map[uint]*model.TopMaterial)
	for _, row := range rows {
		m, ok := counts[row.MaterialID]
		if !ok {
			m = &model.TopMaterial{
				MaterialID:    row.MaterialID,
				MaterialTitle: row.MaterialTitle,
			}
			counts[row.MaterialID] = m
		}
		m.ActivityCount++
	}

	ranked := make([]model.TopMaterial, 0, len(counts))
	for _, m := range counts {
		ranked = append(ranked, *m)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].ActivityCount != ranked[j].ActivityCount {
			return ranked[i].ActivityCount > ranked[j].ActivityCount
		}
		return ranked[i].MaterialID < ranked[j].MaterialID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// computeAverageScore means the non-null scores in rows, 0 when none exist.
// Zero-as-absence is the published contract for every average here.
func computeAverageScore(rows []model.ActivityDetail) float64 {
	var sum float64
	var count int
	for _, row := range rows {
		if row.Score != nil {
			sum += *row.Score
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
