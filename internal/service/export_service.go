package service

import (
	"bytes"
	"context"
	"courses_platform_backend/internal/model"
	"courses_platform_backend/internal/repository"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// exportHeader is the frozen CSV column contract. Order and names must not
// change.
var exportHeader = []string{
	"user_id", "user_name", "user_email", "course_id", "course_title",
	"material_id", "material_title", "material_type", "action",
	"timestamp", "duration", "score", "meta",
}

// ExportService flattens joined activity rows into external
// representations. No aggregation happens here.
type ExportService struct {
	ActivityRepo *repository.ActivityRepository
	Storage      *StorageService
}

func NewExportService(activityRepo *repository.ActivityRepository, storage *StorageService) *ExportService {
	return &ExportService{
		ActivityRepo: activityRepo,
		Storage:      storage,
	}
}

// Rows returns every activity joined with its user, material and course,
// for the JSON list form of the export.
func (s *ExportService) Rows() ([]model.ActivityDetail, error) {
	rows, err := s.ActivityRepo.FindDetailed(repository.ActivityFilter{})
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.ActivityDetail{}
	}
	return rows, nil
}

// WriteCSV streams the full denormalized export. Absent duration/score
// become empty cells; meta is embedded as JSON text.
func (s *ExportService) WriteCSV(w io.Writer) error {
	rows, err := s.Rows()
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writer.Write(csvRecord(row)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ArchiveCSV writes the export to the storage provider and returns the
// stored object's URL.
func (s *ExportService) ArchiveCSV(ctx context.Context) (string, error) {
	var buf bytes.Buffer
	if err := s.WriteCSV(&buf); err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("exports/activities_%s_%s.csv",
		time.Now().Format("20060102T150405"), uuid.New().String()[:8])

	return s.Storage.Provider.Upload(ctx, objectName, &buf, int64(buf.Len()), "text/csv")
}

func csvRecord(row model.ActivityDetail) []string {
	duration := ""
	if row.Duration != nil {
		duration = strconv.FormatFloat(*row.Duration, 'f', -1, 64)
	}
	score := ""
	if row.Score != nil {
		score = strconv.FormatFloat(*row.Score, 'f', -1, 64)
	}
	meta := ""
	if len(row.Meta) > 0 {
		meta = string(row.Meta)
	}

	return []string{
		strconv.FormatUint(uint64(row.UserID), 10),
		row.UserName,
		row.UserEmail,
		strconv.FormatUint(uint64(row.CourseID), 10),
		row.CourseTitle,
		strconv.FormatUint(uint64(row.MaterialID), 10),
		row.MaterialTitle,
		string(row.MaterialType),
		row.Action,
		row.Timestamp.Format(time.RFC3339),
		duration,
		score,
		meta,
	}
}
