package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mansoorceksport/fitpro/internal/domain"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

// ExportService uploads a JSON snapshot of a user's progress to object storage
type ExportService struct {
	userRepo        domain.UserRepository
	progressRepo    domain.ProgressRepository
	progressService *ProgressService
	files           domain.FileRepository
}

// NewExportService creates the service. files may be nil when object storage is not configured.
func NewExportService(
	userRepo domain.UserRepository,
	progressRepo domain.ProgressRepository,
	progressService *ProgressService,
	files domain.FileRepository,
) *ExportService {
	return &ExportService{
		userRepo:        userRepo,
		progressRepo:    progressRepo,
		progressService: progressService,
		files:           files,
	}
}

func (s *ExportService) Export(ctx context.Context, userID string) (*domain.ExportResult, error) {
	if s.files == nil {
		return nil, domain.ErrExportUnavailable
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats, err := s.progressService.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}
	sessions, err := s.progressRepo.ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	body, err := json.MarshalIndent(domain.ProgressExport{
		Profile:  user,
		Stats:    stats.Stats,
		Sessions: sessions,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}

	key := fmt.Sprintf("exports/%s/%s.json", userID, ulid.Make().String())
	url, err := s.files.Upload(ctx, body, key, "application/json")
	if err != nil {
		return nil, fmt.Errorf("failed to upload export: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  userID,
		"key":      key,
		"sessions": len(sessions),
	}).Info("progress exported")

	return &domain.ExportResult{Key: key, URL: url}, nil
}
