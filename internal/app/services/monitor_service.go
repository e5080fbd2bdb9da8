package services

import (
	"context"
	"fmt"

	"github.com/gocode/elearning/internal/app/models"
	"github.com/gocode/elearning/internal/app/models/dto"
	"github.com/gocode/elearning/internal/app/repositories"
	"github.com/gocode/elearning/internal/pkg/apperrors"
)

// MonitorService builds the instructor's enrollment dashboard
type MonitorService interface {
	GetDashboard(ctx context.Context, instructor models.Principal) ([]dto.DashboardItem, error)
}

// monitorServiceImpl implements MonitorService
type monitorServiceImpl struct {
	enrollmentRepo repositories.IEnrollmentRepository
}

// NewMonitorService creates a new MonitorService
func NewMonitorService(enrollmentRepo repositories.IEnrollmentRepository) MonitorService {
	return &monitorServiceImpl{enrollmentRepo: enrollmentRepo}
}

// GetDashboard lists enrollments in the caller's courses, newest first. Callers who teach
// nothing get an empty list.
func (s *monitorServiceImpl) GetDashboard(ctx context.Context, instructor models.Principal) ([]dto.DashboardItem, error) {
	if instructor.Anonymous() {
		return nil, apperrors.ErrUnauthenticated
	}

	rows, err := s.enrollmentRepo.ListForInstructor(ctx, instructor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}

	items := make([]dto.DashboardItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.NewDashboardItem(row))
	}
	return items, nil
}
