package services

import (
	"time"

	"github.com/DonAdhyatma/fe-final-project/repository"
)

type ReportService struct {
	Repo *repository.ReportRepository
}

func NewReportService(repo *repository.ReportRepository) *ReportService {
	return &ReportService{Repo: repo}
}

// normalizeRange fills missing bounds: default is the last 30 days, and the
// upper bound is exclusive.
func normalizeRange(from, to *time.Time) (time.Time, time.Time) {
	now := time.Now()
	end := now
	if to != nil {
		end = *to
	}
	start := end.AddDate(0, 0, -30)
	if from != nil {
		start = *from
	}
	return start, end
}

func (s *ReportService) SalesOverview(from, to *time.Time) (*repository.SalesOverview, error) {
	start, end := normalizeRange(from, to)
	return s.Repo.SalesOverview(start, end)
}

func (s *ReportService) SalesByCategory(from, to *time.Time) ([]repository.CategorySales, error) {
	start, end := normalizeRange(from, to)
	return s.Repo.SalesByCategory(start, end)
}

func (s *ReportService) SalesByPeriod(from, to *time.Time) ([]repository.PeriodSales, error) {
	start, end := normalizeRange(from, to)
	return s.Repo.SalesByPeriod(start, end)
}

func (s *ReportService) TopMenuItems(from, to *time.Time, limit int) ([]repository.TopMenuItem, error) {
	start, end := normalizeRange(from, to)
	return s.Repo.TopMenuItems(start, end, limit)
}

func (s *ReportService) Dashboard() (*repository.DashboardStats, error) {
	return s.Repo.Dashboard(time.Now())
}
