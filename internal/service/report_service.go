package service

import (
	"context"
	"time"

	"github.com/harold2001/financer-manager-app/internal/dto"
	"github.com/harold2001/financer-manager-app/internal/repository"
	"github.com/harold2001/financer-manager-app/pkg/report"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const topCategoryCount = 5

type ReportService struct {
	txRepo *repository.TransactionRepository
	logger *zap.Logger
}

func NewReportService(txRepo *repository.TransactionRepository, logger *zap.Logger) *ReportService {
	return &ReportService{
		txRepo: txRepo,
		logger: logger,
	}
}

// Summary aggregates the user's transactions over the requested date range.
// Empty bounds fall back to [first day of the current month, today].
func (s *ReportService) Summary(ctx context.Context, userID uuid.UUID, startDate, endDate string) (*dto.ReportSummaryResponse, error) {
	r := defaultRange(time.Now())
	if startDate != "" {
		r.Start = startDate
	}
	if endDate != "" {
		r.End = endDate
	}
	if _, err := parseDate(r.Start); err != nil {
		return nil, err
	}
	if _, err := parseDate(r.End); err != nil {
		return nil, err
	}

	transactions, err := s.txRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	records := make([]report.Record, 0, len(transactions))
	for _, tx := range transactions {
		records = append(records, report.Record{
			Type:     string(tx.Type),
			Amount:   tx.Amount,
			Category: tx.Category,
			Date:     tx.Date.Format(dateLayout),
		})
	}

	metrics := report.ComputeMetrics(records, r)
	return buildSummary(metrics, r), nil
}

func defaultRange(now time.Time) report.Range {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return report.Range{
		Start: firstOfMonth.Format(dateLayout),
		End:   now.Format(dateLayout),
	}
}

func buildSummary(m report.Metrics, r report.Range) *dto.ReportSummaryResponse {
	resp := &dto.ReportSummaryResponse{
		Period:               dto.ReportPeriod{StartDate: r.Start, EndDate: r.End},
		Income:               m.Income,
		Expenses:             m.Expenses,
		Balance:              m.Balance,
		TransactionCount:     m.TransactionCount,
		AverageDailySpending: m.AverageDailySpending,
		DaysWithSpending:     len(m.DailySpending),
		CategorySpending:     m.CategorySpending,
		IncomeByCategory:     m.IncomeByCategory,
		DailySpending:        m.DailySpending,
		TopExpenseCategories: report.TopCategories(m.CategorySpending, topCategoryCount),
		TopIncomeCategories:  report.TopCategories(m.IncomeByCategory, topCategoryCount),
	}

	if rate, ok := report.SavingsRate(m); ok {
		resp.SavingsRate = &rate
	}

	return resp
}
