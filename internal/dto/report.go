package dto

import "github.com/harold2001/financer-manager-app/pkg/report"

type ReportPeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type ReportSummaryResponse struct {
	Period               ReportPeriod           `json:"period"`
	Income               float64                `json:"income"`
	Expenses             float64                `json:"expenses"`
	Balance              float64                `json:"balance"`
	TransactionCount     int                    `json:"transaction_count"`
	AverageDailySpending float64                `json:"average_daily_spending"`
	DaysWithSpending     int                    `json:"days_with_spending"`
	SavingsRate          *float64               `json:"savings_rate,omitempty"` // absent when there is no income
	CategorySpending     map[string]float64     `json:"category_spending"`
	IncomeByCategory     map[string]float64     `json:"income_by_category"`
	DailySpending        map[string]float64     `json:"daily_spending"`
	TopExpenseCategories []report.CategoryShare `json:"top_expense_categories"`
	TopIncomeCategories  []report.CategoryShare `json:"top_income_categories"`
}
