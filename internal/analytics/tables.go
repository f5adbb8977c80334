package analytics

import "github.com/quotable/leadintel/internal/domain"

// ConversionShare is the fraction of responses assumed to convert.
const ConversionShare = 0.4

func regionalTable() []domain.RegionalPerformance {
	return []domain.RegionalPerformance{
		{Region: "North America", Leads: 145, OpenRate: 31.2, ClickRate: 15.6, ResponseRate: 6.1},
		{Region: "Europe", Leads: 128, OpenRate: 28.4, ClickRate: 12.1, ResponseRate: 4.8},
		{Region: "Asia Pacific", Leads: 97, OpenRate: 22.7, ClickRate: 8.9, ResponseRate: 3.2},
		{Region: "Latin America", Leads: 64, OpenRate: 25.3, ClickRate: 10.2, ResponseRate: 3.9},
	}
}

func timeSeries() []domain.TimeSeriesPoint {
	return []domain.TimeSeriesPoint{
		{Date: "2024-01-01", OpenRate: 24.5, ClickRate: 9.8, ResponseRate: 3.2},
		{Date: "2024-01-08", OpenRate: 26.2, ClickRate: 10.5, ResponseRate: 3.8},
		{Date: "2024-01-15", OpenRate: 27.8, ClickRate: 11.2, ResponseRate: 4.1},
		{Date: "2024-01-22", OpenRate: 29.3, ClickRate: 12.7, ResponseRate: 4.5},
		{Date: "2024-01-29", OpenRate: 30.1, ClickRate: 13.4, ResponseRate: 4.9},
		{Date: "2024-02-05", OpenRate: 28.7, ClickRate: 12.9, ResponseRate: 4.7},
		{Date: "2024-02-12", OpenRate: 27.5, ClickRate: 11.8, ResponseRate: 4.3},
	}
}

// Benchmarks returns a fresh copy of the reference rates.
func Benchmarks() domain.Benchmarks {
	return domain.Benchmarks{
		Industry: domain.Metrics{OpenRate: 22.5, ClickRate: 9.2, ResponseRate: 3.5, ConversionRate: 1.2},
		Regional: map[string]domain.Metrics{
			"North America": {OpenRate: 24.8, ClickRate: 10.5, ResponseRate: 4.1, ConversionRate: 1.5},
			"Europe":        {OpenRate: 23.2, ClickRate: 9.7, ResponseRate: 3.8, ConversionRate: 1.3},
			"Asia Pacific":  {OpenRate: 19.5, ClickRate: 7.8, ResponseRate: 2.9, ConversionRate: 0.9},
			"Latin America": {OpenRate: 21.7, ClickRate: 8.5, ResponseRate: 3.2, ConversionRate: 1.1},
		},
	}
}

func dashboardSummary() domain.DashboardAnalytics {
	return domain.DashboardAnalytics{
		TotalLeads:          2847,
		QualifiedLeads:      1642,
		ActiveCampaigns:     8,
		AverageOpenRate:     27.4,
		AverageClickRate:    12.2,
		AverageResponseRate: 4.7,
		TopPerformingRegion: "Europe",
		ConversionTrend: []domain.ConversionPoint{
			{Name: "Mon", Conversions: 12, Leads: 45},
			{Name: "Tue", Conversions: 19, Leads: 52},
			{Name: "Wed", Conversions: 15, Leads: 38},
			{Name: "Thu", Conversions: 25, Leads: 67},
			{Name: "Fri", Conversions: 22, Leads: 58},
			{Name: "Sat", Conversions: 18, Leads: 41},
			{Name: "Sun", Conversions: 28, Leads: 73},
		},
	}
}

// predictionFactors are reported with every prediction, in this order.
func predictionFactors() []domain.Factor {
	return []domain.Factor{
		{Name: "Subject line length", Impact: 3.2},
		{Name: "Personalization level", Impact: 2.8},
		{Name: "Call to action clarity", Impact: 2.5},
		{Name: "Email sending time", Impact: 2.1},
		{Name: "Content relevance", Impact: 1.9},
	}
}
