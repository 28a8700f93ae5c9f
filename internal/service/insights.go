package service

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"wealthview/internal/entity"
	"wealthview/pkg/logger"
)

const maxInsights = 3

// InsightsService derives personalized suggestions from the user profile.
type InsightsService interface {
	GetInsights(ctx context.Context) ([]entity.Insight, error)
}

// NewInsightsService creates an insights service reading the live profile.
func NewInsightsService(profiles ProfileService, log *logger.Logger) InsightsService {
	return &insightsService{profiles: profiles, log: log}
}

type insightsService struct {
	profiles ProfileService
	log      *logger.Logger
}

// GetInsights returns at most 3 insights: a sector note, a goal note, and
// the standing earnings-report note, in that priority order.
func (s *insightsService) GetInsights(ctx context.Context) ([]entity.Insight, error) {
	profile, err := s.profiles.Load(ctx)
	if err != nil {
		return nil, err
	}

	insights := make([]entity.Insight, 0, maxInsights+1)

	switch profile.InvestmentCategories {
	case "tech":
		insights = append(insights, entity.Insight{
			Title:       "Diversification Opportunity",
			Description: "Your portfolio is heavily weighted in tech stocks. Consider adding consumer staples or healthcare to balance risk.",
			Category:    "Portfolio",
			ActionText:  "View Recommendations",
		})
	case "healthcare":
		insights = append(insights, entity.Insight{
			Title:       "Sector Rotation Strategy",
			Description: "Healthcare is defensive - consider adding some growth-oriented tech stocks for better returns in bull markets.",
			Category:    "Portfolio",
			ActionText:  "View Recommendations",
		})
	}

	switch profile.FinancialGoals {
	case "retirement":
		savings, err := strconv.Atoi(profile.MonthlySavings)
		if err != nil {
			s.log.WarnContext(ctx, "Unparseable monthly savings, skipping retirement insight",
				logger.StringField("monthly_savings", profile.MonthlySavings))
			break
		}
		increase := int(math.Max(100, math.Round(float64(savings)*0.15)))
		insights = append(insights, entity.Insight{
			Title: "Retirement Contribution",
			Description: fmt.Sprintf(
				"Increasing your monthly contribution by $%d could boost your retirement fund by $%d over 20 years.",
				increase, increase*600),
			Category:   "Planning",
			ActionText: "Run Simulation",
		})
	case "house":
		insights = append(insights, entity.Insight{
			Title:       "Home Purchase Strategy",
			Description: "With your savings rate, you could reach a down payment goal faster by adjusting your investment allocation to lower-risk assets.",
			Category:    "Planning",
			ActionText:  "View Home Purchase Plan",
		})
	}

	insights = append(insights, entity.Insight{
		Title:       "Upcoming Earnings Reports",
		Description: "3 companies in your watchlist have earnings reports next week that may impact prices.",
		Category:    "Market",
		ActionText:  "See Details",
	})

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights, nil
}
