package service

import (
	"context"
	"testing"

	"wealthview/internal/entity"
	"wealthview/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticProfileService struct {
	profile entity.UserProfile
}

func (s *staticProfileService) Load(context.Context) (entity.UserProfile, error) {
	return s.profile, nil
}

func (s *staticProfileService) Update(_ context.Context, update entity.UserProfileUpdate) (entity.UserProfile, error) {
	s.profile = update.Apply(s.profile)
	return s.profile, nil
}

func (s *staticProfileService) Subscribe() (<-chan entity.UserProfile, func()) {
	ch := make(chan entity.UserProfile)
	return ch, func() { close(ch) }
}

func insightsFor(t *testing.T, profile entity.UserProfile) []entity.Insight {
	t.Helper()
	svc := NewInsightsService(&staticProfileService{profile: profile}, logger.NewNop())
	insights, err := svc.GetInsights(context.Background())
	require.NoError(t, err)
	return insights
}

func TestInsights_DefaultProfile(t *testing.T) {
	insights := insightsFor(t, entity.DefaultUserProfile())

	require.Len(t, insights, 3)
	assert.Equal(t, "Diversification Opportunity", insights[0].Title)
	assert.Equal(t, "Retirement Contribution", insights[1].Title)
	// Defaults save $1500/month; 15% is $225, worth $135000 over 20 years.
	assert.Contains(t, insights[1].Description, "$225")
	assert.Contains(t, insights[1].Description, "$135000")
	assert.Equal(t, "Upcoming Earnings Reports", insights[2].Title)
}

func TestInsights_SmallSavingsFloorsAtHundred(t *testing.T) {
	profile := entity.DefaultUserProfile()
	profile.MonthlySavings = "200"

	insights := insightsFor(t, profile)

	require.Len(t, insights, 3)
	assert.Contains(t, insights[1].Description, "$100")
	assert.Contains(t, insights[1].Description, "$60000")
}

func TestInsights_HealthcareAndHouse(t *testing.T) {
	profile := entity.DefaultUserProfile()
	profile.InvestmentCategories = "healthcare"
	profile.FinancialGoals = "house"

	insights := insightsFor(t, profile)

	require.Len(t, insights, 3)
	assert.Equal(t, "Sector Rotation Strategy", insights[0].Title)
	assert.Equal(t, "Home Purchase Strategy", insights[1].Title)
	assert.Equal(t, "Upcoming Earnings Reports", insights[2].Title)
}

func TestInsights_NoMatchingRulesStillHasEarnings(t *testing.T) {
	profile := entity.DefaultUserProfile()
	profile.InvestmentCategories = "bonds"
	profile.FinancialGoals = "travel"

	insights := insightsFor(t, profile)

	require.Len(t, insights, 1)
	assert.Equal(t, "Upcoming Earnings Reports", insights[0].Title)
}

func TestInsights_BadSavingsSkipsRetirementInsight(t *testing.T) {
	profile := entity.DefaultUserProfile()
	profile.MonthlySavings = "a lot"

	insights := insightsFor(t, profile)

	require.Len(t, insights, 2)
	assert.Equal(t, "Diversification Opportunity", insights[0].Title)
	assert.Equal(t, "Upcoming Earnings Reports", insights[1].Title)
}
