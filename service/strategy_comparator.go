package service

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"rehab-roi/domain"
)

type strategyProfile struct {
	holdMonths int
	pros       []string
	cons       []string
}

var comparisonProfiles = map[domain.Strategy]strategyProfile{
	domain.StrategyFlip: {
		holdMonths: 6,
		pros:       []string{"Quick return of capital", "No landlord responsibilities", "Profit realized at sale"},
		cons:       []string{"Exposed to resale market swings", "Selling costs cut into margin", "Short-term gains taxed as income"},
	},
	domain.StrategyRental: {
		holdMonths: 12,
		pros:       []string{"Recurring monthly income", "Builds equity through loan paydown", "Benefits from appreciation"},
		cons:       []string{"Capital tied up long term", "Tenant and maintenance management", "Vacancy risk"},
	},
	domain.StrategyWholetail: {
		holdMonths: 3,
		pros:       []string{"Fastest turnaround", "Light rehab scope", "Lower execution risk"},
		cons:       []string{"Sells below full ARV", "Thinner margins", "Depends on buyers accepting as-is condition"},
	},
}

// CompareStrategies evaluates the input under flip, rental (when the property
// has rent) and wholetail with their typical hold periods, and ranks them by
// annualized ROI. The evaluations run concurrently.
func CompareStrategies(ctx context.Context, input domain.ROIInput) (domain.StrategyComparison, error) {
	candidates := []domain.Strategy{domain.StrategyFlip}
	if input.MonthlyRent > 0 {
		candidates = append(candidates, domain.StrategyRental)
	}
	candidates = append(candidates, domain.StrategyWholetail)

	entries := make([]domain.StrategyComparisonEntry, len(candidates))
	g, ctx := errgroup.WithContext(ctx)
	for i, strategy := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			profile := comparisonProfiles[strategy]

			run := input
			run.Strategy = strategy
			run.HoldPeriodMonths = profile.holdMonths

			result, err := CalculateROI(run)
			if err != nil {
				return fmt.Errorf("evaluating %s: %w", strategy, err)
			}

			entries[i] = domain.StrategyComparisonEntry{
				Strategy:       strategy,
				ROI:            result.AnnualizedROI,
				Risk:           result.RiskFactors.OverallRisk,
				TimelineMonths: profile.holdMonths,
				CashRequired:   result.TotalInvestment,
				Pros:           profile.pros,
				Cons:           profile.cons,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.StrategyComparison{}, err
	}

	// Ordenar por ROI anualizado descendente
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ROI > entries[j].ROI
	})

	best := entries[0]
	return domain.StrategyComparison{
		Strategies: entries,
		Recommendation: fmt.Sprintf("%s offers the highest annualized ROI at %.1f%% over %d months (%s risk)",
			best.Strategy, best.ROI, best.TimelineMonths, best.Risk),
	}, nil
}
