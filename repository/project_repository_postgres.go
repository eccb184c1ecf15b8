package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"rehab-roi/domain"
)

const selectProjectInput = `
	SELECT purchase_price, arv, total_rehab_cost, strategy,
	       hold_period_months, monthly_rent, vacancy_pct, property_management_pct,
	       appreciation_rate_pct, down_payment, loan_amount, interest_rate_pct
	FROM renovation_projects
	WHERE id = $1
`

// PostgresProjectRepository reads project records from the renovation_projects table.
type PostgresProjectRepository struct {
	db *sql.DB
}

func NewPostgresProjectRepository(db *sql.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

// OpenPostgres opens and pings a Postgres connection pool.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	return db, nil
}

// GetProjectInput loads a project's ROI input. Optional columns left NULL
// keep the defaults of domain.DefaultROIInput.
func (r *PostgresProjectRepository) GetProjectInput(ctx context.Context, id uuid.UUID) (domain.ROIInput, error) {
	var (
		strategy    string
		holdPeriod  sql.NullInt64
		monthlyRent sql.NullFloat64
		vacancy     sql.NullFloat64
		management  sql.NullFloat64
		appreciate  sql.NullFloat64
		downPayment sql.NullFloat64
		loanAmount  sql.NullFloat64
		interest    sql.NullFloat64
	)

	input := domain.DefaultROIInput()
	err := r.db.QueryRowContext(ctx, selectProjectInput, id.String()).Scan(
		&input.PurchasePrice,
		&input.ARV,
		&input.TotalRehabCost,
		&strategy,
		&holdPeriod,
		&monthlyRent,
		&vacancy,
		&management,
		&appreciate,
		&downPayment,
		&loanAmount,
		&interest,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ROIInput{}, ErrProjectNotFound
	}
	if err != nil {
		return domain.ROIInput{}, fmt.Errorf("loading project %s: %w", id, err)
	}

	input.Strategy = domain.Strategy(strategy)
	if holdPeriod.Valid {
		input.HoldPeriodMonths = int(holdPeriod.Int64)
	}
	setIfValid(&input.MonthlyRent, monthlyRent)
	setIfValid(&input.VacancyPct, vacancy)
	setIfValid(&input.PropertyManagementPct, management)
	setIfValid(&input.AppreciationRatePct, appreciate)
	setIfValid(&input.DownPayment, downPayment)
	setIfValid(&input.LoanAmount, loanAmount)
	setIfValid(&input.InterestRatePct, interest)

	return input, nil
}

func setIfValid(dst *float64, v sql.NullFloat64) {
	if v.Valid {
		*dst = v.Float64
	}
}
