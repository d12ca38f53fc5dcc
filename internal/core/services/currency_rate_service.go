package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/saragoldblat100/br-sales/internal/apperrors"
	"github.com/saragoldblat100/br-sales/internal/core/domain"
	"github.com/saragoldblat100/br-sales/internal/core/ports/gateways"
	portsrepo "github.com/saragoldblat100/br-sales/internal/core/ports/repositories"
	portssvc "github.com/saragoldblat100/br-sales/internal/core/ports/services"
	"github.com/saragoldblat100/br-sales/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

const (
	defaultRateFetchTimeout = 5 * time.Second
	defaultRateListLimit    = 30
)

var (
	errBankSourceDisabled = errors.New("bank rate source is disabled")
	errTodaysRateInactive = errors.New("today's stored currency rate is inactive")
)

// currencyRateService resolves the USD to ILS rate of the day.
type currencyRateService struct {
	BaseService
	rateRepo      portsrepo.CurrencyRateRepositoryFacade
	resolver      *ruleResolver[domain.CurrencyCode, domain.CurrencyRate]
	bankSource    gateways.BankRateSource
	location      *time.Location
	defaultMargin decimal.Decimal
	fetchTimeout  time.Duration
	now           func() time.Time

	// fetches collapses concurrent same-day bank fetches within this process.
	// The storage-level insert-if-absent covers other processes.
	fetches singleflight.Group
}

// CurrencyRateOption is a functional option for configuring the currency rate service
type CurrencyRateOption func(*currencyRateService)

// WithBankRateSource sets the external source used when today's rate is missing.
// Without one, the service only serves stored rates.
func WithBankRateSource(source gateways.BankRateSource) CurrencyRateOption {
	return func(s *currencyRateService) {
		s.bankSource = source
	}
}

// WithBusinessLocation sets the time zone that decides what "today" is.
func WithBusinessLocation(loc *time.Location) CurrencyRateOption {
	return func(s *currencyRateService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithDefaultRateMargin sets the margin applied to a fetched rate when no earlier rate exists to carry it over from.
func WithDefaultRateMargin(margin decimal.Decimal) CurrencyRateOption {
	return func(s *currencyRateService) {
		s.defaultMargin = margin
	}
}

// WithFetchTimeout bounds each bank fetch.
func WithFetchTimeout(timeout time.Duration) CurrencyRateOption {
	return func(s *currencyRateService) {
		if timeout > 0 {
			s.fetchTimeout = timeout
		}
	}
}

// WithCurrencyRateClock replaces the wall clock, for tests.
func WithCurrencyRateClock(now func() time.Time) CurrencyRateOption {
	return func(s *currencyRateService) {
		s.now = now
	}
}

// NewCurrencyRateService creates a new currency rate service with the provided options
func NewCurrencyRateService(repo portsrepo.CurrencyRateRepositoryFacade, options ...CurrencyRateOption) portssvc.CurrencyRateSvcFacade {
	svc := &currencyRateService{
		rateRepo:      repo,
		resolver:      newRuleResolver[domain.CurrencyCode, domain.CurrencyRate]("currency rate", repo),
		location:      time.UTC,
		defaultMargin: decimal.Zero,
		fetchTimeout:  defaultRateFetchTimeout,
		now:           time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.CurrencyRateSvcFacade = (*currencyRateService)(nil)

// today returns the current business day at midnight UTC.
func (s *currencyRateService) today() time.Time {
	return domain.CalendarDay(s.now().In(s.location))
}

// latestStored returns the most recent active rate on or before day, or nil.
func (s *currencyRateService) latestStored(ctx context.Context, day time.Time) (*domain.CurrencyRate, error) {
	version, err := s.resolver.resolveActiveAsOf(ctx, domain.CurrencyUSD, day)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &version.Value, nil
}

// CurrentRate walks three stages: today's stored rate, a freshly fetched and
// stored rate, then the most recent stored rate of any day.
func (s *currencyRateService) CurrentRate(ctx context.Context) (*domain.CurrencyRate, error) {
	today := s.today()

	latest, err := s.latestStored(ctx, today)
	if err != nil {
		s.LogError(ctx, err, "Failed to read stored currency rates")
		return nil, fmt.Errorf("failed to resolve currency rate: %w", err)
	}
	if latest != nil && latest.IsFor(today) {
		return latest, nil
	}

	fetched, fetchErr := s.fetchToday(ctx, today, latest)
	if fetchErr == nil {
		return fetched, nil
	}

	if latest != nil {
		s.LogWarn(ctx, fetchErr, "Could not obtain today's currency rate, using most recent stored rate",
			slog.String("rate_date", latest.RateDate.Format(time.DateOnly)))
		return latest, nil
	}

	s.LogError(ctx, fetchErr, "No currency rate available")
	return nil, fmt.Errorf("%w: %v", apperrors.ErrNoCurrencyRateAvailable, fetchErr)
}

// RefreshToday fetches and stores today's rate. An already stored rate for
// today is kept and returned.
func (s *currencyRateService) RefreshToday(ctx context.Context) (*domain.CurrencyRate, error) {
	if s.bankSource == nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, errBankSourceDisabled)
	}
	today := s.today()

	previous, err := s.latestStored(ctx, today)
	if err != nil {
		s.LogError(ctx, err, "Failed to read stored currency rates")
		return nil, fmt.Errorf("failed to refresh currency rate: %w", err)
	}

	rate, err := s.fetchToday(ctx, today, previous)
	if err != nil {
		s.LogError(ctx, err, "Failed to refresh today's currency rate")
		return nil, fmt.Errorf("failed to refresh currency rate: %w", err)
	}
	return rate, nil
}

// ListRates returns stored rates newest first.
func (s *currencyRateService) ListRates(ctx context.Context, limit int, nextToken *string) ([]domain.CurrencyRate, *string, error) {
	if limit <= 0 {
		limit = defaultRateListLimit
	}

	var before *time.Time
	if nextToken != nil && *nextToken != "" {
		day, err := pagination.DecodeDayToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		before = &day
	}

	rates, err := s.rateRepo.ListRates(ctx, domain.CurrencyUSD, limit+1, before)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currency rates")
		return nil, nil, fmt.Errorf("failed to list currency rates: %w", err)
	}

	var next *string
	if len(rates) > limit {
		rates = rates[:limit]
		token := pagination.EncodeDayToken(rates[limit-1].RateDate)
		next = &token
	}
	return rates, next, nil
}

func (s *currencyRateService) fetchToday(ctx context.Context, today time.Time, previous *domain.CurrencyRate) (*domain.CurrencyRate, error) {
	if s.bankSource == nil {
		return nil, errBankSourceDisabled
	}

	v, err, shared := s.fetches.Do(today.Format(time.DateOnly), func() (any, error) {
		return s.fetchAndStore(ctx, today, previous)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.LogDebug(ctx, "Joined in-flight currency rate fetch", slog.String("rate_date", today.Format(time.DateOnly)))
	}

	rate := *v.(*domain.CurrencyRate)
	return &rate, nil
}

// fetchAndStore is shared by every caller joined on the same day, so it runs
// detached from the leading caller's cancellation.
func (s *currencyRateService) fetchAndStore(ctx context.Context, today time.Time, previous *domain.CurrencyRate) (*domain.CurrencyRate, error) {
	fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.fetchTimeout)
	defer cancel()

	quote, err := s.bankSource.FetchUSDRate(fetchCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bank rate: %w", err)
	}
	if !quote.Rate.IsPositive() {
		return nil, fmt.Errorf("bank returned a non-positive rate %s", quote.Rate)
	}

	margin := s.defaultMargin
	if previous != nil {
		margin = previous.MarginPercentage
	}

	rate := domain.NewCurrencyRate(uuid.NewString(), today, quote.Rate, margin, quote.Source)
	rate.AuditFields = domain.NewAuditFields(systemUserID, s.now())

	stored, created, err := s.rateRepo.InsertRateIfAbsent(fetchCtx, rate)
	if err != nil {
		return nil, fmt.Errorf("failed to store currency rate: %w", err)
	}
	if !stored.IsActive {
		return nil, fmt.Errorf("%w: %s", errTodaysRateInactive, stored.RateID)
	}

	if created {
		s.LogInfo(ctx, "Stored daily currency rate",
			slog.String("rate_date", today.Format(time.DateOnly)),
			slog.String("usd_rate", rate.USDRate.String()),
			slog.String("usd_rate_with_margin", rate.USDRateWithMargin.String()))
	} else {
		s.LogInfo(ctx, "Daily currency rate already stored, using existing record",
			slog.String("rate_date", today.Format(time.DateOnly)))
	}
	return stored, nil
}
