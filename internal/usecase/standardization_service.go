package usecase

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain"
	"github.com/storefront/backend/internal/infrastructure/metrics"
)

// StandardizationService turns raw vendor batches into canonical products.
// Pipeline: flatten malformed envelopes -> classify -> vendor transform -> validate.
//
// Records that match no vendor are noise and are dropped silently. Records that
// are routed but fail coercion or validation are dropped too, counted in the
// report and summarized in one warning per batch, so a partly corrupt feed
// never fails the whole catalog.
type StandardizationService struct {
	validate *validator.Validate
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

// NewStandardizationService creates a standardization service
func NewStandardizationService(logger *zap.Logger, m *metrics.Metrics) *StandardizationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StandardizationService{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger.Named("standardize"),
		metrics:  m,
	}
}

// StandardizeMany standardizes a raw batch
func (s *StandardizationService) StandardizeMany(raw []domain.RawRecord) ([]domain.Product, domain.StandardizeReport) {
	return s.standardize(raw, 0)
}

// StandardizeItems standardizes a decoded JSON array. Entries that are not
// objects cannot be records; they are dropped and counted as NonObject.
func (s *StandardizationService) StandardizeItems(items []any) ([]domain.Product, domain.StandardizeReport) {
	records, nonObject := RecordsFromJSON(items)
	return s.standardize(records, nonObject)
}

func (s *StandardizationService) standardize(raw []domain.RawRecord, nonObject int) ([]domain.Product, domain.StandardizeReport) {
	report := domain.StandardizeReport{Input: len(raw) + nonObject, NonObject: nonObject}

	flat := FlattenMalformed(raw)
	report.Flattened = len(flat)

	products := make([]domain.Product, 0, len(flat))
	var failures []string

	for _, record := range flat {
		kind := Classify(record)
		if kind == domain.VendorUnrecognized {
			report.Unrecognized++
			continue
		}

		product, err := s.standardizeOne(kind, record)
		if err != nil {
			report.Invalid++
			failures = append(failures, err.Error())
			continue
		}
		if DiscountIgnored(record, product) {
			report.DiscountsIgnored++
			failures = append(failures, fmt.Sprintf("%s %s: unparseable discountValue ignored", product.Provider, product.ID))
		}
		products = append(products, *product)
	}
	report.Accepted = len(products)

	if report.Invalid > 0 || report.NonObject > 0 || report.DiscountsIgnored > 0 {
		s.logger.Warn("Dropped invalid vendor data",
			zap.Int("invalid", report.Invalid),
			zap.Int("non_object", report.NonObject),
			zap.Int("discounts_ignored", report.DiscountsIgnored),
			zap.Int("accepted", report.Accepted),
			zap.Strings("errors", failures),
		)
	}
	s.logger.Debug("Standardized batch",
		zap.Int("input", report.Input),
		zap.Int("flattened", report.Flattened),
		zap.Int("unrecognized", report.Unrecognized),
		zap.Int("accepted", report.Accepted),
	)
	s.metrics.RecordStandardize(report.Accepted, report.Unrecognized, report.Invalid, report.NonObject)

	return products, report
}

func (s *StandardizationService) standardizeOne(kind domain.VendorKind, record domain.RawRecord) (*domain.Product, error) {
	product, err := Normalize(kind, record)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(product); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrInvalidProduct, product.Provider, product.ID, err)
	}
	return product, nil
}

// RecordsFromJSON keeps the JSON objects of a decoded array and counts the rest
func RecordsFromJSON(items []any) ([]domain.RawRecord, int) {
	records := make([]domain.RawRecord, 0, len(items))
	skipped := 0
	for _, item := range items {
		obj, ok := asObject(item)
		if !ok {
			skipped++
			continue
		}
		records = append(records, domain.RawRecord(obj))
	}
	return records, skipped
}
