package services

import (
	"context"
	"math"
	"strings"

	portssvc "github.com/birikimsoft/defter_backend/internal/core/ports/services"
)

// tryAliases maps the legacy lira spellings accepted in invoice data to TRY.
// Both dotted and dotless capital-I spellings appear because Go's ToUpper
// folds 'i' to 'I', not 'İ'.
var tryAliases = map[string]bool{
	"TL":          true,
	"TRL":         true,
	"TÜRK LİRASI": true,
	"TÜRK LIRASI": true,
	"TURK LIRASI": true,
	"TURKISH LIRA": true,
}

// converterService converts between TRY and foreign currencies off the
// resolver's current snapshot. All results are rounded to 5 decimal places;
// cross-foreign conversions hop through TRY with each hop rounded, which is
// load-bearing for numeric fidelity with amounts already stored by older
// versions.
type converterService struct {
	rates portssvc.RateResolverSvcFacade
}

// NewConverterService creates a ConverterSvcFacade backed by the resolver.
func NewConverterService(rates portssvc.RateResolverSvcFacade) portssvc.ConverterSvcFacade {
	return &converterService{rates: rates}
}

func (s *converterService) Convert(ctx context.Context, amount float64, from, to string) float64 {
	if amount == 0 {
		return 0
	}

	fromCode := NormalizeCurrency(from)
	toCode := NormalizeCurrency(to)

	if fromCode == toCode {
		return round5(amount)
	}

	snap := s.rates.Current(ctx, false)

	if fromCode == "TRY" {
		rate := snap.Rate(toCode)
		if rate == 0 {
			return 0
		}
		return round5(amount * rate)
	}

	if toCode == "TRY" {
		rate := snap.Rate(fromCode)
		if rate == 0 {
			return 0
		}
		return round5(amount / rate)
	}

	// Cross-foreign: two hops through TRY, the intermediate already rounded.
	tryAmount := s.Convert(ctx, amount, fromCode, "TRY")
	return round5(s.Convert(ctx, tryAmount, "TRY", toCode))
}

// NormalizeCurrency uppercases and trims a currency code and folds the
// legacy lira spellings to TRY. Empty or missing input means TRY.
func NormalizeCurrency(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "TRY"
	}
	if tryAliases[code] {
		return "TRY"
	}
	return code
}

func round5(v float64) float64 {
	return math.Round(v*1e5) / 1e5
}
