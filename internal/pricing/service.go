package pricing

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"voice-listing-go/internal/cache"
	"voice-listing-go/internal/metrics"
	"voice-listing-go/internal/types"
)

// Service puts a per-instance TTL cache in front of a Lookup.
type Service struct {
	lookup Lookup
	cache  *cache.TTL[string, types.PriceSuggestion]
	log    *logrus.Entry
}

func NewService(lookup Lookup, c *cache.TTL[string, types.PriceSuggestion], log *logrus.Entry) *Service {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Service{lookup: lookup, cache: c, log: log}
}

func (s *Service) GetPriceSuggestion(ctx context.Context, commodity, locationHint string) (types.PriceSuggestion, error) {
	key := strings.ToLower(commodity) + "|" + strings.ToLower(locationHint)
	if s.cache != nil {
		if ps, ok := s.cache.Get(key); ok {
			metrics.PriceLookup("cached")
			return ps, nil
		}
	}
	ps, err := s.lookup.GetPriceSuggestion(ctx, commodity, locationHint)
	if err != nil {
		if errors.Is(err, ErrNoPrice) {
			metrics.PriceLookup("miss")
		} else {
			metrics.PriceLookup("error")
		}
		s.log.WithError(err).WithFields(logrus.Fields{
			"commodity": commodity,
			"location":  locationHint,
		}).Warn("price lookup failed")
		return types.PriceSuggestion{}, err
	}
	metrics.PriceLookup("hit")
	if s.cache != nil {
		s.cache.Set(key, ps)
	}
	return ps, nil
}

// LocationHint is where the seller wants to be priced: the custom mandi, city or
// state when they asked for one, otherwise where the produce is.
func LocationHint(d types.CollectedData) string {
	if d.UseCustomLocation {
		var parts []string
		for _, p := range []string{d.CustomMandi, d.CustomCity, d.CustomState} {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, ", ")
		}
	}
	return d.Location
}
