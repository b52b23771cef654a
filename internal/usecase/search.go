package usecase

import (
	"context"
	"strings"

	"curtaincall/internal/infra/gateway"
)

type PerformanceSearchGateway interface {
	Search(ctx context.Context, district, genre, keyword string) ([]gateway.Performance, error)
	Detail(ctx context.Context, performanceID string) (*gateway.PerformanceDetail, error)
	Venue(ctx context.Context, venueID string) (*gateway.Venue, error)
}

type AccommodationSearchGateway interface {
	AreaSearch(ctx context.Context, areaCode, sigunguCode, cat3 string) ([]gateway.Accommodation, error)
	KeywordSearch(ctx context.Context, keyword string) ([]gateway.Accommodation, error)
}

// ResultCache caches upstream search responses. A nil implementation value is
// allowed and behaves as a permanent miss.
type ResultCache interface {
	Get(ctx context.Context, key string, out any) bool
	Set(ctx context.Context, key string, value any)
}

type SearchUseCase interface {
	SearchPerformances(ctx context.Context, district, genre, keyword string) ([]gateway.Performance, error)
	PerformanceDetail(ctx context.Context, performanceID string) (*gateway.PerformanceDetail, error)
	VenueDetail(ctx context.Context, venueID string) (*gateway.Venue, error)
	SearchAccommodations(ctx context.Context, areaCode, sigunguCode, cat3 string) ([]gateway.Accommodation, error)
	SearchAccommodationsByKeyword(ctx context.Context, keyword string) ([]gateway.Accommodation, error)
}

type searchUseCaseImpl struct {
	performances   PerformanceSearchGateway
	accommodations AccommodationSearchGateway
	cache          ResultCache
}

func NewSearchUseCase(
	performances PerformanceSearchGateway,
	accommodations AccommodationSearchGateway,
	cache ResultCache,
) SearchUseCase {
	return &searchUseCaseImpl{
		performances:   performances,
		accommodations: accommodations,
		cache:          cache,
	}
}

func cacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

func (s *searchUseCaseImpl) SearchPerformances(ctx context.Context, district, genre, keyword string) ([]gateway.Performance, error) {
	key := cacheKey("kopis", "search", district, genre, keyword)

	var cached []gateway.Performance
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	rows, err := s.performances.Search(ctx, district, genre, keyword)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, key, rows)
	return rows, nil
}

func (s *searchUseCaseImpl) PerformanceDetail(ctx context.Context, performanceID string) (*gateway.PerformanceDetail, error) {
	key := cacheKey("kopis", "detail", performanceID)

	var cached gateway.PerformanceDetail
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	detail, err := s.performances.Detail(ctx, performanceID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, key, detail)
	return detail, nil
}

func (s *searchUseCaseImpl) VenueDetail(ctx context.Context, venueID string) (*gateway.Venue, error) {
	key := cacheKey("kopis", "venue", venueID)

	var cached gateway.Venue
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	venue, err := s.performances.Venue(ctx, venueID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, key, venue)
	return venue, nil
}

func (s *searchUseCaseImpl) SearchAccommodations(ctx context.Context, areaCode, sigunguCode, cat3 string) ([]gateway.Accommodation, error) {
	key := cacheKey("tour", "area", areaCode, sigunguCode, cat3)

	var cached []gateway.Accommodation
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	rows, err := s.accommodations.AreaSearch(ctx, areaCode, sigunguCode, cat3)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, key, rows)
	return rows, nil
}

func (s *searchUseCaseImpl) SearchAccommodationsByKeyword(ctx context.Context, keyword string) ([]gateway.Accommodation, error) {
	key := cacheKey("tour", "keyword", keyword)

	var cached []gateway.Accommodation
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	rows, err := s.accommodations.KeywordSearch(ctx, keyword)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, key, rows)
	return rows, nil
}
