package service

import (
	"context"
	"errors"

	"staymarket/internal/catalog/cache"
	catalogerrors "staymarket/internal/catalog/errors"
	"staymarket/internal/catalog/pipeline"
	"staymarket/internal/catalog/repository"
	"staymarket/internal/catalog/synthetic"
	"staymarket/internal/catalog/validator"
	"staymarket/pkg/config"
	apperrors "staymarket/pkg/errors"
	"staymarket/pkg/model"
	"staymarket/pkg/sanitizer"
)

// featuredFingerprint keys the featured shelf in the cache; it can never
// collide with a FilterSet fingerprint, which is always a JSON object.
const featuredFingerprint = "featured"

// BrowsePage is one rendered page of search results.
type BrowsePage struct {
	Listings   []model.Listing
	TotalCount int
	Page       int
	TotalPages int
	PageTokens []any
	Sort       string
}

type CatalogService interface {
	Browse(ctx context.Context, filter model.FilterSet, sortKey string, page int) (*BrowsePage, error)
	GetFeatured(ctx context.Context) ([]model.Listing, error)
	GetByID(ctx context.Context, id string) (*model.Listing, error)
	Create(ctx context.Context, listing *model.Listing) error
}

type catalogService struct {
	repo      repository.ListingRepository
	validator *validator.ListingValidator
	cache     *cache.Cache
	synthetic *synthetic.Generator
	cfg       *config.Config
}

func NewCatalogService(
	repo repository.ListingRepository,
	validator *validator.ListingValidator,
	listingCache *cache.Cache,
	generator *synthetic.Generator,
	cfg *config.Config,
) CatalogService {
	return &catalogService{
		repo:      repo,
		validator: validator,
		cache:     listingCache,
		synthetic: generator,
		cfg:       cfg,
	}
}

// Browse runs the full read path: cached (or freshly fetched) catalog for the
// filter, then sort and pagination. Browsing never fails on a source outage;
// the synthetic catalog stands in.
func (s *catalogService) Browse(ctx context.Context, filter model.FilterSet, sortKey string, page int) (*BrowsePage, error) {
	if err := s.validator.ValidateFilter(&filter); err != nil {
		s.cfg.Log.Warn("Search filter validation failed", "error", err)
		return nil, apperrors.Validation("Invalid search filter", map[string]any{"error": err.Error()})
	}
	if sortKey == "" {
		sortKey = pipeline.SortRecommended
	}
	if !pipeline.ValidSortKey(sortKey) {
		return nil, apperrors.InvalidInput("Unknown sort key: " + sortKey)
	}
	if page < 1 {
		page = 1
	}

	listings := s.catalogFor(ctx, filter)
	sorted := pipeline.Sort(listings, sortKey)

	totalPages := pipeline.TotalPages(len(sorted), s.cfg.PageSize)
	return &BrowsePage{
		Listings:   pipeline.Paginate(sorted, page, s.cfg.PageSize),
		TotalCount: len(sorted),
		Page:       page,
		TotalPages: totalPages,
		PageTokens: pipeline.PageTokens(page, totalPages),
		Sort:       sortKey,
	}, nil
}

// catalogFor returns the listings matching the filter, consulting the cache
// first. On a miss it fetches from the data source with retries and falls
// back to the synthetic catalog when the source is unreachable or empty. A
// fetch superseded by a newer one for the same filter discards its result.
func (s *catalogService) catalogFor(ctx context.Context, filter model.FilterSet) []model.Listing {
	fingerprint := filter.Fingerprint()

	if listings, ok := s.cache.Get(fingerprint); ok {
		return listings
	}

	seq := s.cache.Begin(fingerprint)

	listings, err := s.fetchWithRetry(ctx, filter)
	if err != nil || len(listings) == 0 {
		if err != nil {
			s.cfg.Log.Warn("Listing source unavailable, serving synthetic catalog",
				"fingerprint", fingerprint,
				"error", err,
			)
		} else {
			s.cfg.Log.Info("Listing source returned nothing, serving synthetic catalog",
				"fingerprint", fingerprint,
			)
		}
		listings = pipeline.Filter(s.synthetic.Catalog(), filter)
	}

	if !s.cache.Complete(fingerprint, seq, listings) {
		s.cfg.Log.Debug("Discarding superseded fetch result", "fingerprint", fingerprint)
	}

	return listings
}

func (s *catalogService) fetchWithRetry(ctx context.Context, filter model.FilterSet) ([]model.Listing, error) {
	var lastErr error
	for attempt := 0; attempt <= s.cfg.FetchRetries; attempt++ {
		listings, err := s.repo.Search(ctx, filter)
		if err == nil {
			return listings, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			break
		}
		s.cfg.Log.Warn("Listing fetch attempt failed",
			"attempt", attempt+1,
			"error", err,
		)
	}
	return nil, lastErr
}

// GetFeatured serves the featured shelf, capped at the configured limit. It
// caches under its own fingerprint and falls back to the synthetic catalog's
// featured listings like any other read.
func (s *catalogService) GetFeatured(ctx context.Context) ([]model.Listing, error) {
	if listings, ok := s.cache.Get(featuredFingerprint); ok {
		return listings, nil
	}

	seq := s.cache.Begin(featuredFingerprint)

	listings, err := s.repo.Featured(ctx, s.cfg.FeaturedLimit)
	if err != nil || len(listings) == 0 {
		if err != nil {
			s.cfg.Log.Warn("Featured fetch failed, serving synthetic catalog", "error", err)
		}
		listings = syntheticFeatured(s.synthetic.Catalog(), s.cfg.FeaturedLimit)
	}
	if len(listings) > s.cfg.FeaturedLimit {
		listings = listings[:s.cfg.FeaturedLimit]
	}

	s.cache.Complete(featuredFingerprint, seq, listings)
	return listings, nil
}

func syntheticFeatured(catalog []model.Listing, limit int) []model.Listing {
	featured := make([]model.Listing, 0, limit)
	for _, l := range catalog {
		if !l.Featured {
			continue
		}
		featured = append(featured, l)
		if len(featured) == limit {
			break
		}
	}
	return featured
}

// GetByID looks the listing up in the data source first and falls back to
// the synthetic catalog, so detail pages keep working for synthetic results.
func (s *catalogService) GetByID(ctx context.Context, id string) (*model.Listing, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Listing ID cannot be empty")
	}

	listing, err := s.repo.FindByID(ctx, id)
	if err == nil {
		return listing, nil
	}

	if errors.Is(err, catalogerrors.ErrNotFound) || errors.Is(err, catalogerrors.ErrInvalidID) {
		for _, l := range s.synthetic.Catalog() {
			if l.ID == id {
				return &l, nil
			}
		}
	}

	switch {
	case errors.Is(err, catalogerrors.ErrNotFound):
		return nil, apperrors.NotFoundWithID("Listing", id)
	case errors.Is(err, catalogerrors.ErrInvalidID):
		return nil, apperrors.InvalidInput("Invalid listing ID format")
	default:
		s.cfg.Log.Error("Failed to retrieve listing", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to retrieve listing", err)
	}
}

func (s *catalogService) Create(ctx context.Context, listing *model.Listing) error {
	s.sanitize(listing)

	if err := s.validator.Validate(listing); err != nil {
		s.cfg.Log.Warn("Listing validation failed", "error", err)
		return apperrors.Validation("Invalid listing", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		s.cfg.Log.Error("Failed to create listing", "error", err)
		return apperrors.Internal("Failed to create listing", err)
	}

	s.cfg.Log.Info("Listing created successfully",
		"id", listing.ID,
		"city", listing.Location.City,
		"property_type", listing.PropertyType,
	)
	return nil
}

func (s *catalogService) sanitize(listing *model.Listing) {
	listing.Title = sanitizer.NormalizeTitle(listing.Title)
	listing.Description = sanitizer.TrimAndNormalize(listing.Description)
	listing.Location.City = sanitizer.NormalizeCity(listing.Location.City)
	listing.Location.Country = sanitizer.NormalizeCity(listing.Location.Country)
	listing.Amenities = sanitizer.NormalizeAmenities(listing.Amenities)
	listing.Images = sanitizer.NormalizeImageURLs(listing.Images)
	listing.Rating = sanitizer.ClampRating(listing.Rating)
}
