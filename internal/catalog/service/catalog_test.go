package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"staymarket/internal/catalog/cache"
	catalogerrors "staymarket/internal/catalog/errors"
	"staymarket/internal/catalog/pipeline"
	"staymarket/internal/catalog/synthetic"
	"staymarket/internal/catalog/validator"
	"staymarket/pkg/config"
	apperrors "staymarket/pkg/errors"
	"staymarket/pkg/logger"
	"staymarket/pkg/model"
)

type mockListingRepository struct {
	searchFunc   func(ctx context.Context, filter model.FilterSet) ([]model.Listing, error)
	featuredFunc func(ctx context.Context, limit int) ([]model.Listing, error)
	findByIDFunc func(ctx context.Context, id string) (*model.Listing, error)
	createFunc   func(ctx context.Context, listing *model.Listing) error

	searchCalls int
}

func (m *mockListingRepository) Search(ctx context.Context, filter model.FilterSet) ([]model.Listing, error) {
	m.searchCalls++
	if m.searchFunc != nil {
		return m.searchFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockListingRepository) Featured(ctx context.Context, limit int) ([]model.Listing, error) {
	if m.featuredFunc != nil {
		return m.featuredFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockListingRepository) FindByID(ctx context.Context, id string) (*model.Listing, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, catalogerrors.ErrNotFound
}

func (m *mockListingRepository) Create(ctx context.Context, listing *model.Listing) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, listing)
	}
	return nil
}

func (m *mockListingRepository) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	return &config.Config{
		Log:                  log,
		CacheFreshnessWindow: 5 * time.Minute,
		PageSize:             9,
		FeaturedLimit:        6,
		FetchRetries:         2,
	}
}

func newTestService(t *testing.T, repo *mockListingRepository, cfg *config.Config) CatalogService {
	t.Helper()
	v := validator.NewListingValidator(cfg.Log)
	return NewCatalogService(repo, v, cache.New(cfg.CacheFreshnessWindow), synthetic.New(42), cfg)
}

func sourceListings(n int) []model.Listing {
	listings := make([]model.Listing, n)
	for i := range listings {
		listings[i] = model.Listing{
			ID:           string(rune('a' + i)),
			Title:        "Listing",
			NightlyPrice: float64((i + 1) * 1000),
			Rating:       4.0,
			Capacity:     4,
		}
	}
	return listings
}

func TestBrowseServesSourceListings(t *testing.T) {
	cfg := testConfig(t)
	repo := &mockListingRepository{
		searchFunc: func(ctx context.Context, filter model.FilterSet) ([]model.Listing, error) {
			return sourceListings(12), nil
		},
	}
	svc := newTestService(t, repo, cfg)

	page, err := svc.Browse(context.Background(), model.FilterSet{}, "", 1)
	if err != nil {
		t.Fatalf("Browse() error: %v", err)
	}

	if page.TotalCount != 12 {
		t.Errorf("TotalCount = %d, want 12", page.TotalCount)
	}
	if len(page.Listings) != 9 {
		t.Errorf("first page has %d listings, want 9", len(page.Listings))
	}
	if page.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want 2", page.TotalPages)
	}
	if page.Sort != pipeline.SortRecommended {
		t.Errorf("Sort = %q, want %q", page.Sort, pipeline.SortRecommended)
	}
	if len(page.PageTokens) != 2 {
		t.Errorf("PageTokens = %v, want two page numbers", page.PageTokens)
	}
}

func TestBrowseHitsCacheWithinFreshnessWindow(t *testing.T) {
	cfg := testConfig(t)
	repo := &mockListingRepository{
		searchFunc: func(ctx context.Context, filter model.FilterSet) ([]model.Listing, error) {
			return sourceListings(3), nil
		},
	}
	svc := newTestService(t, repo, cfg)

	filter := model.FilterSet{Location: "Lisbon", Amenities: []string{"wifi", "pool"}}
	if _, err := svc.Browse(context.Background(), filter, "", 1); err != nil {
		t.Fatal(err)
	}

	// Same constraints, fresh FilterSet value, different amenity order.
	equivalent := model.FilterSet{Location: "lisbon ", Amenities: []string{"pool", "wifi"}}
	if _, err := svc.Browse(context.Background(), equivalent, "", 2); err != nil {
		t.Fatal(err)
	}

	if repo.searchCalls != 1 {
		t.Errorf("source fetched %d times, want 1", repo.searchCalls)
	}
}

func TestBrowseFallsBackToSyntheticOnSourceError(t *testing.T) {
	cfg := testConfig(t)
	repo := &mockListingRepository{
		searchFunc: func(ctx context.Context, filter model.FilterSet) ([]model.Listing, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := newTestService(t, repo, cfg)

	page, err := svc.Browse(context.Background(), model.FilterSet{}, "", 1)
	if err != nil {
		t.Fatalf("Browse() must not fail on a source outage, got: %v", err)
	}
	if page.TotalCount != synthetic.CatalogSize {
		t.Errorf("TotalCount = %d, want the synthetic catalog's %d", page.TotalCount, synthetic.CatalogSize)
	}

	// One initial attempt plus the configured retries.
	if repo.searchCalls != cfg.FetchRetries+1 {
		t.Errorf("source fetched %d times, want %d", repo.searchCalls, cfg.FetchRetries+1)
	}
}

func TestBrowseFallsBackToSyntheticOnEmptySource(t *testing.T) {
	cfg := testConfig(t)
	repo := &mockListingRepository{
		searchFunc: func(ctx context.Context, filter model.FilterSet) ([]model.Listing, error) {
			return []model.Listing{}, nil
		},
	}
	svc := newTestService(t, repo, cfg)

	page, err := svc.Browse(context.Background(), model.FilterSet{}, "", 1)
	if err != nil {
		t.Fatal(err)
	}
	if page.TotalCount == 0 {
		t.Error("empty source should have been backfilled by the synthetic catalog")
	}
	if repo.searchCalls != 1 {
		t.Errorf("an empty result is not an error; source fetched %d times, want 1", repo.searchCalls)
	}
}

func TestBrowseAppliesFilterToSyntheticFallback(t *testing.T) {
	cfg := testConfig(t)
	repo := &mockListingRepository{
		searchFunc: func(ctx context.Context, filter model.FilterSet) ([]model.Listing, error) {
			return nil, errors.New("down")
		},
	}
	svc := newTestService(t, repo, cfg)

	filter := model.FilterSet{PropertyType: model.PropertyTypeVilla}
	page, err := svc.Browse(context.Background(), filter, "", 1)
	if err != nil {
		t.Fatal(err)
	}

	for _, l := range page.Listings {
		if l.PropertyType != model.PropertyTypeVilla {
			t.Errorf("fallback listing %s has type %s", l.ID, l.PropertyType)
		}
	}
}

func TestBrowseRejectsInvalidFilter(t *testing.T) {
	cfg := testConfig(t)
	svc := newTestService(t, &mockListingRepository{}, cfg)

	filter := model.FilterSet{MinPrice: 5000, MaxPrice: 1000}
	_, err := svc.Browse(context.Background(), filter, "", 1)
	if err == nil {
		t.Fatal("expected a validation error for an inverted price range")
	}
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeValidation {
		t.Errorf("error code = %s, want %s", appErr.Code, apperrors.CodeValidation)
	}
}

func TestBrowseRejectsUnknownSortKey(t *testing.T) {
	cfg := testConfig(t)
	svc := newTestService(t, &mockListingRepository{}, cfg)

	_, err := svc.Browse(context.Background(), model.FilterSet{}, "cheapest", 1)
	if err == nil {
		t.Fatal("expected an error for an unknown sort key")
	}
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeInvalidInput {
		t.Errorf("error code = %s, want %s", appErr.Code, apperrors.CodeInvalidInput)
	}
}

func TestBrowseSortsByPrice(t *testing.T) {
	cfg := testConfig(t)
	repo := &mockListingRepository{
		searchFunc: func(ctx context.Context, filter model.FilterSet) ([]model.Listing, error) {
			return []model.Listing{
				{ID: "mid", NightlyPrice: 20000},
				{ID: "low", NightlyPrice: 10000},
				{ID: "high", NightlyPrice: 30000},
			}, nil
		},
	}
	svc := newTestService(t, repo, cfg)

	page, err := svc.Browse(context.Background(), model.FilterSet{}, pipeline.SortPriceAsc, 1)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"low", "mid", "high"}
	for i, l := range page.Listings {
		if l.ID != want[i] {
			t.Fatalf("position %d is %s, want %s", i, l.ID, want[i])
		}
	}
}

func TestGetFeatured(t *testing.T) {
	cfg := testConfig(t)
	repo := &mockListingRepository{
		featuredFunc: func(ctx context.Context, limit int) ([]model.Listing, error) {
			listings := sourceListings(10)
			for i := range listings {
				listings[i].Featured = true
			}
			return listings, nil
		},
	}
	svc := newTestService(t, repo, cfg)

	listings, err := svc.GetFeatured(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(listings) != cfg.FeaturedLimit {
		t.Errorf("featured shelf has %d listings, want at most %d", len(listings), cfg.FeaturedLimit)
	}
}

func TestGetFeaturedFallsBackToSynthetic(t *testing.T) {
	cfg := testConfig(t)
	repo := &mockListingRepository{
		featuredFunc: func(ctx context.Context, limit int) ([]model.Listing, error) {
			return nil, errors.New("down")
		},
	}
	svc := newTestService(t, repo, cfg)

	listings, err := svc.GetFeatured(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(listings) == 0 {
		t.Error("featured shelf is empty despite the synthetic fallback")
	}
	if len(listings) > cfg.FeaturedLimit {
		t.Errorf("featured shelf exceeds the limit: %d", len(listings))
	}
	for _, l := range listings {
		if !l.Featured {
			t.Errorf("non-featured listing %s on the shelf", l.ID)
		}
	}
}

func TestGetByID(t *testing.T) {
	cfg := testConfig(t)
	repo := &mockListingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Listing, error) {
			if id == "507f1f77bcf86cd799439011" {
				return &model.Listing{ID: id, Title: "Canal House"}, nil
			}
			return nil, catalogerrors.ErrNotFound
		},
	}
	svc := newTestService(t, repo, cfg)

	listing, err := svc.GetByID(context.Background(), "507f1f77bcf86cd799439011")
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if listing.Title != "Canal House" {
		t.Errorf("Title = %q", listing.Title)
	}

	_, err = svc.GetByID(context.Background(), "507f1f77bcf86cd799439099")
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeNotFound {
		t.Errorf("error code = %s, want %s", appErr.Code, apperrors.CodeNotFound)
	}

	_, err = svc.GetByID(context.Background(), "")
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeInvalidInput {
		t.Errorf("error code = %s, want %s", appErr.Code, apperrors.CodeInvalidInput)
	}
}

func TestGetByIDFallsBackToSynthetic(t *testing.T) {
	cfg := testConfig(t)
	generator := synthetic.New(42)
	syntheticID := generator.Catalog()[0].ID

	repo := &mockListingRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Listing, error) {
			return nil, catalogerrors.ErrNotFound
		},
	}
	v := validator.NewListingValidator(cfg.Log)
	svc := NewCatalogService(repo, v, cache.New(cfg.CacheFreshnessWindow), generator, cfg)

	listing, err := svc.GetByID(context.Background(), syntheticID)
	if err != nil {
		t.Fatalf("expected the synthetic listing, got error: %v", err)
	}
	if listing.ID != syntheticID {
		t.Errorf("ID = %s, want %s", listing.ID, syntheticID)
	}
}

func TestCreateValidatesAndSanitizes(t *testing.T) {
	cfg := testConfig(t)
	var created *model.Listing
	repo := &mockListingRepository{
		createFunc: func(ctx context.Context, listing *model.Listing) error {
			created = listing
			return nil
		},
	}
	svc := newTestService(t, repo, cfg)

	listing := &model.Listing{
		Title:        "  Canal   House  ",
		Location:     model.Location{City: "  Amsterdam ", Country: "Netherlands"},
		NightlyPrice: 21000,
		Currency:     "EUR",
		Amenities:    []string{" WiFi ", "Kitchen"},
		PropertyType: model.PropertyTypeHouse,
	}
	if err := svc.Create(context.Background(), listing); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if created == nil {
		t.Fatal("listing never reached the repository")
	}
	if created.Title != "Canal House" {
		t.Errorf("Title = %q", created.Title)
	}
	if created.Location.City != "Amsterdam" {
		t.Errorf("City = %q", created.Location.City)
	}
	if created.Amenities[0] != "wifi" {
		t.Errorf("Amenities = %v", created.Amenities)
	}
}

func TestCreateRejectsUnknownPropertyType(t *testing.T) {
	cfg := testConfig(t)
	svc := newTestService(t, &mockListingRepository{}, cfg)

	listing := &model.Listing{
		Title:        "Canal House",
		Location:     model.Location{City: "Amsterdam", Country: "Netherlands"},
		NightlyPrice: 21000,
		Currency:     "EUR",
		PropertyType: "Castle",
	}
	err := svc.Create(context.Background(), listing)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeValidation {
		t.Errorf("error code = %s, want %s", appErr.Code, apperrors.CodeValidation)
	}
}
