package postgres

import (
	"context"

	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// listingRepository implements the domain's ListingRepository interface using GORM.
//
// Archived rows never leave the default read paths. Every query except the
// *Any variants carries the is_archived = false predicate.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

func (repo *listingRepository) active(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Where("is_archived = ?", false)
}

// Create persists a new listing.
func (repo *listingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrBusinessAlreadyListed
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessRefNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// FindByID retrieves a single active listing.
func (repo *listingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listingM model.ListingModel
	if err := repo.active(ctx).First(&listingM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by id")
	}

	return toListingDomain(&listingM), nil
}

// FindByIDAny retrieves a listing regardless of its archive state.
func (repo *listingRepository) FindByIDAny(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listingM model.ListingModel
	if err := repo.db.WithContext(ctx).First(&listingM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by id")
	}

	return toListingDomain(&listingM), nil
}

// ListActive retrieves all active listings.
func (repo *listingRepository) ListActive(ctx context.Context) ([]*entity.Listing, error) {
	var listingMs []model.ListingModel
	if err := repo.active(ctx).Order("created_at").Find(&listingMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list listings")
	}

	return toListingDomainSlice(listingMs), nil
}

// ListActiveByOwner retrieves active listings owned by the given merchant.
func (repo *listingRepository) ListActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Listing, error) {
	var listingMs []model.ListingModel
	if err := repo.active(ctx).Where("owner_id = ?", ownerID).Order("created_at").Find(&listingMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list listings by owner")
	}

	return toListingDomainSlice(listingMs), nil
}

// ListActiveByActivity retrieves active listings whose activity type contains
// the given substring, matched case-insensitively.
func (repo *listingRepository) ListActiveByActivity(ctx context.Context, activity string) ([]*entity.Listing, error) {
	var listingMs []model.ListingModel
	err := repo.active(ctx).
		Where("activity_type ILIKE ?", "%"+escapeLike(activity)+"%").
		Order("created_at").
		Find(&listingMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list listings by activity")
	}

	return toListingDomainSlice(listingMs), nil
}

// ListActiveOrderedByScore retrieves all active listings sorted by average score.
func (repo *listingRepository) ListActiveOrderedByScore(ctx context.Context, descending bool) ([]*entity.Listing, error) {
	order := "average_score ASC"
	if descending {
		order = "average_score DESC"
	}

	var listingMs []model.ListingModel
	if err := repo.active(ctx).Order(order).Find(&listingMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list listings by score")
	}

	return toListingDomainSlice(listingMs), nil
}

// Update modifies an existing listing, including its rating aggregate.
func (repo *listingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	result := repo.db.WithContext(ctx).Model(&model.ListingModel{}).
		Where("id = ?", listing.ID).
		Select("City", "ActivityType", "Title", "Summary", "BodyTexts", "Images",
			"AverageScore", "TotalRatingCount", "ReviewTexts", "BusinessID", "IsArchived").
		Updates(listingM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrBusinessAlreadyListed
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update listing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// Delete removes a listing permanently, regardless of archive state.
func (repo *listingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ListingModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete listing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// escapeLike neutralizes LIKE metacharacters in user-supplied substrings.
func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}

	return string(out)
}

// --- Mapper Functions ---

// toListingDomain converts a GORM ListingModel to a domain Listing entity.
func toListingDomain(data *model.ListingModel) *entity.Listing {
	if data == nil {
		return nil
	}

	return &entity.Listing{
		ID:           data.ID,
		City:         data.City,
		ActivityType: data.ActivityType,
		Title:        data.Title,
		Summary:      data.Summary,
		BodyTexts:    data.BodyTexts,
		Images:       data.Images,
		Rating: entity.Rating{
			AverageScore:     data.AverageScore,
			TotalRatingCount: data.TotalRatingCount,
			ReviewTexts:      data.ReviewTexts,
		},
		BusinessID: data.BusinessID,
		OwnerID:    data.OwnerID,
		IsArchived: data.IsArchived,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toListingDomainSlice(data []model.ListingModel) []*entity.Listing {
	listings := make([]*entity.Listing, 0, len(data))
	for i := range data {
		listings = append(listings, toListingDomain(&data[i]))
	}

	return listings
}

// fromListingDomain converts a domain Listing entity to a GORM ListingModel for persistence.
func fromListingDomain(data *entity.Listing) *model.ListingModel {
	if data == nil {
		return nil
	}

	return &model.ListingModel{
		ID:               data.ID,
		City:             data.City,
		ActivityType:     data.ActivityType,
		Title:            data.Title,
		Summary:          data.Summary,
		BodyTexts:        data.BodyTexts,
		Images:           data.Images,
		AverageScore:     data.Rating.AverageScore,
		TotalRatingCount: data.Rating.TotalRatingCount,
		ReviewTexts:      data.Rating.ReviewTexts,
		BusinessID:       data.BusinessID,
		OwnerID:          data.OwnerID,
		IsArchived:       data.IsArchived,
	}
}
