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

// accountRepository implements the domain's AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Create persists a new account. The generated ID and timestamps are written
// back onto the entity.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyInUse
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).First(&accountM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves a single account by its email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).First(&accountM, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// List retrieves every account.
func (repo *accountRepository) List(ctx context.Context) ([]*entity.Account, error) {
	var accountMs []model.AccountModel
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&accountMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountMs))
	for i := range accountMs {
		accounts = append(accounts, toAccountDomain(&accountMs[i]))
	}

	return accounts, nil
}

// ListByCityWithOffers retrieves accounts in the given city that opted in to
// receiving offers. The city is matched case-insensitively.
func (repo *accountRepository) ListByCityWithOffers(ctx context.Context, city string) ([]*entity.Account, error) {
	var accountMs []model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("LOWER(city) = LOWER(?)", city).
		Where("allows_offers = ?", true).
		Order("created_at").
		Find(&accountMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts by city with offers")
	}

	accounts := make([]*entity.Account, 0, len(accountMs))
	for i := range accountMs {
		accounts = append(accounts, toAccountDomain(&accountMs[i]))
	}

	return accounts, nil
}

// Update modifies an existing account.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	result := repo.db.WithContext(ctx).Model(&model.AccountModel{}).
		Where("id = ?", account.ID).
		Select("Name", "Email", "PasswordHash", "Age", "City", "Interests", "AllowsOffers", "Role").
		Updates(accountM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrEmailAlreadyInUse
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Delete removes an account permanently.
func (repo *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.AccountModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Age:          data.Age,
		City:         data.City,
		Interests:    data.Interests,
		AllowsOffers: data.AllowsOffers,
		Role:         entity.Role(data.Role),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Age:          data.Age,
		City:         data.City,
		Interests:    data.Interests,
		AllowsOffers: data.AllowsOffers,
		Role:         data.Role.String(),
	}
}
