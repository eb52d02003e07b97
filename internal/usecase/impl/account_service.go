// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "vitrina/internal/delivery/context"
	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/domain/service"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. The password is hashed here, at the
// registration boundary; the admin role cannot be self-assigned.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterAccountInput) (*entity.Account, error) {
	role := input.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !role.IsRegisterable() {
		srv.log(ctx).Warn("Registration with non-registerable role rejected",
			slog.String("email", input.Email), slog.Any("role", role))

		return nil, domainerrors.ErrInvalidRole
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	account := &entity.Account{
		Name:         input.Name,
		Email:        email,
		PasswordHash: hashedPassword,
		Age:          input.Age,
		City:         input.City,
		Interests:    input.Interests,
		AllowsOffers: input.AllowsOffers,
		Role:         role,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, err := accountRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrEmailAlreadyInUse
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		return accountRepo.Create(ctx, account)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Account registered",
		slog.Any("accountID", account.ID), slog.Any("role", account.Role))

	return account, nil
}

// Login verifies credentials and issues a bearer token. A missing account and
// a wrong password are indistinguishable to the caller.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login with wrong password", slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateToken(account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Info("Account logged in", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{Token: token, Account: account}, nil
}

// ListAccounts returns every account. An empty directory reads as not found.
func (srv *accountService) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}
	if len(accounts) == 0 {
		return nil, domainerrors.ErrAccountNotFound
	}

	return accounts, nil
}

// GetAccount retrieves a single account by ID.
func (srv *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

// ListOffersAudience returns the accounts in a city that opted in to offers.
func (srv *accountService) ListOffersAudience(ctx context.Context, city string) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.ListByCityWithOffers(ctx, city)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers audience")
	}
	if len(accounts) == 0 {
		return nil, domainerrors.ErrAccountNotFound
	}

	return accounts, nil
}

// UpdateAccount applies a partial update. Non-admin actors may only update
// their own account, and nobody changes roles after registration.
func (srv *accountService) UpdateAccount(ctx context.Context, actor usecase.Actor, id uuid.UUID, input usecase.UpdateAccountInput) (*entity.Account, error) {
	if !actor.IsAdmin() && actor.ID != id {
		srv.log(ctx).Warn("Cross-account update rejected",
			slog.Any("actorID", actor.ID), slog.Any("targetID", id))

		return nil, domainerrors.ErrForbidden
	}

	var updated *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to find account")
		}

		if err := srv.applyAccountPatch(ctx, accountRepo, account, input); err != nil {
			return err
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return err
		}

		updated = account

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Account updated", slog.Any("accountID", id))

	return updated, nil
}

func (srv *accountService) applyAccountPatch(ctx context.Context, accountRepo repository.AccountRepository, account *entity.Account, input usecase.UpdateAccountInput) error {
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email != account.Email {
			_, err := accountRepo.FindByEmail(ctx, email)
			if err == nil {
				return domainerrors.ErrEmailAlreadyInUse
			}
			if !errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(err, "failed to check email availability")
			}
			account.Email = email
		}
	}
	if input.Password != nil {
		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}
		account.PasswordHash = hashed
	}
	if input.Name != nil {
		account.Name = *input.Name
	}
	if input.Age != nil {
		account.Age = *input.Age
	}
	if input.City != nil {
		account.City = *input.City
	}
	if input.Interests != nil {
		account.Interests = *input.Interests
	}
	if input.AllowsOffers != nil {
		account.AllowsOffers = *input.AllowsOffers
	}

	return nil
}

// DeleteAccount removes an account. Non-admin actors may only delete their own.
func (srv *accountService) DeleteAccount(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	if !actor.IsAdmin() && actor.ID != id {
		srv.log(ctx).Warn("Cross-account delete rejected",
			slog.Any("actorID", actor.ID), slog.Any("targetID", id))

		return domainerrors.ErrForbidden
	}

	if err := srv.accountRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return err
	}

	srv.log(ctx).Info("Account deleted", slog.Any("accountID", id))

	return nil
}
