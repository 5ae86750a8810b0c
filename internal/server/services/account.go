// Package services contains server-side business logic. This file
// implements AccountService, which handles registration, credential
// verification, session issuance, and self-service/administrative account
// mutation with ownership checks.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avasiljevs/userauth/internal/common"
	"github.com/avasiljevs/userauth/internal/cryptox"
	"github.com/avasiljevs/userauth/internal/dbx"
	"github.com/avasiljevs/userauth/internal/server/repositories/repomanager"
	"github.com/avasiljevs/userauth/internal/server/tokens"
)

// AccountService provides the credential and session operations:
//   - Register: create accounts
//   - Login / Logout / VerifyToken: session lifecycle against the registry
//   - Update / Delete: self-service mutation, authorized by token ownership
//   - AdminUpdate / AdminDelete: the same mutations without ownership
//     checks; the caller is trusted to have authorized the admin already
type AccountService struct {
	db       *sql.DB
	repos    repomanager.RepositoryManager
	registry *tokens.Registry
	hasher   cryptox.Hasher
}

// NewAccountService constructs an AccountService. The registry carries the
// configured token validity; the hasher the configured digest algorithm.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, registry *tokens.Registry, hasher cryptox.Hasher) *AccountService {
	return &AccountService{
		db:       db,
		repos:    m,
		registry: registry,
		hasher:   hasher,
	}
}

// Register creates a new account for email. The existence check before the
// insert yields a precise error; the registration race it leaves open is
// closed by the store's unique constraint, which the repository also maps
// to ErrUserAlreadyExists.
func (s *AccountService) Register(ctx context.Context, email, password string) error {
	repo := s.repos.Accounts(s.db)

	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return common.ErrUserAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return storeError(err)
	}

	salt, err := cryptox.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generating salt: %w", err)
	}

	if _, err := repo.Create(ctx, email, s.hasher.Hash(password, salt), salt); err != nil {
		if errors.Is(err, common.ErrUserAlreadyExists) {
			return common.ErrUserAlreadyExists
		}
		return storeError(err)
	}
	return nil
}

// Login verifies the credentials and, on success, issues a fresh opaque
// token bound to the account. The registry insert happens after the store
// lookup completes, never under the registry lock.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	account, err := s.repos.Accounts(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrUserDoesNotExist
		}
		return "", storeError(err)
	}

	candidate := s.hasher.Hash(password, account.Salt)
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(account.PasswordHash)) != 1 {
		return "", common.ErrIncorrectCredentials
	}

	token, err := s.registry.Issue(account.ID)
	if err != nil {
		return "", fmt.Errorf("issuing token: %w", err)
	}
	return token, nil
}

// Logout removes a single session token.
func (s *AccountService) Logout(ctx context.Context, token string) error {
	if !s.registry.Remove(token) {
		return common.ErrTokenDoesNotExist
	}
	return nil
}

// VerifyToken resolves a live token to the owning account's email.
//
// A token that is present but whose account no longer exists (possible if
// the process stopped between token revocation and account deletion) is
// revoked here and reported as ErrUserDoesNotExist, never accepted.
func (s *AccountService) VerifyToken(ctx context.Context, token string) (string, error) {
	accountID, found := s.registry.Lookup(token)
	if !found {
		return "", common.ErrTokenDoesNotExist
	}

	account, err := s.repos.Accounts(s.db).GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.registry.Remove(token)
			return "", common.ErrUserDoesNotExist
		}
		return "", storeError(err)
	}
	return account.Email, nil
}

// Update modifies the account matching filter on behalf of the token's
// owner. The account ID resolved from the token must equal the ID of the
// account matching filter; a valid token for account A can never mutate
// account B. Email and password are independently optional; supplying
// neither is a successful no-op. When logoutAfter is set, the token that
// authorized the update (and only that token) is revoked after success.
func (s *AccountService) Update(ctx context.Context, token, filter string, newEmail, newPassword *string, logoutAfter bool) error {
	account, err := s.repos.Accounts(s.db).GetByEmail(ctx, filter)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrUserDoesNotExist
		}
		return storeError(err)
	}

	tokenAccountID, found := s.registry.Lookup(token)
	if !found {
		return common.ErrTokenDoesNotExist
	}
	if tokenAccountID != account.ID {
		return common.ErrInvalidToken
	}

	if err := s.applyUpdate(ctx, filter, newEmail, newPassword); err != nil {
		return err
	}

	if logoutAfter {
		s.registry.Remove(token)
	}
	return nil
}

// AdminUpdate performs the same mutation as Update without an ownership
// check. Authorizing the caller as an administrator is the transport
// layer's job; the core adds no admin-role check of its own.
func (s *AccountService) AdminUpdate(ctx context.Context, filter string, newEmail, newPassword *string) error {
	if _, err := s.repos.Accounts(s.db).GetByEmail(ctx, filter); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrUserDoesNotExist
		}
		return storeError(err)
	}
	return s.applyUpdate(ctx, filter, newEmail, newPassword)
}

// Delete removes the account matching filter on behalf of the token's
// owner, after the same ownership check as Update. Every token bound to
// the account is revoked before the store delete; the two steps are not
// atomic across the registry and the store (see VerifyToken for how a
// stale token is handled if the process dies between them).
func (s *AccountService) Delete(ctx context.Context, token, filter string) error {
	account, err := s.repos.Accounts(s.db).GetByEmail(ctx, filter)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrUserDoesNotExist
		}
		return storeError(err)
	}

	tokenAccountID, found := s.registry.Lookup(token)
	if !found {
		return common.ErrTokenDoesNotExist
	}
	if tokenAccountID != account.ID {
		return common.ErrInvalidToken
	}

	s.registry.RevokeAccount(account.ID)

	if err := s.repos.Accounts(s.db).DeleteByEmail(ctx, filter); err != nil {
		return storeError(err)
	}
	return nil
}

// AdminDelete removes the account matching filter without an ownership
// check, revoking all of its tokens first. A missing account fails before
// any revocation, so the registry is untouched.
func (s *AccountService) AdminDelete(ctx context.Context, filter string) error {
	account, err := s.repos.Accounts(s.db).GetByEmail(ctx, filter)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrUserDoesNotExist
		}
		return storeError(err)
	}

	s.registry.RevokeAccount(account.ID)

	if err := s.repos.Accounts(s.db).DeleteByEmail(ctx, filter); err != nil {
		return storeError(err)
	}
	return nil
}

// applyUpdate performs the optional email and credential updates in one
// transaction. A password change always generates a fresh salt. When both
// fields change, the credential update targets the new email, since the
// rename has already taken effect inside the transaction.
func (s *AccountService) applyUpdate(ctx context.Context, filter string, newEmail, newPassword *string) error {
	if newEmail == nil && newPassword == nil {
		return nil
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Accounts(tx)
		current := filter

		if newEmail != nil {
			if err := repo.UpdateEmail(ctx, current, *newEmail); err != nil {
				if errors.Is(err, common.ErrUserAlreadyExists) {
					return common.ErrUserAlreadyExists
				}
				return storeError(err)
			}
			current = *newEmail
		}

		if newPassword != nil {
			salt, err := cryptox.GenerateSalt()
			if err != nil {
				return fmt.Errorf("generating salt: %w", err)
			}
			if err := repo.UpdateCredentials(ctx, current, s.hasher.Hash(*newPassword, salt), salt); err != nil {
				return storeError(err)
			}
		}
		return nil
	})
}

// storeError classifies a persistence failure. The wrapped detail is for
// logs only; callers map ErrStore to one generic client-facing message.
func storeError(err error) error {
	return fmt.Errorf("%w: %v", common.ErrStore, err)
}
