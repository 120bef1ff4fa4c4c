package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/lost-and-found/internal/config"
	"github.com/MKhiriev/lost-and-found/internal/crypto"
	"github.com/MKhiriev/lost-and-found/internal/logger"
	"github.com/MKhiriev/lost-and-found/internal/store"
	"github.com/MKhiriev/lost-and-found/internal/utils"
	"github.com/MKhiriev/lost-and-found/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT token
// lifecycle using a UserRepository and a SessionRepository for persistence
// and Argon2id for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionRepository records one session row per issued token; revoking
	// the row is what makes logout take effect before the JWT expires.
	sessionRepository store.SessionRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT and its session
	// remain valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, sessionRepository store.SessionRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Register creates a new user account.
//
// It validates that Login, Email and the password are non-empty, hashes the
// password with Argon2id, and delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if Login, Email or password is empty.
//   - store.ErrLoginAlreadyExists / store.ErrEmailAlreadyExists when the
//     identifier is taken.
func (a *authService) Register(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Login == "" || user.Email == "" || password == "" {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := crypto.HashPassword(password)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = passwordHash
	user.CreatedAt = time.Now()

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrLoginAlreadyExists) || errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, err
		}
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues a session token.
//
// An unknown login and a wrong password both produce ErrInvalidCredentials;
// the response never reveals which check failed.
func (a *authService) Login(ctx context.Context, login, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if login == "" || password == "" {
		log.Error().Str("login", login).Msg("invalid login data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("login", login).Msg("user search by login failed")
		return models.Token{}, fmt.Errorf("user search by login failed: %w", err)
	}

	match, err := crypto.VerifyPassword(password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("password verification failed")
		return models.Token{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !match {
		log.Error().Int64("id", foundUser.UserID).Str("login", foundUser.Login).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	now := time.Now()
	sessionID := uuid.NewString()

	token, err := utils.GenerateJWTToken(a.tokenIssuer, foundUser.UserID, sessionID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("token generation failed: %w", err)
	}

	session := models.Session{
		SessionID: sessionID,
		UserID:    foundUser.UserID,
		ExpiresAt: now.Add(a.tokenDuration),
		CreatedAt: now,
	}
	if err := a.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("session creation failed")
		return models.Token{}, fmt.Errorf("session creation failed: %w", err)
	}

	return token, nil
}

// Logout revokes the session behind the presented token. Revoking an already
// revoked or unknown session is treated as success: the caller's goal, an
// unusable token, is met either way.
func (a *authService) Logout(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	if sessionID == "" {
		return ErrInvalidDataProvided
	}

	if err := a.sessionRepository.RevokeSession(ctx, sessionID, time.Now()); err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil
		}
		log.Err(err).Str("session_id", sessionID).Msg("session revocation failed")
		return fmt.Errorf("session revocation failed: %w", err)
	}

	return nil
}

// Authenticate validates a presented token string: the JWT signature, issuer
// and expiry first, then the backing session row. A token whose session was
// revoked or has expired fails with ErrTokenIsExpiredOrInvalid even if the
// JWT itself is still fresh.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token validation failed")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	session, err := a.sessionRepository.FindSession(ctx, token.SessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Token{}, ErrTokenIsExpiredOrInvalid
		}
		log.Err(err).Str("session_id", token.SessionID).Msg("session lookup failed")
		return models.Token{}, fmt.Errorf("session lookup failed: %w", err)
	}

	if !session.Active(time.Now()) {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
