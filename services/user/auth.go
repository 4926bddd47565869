package user

import (
	"context"
	"time"

	"weddinghub/models"
	"weddinghub/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser creates an account, hashes the password, and returns a fresh
// token. The token hash is stored on the record so sign-out can revoke it.
func (s *DefaultUserService) RegisterUser(in SignupInput) (*AuthResponse, error) {
	logger := utils.GetLogger()

	if in.Role != models.RoleCustomer && in.Role != models.RoleVendor {
		return nil, ValidationError{Message: "role must be customer or vendor"}
	}
	if len(in.Password) < 8 {
		return nil, ValidationError{Message: "password must be at least 8 characters long"}
	}

	existing, err := s.Repo.GetByEmail(in.Email)
	if err != nil {
		logger.Error("failed to check for existing user", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, DuplicateAccountError{Field: "email"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	u := &models.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Role:         in.Role,
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if u.Role == models.RoleVendor {
		u.VendorPackage = models.TierBasic
	}

	token, err := utils.GenerateToken(u.ID, u.Email, tokenTTL)
	if err != nil {
		logger.Error("failed to generate auth token", zap.Error(err))
		return nil, err
	}
	u.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(u); err != nil {
		logger.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	logger.Info("user registered",
		zap.String("userId", u.ID),
		zap.String("role", string(u.Role)),
	)
	return &AuthResponse{ID: u.ID, Token: token, Name: u.Name, Email: u.Email, Role: u.Role}, nil
}

// SignIn verifies credentials and issues a new token, replacing any previous
// session. The FCM device token, when supplied, is stored for pushes.
func (s *DefaultUserService) SignIn(in SigninInput) (*AuthResponse, error) {
	logger := utils.GetLogger()

	u, err := s.Repo.GetByEmail(in.Email)
	if err != nil {
		logger.Error("failed to look up user", zap.Error(err))
		return nil, err
	}
	if u == nil {
		return nil, AuthError{Reason: "invalid email or password"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, AuthError{Reason: "invalid email or password"}
	}

	token, err := utils.GenerateToken(u.ID, u.Email, tokenTTL)
	if err != nil {
		logger.Error("failed to generate auth token", zap.Error(err))
		return nil, err
	}

	fields := bson.M{"tokenHash": utils.HashToken(token)}
	if in.FCMToken != "" {
		fields["fcmToken"] = in.FCMToken
	}
	if _, err := s.Repo.UpdateFields(u.ID, fields); err != nil {
		logger.Error("failed to store token hash", zap.Error(err))
		return nil, err
	}
	invalidateAuthCache(u.ID)

	return &AuthResponse{ID: u.ID, Token: token, Name: u.Name, Email: u.Email, Role: u.Role}, nil
}

// SignOut revokes the current session by clearing the stored token hash.
func (s *DefaultUserService) SignOut(userID string) error {
	if _, err := s.Repo.UpdateFields(userID, bson.M{"tokenHash": ""}); err != nil {
		return err
	}
	invalidateAuthCache(userID)
	return nil
}

// invalidateAuthCache drops the cached auth record so the next request hits
// the database and sees the new token hash.
func invalidateAuthCache(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := utils.GetAuthCacheClient().Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate auth cache",
			zap.String("userId", userID),
			zap.Error(err),
		)
	}
}
