package app_service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"anke-go-api/inout"
	"anke-go-api/model"
	"anke-go-api/pkg/jwt"
	"anke-go-api/pkg/monitoring"
	"anke-go-api/pkg/security"
)

// RegistrationBonus is the initial ledger credit for a new account.
const RegistrationBonus = 1000

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAdmin           = errors.New("account lacks admin authority")
)

type AuthService struct {
	db       *gorm.DB
	appJWT   *jwt.JWTManager
	adminJWT *jwt.JWTManager
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		db:       db,
		appJWT:   jwt.NewJWTManager(jwt.TokenTypeApp),
		adminJWT: jwt.NewJWTManager(jwt.TokenTypeAdmin),
	}
}

// Register creates the account and its registration bonus in one
// transaction, then issues a token.
func (s *AuthService) Register(ctx context.Context, req *inout.RegisterReq) (*inout.LoginResp, error) {
	if err := security.ValidatePasswordStrength(req.Password); err != nil {
		return nil, err
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:    req.Email,
		Password: hash,
		Nickname: req.Nickname,
		Status:   model.UserStatusMember,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}

		if err := tx.Create(user).Error; err != nil {
			return err
		}

		return tx.Create(&model.PointRecord{
			UserID: user.ID,
			Amount: RegistrationBonus,
			Type:   model.PointTypeRegist,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	monitoring.CountUserRegistration()

	token, err := s.appJWT.GenerateToken(user.ID, user.Status)
	if err != nil {
		return nil, err
	}
	return &inout.LoginResp{
		Token:    token,
		UserID:   user.ID,
		Nickname: user.Nickname,
		Status:   user.Status,
	}, nil
}

// Login authenticates on the app surface.
func (s *AuthService) Login(ctx context.Context, email, password string) (*inout.LoginResp, error) {
	user, err := s.verify(ctx, email, password)
	if err != nil {
		return nil, err
	}

	token, err := s.appJWT.GenerateToken(user.ID, user.Status)
	if err != nil {
		return nil, err
	}
	return &inout.LoginResp{
		Token:    token,
		UserID:   user.ID,
		Nickname: user.Nickname,
		Status:   user.Status,
	}, nil
}

// AdminLogin authenticates on the admin surface. The captcha is verified
// by the handler against the session before this runs.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (*inout.LoginResp, error) {
	user, err := s.verify(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, ErrNotAdmin
	}

	token, err := s.adminJWT.GenerateToken(user.ID, user.Status)
	if err != nil {
		return nil, err
	}
	return &inout.LoginResp{
		Token:    token,
		UserID:   user.ID,
		Nickname: user.Nickname,
		Status:   user.Status,
	}, nil
}

func (s *AuthService) verify(ctx context.Context, email, password string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if user.Status == model.UserStatusDisabled {
		return nil, ErrInvalidCredentials
	}
	if !security.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
