package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/campus-desk-api/internal/dto"
	"github.com/noah-isme/campus-desk-api/internal/models"
	"github.com/noah-isme/campus-desk-api/pkg/deferred"
	appErrors "github.com/noah-isme/campus-desk-api/pkg/errors"
)

// DashboardRedirect is where a successful login lands.
const DashboardRedirect = "/admin/dashboard"

// AuthConfig holds the fixed admin credential pair.
type AuthConfig struct {
	Username   string
	Password   string
	LoginDelay time.Duration
}

// AuthService gates access behind the configured admin pair. No session is issued.
type AuthService struct {
	username     string
	passwordHash []byte
	delay        time.Duration
	validator    *validator.Validate
	metrics      *MetricsService
	logger       *zap.Logger
}

// NewAuthService hashes the configured password once at start-up.
func NewAuthService(cfg AuthConfig, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) (*AuthService, error) {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.LoginDelay < 0 {
		cfg.LoginDelay = 0
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		username:     cfg.Username,
		passwordHash: hash,
		delay:        cfg.LoginDelay,
		validator:    validate,
		metrics:      metrics,
		logger:       logger,
	}, nil
}

// Login waits the simulated delay and then compares the pair.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*models.LoginResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid login payload")
	}
	check := deferred.New(s.delay, func() (bool, error) {
		if req.Username != s.username {
			return false, nil
		}
		return bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)) == nil, nil
	})
	_ = check.Start()
	ok, err := check.Wait(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnavailable.Code, appErrors.ErrUnavailable.Status, "login aborted")
	}
	s.metrics.RecordLogin(ok)
	if !ok {
		s.logger.Warn("login rejected", zap.String("username", req.Username))
		return nil, appErrors.ErrInvalidCredentials
	}
	s.logger.Info("login accepted", zap.String("username", req.Username))
	return &models.LoginResult{Authenticated: true, Username: req.Username, Redirect: DashboardRedirect}, nil
}
