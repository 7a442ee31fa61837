package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-job-board/internal/domain/entity"
	repo "github.com/oksasatya/go-job-board/internal/domain/repository"
	"github.com/oksasatya/go-job-board/pkg/apperror"
	"github.com/oksasatya/go-job-board/pkg/helpers"
	"github.com/oksasatya/go-job-board/pkg/mailer"
	mailtpl "github.com/oksasatya/go-job-board/pkg/mailer/templates"
)

const publishTimeout = 3 * time.Second

type AuthService struct {
	Users   repo.UserRepository
	JWT     *helpers.JWTManager
	Mail    EmailPublisher
	AppName string
	Logger  *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, mail EmailPublisher, appName string, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Mail: mail, AppName: appName, Logger: logger}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// ClientInfo describes the caller for login notifications.
type ClientInfo struct {
	IP        string
	UserAgent string
}

// Session is a freshly minted token for a user. TTL is the token lifetime
// the cookie should carry.
type Session struct {
	User      *entity.User
	Token     string
	ExpiresAt time.Time
	TTL       time.Duration
}

// NormalizeEmail is the canonical form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	name := strings.TrimSpace(in.Name)
	email := NormalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, apperror.Validation("name, email and password are required", nil)
	}
	if len(in.Password) > helpers.MaxPasswordBytes {
		return nil, apperror.Validation("password is too long", map[string]string{
			"password": fmt.Sprintf("must be at most %d bytes", helpers.MaxPasswordBytes),
		})
	}

	if _, err := s.Users.GetByEmail(ctx, email); err == nil {
		return nil, apperror.Conflict("email already registered")
	} else if !isNotFound(err) {
		return nil, storeErr("could not register user", err)
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, apperror.Unexpected("could not register user", err)
	}
	u := &entity.User{Name: name, Email: email, Password: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		if isDuplicate(err) {
			return nil, apperror.Conflict("email already registered")
		}
		return nil, storeErr("could not register user", err)
	}

	sess, err := s.issue(u)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, u, mailtpl.Welcome, mailtpl.NewWelcomeData(s.AppName, u.Name, u.Email))
	s.Logger.WithField("user_id", u.ID).Info("user registered")
	return sess, nil
}

func (s *AuthService) Login(ctx context.Context, in LoginInput, client ClientInfo) (*Session, error) {
	email := NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, apperror.Validation("email and password are required", nil)
	}

	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, storeErr("could not log in", err)
	}
	if !helpers.PasswordMatches(u.Password, in.Password) {
		return nil, apperror.Unauthorized("invalid credentials")
	}

	sess, err := s.issue(u)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, u, mailtpl.LoginNotification, mailtpl.NewLoginNotificationData(s.AppName, u.Name, u.Email,
		mailtpl.WithIP(client.IP),
		mailtpl.WithUserAgent(client.UserAgent),
		mailtpl.WithTime(time.Now()),
	))
	return sess, nil
}

// Resolve verifies a session token and loads its user. Expired and invalid
// tokens are reported with distinct messages.
func (s *AuthService) Resolve(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, apperror.Unauthorized("No authentication token found")
	}
	claims, err := s.JWT.ParseToken(token)
	if err != nil {
		if errors.Is(err, helpers.ErrTokenExpired) {
			return nil, apperror.UnauthorizedWrap("Token expired", err)
		}
		return nil, apperror.UnauthorizedWrap("Invalid token", err)
	}
	return s.CurrentUser(ctx, claims.UserID)
}

func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("user not found")
		}
		return nil, storeErr("could not load user", err)
	}
	return u, nil
}

func (s *AuthService) issue(u *entity.User) (*Session, error) {
	token, exp, err := s.JWT.GenerateToken(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		return nil, apperror.Unexpected("could not create session", err)
	}
	return &Session{User: u, Token: token, ExpiresAt: exp, TTL: s.JWT.TTL}, nil
}

// notify enqueues a templated email. Failures are logged and never surface.
func (s *AuthService) notify(ctx context.Context, u *entity.User, template string, data map[string]any) {
	if s.Mail == nil {
		return
	}
	c, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	job := mailer.EmailJob{To: u.Email, Template: template, Data: data}
	if err := s.Mail.PublishJSON(c, job); err != nil {
		s.Logger.WithError(err).WithFields(logrus.Fields{
			"user_id":  u.ID,
			"template": template,
		}).Warn("enqueue email failed")
	}
}
