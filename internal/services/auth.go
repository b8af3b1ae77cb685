package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-admin-auth/internal/logger"
	"github.com/sbilibin2017/gw-admin-auth/internal/models"
	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// Error variables
var (
	ErrAdminDoesNotExist  = errors.New("admin does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

var compareHashAndPassword = bcrypt.CompareHashAndPassword

// dummyHash is compared against when the admin is unknown, so both failure
// paths cost one bcrypt comparison.
var dummyHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("gw-admin-auth-dummy-password"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return hash
})

// AdminReader defines read-only operations for admins.
type AdminReader interface {
	GetByUsername(ctx context.Context, username string) (*models.AdminDB, error)
}

// AdminWriter defines write operations for admins.
type AdminWriter interface {
	Save(ctx context.Context, username, passwordHash string, permissions []string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, adminID uuid.UUID, username string, permissions []string) (string, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// AdminAuthService handles admin login and seeding.
type AdminAuthService struct {
	reader      AdminReader
	writer      AdminWriter
	jwt         JWTGenerator
	kafkaWriter KafkaWriter
}

// NewAdminAuthService creates a new AdminAuthService instance.
// kafkaWriter may be nil, in which case login events are not published.
func NewAdminAuthService(reader AdminReader, writer AdminWriter, jwt JWTGenerator, kafkaWriter KafkaWriter) *AdminAuthService {
	return &AdminAuthService{
		reader:      reader,
		writer:      writer,
		jwt:         jwt,
		kafkaWriter: kafkaWriter,
	}
}

// Login authenticates an admin and returns a JWT token with the admin's permissions.
func (svc *AdminAuthService) Login(ctx context.Context, username, password string) (string, []string, error) {
	admin, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get admin", "username", username, "err", err)
		return "", nil, err
	}
	if admin == nil {
		_ = compareHashAndPassword(dummyHash(), []byte(password))
		logger.Log.Warnw("admin does not exist", "username", username)
		svc.publishLoginEvent(ctx, models.LoginEvent{Username: username, Outcome: models.LoginUnknownAdmin})
		return "", nil, ErrAdminDoesNotExist
	}

	if err := compareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "username", username)
		svc.publishLoginEvent(ctx, models.LoginEvent{
			AdminID:  admin.AdminID.String(),
			Username: username,
			Outcome:  models.LoginInvalidCredentials,
		})
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, admin.AdminID, admin.Username, admin.Permissions)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "username", username, "err", err)
		return "", nil, err
	}

	svc.publishLoginEvent(ctx, models.LoginEvent{
		AdminID:  admin.AdminID.String(),
		Username: username,
		Outcome:  models.LoginSucceeded,
	})

	return token, admin.Permissions, nil
}

// EnsureAdmin creates the admin, or resets its password and permissions if it exists.
func (svc *AdminAuthService) EnsureAdmin(ctx context.Context, username, password string, permissions []string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, username, string(hashedPassword), permissions); err != nil {
		logger.Log.Errorw("failed to save admin", "username", username, "err", err)
		return err
	}

	logger.Log.Infow("admin ensured", "username", username, "permissions", len(permissions))
	return nil
}

// publishLoginEvent publishes a login attempt to Kafka. Failures are only logged.
func (svc *AdminAuthService) publishLoginEvent(ctx context.Context, event models.LoginEvent) {
	if svc.kafkaWriter == nil {
		return
	}

	event.EventID = uuid.NewString()
	event.Timestamp = time.Now().Unix()

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal login event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish login event", "event_id", event.EventID, "error", err)
		return
	}
	logger.Log.Debugw("login event published", "event_id", event.EventID, "outcome", event.Outcome)
}
