package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/KragoN96/berries-web-app/internal/logger"
	"github.com/KragoN96/berries-web-app/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrMissingFields        = errors.New("missing required fields")
	ErrEmailAlreadyUsed     = errors.New("email already in use")
	ErrIncorrectCredentials = errors.New("incorrect credentials")
	ErrInvalidResetToken    = errors.New("invalid or expired token")
	ErrUserNotFound         = errors.New("user not found")
)

const (
	resetTokenTTL   = 15 * time.Minute
	resetTokenBytes = 32
	mailSendTimeout = 15 * time.Second
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, fullName, email, passwordHash, institution string) (uuid.UUID, bool, error)
	SetResetToken(ctx context.Context, email, tokenHash string, expiresAt time.Time) error
	ConsumeResetToken(ctx context.Context, email, tokenHash, newPasswordHash string) (bool, error)
	UpdateEmail(ctx context.Context, userID uuid.UUID, email string) error
}

// JWTGenerator defines an interface for generating session tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, email string) (string, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Bcrypt hash of an arbitrary string, computed once. Compared against on
// logins for unknown emails so the work done does not reveal whether the
// account exists.
var dummyPasswordHash = func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("equalize-compare-work"), bcrypt.DefaultCost)
	return h
}()

// AuthService handles registration, login and the password-reset lifecycle.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	jwt         JWTGenerator
	kafkaWriter KafkaWriter
	baseURL     string // public frontend base, used in reset links
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, kafkaWriter KafkaWriter, baseURL string) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		jwt:         jwt,
		kafkaWriter: kafkaWriter,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user and returns its id.
func (svc *AuthService) Register(ctx context.Context, fullName, email, password, institution string) (uuid.UUID, error) {
	fullName = strings.TrimSpace(fullName)
	email = NormalizeEmail(email)
	if fullName == "" || email == "" || password == "" {
		return uuid.Nil, ErrMissingFields
	}

	// Friendly pre-check; the unique index on email is the real guard.
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return uuid.Nil, err
	}
	if existing != nil {
		return uuid.Nil, ErrEmailAlreadyUsed
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, err
	}

	userID, inserted, err := svc.writer.Save(ctx, fullName, email, string(hashedPassword), institution)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return uuid.Nil, err
	}
	if !inserted {
		// Lost the race to a concurrent registration.
		return uuid.Nil, ErrEmailAlreadyUsed
	}

	return userID, nil
}

// Login authenticates a user and returns a session token plus the public
// profile. Unknown email and wrong password are indistinguishable to the
// caller, in message and in work done.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDB, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, ErrMissingFields
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(password))
		return "", nil, ErrIncorrectCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrIncorrectCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user, nil
}

// RequestPasswordReset issues a reset token for the account, if one exists,
// and dispatches the reset link by email. The caller learns nothing about
// whether the email is registered.
func (svc *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return ErrMissingFields
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user for reset", "err", err)
		return err
	}
	if user == nil {
		return nil
	}

	raw := make([]byte, resetTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	rawToken := hex.EncodeToString(raw)
	tokenHash := hashResetToken(rawToken)

	if err := svc.writer.SetResetToken(ctx, email, tokenHash, time.Now().Add(resetTokenTTL)); err != nil {
		logger.Log.Errorw("failed to store reset token", "err", err)
		return err
	}

	// Only the hash is persisted; the raw token leaves the process inside
	// the reset link and is never seen again.
	link := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		svc.baseURL, rawToken, url.QueryEscape(email))
	svc.dispatchEmail(ctx, models.EmailMessage{
		To:      email,
		Subject: "Reset your Berries Lost & Found password",
		HTML: fmt.Sprintf(
			`<p>We received a request to reset your password.</p>`+
				`<p><a href="%s">Choose a new password</a> (link valid for 15 minutes).</p>`+
				`<p>If you did not ask for this, you can ignore this email.</p>`, link),
	})

	return nil
}

// ConsumePasswordReset exchanges a valid reset token for a new password.
func (svc *AuthService) ConsumePasswordReset(ctx context.Context, email, rawToken, newPassword string) error {
	email = NormalizeEmail(email)
	if email == "" || rawToken == "" || newPassword == "" {
		return ErrMissingFields
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	ok, err := svc.writer.ConsumeResetToken(ctx, email, hashResetToken(rawToken), string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to consume reset token", "err", err)
		return err
	}
	if !ok {
		return ErrInvalidResetToken
	}

	return nil
}

// ChangeEmail updates the account email after re-verifying the password.
func (svc *AuthService) ChangeEmail(ctx context.Context, userID uuid.UUID, newEmail, currentPassword string) (string, error) {
	newEmail = NormalizeEmail(newEmail)
	if newEmail == "" || currentPassword == "" {
		return "", ErrMissingFields
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return "", ErrIncorrectCredentials
	}

	taken, err := svc.reader.GetByEmail(ctx, newEmail)
	if err != nil {
		logger.Log.Errorw("failed to check new email", "err", err)
		return "", err
	}
	if taken != nil && taken.UserID != userID {
		return "", ErrEmailAlreadyUsed
	}

	if err := svc.writer.UpdateEmail(ctx, userID, newEmail); err != nil {
		logger.Log.Errorw("failed to update email", "err", err)
		return "", err
	}

	return newEmail, nil
}

// dispatchEmail publishes a mail job for the delivery worker. Delivery is
// best effort: failures are logged, not surfaced, and the publish is bounded
// by a timeout so a slow broker cannot stall the request.
func (svc *AuthService) dispatchEmail(ctx context.Context, msg models.EmailMessage) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping email dispatch", "to", msg.To)
		return
	}

	data, err := json.Marshal(msg)
	if err != nil {
		logger.Log.Errorw("Failed to marshal email message", "to", msg.To, "error", err)
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, mailSendTimeout)
	defer cancel()

	if err := svc.kafkaWriter.WriteMessages(sendCtx, kafka.Message{
		Key:   []byte(msg.To),
		Value: data,
	}); err != nil {
		logger.Log.Errorw("Failed to publish email message", "to", msg.To, "error", err)
	} else {
		logger.Log.Infow("Email message published", "to", msg.To, "subject", msg.Subject)
	}
}

func hashResetToken(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return hex.EncodeToString(sum[:])
}
