package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/booklend/booklend/internal/domain/entity"
	"github.com/booklend/booklend/internal/domain/service"
	"github.com/booklend/booklend/pkg/helpers"
	"github.com/booklend/booklend/pkg/mailer"
)

const (
	tokenKeyPrefix = "email:verify:token:"
	emailKeyPrefix = "email:verify:email:"

	// Keys outlive the logical expiry so an expired token can still be
	// looked up and reported as expired instead of silently invalid.
	expiryGrace = time.Hour
)

// Publisher is the slice of RabbitPublisher the store needs.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// VerificationStore keeps email verification tokens in Redis and hands
// outgoing verification mail to the email queue.
type VerificationStore struct {
	rdb       *redis.Client
	publisher Publisher
	logger    *logrus.Logger

	// VerifyBaseURL is the frontend URL the token gets appended to.
	VerifyBaseURL string
	MailEnabled   bool
}

func NewVerificationStore(rdb *redis.Client, publisher Publisher, logger *logrus.Logger, verifyBaseURL string, mailEnabled bool) *VerificationStore {
	return &VerificationStore{
		rdb:           rdb,
		publisher:     publisher,
		logger:        logger,
		VerifyBaseURL: verifyBaseURL,
		MailEnabled:   mailEnabled,
	}
}

// SaveEmailVerificationToken stores the token and replaces any earlier
// token issued for the same email, so resending always invalidates the
// previous link.
func (s *VerificationStore) SaveEmailVerificationToken(ctx context.Context, email, token string, expiresAt time.Time) error {
	if prev, err := s.rdb.Get(ctx, emailKeyPrefix+email).Result(); err == nil && prev != "" {
		if err := helpers.RedisDel(ctx, s.rdb, tokenKeyPrefix+prev); err != nil {
			return err
		}
	} else if err != nil && err != redis.Nil {
		return err
	}

	ttl := time.Until(expiresAt) + expiryGrace
	rec := entity.EmailVerificationToken{Email: email, Token: token, ExpiresAt: expiresAt}
	if err := helpers.RedisSetJSON(ctx, s.rdb, tokenKeyPrefix+token, rec, ttl); err != nil {
		return err
	}
	return s.rdb.Set(ctx, emailKeyPrefix+email, token, ttl).Err()
}

func (s *VerificationStore) FindEmailVerificationToken(ctx context.Context, token string) (*entity.EmailVerificationToken, error) {
	var rec entity.EmailVerificationToken
	found, err := helpers.RedisGetJSON(ctx, s.rdb, tokenKeyPrefix+token, &rec)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &rec, nil
}

func (s *VerificationStore) DeleteEmailVerificationToken(ctx context.Context, token string) error {
	rec, err := s.FindEmailVerificationToken(ctx, token)
	if err != nil {
		return err
	}
	if rec != nil {
		if err := helpers.RedisDel(ctx, s.rdb, emailKeyPrefix+rec.Email); err != nil {
			return err
		}
	}
	return helpers.RedisDel(ctx, s.rdb, tokenKeyPrefix+token)
}

// SendVerificationEmail enqueues the verification mail. When mail is
// disabled (local development) the link is logged instead.
func (s *VerificationStore) SendVerificationEmail(ctx context.Context, email, token string) error {
	verifyURL := fmt.Sprintf("%s/verify?token=%s", s.VerifyBaseURL, token)

	if !s.MailEnabled || s.publisher == nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{
				"email":      email,
				"verify_url": verifyURL,
			}).Info("mail disabled, skipping verification email")
		}
		return nil
	}

	job := mailer.EmailJob{
		To:       email,
		Subject:  "Verify your email address",
		Template: "verify_email",
		Data: map[string]any{
			"VerifyURL": verifyURL,
		},
	}
	return s.publisher.PublishJSON(ctx, job)
}

var _ service.EmailVerificationService = (*VerificationStore)(nil)
