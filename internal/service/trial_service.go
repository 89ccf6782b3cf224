package service

import (
	"context"
	"errors"
	log "log/slog"
	"strings"
	"time"

	"github.com/hectoorperezz/goviral-backend/internal/pkg/mailer"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/storage"
	"github.com/hectoorperezz/goviral-backend/internal/pkg/util"
)

const (
	// VerificationTTL is how long a code stays redeemable.
	VerificationTTL    = 24 * time.Hour
	verificationPrefix = "verifications/"
	trialPrefix        = "trials/"
	codeLength         = 6
)

// PendingVerification is the short-lived code record, stored as a blob
// keyed by email. A new request overwrites any prior record.
type PendingVerification struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	ReelURL   string    `json:"reel_url"`
	Code      string    `json:"code"`
	Attempts  int       `json:"attempts"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Trial is the captured lead, written once the code is redeemed.
type Trial struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ReelURL    string    `json:"reel_url"`
	VerifiedAt time.Time `json:"verified_at"`
}

type TrialService interface {
	RequestTrial(ctx context.Context, name string, email string, reelURL string) error
	VerifyCode(ctx context.Context, email string, code string) (*Trial, error)
}

type trialServiceImpl struct {
	store storage.Store
	mail  mailer.Mailer
}

func NewTrialService(store storage.Store, mail mailer.Mailer) TrialService {
	return &trialServiceImpl{
		store: store,
		mail:  mail,
	}
}

func verificationKey(email string) string {
	return verificationPrefix + strings.ToLower(email) + ".json"
}

func trialKey(email string) string {
	return trialPrefix + strings.ToLower(email) + ".json"
}

// RequestTrial issues a fresh 6-digit code with a 24h expiry and mails
// it out, replacing any earlier pending verification for the email.
func (s *trialServiceImpl) RequestTrial(ctx context.Context, name string, email string, reelURL string) error {
	now := time.Now()
	pending := &PendingVerification{
		Name:      name,
		Email:     strings.ToLower(email),
		ReelURL:   reelURL,
		Code:      util.GenerateCode(codeLength),
		ExpiresAt: now.Add(VerificationTTL),
		CreatedAt: now,
	}

	if err := s.store.PutJSON(ctx, verificationKey(email), pending); err != nil {
		return err
	}

	if err := s.mail.SendVerificationCode(pending.Email, name, pending.Code); err != nil {
		log.ErrorContext(ctx, "failed to send verification mail", "email", pending.Email, "err", err)
		return err
	}
	return nil
}

// VerifyCode redeems a code at most once. Expiry wins over correctness;
// a wrong code bumps the persisted attempt counter; success records the
// trial and removes the verification.
func (s *trialServiceImpl) VerifyCode(ctx context.Context, email string, code string) (*Trial, error) {
	key := verificationKey(email)

	var pending PendingVerification
	if err := s.store.GetJSON(ctx, key, &pending); err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, ErrVerificationMissing
		}
		return nil, err
	}

	if time.Now().After(pending.ExpiresAt) {
		if err := s.store.Delete(ctx, key); err != nil {
			log.WarnContext(ctx, "failed to delete expired verification", "email", email, "err", err)
		}
		return nil, ErrVerificationExpired
	}

	if pending.Code != code {
		pending.Attempts++
		if err := s.store.PutJSON(ctx, key, &pending); err != nil {
			log.WarnContext(ctx, "failed to persist attempt counter", "email", email, "err", err)
		}
		return nil, ErrCodeIncorrect
	}

	trial := &Trial{
		Name:       pending.Name,
		Email:      pending.Email,
		ReelURL:    pending.ReelURL,
		VerifiedAt: time.Now(),
	}
	if err := s.store.PutJSON(ctx, trialKey(email), trial); err != nil {
		return nil, err
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return nil, err
	}
	return trial, nil
}
