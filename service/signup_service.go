// file: service/signup_service.go

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"go-waitlist-api/intake"
	"go-waitlist-api/logger"
	"go-waitlist-api/metrics"
	"go-waitlist-api/model"
)

// SignupService handles waitlist submissions: it derives the outbound
// fields from the raw signup and performs the single form-intake call.
type SignupService struct {
	intake intake.Client
}

// NewSignupService creates a new SignupService.
func NewSignupService(intakeClient intake.Client) *SignupService {
	return &SignupService{intake: intakeClient}
}

// Submit relays a validated signup to the form-intake service. The role
// label and subject line are derived here and live only in the outbound
// payload; nothing is retained after the call resolves. A non-nil return
// means the signup was NOT transmitted. The error has already been logged
// and the caller decides how to degrade. Submit never retries.
func (s *SignupService) Submit(ctx context.Context, req model.SignupRequest) error {
	log := logger.Log.WithFields(logrus.Fields{
		"role":  req.Role,
		"email": req.Email,
	})
	log.Info("Processing waitlist signup")

	metrics.RecordSignupReceived(string(req.Role))

	sub := intake.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Role:    req.Role.Label(),
		Subject: req.Role.SubjectLine(),
	}

	start := time.Now()
	err := s.intake.Submit(ctx, sub)
	elapsed := time.Since(start)

	if err != nil {
		metrics.RecordDelivery(string(model.DeliverySimulated), elapsed)
		log.WithError(err).Error("Form intake submission failed, signup will be simulated")
		return fmt.Errorf("submit signup: %w", err)
	}

	metrics.RecordDelivery(string(model.DeliveryDelivered), elapsed)
	log.Info("Signup delivered to form intake")
	return nil
}
