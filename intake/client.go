package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrNotConfigured is returned when no real form-intake endpoint has been
// configured. Callers use it to fall back to the simulated success path
// without ever hitting the network.
var ErrNotConfigured = errors.New("form intake endpoint is not configured")

// placeholderEndpoint is the value shipped in sample configs. Treated the
// same as an empty endpoint so a copied config never sends traffic to a
// form that does not exist.
const placeholderEndpoint = "https://formspree.io/f/YOUR_FORM_ID"

// Submission is the outbound payload. Role carries the human-readable
// label, and the subject line rides in the provider's "_subject" field.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Subject string `json:"_subject"`
}

// Client defines the interface for delivering a submission to the
// third-party form-intake service.
type Client interface {
	Submit(ctx context.Context, sub Submission) error
}

type clientImpl struct {
	endpoint string
}

// NewClient creates a new form-intake client for the given endpoint.
func NewClient(endpoint string) Client {
	return &clientImpl{
		endpoint: endpoint,
	}
}

func (c *clientImpl) Submit(ctx context.Context, sub Submission) error {
	if c.endpoint == "" || c.endpoint == placeholderEndpoint {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")

	// No timeout beyond the transport's default; the one outbound call runs
	// to completion or failure.
	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error submitting signup: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("error from form intake (status %d): %s", resp.StatusCode, string(body))
	}

	return nil
}
