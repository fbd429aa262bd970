package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrRejected means the relay answered but did not accept the message.
var ErrRejected = errors.New("contact: submission rejected by relay")

// Submission is the contact form payload. The binding tags are shared with
// gin so the handler and the client apply the same rules.
type Submission struct {
	Name    string `form:"name" json:"name" binding:"required,min=2"`
	Email   string `form:"email" json:"email" binding:"required,email"`
	Message string `form:"message" json:"message" binding:"required,min=10"`
}

// Receipt identifies a delivered submission.
type Receipt struct {
	ID     string    `json:"id"`
	SentAt time.Time `json:"sent_at"`
}

var validate = func() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}()

var fieldMessages = map[string]string{
	"name":    "Name must be at least 2 characters.",
	"email":   "Please enter a valid email address.",
	"message": "Message must be at least 10 characters.",
}

// Validate checks s against the form rules.
func Validate(s Submission) error {
	return validate.Struct(s)
}

// FieldErrors maps a validation error to form field names and user-facing
// messages. It returns nil when err is not a validation error.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.StructField())
		msg, ok := fieldMessages[field]
		if !ok {
			msg = fmt.Sprintf("%s is invalid.", fe.StructField())
		}
		out[field] = msg
	}
	return out
}

// Client relays contact submissions to a hosted form endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	log      *slog.Logger
}

func NewClient(endpoint string, timeout time.Duration, log *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		endpoint: endpoint,
		http: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// relayResponse mirrors the JSON the form relay answers with.
type relayResponse struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Submit validates s and posts it as JSON. Delivery counts as successful only
// when the relay reports code 200 in its body.
func (c *Client) Submit(ctx context.Context, s Submission) (Receipt, error) {
	if err := Validate(s); err != nil {
		return Receipt{}, err
	}

	body, err := json.Marshal(s)
	if err != nil {
		return Receipt{}, err
	}

	id := uuid.NewString()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Receipt{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", id)

	resp, err := c.http.Do(req)
	if err != nil {
		return Receipt{}, fmt.Errorf("contact: post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Receipt{}, fmt.Errorf("contact: unexpected status %d: %s", resp.StatusCode, string(raw))
	}

	var out relayResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Receipt{}, fmt.Errorf("contact: decode response: %w", err)
	}
	if out.Code != http.StatusOK {
		return Receipt{}, fmt.Errorf("%w: code %d %s", ErrRejected, out.Code, out.Message)
	}

	c.log.Info("contact submission relayed",
		slog.String("id", id),
		slog.String("email", s.Email),
	)
	return Receipt{ID: id, SentAt: time.Now().UTC()}, nil
}
