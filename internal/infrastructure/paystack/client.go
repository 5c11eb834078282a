package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/decluttit/trade-service/internal/domain"
)

const defaultBaseURL = "https://api.paystack.co"

// Client talks to the Paystack REST API. Charge execution and refunds
// happen on the gateway side; the core only initializes and verifies.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewClient(baseURL, secretKey string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type initializeRequest struct {
	Email     string            `json:"email"`
	Amount    int64             `json:"amount"`
	Reference string            `json:"reference"`
	Metadata  map[string]string `json:"metadata"`
}

type initializeResponse struct {
	Status bool `json:"status"`
	Data   struct {
		AuthorizationURL string `json:"authorization_url"`
		Reference        string `json:"reference"`
	} `json:"data"`
	Message string `json:"message"`
}

func (c *Client) InitializePayment(ctx context.Context, email string, amountMinor int64, reference, transactionID string) (*domain.PaymentInit, error) {
	payload, err := json.Marshal(initializeRequest{
		Email:     email,
		Amount:    amountMinor,
		Reference: reference,
		Metadata:  map[string]string{"transactionId": transactionID},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transaction/initialize", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paystack initialize: %v: %w", err, domain.ErrExternalService)
	}
	defer resp.Body.Close()

	var body initializeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("paystack initialize: decode response: %w", domain.ErrExternalService)
	}
	if resp.StatusCode != http.StatusOK || !body.Status {
		return nil, fmt.Errorf("paystack initialize: %s: %w", body.Message, domain.ErrExternalService)
	}

	return &domain.PaymentInit{
		AuthorizationURL: body.Data.AuthorizationURL,
		Reference:        body.Data.Reference,
	}, nil
}

type verifyResponse struct {
	Status bool `json:"status"`
	Data   struct {
		Status   string `json:"status"`
		Metadata struct {
			TransactionID string `json:"transactionId"`
		} `json:"metadata"`
	} `json:"data"`
	Message string `json:"message"`
}

func (c *Client) VerifyPayment(ctx context.Context, reference string) (*domain.PaymentVerification, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paystack verify: %v: %w", err, domain.ErrExternalService)
	}
	defer resp.Body.Close()

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("paystack verify: decode response: %w", domain.ErrExternalService)
	}
	if resp.StatusCode != http.StatusOK || !body.Status {
		return nil, fmt.Errorf("paystack verify: %s: %w", body.Message, domain.ErrExternalService)
	}

	return &domain.PaymentVerification{
		Success:       body.Data.Status == "success",
		TransactionID: body.Data.Metadata.TransactionID,
	}, nil
}
