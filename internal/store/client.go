package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
)

const customersResource = "customers"

// Client queries the data service using PostgREST conventions: one
// customers collection, filtered by 'email=eq.<email>', mutations asking
// for the resulting representation back.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	debug   bool
}

func New(baseURL, apiKey string, debugEnabled bool) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{},
		debug:   debugEnabled,
	}
}

// Create a customer. The email must be unused, otherwise a DuplicateError
// is returned and the existing record stays as it was.
func (c *Client) Create(ctx context.Context, email, fullName, bio string) (Customer, error) {
	body := Customer{Email: email, FullName: fullName, Bio: bio}
	got, err := c.do(ctx, http.MethodPost, "", body)
	if err != nil {
		return Customer{}, err
	}
	if len(got) == 0 {
		return Customer{}, fmt.Errorf("data service returned no representation for created customer: '%v'", email)
	}
	return got[0], nil
}

// GetByEmail returns the customer matching email. A missing record is a
// normal outcome, reported as found == false, not as an error.
func (c *Client) GetByEmail(ctx context.Context, email string) (Customer, bool, error) {
	got, err := c.do(ctx, http.MethodGet, email, nil)
	if err != nil {
		return Customer{}, false, err
	}
	if len(got) == 0 {
		return Customer{}, false, nil
	}
	return got[0], true, nil
}

// UpdateByEmail patches only the provided fields of the customer matching
// email. Nil fields are left untouched.
func (c *Client) UpdateByEmail(ctx context.Context, email string, fullName, bio *string) (Customer, error) {
	patch := map[string]string{}
	if fullName != nil {
		patch["full_name"] = *fullName
	}
	if bio != nil {
		patch["bio"] = *bio
	}
	got, err := c.do(ctx, http.MethodPatch, email, patch)
	if err != nil {
		return Customer{}, err
	}
	if len(got) == 0 {
		return Customer{}, NotFoundError{Email: email}
	}
	return got[0], nil
}

// DeleteByEmail removes the customer matching email, returning the removed
// record's identity as confirmation.
func (c *Client) DeleteByEmail(ctx context.Context, email string) (Customer, error) {
	got, err := c.do(ctx, http.MethodDelete, email, nil)
	if err != nil {
		return Customer{}, err
	}
	if len(got) == 0 {
		return Customer{}, NotFoundError{Email: email}
	}
	return got[0], nil
}

func (c *Client) do(ctx context.Context, method, emailFilter string, body any) ([]Customer, error) {
	reqURL := fmt.Sprintf("%v/%v", c.baseURL, customersResource)
	if emailFilter != "" {
		reqURL += fmt.Sprintf("?email=eq.%v", url.QueryEscape(emailFilter))
	}
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %v", c.apiKey))
	// Have mutations respond with the resulting rows, so that not-found
	// filters are detectable as an empty representation
	req.Header.Set("Prefer", "return=representation")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach data service: %w", err)
	}
	defer res.Body.Close()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read data service response: %w", err)
	}
	if c.debug {
		ancli.Okf("store response, status: %v, body: %v\n", res.Status, string(resBody))
	}

	if res.StatusCode == http.StatusConflict {
		return nil, DuplicateError{Email: emailFromBody(body)}
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code from data service: %v, body: %v", res.Status, string(resBody))
	}

	var customers []Customer
	if len(resBody) > 0 {
		if err := json.Unmarshal(resBody, &customers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal data service response: %w, body: %v", err, string(resBody))
		}
	}
	return customers, nil
}

func emailFromBody(body any) string {
	cust, isCustomer := body.(Customer)
	if !isCustomer {
		return ""
	}
	return cust.Email
}
