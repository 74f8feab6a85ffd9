package pay

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the PayPal subscriptions API. The app only needs one
// question answered: is this subscription ID active.
type Client struct {
	ClientID   string
	Secret     string
	BaseURL    string
	HTTPClient *http.Client
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type Subscription struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	PlanID string `json:"plan_id"`
}

func NewClient(clientID, secret string) *Client {
	return &Client{
		ClientID:   clientID,
		Secret:     secret,
		BaseURL:    "https://api-m.paypal.com",
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) token() (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	req, err := http.NewRequest("POST", c.BaseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.ClientID, c.Secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request failed: %s", res.Status)
	}
	var tok tokenResponse
	if err := json.NewDecoder(res.Body).Decode(&tok); err != nil {
		return "", err
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("empty access token")
	}
	return tok.AccessToken, nil
}

func (c *Client) GetSubscription(id string) (Subscription, error) {
	tok, err := c.token()
	if err != nil {
		return Subscription{}, err
	}
	var sub Subscription
	if err := c.getJSON("/v1/billing/subscriptions/"+url.PathEscape(id), tok, &sub); err != nil {
		return Subscription{}, err
	}
	return sub, nil
}

// IsActive reports whether the subscription exists and is currently ACTIVE.
func (c *Client) IsActive(id string) (bool, error) {
	sub, err := c.GetSubscription(id)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(sub.Status, "ACTIVE"), nil
}

func (c *Client) getJSON(path, token string, out any) error {
	req, err := http.NewRequest("GET", c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("paypal request failed: %s", res.Status)
	}
	return json.NewDecoder(res.Body).Decode(out)
}
