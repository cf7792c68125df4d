package nlpextract

import (
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Config holds extraction client configuration
type Config struct {
	BaseURL    string
	AppKey     string
	AppSecret  string
	TokenTTL   time.Duration
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("nlpextract: BaseURL is required")
	}
	if c.AppKey == "" {
		return fmt.Errorf("nlpextract: AppKey is required")
	}
	if c.AppSecret == "" {
		return fmt.Errorf("nlpextract: AppSecret is required")
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = DefaultTokenTTL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// extractorImpl is the internal implementation of IExtractor
type extractorImpl struct {
	baseURL    string
	appKey     string
	appSecret  string
	httpClient *http.Client
	tokens     *expirable.LRU[string, string]
}

// Result holds the fields the service extracted from one utterance.
// String fields are empty when the service saw nothing for them.
type Result struct {
	CleanTitle  string
	Description string
	Priority    string
	Owner       string
	DueDate     string
	Confidence  float64
}

// Wire types for the extraction API
type tokenRequest struct {
	AppKey    string `json:"app_key"`
	AppSecret string `json:"app_secret"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type extractRequest struct {
	Text          string `json:"text"`
	ReferenceTime string `json:"reference_time"`
}

type extractResponse struct {
	Data struct {
		CleanTitle  string  `json:"clean_title"`
		Description string  `json:"description"`
		Priority    string  `json:"priority"`
		Owner       string  `json:"owner"`
		DueDate     string  `json:"due_date"`
		Confidence  float64 `json:"confidence"`
	} `json:"data"`
}
