package brokerage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/starmind/account-relay/api/models"
	"github.com/starmind/account-relay/providers"
	"github.com/starmind/account-relay/services/monitoring/logging"
	"github.com/starmind/account-relay/utils"
)

// Compiled-in defaults for the Match-Trade white-label broker API. Each can be
// overridden through the environment like any other provider setting.
const (
	DefaultBaseURL = "https://broker-api-wl.match-trade.com/v1/accounts"
	DefaultAPIKey  = "9_Qd-TWhdmywM76uEnoex33Lci3KD2gt0wX7wZcMSuM="
	DefaultOffer   = "1a3d47dd-ea8c-4529-9e36-8a42499fcc69"
)

// Stable client-facing reasons for calls that never produced an upstream
// status. Raw transport errors are logged, never returned.
const (
	TimeoutError      = "Request timed out. Please try again."
	ConnectionError   = "Connection error. Please check your internet connection."
	NetworkError      = "Network error occurred. Please try again."
	UnexpectedError   = "An unexpected error occurred. Please try again."
	AccountCreated    = "Account created successfully"
	AccountCreateFail = "Account creation failed"
)

type MatchTradeProvider struct {
	providers.BaseProvider
	config *BrokerageConfig
}

type BrokerageConfig struct {
	BrokerProviderName string `mapstructure:"BROKER_PROVIDER_NAME"`
	BrokerBaseURL      string `mapstructure:"MATCHTRADE_BASE_URL"`
	BrokerAPIKey       string `mapstructure:"MATCHTRADE_KEY"`
	BrokerDefaultOffer string `mapstructure:"MATCHTRADE_DEFAULT_OFFER"`
}

// Redact masks the broker credential for logging.
func (c *BrokerageConfig) Redact() BrokerageConfig {
	redacted := *c
	redacted.BrokerAPIKey = "****"
	return redacted
}

func NewMatchTradeProvider() *MatchTradeProvider {

	var c BrokerageConfig

	err := utils.LoadCustomConfig(utils.EnvPath, &c)
	if err != nil {
		panic(fmt.Sprintf("Could not load config: %v", err))
	}

	if c.BrokerProviderName == "" {
		c.BrokerProviderName = providers.MatchTrade
	}
	if c.BrokerBaseURL == "" {
		c.BrokerBaseURL = DefaultBaseURL
	}
	if c.BrokerAPIKey == "" {
		c.BrokerAPIKey = DefaultAPIKey
	}
	if c.BrokerDefaultOffer == "" {
		c.BrokerDefaultOffer = DefaultOffer
	}

	l := logging.NewLogger()
	l.WithFields(logrus.Fields{"config": c.Redact()}).Info("Broker provider configured")

	return &MatchTradeProvider{
		BaseProvider: providers.BaseProvider{
			Name:    c.BrokerProviderName,
			BaseURL: c.BrokerBaseURL,
			APIKey:  c.BrokerAPIKey,
			Client: &http.Client{
				Timeout: time.Second * 30,
			},
			Logger: l,
		},
		config: &c,
	}
}

// DefaultOffer is the offer identifier applied when a request omits one.
func (p *MatchTradeProvider) DefaultOffer() string {
	return p.config.BrokerDefaultOffer
}

// CreateAccount issues exactly one POST to the broker and normalizes every
// distinguishable outcome into a RelayResult. It never returns an error; the
// failure taxonomy is the result.
func (p *MatchTradeProvider) CreateAccount(ctx context.Context, payload models.BrokerAccountPayload) (result *RelayResult) {

	// Anything unforeseen inside the call still yields a well-formed result.
	defer func() {
		if r := recover(); r != nil {
			p.Logger.WithFields(logrus.Fields{"panic": r}).Error("Unexpected error during broker call")
			result = failure(UnexpectedError)
		}
	}()

	p.Logger.Info("Attempting to create account...")

	// The white-label API expects the raw key, not a bearer token
	var requiredHeaders = make(map[string]string)
	requiredHeaders["Authorization"] = p.APIKey

	resp, err := p.MakeRequest(ctx, "POST", p.BaseURL, payload, requiredHeaders)
	if err != nil {
		return p.normalizeTransportError(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		p.Logger.Error("Failed to read response body", err)
		return p.normalizeTransportError(err)
	}

	logFields := logrus.Fields{
		"status_code": resp.StatusCode,
		"headers":     resp.Header,
		"body":        string(bodyBytes),
	}
	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		p.Logger.WithFields(logFields).Info("Successful response from Match Trade API")
	} else {
		p.Logger.WithFields(logFields).Error("Unexpected response from Match Trade API")
	}

	// Parse the body as JSON when possible; otherwise carry the raw text
	var responseData interface{}
	if len(bodyBytes) == 0 {
		responseData = map[string]interface{}{}
	} else if err := json.Unmarshal(bodyBytes, &responseData); err != nil {
		responseData = map[string]interface{}{"raw_text": string(bodyBytes)}
	}

	statusCode := resp.StatusCode
	success := statusCode == http.StatusOK || statusCode == http.StatusCreated

	message := AccountCreateFail
	if success {
		message = AccountCreated
	}

	return &RelayResult{
		Success:    success,
		StatusCode: &statusCode,
		Data:       responseData,
		Message:    message,
	}
}

// normalizeTransportError maps a failed outbound call onto one of the stable
// no-status failure reasons. The underlying error text stays in the logs.
func (p *MatchTradeProvider) normalizeTransportError(err error) *RelayResult {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		p.Logger.WithFields(logrus.Fields{"error": err.Error()}).Error("Unexpected error")
		return failure(UnexpectedError)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		p.Logger.Error("Request timeout")
		return failure(TimeoutError)
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) || errors.Is(err, io.EOF) {
		p.Logger.WithFields(logrus.Fields{"error": err.Error()}).Error("Connection error")
		return failure(ConnectionError)
	}

	p.Logger.WithFields(logrus.Fields{"error": err.Error()}).Error("Request error")
	return failure(NetworkError)
}
