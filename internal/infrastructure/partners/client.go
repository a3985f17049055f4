package partners

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"inss_refin/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const maxResponseBytes = 1 << 20

// NewHTTPClient builds the pooled client shared by the partner adapters.
// The timeout bounds every partner call.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: timeout,
			ExpectContinueTimeout: time.Second,
		},
	}
}

// Settings configures one partner adapter.
type Settings struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// partnerHTTP performs JSON calls against one partner and converts transport
// failures into *entities.CommunicationError. Status handling is left to the
// adapter, since every partner signals rejections differently.
type partnerHTTP struct {
	bank         string
	baseURL      string
	apiKey       string
	apiKeyHeader string
	client       *http.Client
}

func newPartnerHTTP(bank, apiKeyHeader string, s Settings) partnerHTTP {
	client := s.HTTPClient
	if client == nil {
		client = NewHTTPClient(30 * time.Second)
	}
	return partnerHTTP{
		bank:         bank,
		baseURL:      strings.TrimRight(s.BaseURL, "/"),
		apiKey:       s.APIKey,
		apiKeyHeader: apiKeyHeader,
		client:       client,
	}
}

type response struct {
	status int
	body   []byte
}

func (r response) ok() bool { return r.status >= 200 && r.status < 300 }

func (p partnerHTTP) do(ctx context.Context, op, method, path string, payload any) (response, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return response{}, fmt.Errorf("%s %s: encode request: %w", p.bank, op, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, body)
	if err != nil {
		return response{}, p.commErr(op, 0, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if p.apiKey != "" {
		req.Header.Set(p.apiKeyHeader, p.apiKey)
	}

	start := time.Now()
	resp, err := p.client.Do(req)
	if err != nil {
		return response{}, p.commErr(op, 0, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return response{}, p.commErr(op, resp.StatusCode, err)
	}

	logrus.WithFields(logrus.Fields{
		"bank":      p.bank,
		"operation": op,
		"status":    resp.StatusCode,
		"latency":   time.Since(start).String(),
	}).Debug("[partner][http] call")
	return response{status: resp.StatusCode, body: raw}, nil
}

func (p partnerHTTP) commErr(op string, status int, err error) *entities.CommunicationError {
	return &entities.CommunicationError{Bank: p.bank, Operation: op, StatusCode: status, Err: err}
}

func (p partnerHTTP) unexpected(op string, r response) *entities.CommunicationError {
	msg := partnerMessage(r.body)
	if msg == "" {
		msg = http.StatusText(r.status)
	}
	return p.commErr(op, r.status, errors.New(msg))
}

// messagePaths are the error-message locations seen across partner APIs.
var messagePaths = []string{
	"mensagem",
	"message",
	"error.message",
	"error.mensagem",
	"erro.mensagem",
	"detail",
	"erros.0.mensagem",
	"errors.0.message",
	"error",
}

// partnerMessage extracts the human message from an opaque error payload.
func partnerMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return strings.TrimSpace(string(body))
	}
	for _, path := range messagePaths {
		if v := gjson.GetBytes(body, path); v.Exists() && v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

// fieldErrors collects field-level validation errors from the first list found.
func fieldErrors(body []byte, listPaths ...string) []entities.FieldError {
	for _, path := range listPaths {
		list := gjson.GetBytes(body, path)
		if !list.IsArray() {
			continue
		}
		var out []entities.FieldError
		list.ForEach(func(_, item gjson.Result) bool {
			fe := entities.FieldError{
				Field:   firstString(item, "campo", "field", "property"),
				Message: firstString(item, "mensagem", "message", "descricao"),
			}
			if fe.Message == "" && item.Type == gjson.String {
				fe.Message = item.String()
			}
			if fe.Message != "" {
				out = append(out, fe)
			}
			return true
		})
		return out
	}
	return nil
}

func firstString(item gjson.Result, keys ...string) string {
	for _, k := range keys {
		if v := item.Get(k); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

// money parses a partner amount. Partners send numbers, dotted strings
// ("1234.56") or Brazilian-formatted strings ("1.234,56").
func money(v gjson.Result) float64 {
	if v.Type == gjson.Number {
		return v.Float()
	}
	s := strings.TrimSpace(v.String())
	if s == "" {
		return 0
	}
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

// amount renders a value the way partners expect amounts in requests.
func amount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
