package multicorban

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"inss_refin/internal/domain/entities"
	"inss_refin/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

const providerName = "multicorban"

// Client queries Multicorban for the INSS benefits and active loans of a CPF.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

var _ interfaces.IBenefitProvider = (*Client)(nil)

func NewClient(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

func (c *Client) LookupByCPF(ctx context.Context, cpf string) (entities.BenefitLookup, error) {
	payload, err := json.Marshal(map[string]string{"cpf": cpf})
	if err != nil {
		return entities.BenefitLookup{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/consulta/cpf", bytes.NewReader(payload))
	if err != nil {
		return entities.BenefitLookup{}, c.commErr(0, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Warn("[multicorban][client] lookup failed")
		return entities.BenefitLookup{}, c.commErr(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return entities.BenefitLookup{}, interfaces.ErrBeneficiaryNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return entities.BenefitLookup{}, c.commErr(resp.StatusCode, fmt.Errorf("multicorban failed with status code: %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.BenefitLookup{}, c.commErr(resp.StatusCode, err)
	}

	var out lookupResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return entities.BenefitLookup{}, c.commErr(resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	if out.Beneficiario.Nome == "" && len(out.Beneficios) == 0 {
		return entities.BenefitLookup{}, interfaces.ErrBeneficiaryNotFound
	}
	return out.ToDomain(), nil
}

func (c *Client) commErr(status int, err error) *entities.CommunicationError {
	return &entities.CommunicationError{Bank: providerName, Operation: "lookup", StatusCode: status, Err: err}
}
