package cep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"storefront/internal/domain/order"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
)

var cepPattern = regexp.MustCompile(`^\d{8}$`)

// Client resolves Brazilian postal codes through the ViaCEP API.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.CepConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type viaCepResponse struct {
	Cep        string    `json:"cep"`
	Logradouro string    `json:"logradouro"`
	Bairro     string    `json:"bairro"`
	Localidade string    `json:"localidade"`
	UF         string    `json:"uf"`
	Erro       looseBool `json:"erro"`
}

// looseBool tolerates both the bare boolean and the quoted string form
// ViaCEP has used for its error flag over time.
type looseBool bool

func (b *looseBool) UnmarshalJSON(data []byte) error {
	*b = strings.Trim(string(data), `"`) == "true"
	return nil
}

func (c *Client) Lookup(ctx context.Context, postalCode string) (*order.Address, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(postalCode), "-", "")
	if !cepPattern.MatchString(normalized) {
		return nil, errs.ErrCepNotFound
	}

	url := fmt.Sprintf("%s/%s/json/", c.baseURL, normalized)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build cep request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "cep request failed"), errs.ErrAddressLookupFailed)
	}
	defer resp.Body.Close()

	// ViaCEP answers 400 for malformed codes and 200 with an error flag
	// for well-formed codes that do not exist.
	if resp.StatusCode == http.StatusBadRequest {
		return nil, errs.ErrCepNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errs.Mark(
			errs.Newf("cep service returned status %d", resp.StatusCode),
			errs.ErrAddressLookupFailed,
		)
	}

	var body viaCepResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode cep response"), errs.ErrAddressLookupFailed)
	}
	if body.Erro {
		return nil, errs.ErrCepNotFound
	}

	return &order.Address{
		PostalCode: body.Cep,
		Street:     body.Logradouro,
		District:   body.Bairro,
		City:       body.Localidade,
		State:      body.UF,
	}, nil
}
