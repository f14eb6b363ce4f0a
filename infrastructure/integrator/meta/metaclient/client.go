package metaclient

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	metadomain "github.com/lrlucasdurand-code/unify/infrastructure/integrator/meta/domain"
	"github.com/lrlucasdurand-code/unify/internal/config"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxCampaignPages = 20

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

// Credentials são as credenciais de uma conta de anúncios de uma organização
type Credentials struct {
	AccessToken string
	AppSecret   string
}

type Client interface {
	GetCampaignsByAccountID(ctx context.Context, credentials Credentials, accountID string) ([]metadomain.Campaign, error)
	UpdateCampaignDailyBudget(ctx context.Context, credentials Credentials, campaignID string, budgetCents int64) error
	ExchangeLongLivedToken(ctx context.Context, appID, appSecret, shortLivedToken string) (*TokenResponse, error)
}

type MetaClient struct {
	cfg        config.Meta
	httpClient *http.Client
}

func NewClient(cfg config.Meta, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}

	return &MetaClient{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

// authParams adiciona o token e, quando há app secret, o appsecret_proof exigido por apps com essa proteção
func authParams(params url.Values, credentials Credentials) {
	params.Set("access_token", credentials.AccessToken)

	if credentials.AppSecret != "" {
		mac := hmac.New(sha256.New, []byte(credentials.AppSecret))
		mac.Write([]byte(credentials.AccessToken))
		params.Set("appsecret_proof", hex.EncodeToString(mac.Sum(nil)))
	}
}

// accountPath normaliza o id da conta para o formato act_<id>
func accountPath(accountID string) string {
	if strings.HasPrefix(accountID, "act_") {
		return accountID
	}
	return "act_" + accountID
}

func (c *MetaClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("path", req.URL.Path).Error("Erro ao fazer a requisição")
		return err
	}
	defer resp.Body.Close()

	body, err := handleResponse(resp)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("erro ao decodificar resposta do Meta: %w", err)
	}

	return nil
}

// handleResponse lê o corpo e converte respostas de erro da Graph API
func handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode < http.StatusBadRequest {
		return body, nil
	}

	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil || errorResp.Error.Message == "" {
		return nil, fmt.Errorf("meta api status %d: %s", resp.StatusCode, string(body))
	}

	if errorResp.IsTokenExpired() {
		logrus.WithField("status_code", resp.StatusCode).Warn("Token do Meta expirado")
	}

	return nil, errorResp.Err(resp.StatusCode)
}
