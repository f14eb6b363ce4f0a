package metadomain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrTokenExpired = errors.New("token do Meta expirado ou inválido")

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
	ErrorData    any    `json:"error_data,omitempty"`
}

// IsTokenExpired verifica se o erro é de token expirado.
// Código 190, ou OAuthException com subcódigos 460, 463 e 467.
func (e *ErrorResponse) IsTokenExpired() bool {
	if e.Error.Code == 190 {
		return true
	}

	if e.Error.Type == "OAuthException" {
		switch e.Error.ErrorSubcode {
		case 460, 463, 467:
			return true
		}
	}

	message := strings.ToLower(e.Error.Message)
	return strings.Contains(message, "session has expired") || strings.Contains(message, "access token has expired")
}

// Err converte a resposta num erro Go, preservando ErrTokenExpired para errors.Is
func (e *ErrorResponse) Err(status int) error {
	if e.IsTokenExpired() {
		return fmt.Errorf("%w: %s", ErrTokenExpired, e.Error.Message)
	}

	return fmt.Errorf("meta api status %d (code %d): %s", status, e.Error.Code, e.Error.Message)
}
