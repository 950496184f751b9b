package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de licença
	ErrLicenseNotFoundOrInactive = "LIC_001" // Licença inexistente ou inativa
	ErrLicenseNotLinked          = "LIC_002" // Licença sem usuário vinculado
	ErrInsufficientCredits       = "LIC_003" // Créditos insuficientes
	ErrQuotaExceeded             = "LIC_004" // Cota mensal esgotada
	ErrTrialBatchCap             = "LIC_005" // Lote acima do limite do trial

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrLicenseNotFoundOrInactive: http.StatusForbidden,
	ErrLicenseNotLinked:          http.StatusForbidden,
	ErrInsufficientCredits:       http.StatusForbidden,
	ErrQuotaExceeded:             http.StatusForbidden,
	ErrTrialBatchCap:             http.StatusForbidden,
	ErrInvalidRequest:            http.StatusBadRequest,
	ErrMissingRequiredData:       http.StatusBadRequest,
	ErrInvalidFormat:             http.StatusBadRequest,
	ErrInternalServer:            http.StatusInternalServerError,
	ErrDatabaseOperation:         http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP de um código, 500 para códigos desconhecidos
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	WriteJSON(w, StatusFor(code), apiErr)
}

// WriteJSON escreve qualquer corpo JSON com o status informado
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
