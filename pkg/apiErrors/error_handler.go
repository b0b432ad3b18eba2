package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro
const (
	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrMissingColumn       = "VAL_004" // Coluna obrigatória ausente na planilha
	ErrUnsupportedFile     = "VAL_005" // Tipo de arquivo não suportado
	ErrFileTooLarge        = "VAL_006" // Upload acima do limite
	ErrRouteNotFound       = "VAL_007" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_008" // Método não suportado pela rota

	// Erros de sessão
	ErrInvalidSession = "SES_001" // Sessão inválida ou expirada
	ErrNoSnapshots    = "SES_002" // Nenhum snapshot diário em cache

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrWorkbookWrite  = "SRV_002" // Falha ao gerar o arquivo Excel
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrMissingColumn:       http.StatusUnprocessableEntity,
	ErrUnsupportedFile:     http.StatusUnsupportedMediaType,
	ErrFileTooLarge:        http.StatusRequestEntityTooLarge,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrInvalidSession:      http.StatusUnauthorized,
	ErrNoSnapshots:         http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrWorkbookWrite:       http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP de um código de erro
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

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
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
