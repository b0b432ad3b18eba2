package domain

import "fmt"

// ProcessingError é uma falha de processamento de planilha com código de API associado
type ProcessingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes para o usuário (colunas ausentes etc.)
}

// Error implementa a interface error
func (e *ProcessingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// NewProcessingError cria um novo ProcessingError
func NewProcessingError(err error, code string, details string) *ProcessingError {
	return &ProcessingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// GeneratedWorkbook é o arquivo pronto para download e a prévia exibida no formulário
type GeneratedWorkbook struct {
	FileName string
	Content  []byte
	Preview  any
}
