package adsetting

import (
	"errors"
	"fmt"
	"strings"
)

// Erros específicos do contexto de criação de conjuntos de anúncios
var (
	// Erros de entrada do usuário
	ErrInvalidParams = errors.New("invalid ad set parameters")

	// Erros de integração
	ErrMetaRejection = errors.New("ad set rejected by Meta")
	ErrNetwork       = errors.New("network_error")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// FieldErrorKind classifica falhas de validação de entrada.
type FieldErrorKind string

const (
	MissingRequiredParameter   FieldErrorKind = "missing_required_parameter"
	InvalidEnumValue           FieldErrorKind = "invalid_enum_value"
	IncompatibleGoal           FieldErrorKind = "incompatible_goal"
	MissingConditionalField    FieldErrorKind = "missing_conditional_field"
	InvalidBudgetConfiguration FieldErrorKind = "invalid_budget_configuration"
	MissingCustomAudience      FieldErrorKind = "missing_custom_audience"
)

// FieldError é uma falha de validação atribuída a um campo. Falhas esperadas
// de entrada do usuário sempre retornam como valor, nunca como panic,
// para que o chamador exiba mensagens por campo.
type FieldError struct {
	Kind    FieldErrorKind `json:"kind"`
	Field   string         `json:"field"`
	Message string         `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Field, e.Message, e.Kind)
}

// ValidationError agrega as falhas de validação de uma requisição.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Error())
	}

	return "invalid ad set parameters: " + strings.Join(messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidParams
}

// AdSetError é um erro com contexto adicional para o fluxo de criação.
type AdSetError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	AccountID string // ID da conta envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AdSetError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AdSetError) Unwrap() error {
	return e.Err
}

// NewAdSetError cria um novo AdSetError
func NewAdSetError(err error, code string, details string) *AdSetError {
	return &AdSetError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewAdSetErrorWithAccount cria um novo AdSetError com o ID da conta
func NewAdSetErrorWithAccount(err error, code string, accountID string, details string) *AdSetError {
	return &AdSetError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}
