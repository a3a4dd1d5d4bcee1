package pipeline

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de pipelines
var (
	// Erros de validação
	ErrPipelineIDRequired = errors.New("pipeline ID is required")
	ErrInvalidPipeline    = errors.New("invalid pipeline")
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")

	// Erros de consulta
	ErrPipelineNotFound      = errors.New("pipeline not found")
	ErrPipelineAlreadyExists = errors.New("pipeline already exists")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrFetchPipelines    = errors.New("error fetching pipelines from database")
	ErrSavePipeline      = errors.New("error saving pipeline")

	ErrGenerateID = errors.New("error generating pipeline ID")
)

// PipelineError é um erro com contexto adicional para pipelines
type PipelineError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	PipelineID string // ID do pipeline envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

func (e *PipelineError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func NewPipelineError(err error, code string, details string) *PipelineError {
	return &PipelineError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewPipelineErrorWithID(err error, code string, pipelineID string, details string) *PipelineError {
	return &PipelineError{
		Err:        err,
		Code:       code,
		PipelineID: pipelineID,
		Details:    details,
	}
}
