package handler

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-excel-utilities/internal/domain"
	"github.com/vfg2006/ads-excel-utilities/pkg/apiErrors"
	"github.com/vfg2006/ads-excel-utilities/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	formFile   = "file"
	formatJSON = "json"

	XLSXContentType       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ProtectedColumnHeader = "X-Protected-Column"

	// folga para os campos do formulário além do arquivo
	multipartOverhead = 1 << 20
)

var (
	ErrMissingFile  = errors.New("Arquivo não enviado")
	ErrFileTooLarge = errors.New("Arquivo acima do limite de upload")
	ErrInvalidForm  = errors.New("Formulário inválido")
)

// ToolRecorder conta as execuções de cada ferramenta (pkg/metrics)
type ToolRecorder interface {
	ToolSucceeded(tool string, rows int)
	ToolFailed(tool, code string)
}

// ToolOptions é o que todos os handlers de ferramenta recebem
type ToolOptions struct {
	MaxUploadBytes int64
	Recorder       ToolRecorder
}

type upload struct {
	Data     []byte
	FileName string
}

// readUpload lê o arquivo do campo "file" de um formulário multipart
func readUpload(w http.ResponseWriter, r *http.Request, maxBytes int64) (*upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, domain.NewProcessingError(ErrFileTooLarge, apiErrors.ErrFileTooLarge, "")
		}
		return nil, domain.NewProcessingError(ErrInvalidForm, apiErrors.ErrInvalidRequest, err.Error())
	}

	file, header, err := r.FormFile(formFile)
	if err != nil {
		return nil, domain.NewProcessingError(ErrMissingFile, apiErrors.ErrMissingRequiredData, formFile)
	}
	defer file.Close()

	if header.Size > maxBytes {
		return nil, domain.NewProcessingError(ErrFileTooLarge, apiErrors.ErrFileTooLarge, header.Filename)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, domain.NewProcessingError(ErrInvalidForm, apiErrors.ErrInvalidRequest, err.Error())
	}
	if len(data) == 0 {
		return nil, domain.NewProcessingError(ErrMissingFile, apiErrors.ErrMissingRequiredData, header.Filename)
	}

	return &upload{Data: data, FileName: header.Filename}, nil
}

// wantsJSON: format=json devolve só a prévia, sem o arquivo
func wantsJSON(r *http.Request) bool {
	return strings.EqualFold(r.FormValue("format"), formatJSON)
}

type previewResponse struct {
	FileName string `json:"file_name"`
	Preview  any    `json:"preview"`
}

// responder escreve as respostas de uma ferramenta e registra o resultado nas métricas
type responder struct {
	tool     string
	recorder ToolRecorder
}

func newResponder(tool string, opts ToolOptions) responder {
	return responder{tool: tool, recorder: opts.Recorder}
}

func (rs responder) fail(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"tool":  rs.tool,
		"error": err.Error(),
	})

	var perr *domain.ProcessingError
	if !errors.As(err, &perr) {
		logger.Error("handler: unexpected error")
		rs.recorder.ToolFailed(rs.tool, apiErrors.ErrInternalServer)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar a planilha", nil)
		return
	}

	if apiErrors.StatusFor(perr.Code) >= http.StatusInternalServerError {
		logger.Error("handler: processing failed")
	} else {
		logger.Warn("handler: request rejected")
	}

	var details any
	if perr.Details != "" {
		details = perr.Details
	}

	rs.recorder.ToolFailed(rs.tool, perr.Code)
	apiErrors.WriteError(w, perr.Code, perr.Err.Error(), details)
}

func (rs responder) workbook(w http.ResponseWriter, r *http.Request, result *domain.GeneratedWorkbook) {
	rs.recorder.ToolSucceeded(rs.tool, rowCount(result.Preview))

	if wantsJSON(r) {
		rs.json(w, r, http.StatusOK, previewResponse{FileName: result.FileName, Preview: result.Preview})
		return
	}

	w.Header().Set("Content-Type", XLSXContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": result.FileName}))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(result.Content); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("handler: error writing workbook to client")
	}
}

func (rs responder) json(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("handler: error encoding response")
	}
}

// rowCount é o número de linhas processadas, usado nas métricas
func rowCount(preview any) int {
	switch p := preview.(type) {
	case *domain.AdsSummary:
		return p.Rows
	case *domain.KPIHighlightStats:
		return p.Rows
	case *domain.ROIColoringStats:
		return p.RowsAfter
	case *domain.FixerStats:
		return p.Rows
	case *domain.DailyComparison:
		return len(p.Series)
	case domain.TablePreview:
		return p.Rows
	case []domain.TablePreview:
		total := 0
		for _, t := range p {
			total += t.Rows
		}
		return total
	default:
		return 0
	}
}
