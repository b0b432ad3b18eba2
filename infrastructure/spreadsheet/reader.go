package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
	ErrEmptyWorkbook     = errors.New("workbook has no sheets")
	ErrSheetNotFound     = errors.New("sheet not found")
	ErrHeaderNotFound    = errors.New("header line not found")
)

// assinatura OLE2 dos arquivos .xls (BIFF), que o excelize não lê
var oleSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// Workbook é um arquivo .xlsx aberto para leitura
type Workbook struct {
	file *excelize.File
}

// OpenWorkbook abre um .xlsx a partir dos bytes enviados no upload
func OpenWorkbook(data []byte) (*Workbook, error) {
	if bytes.HasPrefix(data, oleSignature) {
		return nil, errors.Wrap(ErrUnsupportedFormat, "legacy .xls files must be saved as .xlsx")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(ErrUnsupportedFormat, err.Error())
	}

	if len(f.GetSheetList()) == 0 {
		_ = f.Close()
		return nil, ErrEmptyWorkbook
	}

	return &Workbook{file: f}, nil
}

func (w *Workbook) Close() error {
	return w.file.Close()
}

func (w *Workbook) SheetNames() []string {
	return w.file.GetSheetList()
}

// ResolveSheet devolve o nome pedido se existir, senão a primeira planilha
func (w *Workbook) ResolveSheet(preferred string) string {
	sheets := w.SheetNames()
	for _, s := range sheets {
		if s == preferred {
			return s
		}
	}
	return sheets[0]
}

// RawRows devolve as linhas sem tratamento de cabeçalho. Os valores vêm crus,
// sem o formato numérico da célula (0.05 e não "5%").
func (w *Workbook) RawRows(sheet string) ([][]string, error) {
	rows, err := w.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(ErrSheetNotFound, "%s: %v", sheet, err)
	}
	return rows, nil
}

// DateCells devolve, em ordem de linha, as datas das células numéricas com formato
// de data nas primeiras maxRows linhas. RawRows traz essas células como número serial.
func (w *Workbook) DateCells(sheet string, maxRows int) ([]time.Time, error) {
	rows, err := w.RawRows(sheet)
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0)
	for r := 0; r < len(rows) && r < maxRows; r++ {
		for c, raw := range rows[r] {
			serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil || serial <= 0 {
				continue
			}

			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				continue
			}
			if !w.isDateCell(sheet, axis) {
				continue
			}

			t, err := excelize.ExcelDateToTime(serial, false)
			if err != nil {
				continue
			}
			dates = append(dates, time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
		}
	}

	return dates, nil
}

func (w *Workbook) isDateCell(sheet, axis string) bool {
	styleID, err := w.file.GetCellStyle(sheet, axis)
	if err != nil || styleID == 0 {
		return false
	}

	style, err := w.file.GetStyle(styleID)
	if err != nil {
		return false
	}

	if style.CustomNumFmt != nil {
		return isDateFormatCode(*style.CustomNumFmt)
	}
	return isBuiltInDateFormat(style.NumFmt)
}

// formatos de data embutidos do Excel (ECMA-376, 18.8.30)
func isBuiltInDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 17, id == 22:
		return true
	case id >= 27 && id <= 36, id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode: o código tem dia ou ano fora de literais e de seções [..]
func isDateFormatCode(code string) bool {
	inQuote, inBracket := false, false
	for _, r := range strings.ToLower(code) {
		switch {
		case r == '"':
			inQuote = !inQuote
		case inQuote:
		case r == '[':
			inBracket = true
		case r == ']':
			inBracket = false
		case inBracket:
		case r == 'd' || r == 'y':
			return true
		}
	}
	return false
}

// ReadSheet lê uma planilha usando a primeira linha como cabeçalho.
// Linhas totalmente vazias são descartadas.
func (w *Workbook) ReadSheet(sheet string) (*Table, error) {
	rows, err := w.RawRows(sheet)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return NewTable(sheet, nil, nil), nil
	}

	body := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		body = append(body, row)
	}

	return NewTable(sheet, rows[0], body), nil
}

// ReadFirstSheet lê a primeira planilha do arquivo
func (w *Workbook) ReadFirstSheet() (*Table, error) {
	return w.ReadSheet(w.SheetNames()[0])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// DelimitedOptions controla a detecção do cabeçalho em exportações CSV
type DelimitedOptions struct {
	// Markers: a linha de cabeçalho é a primeira que contém algum destes textos
	Markers []string
	// ScanLines: quantas linhas iniciais são inspecionadas
	ScanLines int
}

// ReadDelimited lê um CSV exportado por painéis de anúncios, que costumam
// trazer linhas de metadados antes do cabeçalho real. O delimitador é ';'
// quando a linha de cabeçalho tem mais ponto-e-vírgulas que vírgulas.
func ReadDelimited(name string, data []byte, opts DelimitedOptions) (*Table, error) {
	raw := strings.ToValidUTF8(string(data), "")
	raw = strings.TrimPrefix(raw, "\ufeff")
	lines := splitLines(raw)

	limit := opts.ScanLines
	if limit <= 0 || limit > len(lines) {
		limit = len(lines)
	}

	headerIdx := -1
	for i := 0; i < limit && headerIdx < 0; i++ {
		for _, marker := range opts.Markers {
			if strings.Contains(lines[i], marker) {
				headerIdx = i
				break
			}
		}
	}

	if headerIdx < 0 {
		return nil, ErrHeaderNotFound
	}

	delimiter := ','
	if strings.Count(lines[headerIdx], ";") > strings.Count(lines[headerIdx], ",") {
		delimiter = ';'
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(lines[headerIdx:], "\n")))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(ErrHeaderNotFound, err.Error())
	}

	rows := make([][]string, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading delimited file")
		}

		// linhas com campos a mais são descartadas, como o on_bad_lines=skip do painel antigo
		if len(record) > len(header) {
			continue
		}

		rows = append(rows, record)
	}

	return NewTable(name, header, rows), nil
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
