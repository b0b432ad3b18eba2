package spreadsheet

import (
	"bytes"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

var ErrWriteWorkbook = errors.New("error writing workbook")

// Formatos numéricos embutidos do Excel
const (
	NumFmtPercent2 = 10 // 0.00%
)

// Style descreve a formatação de uma célula. É comparável para que estilos
// iguais reutilizem o mesmo ID dentro do arquivo.
type Style struct {
	FontColor     string
	FillColor     string
	Bold          bool
	WrapText      bool
	VerticalAlign string
	NumFmt        int
	CustomNumFmt  string
}

// Cell é um valor a ser escrito; Value pode ser string, float64, int, bool ou nil
type Cell struct {
	Value any
	Style *Style
}

// Sheet é uma aba do arquivo de saída
type Sheet struct {
	Name         string
	Headers      []string
	HeaderStyle  *Style
	Rows         [][]Cell
	ColumnWidths map[int]float64 // coluna 1-based
}

// Text cria uma célula de texto
func Text(s string) Cell {
	return Cell{Value: s}
}

// Number cria uma célula numérica; nil vira célula vazia
func Number(f *float64) Cell {
	if f == nil {
		return Cell{}
	}
	return Cell{Value: *f}
}

// WithStyle aplica o estilo à célula, sobrescrevendo o anterior
func (c Cell) WithStyle(s *Style) Cell {
	c.Style = s
	return c
}

// Styled devolve a linha com o mesmo estilo em todas as células
func Styled(row []Cell, s *Style) []Cell {
	out := make([]Cell, len(row))
	for i, c := range row {
		out[i] = c.WithStyle(s)
	}
	return out
}

// TextRow converte uma linha de texto cru em células sem estilo
func TextRow(values []string) []Cell {
	out := make([]Cell, len(values))
	for i, v := range values {
		if v != "" {
			out[i] = Text(v)
		}
	}
	return out
}

// AutoWidths calcula larguras pelo maior conteúdo da coluna: max(min, maior+pad), limitado a max (0 = sem limite)
func (s *Sheet) AutoWidths(minWidth, pad, maxWidth float64) {
	s.ColumnWidths = make(map[int]float64, len(s.Headers))
	for c, h := range s.Headers {
		longest := utf8.RuneCountInString(h)
		for _, row := range s.Rows {
			if c >= len(row) || row[c].Value == nil {
				continue
			}
			if n := utf8.RuneCountInString(display(row[c].Value)); n > longest {
				longest = n
			}
		}

		width := float64(longest) + pad
		if width < minWidth {
			width = minWidth
		}
		if maxWidth > 0 && width > maxWidth {
			width = maxWidth
		}
		s.ColumnWidths[c+1] = width
	}
}

// Render monta o arquivo .xlsx com as abas na ordem informada
func Render(sheets ...*Sheet) (*bytes.Buffer, error) {
	if len(sheets) == 0 {
		return nil, errors.Wrap(ErrWriteWorkbook, "no sheets to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	w := &workbookWriter{file: f, styles: make(map[Style]int)}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return nil, errors.Wrapf(ErrWriteWorkbook, "renaming sheet %q: %v", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return nil, errors.Wrapf(ErrWriteWorkbook, "creating sheet %q: %v", sheet.Name, err)
		}

		if err := w.writeSheet(sheet); err != nil {
			return nil, errors.Wrapf(ErrWriteWorkbook, "sheet %q: %v", sheet.Name, err)
		}
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(ErrWriteWorkbook, err.Error())
	}

	return buf, nil
}

type workbookWriter struct {
	file   *excelize.File
	styles map[Style]int
}

func (w *workbookWriter) writeSheet(sheet *Sheet) error {
	for c, h := range sheet.Headers {
		if err := w.setCell(sheet.Name, c+1, 1, Cell{Value: h, Style: sheet.HeaderStyle}); err != nil {
			return err
		}
	}

	offset := 1
	if len(sheet.Headers) == 0 {
		offset = 0
	}

	for r, row := range sheet.Rows {
		for c, cell := range row {
			if err := w.setCell(sheet.Name, c+1, r+1+offset, cell); err != nil {
				return err
			}
		}
	}

	for col, width := range sheet.ColumnWidths {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		if err := w.file.SetColWidth(sheet.Name, name, name, width); err != nil {
			return err
		}
	}

	return nil
}

func (w *workbookWriter) setCell(sheet string, col, row int, cell Cell) error {
	if cell.Value == nil && cell.Style == nil {
		return nil
	}

	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}

	if cell.Value != nil {
		if err := w.file.SetCellValue(sheet, ref, cell.Value); err != nil {
			return err
		}
	}

	if cell.Style == nil {
		return nil
	}

	id, err := w.styleID(*cell.Style)
	if err != nil {
		return err
	}

	return w.file.SetCellStyle(sheet, ref, ref, id)
}

func (w *workbookWriter) styleID(s Style) (int, error) {
	if id, ok := w.styles[s]; ok {
		return id, nil
	}

	style := &excelize.Style{NumFmt: s.NumFmt}

	if s.FontColor != "" || s.Bold {
		style.Font = &excelize.Font{Color: s.FontColor, Bold: s.Bold}
	}

	if s.FillColor != "" {
		style.Fill = excelize.Fill{Type: "pattern", Color: []string{s.FillColor}, Pattern: 1}
	}

	if s.WrapText || s.VerticalAlign != "" {
		style.Alignment = &excelize.Alignment{WrapText: s.WrapText, Vertical: s.VerticalAlign}
	}

	if s.CustomNumFmt != "" {
		custom := s.CustomNumFmt
		style.CustomNumFmt = &custom
	}

	id, err := w.file.NewStyle(style)
	if err != nil {
		return 0, err
	}

	w.styles[s] = id
	return id, nil
}
