package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// Float devolve um ponteiro para o valor informado
func Float(f float64) *float64 {
	return &f
}

// ParseNumber converte uma célula em número. Células vazias ou inválidas
// retornam nil em vez de erro.
func ParseNumber(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return nil
	}

	return &f
}

// ParseNumericLike aceita os formatos exportados pelo TikTok: "12,5%", "(1,200)", "1 000".
// Percentuais são divididos por 100 e parênteses viram valores negativos.
func ParseNumericLike(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	hadPercent := strings.Contains(s, "%")
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") && len(s) >= 2 {
		s = "-" + s[1:len(s)-1]
	}

	s = strings.NewReplacer("%", "", ",", "", " ", "").Replace(s)

	n := ParseNumber(s)
	if n == nil {
		return nil
	}

	if hadPercent {
		v := *n / 100.0
		return &v
	}

	return n
}

// ValueOr devolve o valor apontado ou o padrão quando nil
func ValueOr(f *float64, def float64) float64 {
	if f == nil {
		return def
	}
	return *f
}
