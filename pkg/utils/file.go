package utils

import (
	"path/filepath"
	"strings"
)

// TrimExtension devolve o nome do arquivo enviado sem diretório e sem extensão
func TrimExtension(fileName string) string {
	base := filepath.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
