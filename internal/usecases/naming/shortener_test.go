package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortener_Shorten(t *testing.T) {
	shortener := NewShortener(DefaultVocabulary())

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "grup iklan devolve o prefixo antes do primeiro separador",
			in:   "Grup Iklan Gamis - Ramadhan - Broad",
			want: "Grup Iklan Gamis",
		},
		{
			name: "grup iklan sem separador volta inteiro",
			in:   "  grup iklan otomatis  ",
			want: "grup iklan otomatis",
		},
		{
			name: "prefixo de loja descartado e ruídos ignorados",
			in:   "Toko ABC Official - Dress Motif Bunga Promo",
			want: "Dress Motif Bunga",
		},
		{
			name: "sem palavra de produto cai no placar",
			in:   "MyStore - Summer Promo 2025",
			want: "MyStore",
		},
		{
			name: "último candidato vence",
			in:   "Gamis Alya Busui | Dress Nara Premium | Set Kirana Rok",
			want: "Set Kirana Rok",
		},
		{
			name: "palavras de loja no início do candidato são removidas",
			in:   "Official Shop Gamis Aisyah Syari",
			want: "Gamis Aisyah Syari",
		},
		{
			name: "candidato só com ruído é ignorado",
			in:   "Dress Hitam Promo - Kaftan Maryam Premium",
			want: "Kaftan Maryam Premium",
		},
		{
			name: "tags entre colchetes são removidas",
			in:   "[CPAS] [Broad] Gamis Hana Motif",
			want: "Gamis Hana Motif",
		},
		{
			name: "hífen sem espaços também separa",
			in:   "Khimar-Pashmina Jersey",
			want: "Khimar",
		},
		{
			name: "empate no placar fica com o primeiro trecho",
			in:   "Alpha Beta - Gamma Delta",
			want: "Alpha Beta",
		},
		{
			name: "nome vazio",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shortener.Shorten(tt.in))
		})
	}
}

func TestShortener_IdempotentOnShortNames(t *testing.T) {
	shortener := NewShortener(DefaultVocabulary())

	for _, name := range []string{
		"Dress Motif Bunga",
		"Gamis Aisyah Syari",
		"MyStore",
		"Kaftan Maryam Premium",
	} {
		once := shortener.Shorten(name)
		assert.Equal(t, once, shortener.Shorten(once), name)
	}
}

func TestShortener_Segments(t *testing.T) {
	shortener := NewShortener(DefaultVocabulary())

	segments, terminal := shortener.Segments("[TEST] Toko ABC | Gamis Alya - Promo")
	assert.False(t, terminal)
	assert.Equal(t, []string{"Toko ABC", "Gamis Alya", "Promo"}, segments)

	segments, terminal = shortener.Segments("GRUP IKLAN Dress - Lebaran")
	assert.True(t, terminal)
	assert.Equal(t, []string{"GRUP IKLAN Dress"}, segments)
}

func TestShortener_Score(t *testing.T) {
	shortener := NewShortener(DefaultVocabulary())

	assert.Equal(t, -3, shortener.Score("Official"))
	assert.Equal(t, -1, shortener.Score("Cotton"))
	assert.Equal(t, -2, shortener.Score("VIRAL"))
	assert.Equal(t, 1, shortener.Score("gamis"))
	assert.Equal(t, 3, shortener.Score("Kirana"))
	assert.Equal(t, 0, shortener.Score("Summer Promo 2025"))
	assert.Equal(t, 0, shortener.Score(""))
}
