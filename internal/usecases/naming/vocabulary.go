package naming

import "strings"

type wordSet map[string]struct{}

func newWordSet(words ...string) wordSet {
	s := make(wordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s wordSet) has(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}

// Vocabulary agrupa as listas de palavras usadas para pontuar trechos do nome do anúncio.
// A pertinência é sempre por palavra inteira, sem diferenciar maiúsculas.
type Vocabulary struct {
	Feature  wordSet
	Store    wordSet
	Category wordSet
	Context  wordSet
	// Product é o subconjunto de Category que qualifica um trecho como candidato a produto
	Product wordSet
}

// DefaultVocabulary é o vocabulário das lojas de moda muslim atendidas hoje
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Feature: newWordSet(
			"busui", "friendly", "bahan", "soft", "ultimate", "ultimates", "motif", "size", "ukuran",
			"promo", "diskon", "broad", "testing",
			"rayon", "katun", "cotton", "silk", "sustra", "viscose", "linen", "polyester", "jersey",
			"crepe", "chiffon", "woolpeach", "baloteli", "babyterry",
			"pink", "hitam", "black", "putih", "white", "navy", "biru", "blue", "merah", "red",
			"hijau", "green", "coklat", "brown", "abu", "abu-abu", "grey", "gray", "cream", "krem",
			"beige", "maroon", "ungu", "purple", "tosca", "olive", "sage",
		),
		Store: newWordSet(
			"official", "shop", "store", "boutique", "fashion", "my", "zahir", "myzahir", "by",
			"original", "premium",
		),
		Category: newWordSet(
			"gamis", "dress", "tunik", "abaya", "set", "blouse", "khimar", "rok", "pashmina",
			"hijab", "outer",
		),
		Context: newWordSet(
			"terbaru", "new", "update", "launch", "launching", "viral", "hits", "best", "seller",
			"bestseller", "kondangan", "lebaran", "ramadhan", "ramadan", "harian", "pesta", "formal",
			"casual", "trend", "trending", "populer",
			"2024", "2025", "2026", "2027", "2028", "2029", "2030",
		),
		Product: newWordSet("dress", "gamis", "set"),
	}
}

// weight é o peso de uma palavra no placar de fallback. A ordem das verificações
// decide palavras presentes em mais de uma lista.
func (v Vocabulary) weight(word string) int {
	switch {
	case v.Store.has(word):
		return -3
	case v.Feature.has(word):
		return -1
	case v.Context.has(word):
		return -2
	case v.Category.has(word):
		return 1
	default:
		return 3
	}
}

// isNoise indica palavras que não identificam o produto
func (v Vocabulary) isNoise(word string) bool {
	return v.Store.has(word) || v.Feature.has(word) || v.Context.has(word) || v.Category.has(word)
}
