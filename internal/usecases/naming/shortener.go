package naming

import (
	"regexp"
	"strings"
)

const (
	groupPrefix    = "grup iklan"
	groupSeparator = " - "
	maxTokens      = 3
)

var (
	bracketTag       = regexp.MustCompile(`\[.*?\]`)
	segmentDelimiter = regexp.MustCompile(`\s*[-|]\s*`)
)

// Shortener reduz nomes longos de anúncios ao trecho que identifica o produto
type Shortener struct {
	vocabulary Vocabulary
}

func NewShortener(vocabulary Vocabulary) *Shortener {
	return &Shortener{vocabulary: vocabulary}
}

// Segments aplica a normalização do nome: remove tags entre colchetes e quebra
// em trechos separados por hífen ou barra vertical. Nomes de "grup iklan" são
// terminais e voltam como um único trecho.
func (s *Shortener) Segments(name string) (segments []string, terminal bool) {
	text := strings.TrimSpace(name)
	if strings.HasPrefix(strings.ToLower(text), groupPrefix) {
		return []string{strings.SplitN(text, groupSeparator, 2)[0]}, true
	}

	text = strings.TrimSpace(bracketTag.ReplaceAllString(text, ""))
	return segmentDelimiter.Split(text, -1), false
}

// Shorten devolve no máximo três palavras que identificam o produto.
//
// Trechos com "dress", "gamis" ou "set" são candidatos quando sobra alguma palavra
// depois de removidos os ruídos; vence o último candidato. Sem candidatos, vence o
// trecho de maior pontuação (o primeiro, em caso de empate).
func (s *Shortener) Shorten(name string) string {
	segments, terminal := s.Segments(name)
	if terminal {
		return segments[0]
	}

	if candidate, ok := s.lastProductCandidate(segments); ok {
		return joinFirst(candidate, maxTokens)
	}

	return joinFirst(strings.Fields(s.bestScoring(segments)), maxTokens)
}

func (s *Shortener) lastProductCandidate(segments []string) ([]string, bool) {
	var (
		best  []string
		found bool
	)

	for _, segment := range segments {
		words := strings.Fields(segment)
		if !s.hasProductWord(words) {
			continue
		}

		for len(words) > 0 && s.vocabulary.Store.has(words[0]) {
			words = words[1:]
		}

		for _, w := range words {
			if !s.vocabulary.isNoise(w) {
				best, found = words, true
				break
			}
		}
	}

	return best, found
}

func (s *Shortener) hasProductWord(words []string) bool {
	for _, w := range words {
		if s.vocabulary.Product.has(w) {
			return true
		}
	}
	return false
}

// Score soma os pesos das palavras do trecho
func (s *Shortener) Score(segment string) int {
	total := 0
	for _, w := range strings.Fields(segment) {
		total += s.vocabulary.weight(w)
	}
	return total
}

func (s *Shortener) bestScoring(segments []string) string {
	best := segments[0]
	bestScore := s.Score(best)

	for _, segment := range segments[1:] {
		if score := s.Score(segment); score > bestScore {
			best, bestScore = segment, score
		}
	}

	return best
}

func joinFirst(words []string, n int) string {
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}
