// Package phrase mengekstrak frasa 1-3 kata paling sering muncul dari teks bebas.
// Dipakai untuk anotasi "top phrases" di post dan kandidat feed.
package phrase

import (
	"regexp"
	"sort"
	"strings"
)

// PhraseCount satu frasa beserta jumlah kemunculannya
type PhraseCount struct {
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
}

var nonWordRe = regexp.MustCompile(`[^a-z0-9\s]+`)

// ExtractTopPhrases menghitung unigram/bigram/trigram dari teks:
// lowercase, buang karakter non-kata, split spasi, lalu hitung setiap
// jendela 1-3 token. Jendela dilewati kalau token PERTAMA atau TERAKHIR
// adalah stop word; token tengah tidak dicek (aturan longgar ini disengaja,
// mengikuti perilaku produk yang sudah berjalan).
// Hasil diurutkan count menurun; urutan kemunculan dipertahankan saat seri.
func ExtractTopPhrases(text string, stop map[string]struct{}) []PhraseCount {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int)
	order := make([]string, 0, len(tokens))

	for i := range tokens {
		for n := 1; n <= 3 && i+n <= len(tokens); n++ {
			first := tokens[i]
			last := tokens[i+n-1]
			if _, ok := stop[first]; ok {
				continue
			}
			if _, ok := stop[last]; ok {
				continue
			}
			p := strings.Join(tokens[i:i+n], " ")
			if _, seen := counts[p]; !seen {
				order = append(order, p)
			}
			counts[p]++
		}
	}

	result := make([]PhraseCount, 0, len(order))
	for _, p := range order {
		result = append(result, PhraseCount{Phrase: p, Count: counts[p]})
	}
	sort.SliceStable(result, func(a, b int) bool {
		return result[a].Count > result[b].Count
	})
	return result
}

// TopPhraseStrings ambil maksimal n frasa teratas sebagai string polos
func TopPhraseStrings(text string, stop map[string]struct{}, n int) []string {
	ranked := ExtractTopPhrases(text, stop)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	out := make([]string, 0, len(ranked))
	for _, pc := range ranked {
		out = append(out, pc.Phrase)
	}
	return out
}

func tokenize(text string) []string {
	lower := strings.ToLower(text)
	cleaned := nonWordRe.ReplaceAllString(lower, " ")
	return strings.Fields(cleaned)
}
