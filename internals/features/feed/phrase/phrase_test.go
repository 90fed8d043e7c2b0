package phrase

import (
	"strings"
	"testing"
)

func TestExtractTopPhrases_CatExample(t *testing.T) {
	text := "The cat sat on the mat. The cat was happy."
	ranked := ExtractTopPhrases(text, DefaultStopWords)

	if len(ranked) == 0 {
		t.Fatal("hasil kosong")
	}
	if ranked[0].Phrase != "cat" || ranked[0].Count != 2 {
		t.Fatalf("peringkat teratas = %+v, mau {cat 2}", ranked[0])
	}

	counts := make(map[string]int)
	for _, pc := range ranked {
		counts[pc.Phrase] = pc.Count
	}
	if counts["cat sat"] != 1 {
		t.Errorf("cat sat = %d, mau 1", counts["cat sat"])
	}
	// aturan longgar: token tengah boleh stop word
	if counts["cat was happy"] != 1 {
		t.Errorf("cat was happy = %d, mau 1", counts["cat was happy"])
	}
	if counts["mat the cat"] != 1 {
		t.Errorf("mat the cat = %d, mau 1", counts["mat the cat"])
	}
}

func TestExtractTopPhrases_NoStopWordUnigrams(t *testing.T) {
	text := "the and of to in is was that it for"
	ranked := ExtractTopPhrases(text, DefaultStopWords)
	if len(ranked) != 0 {
		t.Fatalf("teks full stop word menghasilkan %d frasa: %+v", len(ranked), ranked)
	}
}

func TestExtractTopPhrases_BoundaryOnlyCheck(t *testing.T) {
	ranked := ExtractTopPhrases("dog in house", DefaultStopWords)
	counts := make(map[string]int)
	for _, pc := range ranked {
		counts[pc.Phrase] = pc.Count
	}
	if counts["dog in house"] != 1 {
		t.Errorf("trigram dengan stop word di tengah harus lolos, dapat %+v", ranked)
	}
	if _, ok := counts["dog in"]; ok {
		t.Error("bigram berakhiran stop word harus dibuang")
	}
	if _, ok := counts["in house"]; ok {
		t.Error("bigram berawalan stop word harus dibuang")
	}
}

func TestExtractTopPhrases_CountBound(t *testing.T) {
	text := "alpha beta gamma delta epsilon zeta eta theta"
	tokens := len(strings.Fields(text))
	bound := tokens + (tokens - 1) + (tokens - 2)

	ranked := ExtractTopPhrases(text, DefaultStopWords)
	if len(ranked) > bound {
		t.Fatalf("jumlah frasa %d melebihi batas %d", len(ranked), bound)
	}
}

func TestExtractTopPhrases_Empty(t *testing.T) {
	if got := ExtractTopPhrases("", DefaultStopWords); got != nil {
		t.Fatalf("teks kosong harus nil, dapat %+v", got)
	}
	if got := ExtractTopPhrases("!!! ... ###", DefaultStopWords); got != nil {
		t.Fatalf("teks tanpa token harus nil, dapat %+v", got)
	}
}

func TestTopPhraseStrings_Limit(t *testing.T) {
	text := "red fish blue fish old fish new fish"
	got := TopPhraseStrings(text, DefaultStopWords, 3)
	if len(got) != 3 {
		t.Fatalf("len = %d, mau 3", len(got))
	}
	if got[0] != "fish" {
		t.Errorf("teratas = %q, mau fish", got[0])
	}
}

func TestTokenize_StripsPunctuation(t *testing.T) {
	got := tokenize("Hello, World! 42x")
	want := []string{"hello", "world", "42x"}
	if len(got) != len(want) {
		t.Fatalf("tokenize = %v, mau %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tokenize = %v, mau %v", got, want)
		}
	}
}
