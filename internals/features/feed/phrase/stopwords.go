package phrase

import "strings"

// daftar stop word bahasa Inggris standar untuk konten user
const stopWordList = "a about above after again against all am an and any are as at be because been " +
	"before being below between both but by could did do does doing down during each few for from " +
	"further had has have having he her here hers herself him himself his how i if in into is it its " +
	"itself just me more most my myself no nor not now of off on once only or other our ours ourselves " +
	"out over own same she should so some such than that the their theirs them themselves then there " +
	"these they this those through to too under until up very was we were what when where which while " +
	"who whom why will with you your yours yourself yourselves"

// DefaultStopWords stop word set bawaan
var DefaultStopWords = buildStopWordSet(stopWordList)

func buildStopWordSet(list string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(list) {
		set[w] = struct{}{}
	}
	return set
}
