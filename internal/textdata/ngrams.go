package textdata

// The n-gram tables list the character sequences that occur most frequently
// in English prose. A candidate string whose n-grams rarely land in these
// tables is unlikely to be English.

var commonBigrams = NewStringSet(
	"th", "he", "in", "er", "an", "re", "on", "at", "en", "nd",
	"ti", "es", "or", "te", "of", "ed", "is", "it", "al", "ar",
	"st", "to", "nt", "ng", "se", "ha", "as", "ou", "io", "le",
	"ve", "co", "me", "de", "hi", "ri", "ro", "ic", "ne", "ea",
	"ra", "ce", "li", "ch", "ll", "be", "ma", "si", "om", "ur",
)

var commonTrigrams = NewStringSet(
	"the", "and", "ing", "ion", "tio", "ent", "ati", "for", "her", "ter",
	"hat", "tha", "ere", "con", "res", "ver", "all", "ons", "nce", "men",
	"ith", "ted", "ers", "pro", "thi", "wit", "are", "ess", "not", "ive",
	"was", "ect", "rea", "com", "eve", "per", "int", "est", "sta", "cti",
	"ica", "ist", "ear", "ain", "one", "our", "iti", "rat", "ell", "ant",
)

var commonQuadgrams = NewStringSet(
	"tion", "atio", "that", "ther", "with", "ment", "ions", "this",
	"here", "from", "ould", "ting", "hich", "whic", "ctio", "ever",
	"they", "thin", "have", "othe", "were", "tive", "ough", "ight",
)

// CommonBigrams returns the bigram membership table.
func CommonBigrams() *StringSet {
	return commonBigrams
}

// CommonTrigrams returns the trigram membership table.
func CommonTrigrams() *StringSet {
	return commonTrigrams
}

// CommonQuadgrams returns the quadgram membership table.
func CommonQuadgrams() *StringSet {
	return commonQuadgrams
}

// LetterFrequencies returns the empirical relative frequency of each English
// letter, indexed by letter - 'a'. The values sum to 1.
func LetterFrequencies() [26]float64 {
	return letterFrequencies
}

var letterFrequencies = [26]float64{
	0.08167, // a
	0.01492, // b
	0.02782, // c
	0.04253, // d
	0.12702, // e
	0.02228, // f
	0.02015, // g
	0.06094, // h
	0.06966, // i
	0.00153, // j
	0.00772, // k
	0.04025, // l
	0.02406, // m
	0.06749, // n
	0.07507, // o
	0.01929, // p
	0.00095, // q
	0.05987, // r
	0.06327, // s
	0.09056, // t
	0.02758, // u
	0.00978, // v
	0.02360, // w
	0.00150, // x
	0.01974, // y
	0.00074, // z
}
