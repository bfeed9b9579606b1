/*
Package wordsalad classifies text as natural-language English or gibberish,
and separately checks strings against a list of known weak passwords.

The basic classifier is purely lexical-statistical: it normalizes the input,
scores it against an embedded dictionary, n-gram tables, the reference
English letter distribution and the vowel/consonant balance, and combines the
signals into a single thresholded verdict. It needs no model files and never
fails:

	gibberish := wordsalad.IsGibberish("asdf jkl qwerty", wordsalad.Medium)
	weak := wordsalad.IsPassword("123456")

A Detector optionally adds a neural second opinion for borderline cases. The
model is loaded lazily, at most once per process, and a missing or broken
model silently degrades to basic detection:

	detector := wordsalad.NewDetectorWithModel(wordsalad.DefaultModelPath())
	if detector.HasEnhancedDetection() {
		// model files are present on disk
	}
	gibberish = detector.IsGibberish("borderline text", wordsalad.High)

Model files are fetched explicitly with DownloadModel; downloading requires a
HuggingFace token (see CheckTokenStatus).
*/
package wordsalad
