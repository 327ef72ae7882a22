package tessella

import (
	"github.com/gridmill/tessella/ocr"
	"github.com/gridmill/tessella/pixmap"
	"github.com/gridmill/tessella/split"
)

// recognizeOptions holds configuration for a recognition chain.
type recognizeOptions struct {
	split             split.Config
	binarizeThreshold uint8

	ocrEnabled  bool
	ocrLanguage string
	scaleFactor int
}

// defaultRecognizeOptions returns the default recognition options.
func defaultRecognizeOptions() recognizeOptions {
	return recognizeOptions{
		split:             split.DefaultConfig(),
		binarizeThreshold: pixmap.DefaultBinarizeThreshold,
		ocrEnabled:        false,
		ocrLanguage:       "eng",
		scaleFactor:       ocr.DefaultScaleFactor,
	}
}

// clone creates a copy of recognizeOptions. All fields are value types,
// so a plain copy suffices; the method exists to keep chain methods from
// sharing state between instances.
func (o recognizeOptions) clone() recognizeOptions {
	return o
}
