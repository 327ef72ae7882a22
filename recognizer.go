package tessella

import (
	"fmt"
	"image"

	"github.com/gridmill/tessella/model"
	"github.com/gridmill/tessella/ocr"
	"github.com/gridmill/tessella/pixmap"
	"github.com/gridmill/tessella/render"
	"github.com/gridmill/tessella/split"
	"github.com/gridmill/tessella/viz"
)

// Recognizer provides a fluent interface for table structure recognition.
// Each configuration method returns a new Recognizer instance, making it
// safe for concurrent use and allowing method chaining.
type Recognizer struct {
	// Source (exactly one is set)
	filename string
	source   image.Image
	bitmap   *pixmap.Bitmap

	// Configuration
	options recognizeOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Recognizer with a copy of options.
// This ensures immutability so each chain method returns a new instance.
func (r *Recognizer) clone() *Recognizer {
	return &Recognizer{
		filename: r.filename,
		source:   r.source,
		bitmap:   r.bitmap,
		options:  r.options.clone(),
		err:      r.err,
		warnings: append([]Warning(nil), r.warnings...),
	}
}

// WithConfig replaces the split thresholds. A zero Config resets to defaults.
func (r *Recognizer) WithConfig(cfg split.Config) *Recognizer {
	nr := r.clone()
	if cfg == (split.Config{}) {
		cfg = split.DefaultConfig()
	}
	nr.options.split = cfg
	return nr
}

// BinarizeThreshold sets the grayscale cutoff used when converting the source
// image to a bitmap. Pixels at or above the threshold count as background.
func (r *Recognizer) BinarizeThreshold(threshold uint8) *Recognizer {
	nr := r.clone()
	nr.options.binarizeThreshold = threshold
	return nr
}

// OCR enables text extraction for recognized cells. Requires building with
// the ocr tag; without it, terminal operations fail with ocr.ErrOCRNotEnabled.
// An empty lang keeps the current language ("eng" by default).
func (r *Recognizer) OCR(lang string) *Recognizer {
	nr := r.clone()
	nr.options.ocrEnabled = true
	if lang != "" {
		nr.options.ocrLanguage = lang
	}
	if nr.bitmap != nil && nr.err == nil {
		nr.err = fmt.Errorf("OCR requires the original image; use Open or FromImage")
	}
	return nr
}

// ScaleFactor sets the upscale applied to cell crops before OCR.
func (r *Recognizer) ScaleFactor(n int) *Recognizer {
	nr := r.clone()
	if n < 1 {
		n = 1
	}
	nr.options.scaleFactor = n
	return nr
}

// ensureBitmap decodes and binarizes the source if that has not happened yet.
func (r *Recognizer) ensureBitmap() error {
	if r.bitmap != nil {
		return nil
	}
	if r.source == nil {
		if r.filename == "" {
			return fmt.Errorf("no image specified")
		}
		img, err := pixmap.Load(r.filename)
		if err != nil {
			return fmt.Errorf("failed to open image: %w", err)
		}
		r.source = img
	}
	b, err := pixmap.Binarize(r.source, r.options.binarizeThreshold)
	if err != nil {
		return fmt.Errorf("failed to binarize image: %w", err)
	}
	r.bitmap = b
	return nil
}

// recognize runs the full pipeline on a working copy of the Recognizer and
// returns that copy, which carries the accumulated warnings.
func (r *Recognizer) recognize() (*Recognizer, *model.Structure, error) {
	if r.err != nil {
		return r, nil, r.err
	}
	w := r.clone()
	if err := w.ensureBitmap(); err != nil {
		return w, nil, err
	}

	boxes, err := split.Decompose(w.bitmap, w.options.split)
	if err != nil {
		return w, nil, err
	}
	if len(boxes) == 1 {
		w.warnings = append(w.warnings, Warning{
			Code:    WarnNoSplit,
			Message: "no separators found; the whole image is a single cell",
		})
	}
	boxes = split.UnifyBoxes(boxes, w.options.split.MaxDifferenceInOneGroup)
	st := model.NewStructure(boxes)

	if w.options.ocrEnabled {
		if err := w.fillContent(st, boxes); err != nil {
			return w, nil, err
		}
	}
	return w, st, nil
}

func (r *Recognizer) fillContent(st *model.Structure, boxes []model.BoundingBox) error {
	engine, err := ocr.NewEngine(ocr.Options{
		ScaleFactor: r.options.scaleFactor,
		Language:    r.options.ocrLanguage,
	})
	if err != nil {
		return err
	}
	defer engine.Close()

	texts, err := engine.RecognizeCells(r.source, boxes)
	if err != nil {
		return err
	}
	if applied := st.SetContent(texts); applied != st.CellCount() || len(texts) != st.CellCount() {
		r.warnings = append(r.warnings, Warning{
			Code: WarnContentCount,
			Message: fmt.Sprintf("OCR produced %d text values for %d cells",
				len(texts), st.CellCount()),
		})
	}
	return nil
}

// Structure runs recognition and returns the table structure. Warnings
// indicate non-fatal issues; the structure is still usable when they are
// present.
//
// Example:
//
//	st, warnings, err := tessella.Open("table.png").Structure()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", tessella.FormatWarnings(warnings))
//	}
func (r *Recognizer) Structure() (*model.Structure, []Warning, error) {
	w, st, err := r.recognize()
	if err != nil {
		return nil, w.warnings, err
	}
	return st, w.warnings, nil
}

// Boxes runs recognition and returns the unified cell bounding boxes.
func (r *Recognizer) Boxes() ([]model.BoundingBox, []Warning, error) {
	w, st, err := r.recognize()
	if err != nil {
		return nil, w.warnings, err
	}
	return st.BoundingBoxes(), w.warnings, nil
}

// HTML runs recognition and renders the structure as an HTML table with
// rowspan/colspan attributes for merged cells.
func (r *Recognizer) HTML() (string, []Warning, error) {
	w, st, err := r.recognize()
	if err != nil {
		return "", w.warnings, err
	}
	out, err := render.HTML(st)
	if err != nil {
		return "", w.warnings, err
	}
	return out, w.warnings, nil
}

// Markdown runs recognition and renders the structure as a markdown table.
func (r *Recognizer) Markdown() (string, []Warning, error) {
	w, st, err := r.recognize()
	if err != nil {
		return "", w.warnings, err
	}
	return render.Markdown(st), w.warnings, nil
}

// CSV runs recognition and renders the structure as CSV.
func (r *Recognizer) CSV() (string, []Warning, error) {
	w, st, err := r.recognize()
	if err != nil {
		return "", w.warnings, err
	}
	return render.CSV(st), w.warnings, nil
}

// Overlay runs recognition and draws the cell boundaries onto the source
// image. It is unavailable for FromBitmap inputs.
func (r *Recognizer) Overlay() (*image.RGBA, []Warning, error) {
	w, st, err := r.recognize()
	if err != nil {
		return nil, w.warnings, err
	}
	if w.source == nil {
		return nil, w.warnings, fmt.Errorf("overlay requires the original image; use Open or FromImage")
	}
	img, err := viz.Overlay(w.source, st.BoundingBoxes())
	if err != nil {
		return nil, w.warnings, err
	}
	return img, w.warnings, nil
}
