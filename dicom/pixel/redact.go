package pixel

import (
	"fmt"

	"github.com/medvault/dicomkit/dicom"
	"github.com/medvault/dicomkit/dicom/element"
	"github.com/medvault/dicomkit/dicom/tag"
	"github.com/medvault/dicomkit/dicom/value"
	"github.com/medvault/dicomkit/dicom/vr"
)

// Region is a rectangular area of a frame, in pixel (column, row) coordinates
// with the origin at the top-left corner, matching DICOM's row-major pixel
// layout.
type Region struct {
	X, Y          int
	Width, Height int
}

// RedactRegion overwrites every sample byte within region, across the frames
// listed in frameIndices (or every frame, if nil), with fillValue. It
// operates on the already-decompressed pixel bytes, in place.
func (p *PixelData) RedactRegion(region Region, frameIndices []int, fillValue byte) error {
	if region.Width <= 0 || region.Height <= 0 {
		return fmt.Errorf("pixel: redaction region must have positive width and height")
	}
	if region.X < 0 || region.Y < 0 ||
		region.X+region.Width > int(p.Columns) || region.Y+region.Height > int(p.Rows) {
		return fmt.Errorf("pixel: redaction region (%d,%d)+(%dx%d) exceeds frame bounds %dx%d",
			region.X, region.Y, region.Width, region.Height, p.Columns, p.Rows)
	}

	bytesPerSample := int(p.BitsAllocated+7) / 8
	sampleStride := bytesPerSample * int(p.SamplesPerPixel)
	rowStride := int(p.Columns) * sampleStride

	frames := p.Frames()
	targets := frameIndices
	if targets == nil {
		targets = make([]int, len(frames))
		for i := range frames {
			targets[i] = i
		}
	}

	for _, idx := range targets {
		if idx < 0 || idx >= len(frames) {
			return fmt.Errorf("pixel: frame index %d out of range (%d frames)", idx, len(frames))
		}
		data := frames[idx].data
		for row := region.Y; row < region.Y+region.Height; row++ {
			start := row*rowStride + region.X*sampleStride
			end := start + region.Width*sampleStride
			if end > len(data) {
				end = len(data)
			}
			for i := start; i < end; i++ {
				data[i] = fillValue
			}
		}
	}
	return nil
}

// RedactOptions configures RedactDataSetRegion.
type RedactOptions struct {
	// FrameIndices restricts redaction to specific frames; nil means every
	// frame in the dataset.
	FrameIndices []int
	// FillValue is the byte written into every redacted sample; 0 by default.
	FillValue byte
	// SkipIfCompressed makes RedactDataSetRegion a no-op, instead of failing,
	// when Pixel Data is encapsulated (compressed).
	SkipIfCompressed bool
	// SuppressBurnedInAnnotation, when true, sets (0028,0301) to "NO" after a
	// successful redaction.
	SuppressBurnedInAnnotation bool
}

// RedactDataSetRegion redacts a rectangular pixel region directly on ds's
// Pixel Data element. Encapsulated (compressed) Pixel Data cannot be
// byte-filled without first decompressing it: by default this returns
// dicom.ErrIncompressiblePixelRedaction, unless opts.SkipIfCompressed
// requests a silent no-op instead.
func RedactDataSetRegion(ds *dicom.DataSet, region Region, opts RedactOptions) error {
	de, err := ds.GetElement(tag.PixelData)
	if err != nil {
		return fmt.Errorf("pixel: dataset has no Pixel Data element: %w", err)
	}
	if de.Fragments != nil {
		if opts.SkipIfCompressed {
			return nil
		}
		return dicom.ErrIncompressiblePixelRedaction
	}

	pd, err := Extract(ds)
	if err != nil {
		return fmt.Errorf("pixel: extracting pixel data for redaction: %w", err)
	}
	if err := pd.RedactRegion(region, opts.FrameIndices, opts.FillValue); err != nil {
		return err
	}

	elem, err := ds.Get(tag.PixelData)
	if err != nil {
		return fmt.Errorf("pixel: re-reading Pixel Data element: %w", err)
	}
	newVal, err := value.NewBytesValue(elem.VR(), pd.RawBytes())
	if err != nil {
		return fmt.Errorf("pixel: rebuilding redacted Pixel Data value: %w", err)
	}
	if err := elem.SetValue(newVal); err != nil {
		return fmt.Errorf("pixel: writing redacted Pixel Data: %w", err)
	}

	if opts.SuppressBurnedInAnnotation {
		flag, err := value.NewStringValue(vr.CodeString, []string{"NO"})
		if err != nil {
			return fmt.Errorf("pixel: building BurnedInAnnotation value: %w", err)
		}
		burnedElem, err := element.NewElement(tag.BurnedInAnnotation, vr.CodeString, flag)
		if err != nil {
			return fmt.Errorf("pixel: building BurnedInAnnotation element: %w", err)
		}
		if err := ds.Add(burnedElem); err != nil {
			return fmt.Errorf("pixel: setting BurnedInAnnotation: %w", err)
		}
	}

	return nil
}
