package fontresolve

import (
	"errors"
	"fmt"
)

// Sentinel errors. Only ErrInvalidWeight is ever returned from resolving a
// descriptor; the others describe why a custom family did not load.
var (
	ErrInvalidWeight      = errors.New("invalid font weight")
	ErrAssetsUnavailable  = errors.New("application assets unavailable")
	ErrFontFileNotFound   = errors.New("font file not found")
	ErrConstruction       = errors.New("cannot construct typeface")
	ErrBuilderUnavailable = errors.New("typeface builder unavailable")
)

// InvalidWeightError is returned for a weight outside the known vocabulary.
type InvalidWeightError struct {
	Weight Weight
}

func (e *InvalidWeightError) Error() string {
	return fmt.Sprintf("invalid font weight: %q", string(e.Weight))
}

func (e *InvalidWeightError) Unwrap() error {
	return ErrInvalidWeight
}

// FontFileNotFoundError lists the paths probed for a custom family.
type FontFileNotFoundError struct {
	Family string
	Probed []string
}

func (e *FontFileNotFoundError) Error() string {
	return fmt.Sprintf("could not find font file for %s (tried %v)", e.Family, e.Probed)
}

func (e *FontFileNotFoundError) Unwrap() error {
	return ErrFontFileNotFound
}

// ConstructionError wraps a failure of the platform to create a typeface
// from a font file.
type ConstructionError struct {
	Path string
	Err  error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("error loading font asset %s: %v", e.Path, e.Err)
}

func (e *ConstructionError) Is(target error) bool {
	return target == ErrConstruction
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}
