package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBlockDefinition = errors.New("invalid block definition")
	ErrUnsupportedBlockKind   = errors.New("unsupported block kind")
)

// InvalidBlockDefinitionError reports a content-authoring defect. Path locates the
// offending block or field, e.g. "blocks[2].children[0].source".
type InvalidBlockDefinitionError struct {
	Path   string
	Reason string
}

func (e *InvalidBlockDefinitionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidBlockDefinition, e.Reason)
	}
	return fmt.Sprintf("%s at %s: %s", ErrInvalidBlockDefinition, e.Path, e.Reason)
}

func (e *InvalidBlockDefinitionError) Is(target error) bool {
	return target == ErrInvalidBlockDefinition
}

// UnsupportedBlockKindError means the renderer met a variant it does not know.
// It only happens when the block model and the renderer are out of sync.
type UnsupportedBlockKindError struct {
	Kind string
}

func (e *UnsupportedBlockKindError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsupportedBlockKind, e.Kind)
}

func (e *UnsupportedBlockKindError) Is(target error) bool {
	return target == ErrUnsupportedBlockKind
}

func invalid(path, reason string) *InvalidBlockDefinitionError {
	return &InvalidBlockDefinitionError{Path: path, Reason: reason}
}

// prefixed re-roots a validation error under a parent path.
func prefixed(parent string, err error) error {
	var ibd *InvalidBlockDefinitionError
	if !errors.As(err, &ibd) {
		return err
	}
	path := parent
	if ibd.Path != "" {
		path = parent + "." + ibd.Path
	}
	return invalid(path, ibd.Reason)
}
