package mtl

import (
	"fmt"
	"math"
)

// limitHandler decorates an inner ScannerHandler, enforcing Limits before
// forwarding each statement. When every limit is satisfied it is fully
// transparent; when one is crossed it fails with ErrLimit instead of
// forwarding. It has no model-construction responsibility.
type limitHandler struct {
	inner     ScannerHandler // Wrapped handler
	limits    Limits         // Normalized limits
	materials int            // Materials observed so far
}

// newLimitHandler wraps inner with the given normalized limits.
func newLimitHandler(inner ScannerHandler, limits Limits) *limitHandler {
	return &limitHandler{inner: inner, limits: limits}
}

// OnComment enforces the comment length limit.
func (l *limitHandler) OnComment(comment string) error {
	if l.limits.MaxCommentLength > 0 && len(comment) > l.limits.MaxCommentLength {
		return errLimitf("comment length %d exceeds %d", len(comment), l.limits.MaxCommentLength)
	}

	return l.inner.OnComment(comment)
}

// OnMaterial enforces the name length and material count limits.
func (l *limitHandler) OnMaterial(name string) error {
	if l.limits.MaxNameLength > 0 && len(name) > l.limits.MaxNameLength {
		return errLimitf("material name length %d exceeds %d", len(name), l.limits.MaxNameLength)
	}

	l.materials++
	if l.limits.MaxMaterialCount > 0 && l.materials > l.limits.MaxMaterialCount {
		return errLimitf("material count exceeds %d", l.limits.MaxMaterialCount)
	}

	return l.inner.OnMaterial(name)
}

// OnAmbientColor enforces the number magnitude limit.
func (l *limitHandler) OnAmbientColor(r, g, b float64) error {
	if err := l.checkNumbers(r, g, b); err != nil {
		return err
	}

	return l.inner.OnAmbientColor(r, g, b)
}

// OnDiffuseColor enforces the number magnitude limit.
func (l *limitHandler) OnDiffuseColor(r, g, b float64) error {
	if err := l.checkNumbers(r, g, b); err != nil {
		return err
	}

	return l.inner.OnDiffuseColor(r, g, b)
}

// OnSpecularColor enforces the number magnitude limit.
func (l *limitHandler) OnSpecularColor(r, g, b float64) error {
	if err := l.checkNumbers(r, g, b); err != nil {
		return err
	}

	return l.inner.OnSpecularColor(r, g, b)
}

// OnTransmissionColor enforces the number magnitude limit.
func (l *limitHandler) OnTransmissionColor(r, g, b float64) error {
	if err := l.checkNumbers(r, g, b); err != nil {
		return err
	}

	return l.inner.OnTransmissionColor(r, g, b)
}

// OnDissolve enforces the number magnitude limit.
func (l *limitHandler) OnDissolve(amount float64) error {
	if err := l.checkNumbers(amount); err != nil {
		return err
	}

	return l.inner.OnDissolve(amount)
}

// OnSharpness enforces the number magnitude limit.
func (l *limitHandler) OnSharpness(amount float64) error {
	if err := l.checkNumbers(amount); err != nil {
		return err
	}

	return l.inner.OnSharpness(amount)
}

// OnIllumination enforces the number magnitude limit.
func (l *limitHandler) OnIllumination(amount float64) error {
	if err := l.checkNumbers(amount); err != nil {
		return err
	}

	return l.inner.OnIllumination(amount)
}

// OnSpecularExponent enforces the number magnitude limit.
func (l *limitHandler) OnSpecularExponent(amount float64) error {
	if err := l.checkNumbers(amount); err != nil {
		return err
	}

	return l.inner.OnSpecularExponent(amount)
}

// OnAmbientTexture enforces the filename length limit.
func (l *limitHandler) OnAmbientTexture(filename string) error {
	if err := l.checkFilename(filename); err != nil {
		return err
	}

	return l.inner.OnAmbientTexture(filename)
}

// OnDiffuseTexture enforces the filename length limit.
func (l *limitHandler) OnDiffuseTexture(filename string) error {
	if err := l.checkFilename(filename); err != nil {
		return err
	}

	return l.inner.OnDiffuseTexture(filename)
}

// OnSpecularTexture enforces the filename length limit.
func (l *limitHandler) OnSpecularTexture(filename string) error {
	if err := l.checkFilename(filename); err != nil {
		return err
	}

	return l.inner.OnSpecularTexture(filename)
}

// OnSpecularExponentTexture enforces the filename length limit.
func (l *limitHandler) OnSpecularExponentTexture(filename string) error {
	if err := l.checkFilename(filename); err != nil {
		return err
	}

	return l.inner.OnSpecularExponentTexture(filename)
}

// OnDissolveTexture enforces the filename length limit.
func (l *limitHandler) OnDissolveTexture(filename string) error {
	if err := l.checkFilename(filename); err != nil {
		return err
	}

	return l.inner.OnDissolveTexture(filename)
}

// OnBumpTexture enforces the filename length limit.
func (l *limitHandler) OnBumpTexture(filename string) error {
	if err := l.checkFilename(filename); err != nil {
		return err
	}

	return l.inner.OnBumpTexture(filename)
}

// OnReflectionTexture enforces the filename length limit.
func (l *limitHandler) OnReflectionTexture(filename string) error {
	if err := l.checkFilename(filename); err != nil {
		return err
	}

	return l.inner.OnReflectionTexture(filename)
}

// checkNumbers enforces MaxNumberMagnitude on each value.
func (l *limitHandler) checkNumbers(vals ...float64) error {
	if l.limits.MaxNumberMagnitude <= 0 {
		return nil
	}

	for _, v := range vals {
		if math.Abs(v) > l.limits.MaxNumberMagnitude {
			return errLimitf("number magnitude %g exceeds %g", math.Abs(v), l.limits.MaxNumberMagnitude)
		}
	}

	return nil
}

// checkFilename enforces MaxTextureFilenameLength.
func (l *limitHandler) checkFilename(filename string) error {
	if l.limits.MaxTextureFilenameLength > 0 && len(filename) > l.limits.MaxTextureFilenameLength {
		return errLimitf("texture filename length %d exceeds %d", len(filename), l.limits.MaxTextureFilenameLength)
	}

	return nil
}

// errLimitf formats an ErrLimit error.
func errLimitf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrLimit, fmt.Sprintf(format, args...))
}
