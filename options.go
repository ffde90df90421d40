package mtl

// Limits bounds resource consumption when parsing untrusted documents.
// A zero threshold leaves that dimension unbounded. Passing nil Limits
// to the parse entry points is equivalent to parsing with no limiter.
type Limits struct {
	// MaxMaterialCount caps the number of newmtl declarations.
	MaxMaterialCount int
	// MaxNameLength caps the byte length of a material name.
	MaxNameLength int
	// MaxTextureFilenameLength caps the byte length of a texture filename.
	MaxTextureFilenameLength int
	// MaxCommentLength caps the byte length of a comment.
	MaxCommentLength int
	// MaxNumberMagnitude caps the absolute value of any numeric argument.
	MaxNumberMagnitude float64
}

// FormatOptions controls writer formatting.
type FormatOptions struct {
	// Precision is the number of digits used for float values
	// (default is -1, the shortest exact representation).
	Precision int
}

// ValidateOptions controls validation rules.
type ValidateOptions struct {
	// DisableRangeCheck disables range validation of color channels,
	// dissolve, specular exponent, and illumination model.
	DisableRangeCheck bool
	// DisableDuplicateNameCheck disables duplicate material name warnings.
	DisableDuplicateNameCheck bool
	// DisableExtensionsCheck disables extension validation for texture filenames.
	DisableExtensionsCheck bool
}

// normalize normalizes the Limits.
func (o *Limits) normalize() Limits {
	if o == nil {
		return Limits{}
	}

	return *o
}

// normalize normalizes the FormatOptions.
func (o *FormatOptions) normalize() FormatOptions {
	if o == nil {
		return FormatOptions{Precision: -1}
	}

	out := *o
	if out.Precision == 0 {
		out.Precision = -1
	}

	return out
}

// normalize normalizes the ValidateOptions.
func (o *ValidateOptions) normalize() ValidateOptions {
	if o == nil {
		return ValidateOptions{}
	}

	return *o
}
