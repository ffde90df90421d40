package mtl

import (
	"path/filepath"
	"strings"
)

// IssueLevel represents severity of validation issue.
type IssueLevel string

const (
	// IssueError indicates a validation error.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a validation warning.
	IssueWarning IssueLevel = "warning"
)

// Issue represents a validation issue.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" yaml:"code,omitempty"` // Machine-readable code
	Message string     `json:"message" yaml:"message"`               // Issue message
	Path    string     `json:"path,omitempty" yaml:"path,omitempty"` // Affected material or filename
}

// Validate validates a library and returns non-fatal issues. Parsing never
// runs these checks; they are an explicit post-parse step.
func Validate(lib *Library, opt *ValidateOptions) []Issue {
	vopt := opt.normalize()
	var out []Issue

	seen := make(map[string]struct{}, len(lib.Materials))
	for _, m := range lib.Materials {
		if m.Name == "" {
			out = append(out, Issue{Level: IssueError, Code: "unnamed_material", Message: "material name has not been defined"})
		} else if !vopt.DisableDuplicateNameCheck {
			if _, ok := seen[m.Name]; ok {
				out = append(out, Issue{Level: IssueWarning, Code: "duplicate_name", Message: "duplicate material name", Path: m.Name})
			}
			seen[m.Name] = struct{}{}
		}

		if !vopt.DisableRangeCheck {
			out = append(out, validateRanges(m)...)
		}

		if !vopt.DisableExtensionsCheck {
			for _, kind := range TextureKinds() {
				filename, ok := m.Texture(kind)
				if !ok {
					continue
				}
				if !hasAllowedExt(filename) {
					out = append(out, Issue{Level: IssueWarning, Code: "texture_extension", Message: "unexpected texture extension", Path: withMaterialContext(m.Name, filename)})
				}
			}
		}
	}

	return out
}

// validateRanges checks scalar and color ranges of a single material.
func validateRanges(m *Material) []Issue {
	var out []Issue

	out = append(out, validateColor(m.Name, "Ka", m.Ambient)...)
	out = append(out, validateColor(m.Name, "Kd", m.Diffuse)...)
	out = append(out, validateColor(m.Name, "Ks", m.Specular)...)
	out = append(out, validateColor(m.Name, "Tf", m.Transmission)...)

	if m.Dissolve < 0 || m.Dissolve > 1 {
		out = append(out, Issue{Level: IssueWarning, Code: "dissolve_range", Message: "dissolve outside [0,1]", Path: m.Name})
	}

	// Specular exponents above 1000 exceed what the format defines.
	if m.SpecularExponent < 0 || m.SpecularExponent > 1000 {
		out = append(out, Issue{Level: IssueWarning, Code: "specular_exponent_range", Message: "specular exponent outside [0,1000]", Path: m.Name})
	}

	if m.Sharpness < 0 {
		out = append(out, Issue{Level: IssueWarning, Code: "sharpness_range", Message: "negative sharpness", Path: m.Name})
	}

	if m.Illumination < 0 || m.Illumination > 10 {
		out = append(out, Issue{Level: IssueWarning, Code: "illum_range", Message: "illumination model outside [0,10]", Path: m.Name})
	}

	return out
}

// validateColor warns when a channel leaves the displayable [0,1] range.
func validateColor(material, keyword string, c Color) []Issue {
	for _, v := range c.ToArray() {
		if v < 0 || v > 1 {
			return []Issue{{Level: IssueWarning, Code: "color_range", Message: keyword + " channel outside [0,1]", Path: material}}
		}
	}

	return nil
}

// hasAllowedExt checks if the filename has a common texture extension.
var defaultTextureExts = []string{".png", ".jpg", ".jpeg", ".tga", ".bmp", ".dds", ".tif", ".tiff"}

func hasAllowedExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))

	// Check if the extension is allowed
	for _, e := range defaultTextureExts {
		if ext == e {
			return true
		}
	}

	return false
}

// withMaterialContext prefixes a path with its material name.
func withMaterialContext(material, path string) string {
	if material == "" {
		return path
	}

	return material + ": " + path
}
