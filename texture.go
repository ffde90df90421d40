package mtl

// TextureKind identifies one of the material texture slots.
type TextureKind string

const (
	// TextureAmbient represents the ambient texture slot (map_Ka).
	TextureAmbient TextureKind = "ambient"
	// TextureDiffuse represents the diffuse texture slot (map_Kd).
	TextureDiffuse TextureKind = "diffuse"
	// TextureSpecular represents the specular texture slot (map_Ks).
	TextureSpecular TextureKind = "specular"
	// TextureSpecularExponent represents the specular exponent texture slot (map_Ns).
	TextureSpecularExponent TextureKind = "specularExponent"
	// TextureDissolve represents the dissolve texture slot (map_d).
	TextureDissolve TextureKind = "dissolve"
	// TextureBump represents the bump texture slot (map_bump).
	TextureBump TextureKind = "bump"
	// TextureReflection represents the reflection texture slot (refl).
	TextureReflection TextureKind = "reflection"
)

// TextureKinds lists all texture slots in canonical MTL statement order.
func TextureKinds() []TextureKind {
	return []TextureKind{
		TextureAmbient,
		TextureDiffuse,
		TextureSpecular,
		TextureSpecularExponent,
		TextureDissolve,
		TextureBump,
		TextureReflection,
	}
}

// textureKeyword returns the MTL statement keyword for a texture slot.
func textureKeyword(kind TextureKind) string {
	switch kind {
	case TextureAmbient:
		return "map_Ka"
	case TextureDiffuse:
		return "map_Kd"
	case TextureSpecular:
		return "map_Ks"
	case TextureSpecularExponent:
		return "map_Ns"
	case TextureDissolve:
		return "map_d"
	case TextureBump:
		return "map_bump"
	case TextureReflection:
		return "refl"
	default:
		return ""
	}
}

// textureSlot returns the field backing the given slot.
func (m *Material) textureSlot(kind TextureKind) **string {
	switch kind {
	case TextureAmbient:
		return &m.AmbientTexture
	case TextureDiffuse:
		return &m.DiffuseTexture
	case TextureSpecular:
		return &m.SpecularTexture
	case TextureSpecularExponent:
		return &m.SpecularExponentTexture
	case TextureDissolve:
		return &m.DissolveTexture
	case TextureBump:
		return &m.BumpTexture
	case TextureReflection:
		return &m.ReflectionTexture
	default:
		return nil
	}
}

// Texture returns the filename for the slot and whether it is set.
func (m *Material) Texture(kind TextureKind) (string, bool) {
	slot := m.textureSlot(kind)
	if slot == nil || *slot == nil {
		return "", false
	}

	return **slot, true
}

// SetTexture assigns a filename to the slot.
func (m *Material) SetTexture(kind TextureKind, filename string) {
	slot := m.textureSlot(kind)
	if slot == nil {
		return
	}

	*slot = &filename
}

// ClearTexture marks the slot as absent.
func (m *Material) ClearTexture(kind TextureKind) {
	slot := m.textureSlot(kind)
	if slot == nil {
		return
	}

	*slot = nil
}
