package mtl

// Material represents a single named material from an MTL library.
//
// A zero name is considered invalid for serialization but not for
// construction. The four color fields and CustomData are always present;
// only the name and the seven texture filenames may be absent.
type Material struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"` // Material name

	Ambient      Color `json:"ambient" yaml:"ambient"`           // Ambient color (Ka)
	Diffuse      Color `json:"diffuse" yaml:"diffuse"`           // Diffuse color (Kd)
	Specular     Color `json:"specular" yaml:"specular"`         // Specular color (Ks)
	Transmission Color `json:"transmission" yaml:"transmission"` // Transmission filter color (Tf)

	SpecularExponent float64 `json:"specularExponent,omitempty" yaml:"specularExponent,omitempty"` // Specular exponent (Ns)
	Dissolve         float64 `json:"dissolve,omitempty" yaml:"dissolve,omitempty"`                 // Dissolve, i.e. opacity (d)
	Sharpness        float64 `json:"sharpness,omitempty" yaml:"sharpness,omitempty"`               // Reflection sharpness
	Illumination     int     `json:"illumination,omitempty" yaml:"illumination,omitempty"`         // Illumination model (illum)

	AmbientTexture          *string `json:"ambientTexture,omitempty" yaml:"ambientTexture,omitempty"`                   // map_Ka filename
	DiffuseTexture          *string `json:"diffuseTexture,omitempty" yaml:"diffuseTexture,omitempty"`                   // map_Kd filename
	SpecularTexture         *string `json:"specularTexture,omitempty" yaml:"specularTexture,omitempty"`                 // map_Ks filename
	SpecularExponentTexture *string `json:"specularExponentTexture,omitempty" yaml:"specularExponentTexture,omitempty"` // map_Ns filename
	DissolveTexture         *string `json:"dissolveTexture,omitempty" yaml:"dissolveTexture,omitempty"`                 // map_d filename
	BumpTexture             *string `json:"bumpTexture,omitempty" yaml:"bumpTexture,omitempty"`                         // map_bump filename
	ReflectionTexture       *string `json:"reflectionTexture,omitempty" yaml:"reflectionTexture,omitempty"`             // refl filename

	CustomData map[string]Value `json:"customData,omitempty" yaml:"customData,omitempty"` // Application-defined extra data
}

// NewMaterial creates a Material with the given name and MTL defaults:
// white ambient and diffuse, black specular and transmission, full opacity.
func NewMaterial(name string) *Material {
	return &Material{
		Name:         name,
		Ambient:      SetColorRGB(1, 1, 1),
		Diffuse:      SetColorRGB(1, 1, 1),
		Specular:     SetColorRGB(0, 0, 0),
		Transmission: SetColorRGB(0, 0, 0),
		Dissolve:     1,
		CustomData:   map[string]Value{},
	}
}

// Copy returns a fully independent duplicate of the material, including
// its name, colors, scalars, texture filenames, and custom data.
func (m *Material) Copy() *Material {
	out := NewMaterial(m.Name)
	out.Ambient.SetTo(m.Ambient)
	out.Diffuse.SetTo(m.Diffuse)
	out.Specular.SetTo(m.Specular)
	out.Transmission.SetTo(m.Transmission)
	out.SpecularExponent = m.SpecularExponent
	out.Dissolve = m.Dissolve
	out.Sharpness = m.Sharpness
	out.Illumination = m.Illumination
	out.AmbientTexture = cloneFilename(m.AmbientTexture)
	out.DiffuseTexture = cloneFilename(m.DiffuseTexture)
	out.SpecularTexture = cloneFilename(m.SpecularTexture)
	out.SpecularExponentTexture = cloneFilename(m.SpecularExponentTexture)
	out.DissolveTexture = cloneFilename(m.DissolveTexture)
	out.BumpTexture = cloneFilename(m.BumpTexture)
	out.ReflectionTexture = cloneFilename(m.ReflectionTexture)

	for k, v := range m.CustomData {
		out.CustomData[k] = v.clone()
	}

	return out
}

// SetCustomData attaches an application-defined value under key.
func (m *Material) SetCustomData(key string, v Value) {
	m.CustomData[key] = v
}

// CustomDataValue returns the custom value for key and whether it is set.
func (m *Material) CustomDataValue(key string) (Value, bool) {
	v, ok := m.CustomData[key]
	return v, ok
}

// cloneFilename duplicates an optional texture filename.
func cloneFilename(s *string) *string {
	if s == nil {
		return nil
	}

	out := *s
	return &out
}

// Library is an ordered collection of materials from one MTL document.
// Order matches the order of newmtl statements; duplicate names are
// permitted and preserved as distinct entries.
type Library struct {
	Materials []*Material `json:"materials,omitempty" yaml:"materials,omitempty"` // Materials in document order
}

// Find returns the first material with the given name, or nil.
func (l *Library) Find(name string) *Material {
	for _, m := range l.Materials {
		if m.Name == name {
			return m
		}
	}

	return nil
}
