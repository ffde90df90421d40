package mtl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial("probe")

	assert.Equal(t, "probe", m.Name)
	assert.Equal(t, SetColorRGB(1, 1, 1), m.Ambient)
	assert.Equal(t, SetColorRGB(1, 1, 1), m.Diffuse)
	assert.Equal(t, SetColorRGB(0, 0, 0), m.Specular)
	assert.Equal(t, SetColorRGB(0, 0, 0), m.Transmission)
	assert.Equal(t, 0.0, m.SpecularExponent)
	assert.Equal(t, 1.0, m.Dissolve)
	assert.Equal(t, 0.0, m.Sharpness)
	assert.Equal(t, 0, m.Illumination)

	for _, kind := range TextureKinds() {
		_, ok := m.Texture(kind)
		assert.False(t, ok, "texture %s should be absent by default", kind)
	}

	require.NotNil(t, m.CustomData)
	assert.Empty(t, m.CustomData)
}

func TestMaterialCopy(t *testing.T) {
	src := NewMaterial("source")
	src.Ambient.Set(0.1, 0.2, 0.3)
	src.Diffuse.Set(0.4, 0.5, 0.6)
	src.Specular.Set(0.7, 0.8, 0.9)
	src.Transmission.Set(0.3, 0.2, 0.1)
	src.SpecularExponent = 96
	src.Dissolve = 0.5
	src.Sharpness = 60
	src.Illumination = 2
	src.SetTexture(TextureAmbient, "ao.png")
	src.SetTexture(TextureDiffuse, "diffuse.png")
	src.SetTexture(TextureSpecular, "spec.png")
	src.SetTexture(TextureSpecularExponent, "gloss.png")
	src.SetTexture(TextureDissolve, "alpha.png")
	src.SetTexture(TextureBump, "normal.png")
	src.SetTexture(TextureReflection, "probe.png")
	src.SetCustomData("exporter", StringValue("blender"))
	src.SetCustomData("version", NumberValue(4))
	src.SetCustomData("doubleSided", BoolValue(true))
	src.SetCustomData("thumbnail", BlobValue([]byte{0x89, 0x50}))

	cp := src.Copy()
	require.Equal(t, src, cp)

	// The copy carries its own name, not a shared default.
	assert.Equal(t, "source", cp.Name)
	// Each texture slot is an independent pointer.
	for _, kind := range TextureKinds() {
		assert.NotSame(t, *src.textureSlot(kind), *cp.textureSlot(kind))
	}

	// Mutating the copy must never leak into the original.
	cp.Name = "changed"
	cp.Ambient.Set(9, 9, 9)
	cp.Dissolve = 0
	cp.SetTexture(TextureDiffuse, "other.png")
	cp.ClearTexture(TextureBump)
	cp.SetCustomData("exporter", StringValue("maya"))
	blob, _ := cp.CustomDataValue("thumbnail")
	blob.Blob[0] = 0xFF

	assert.Equal(t, "source", src.Name)
	assert.Equal(t, SetColorRGB(0.1, 0.2, 0.3), src.Ambient)
	assert.Equal(t, 0.5, src.Dissolve)
	tex, _ := src.Texture(TextureDiffuse)
	assert.Equal(t, "diffuse.png", tex)
	_, ok := src.Texture(TextureBump)
	assert.True(t, ok)
	v, _ := src.CustomDataValue("exporter")
	assert.Equal(t, "blender", v.Str)
	srcBlob, _ := src.CustomDataValue("thumbnail")
	assert.Equal(t, byte(0x89), srcBlob.Blob[0])
}

func TestTextureAccessors(t *testing.T) {
	m := NewMaterial("m")

	_, ok := m.Texture(TextureBump)
	assert.False(t, ok)

	m.SetTexture(TextureBump, "normal.png")
	tex, ok := m.Texture(TextureBump)
	require.True(t, ok)
	assert.Equal(t, "normal.png", tex)
	assert.Equal(t, "normal.png", *m.BumpTexture)

	// The empty string is a set value, distinct from absent.
	m.SetTexture(TextureBump, "")
	tex, ok = m.Texture(TextureBump)
	require.True(t, ok)
	assert.Equal(t, "", tex)

	m.ClearTexture(TextureBump)
	_, ok = m.Texture(TextureBump)
	assert.False(t, ok)
	assert.Nil(t, m.BumpTexture)
}

func TestValueClone(t *testing.T) {
	v := BlobValue([]byte{1, 2, 3})
	c := v.clone()
	c.Blob[0] = 9
	assert.Equal(t, byte(1), v.Blob[0])

	assert.Equal(t, ValueString, StringValue("x").Kind)
	assert.Equal(t, ValueNumber, NumberValue(1).Kind)
	assert.Equal(t, ValueBool, BoolValue(true).Kind)
	assert.Equal(t, ValueBlob, v.Kind)
}

func TestColorHelpers(t *testing.T) {
	c := SetColorRGB(2, -1, 0.5)

	assert.Equal(t, []float64{2, -1, 0.5}, c.ToArray())
	assert.Equal(t, SetColorRGB(1, 0, 0.5), c.Clamped())

	c.SetTo(SetColorRGB(0.25, 0.5, 0.75))
	assert.Equal(t, SetColorRGB(0.25, 0.5, 0.75), c)

	cf := c.Colorful()
	assert.Equal(t, 0.25, cf.R)
	assert.Equal(t, 0.5, cf.G)
	assert.Equal(t, 0.75, cf.B)

	assert.Equal(t, "#ff0000", SetColorRGB(4, 0, 0).Hex())
}
