package mtl

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Parse parses an MTL library from bytes.
func Parse(data []byte, limits *Limits) (*Library, error) {
	return Decode(bytes.NewReader(data), limits)
}

// Decode parses an MTL library from reader. A nil limits disables resource
// limiting. On any error no Library is returned, even if part of the
// document was already translated.
func Decode(r io.Reader, limits *Limits) (*Library, error) {
	run := &parseRunner{}
	return run.run(r, limits)
}

// DecodeFile parses an MTL library from a file.
func DecodeFile(path string, limits *Limits) (*Library, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(b, limits)
}

// parseRunner translates scanner statements into a Library. It holds the
// library under construction and the current material, which is nil until
// the first newmtl statement. State lives for a single run call only.
type parseRunner struct {
	library *Library  // Library being built
	current *Material // Target of property statements
}

// run resets state, wires the limiter if requested, and drives the scanner.
func (p *parseRunner) run(r io.Reader, limits *Limits) (*Library, error) {
	p.current = nil
	p.library = &Library{}

	var h ScannerHandler = p
	if limits != nil {
		h = newLimitHandler(p, limits.normalize())
	}

	if err := Scan(r, h); err != nil {
		return nil, err
	}

	return p.library, nil
}

// OnComment ignores comments.
func (p *parseRunner) OnComment(string) error {
	return nil
}

// OnMaterial appends a fresh material and makes it the mutation target.
// Names are not validated for uniqueness or emptiness.
func (p *parseRunner) OnMaterial(name string) error {
	p.current = NewMaterial(name)
	p.library.Materials = append(p.library.Materials, p.current)
	return nil
}

// OnAmbientColor overwrites the current material's ambient color.
func (p *parseRunner) OnAmbientColor(r, g, b float64) error {
	if err := p.assertCurrentMaterial(); err != nil {
		return err
	}

	p.current.Ambient.Set(r, g, b)
	return nil
}

// OnDiffuseColor overwrites the current material's diffuse color.
func (p *parseRunner) OnDiffuseColor(r, g, b float64) error {
	if err := p.assertCurrentMaterial(); err != nil {
		return err
	}

	p.current.Diffuse.Set(r, g, b)
	return nil
}

// OnSpecularColor overwrites the current material's specular color.
func (p *parseRunner) OnSpecularColor(r, g, b float64) error {
	if err := p.assertCurrentMaterial(); err != nil {
		return err
	}

	p.current.Specular.Set(r, g, b)
	return nil
}

// OnTransmissionColor overwrites the current material's transmission color.
func (p *parseRunner) OnTransmissionColor(r, g, b float64) error {
	if err := p.assertCurrentMaterial(); err != nil {
		return err
	}

	p.current.Transmission.Set(r, g, b)
	return nil
}

// OnDissolve overwrites the current material's dissolve.
func (p *parseRunner) OnDissolve(amount float64) error {
	if err := p.assertCurrentMaterial(); err != nil {
		return err
	}

	p.current.Dissolve = amount
	return nil
}

// OnSharpness overwrites the current material's sharpness.
func (p *parseRunner) OnSharpness(amount float64) error {
	if err := p.assertCurrentMaterial(); err != nil {
		return err
	}

	p.current.Sharpness = amount
	return nil
}

// OnIllumination overwrites the current material's illumination model.
func (p *parseRunner) OnIllumination(amount float64) error {
	if err := p.assertCurrentMaterial(); err != nil {
		return err
	}

	p.current.Illumination = int(amount)
	return nil
}

// OnSpecularExponent overwrites the current material's specular exponent.
func (p *parseRunner) OnSpecularExponent(amount float64) error {
	if err := p.assertCurrentMaterial(); err != nil {
		return err
	}

	p.current.SpecularExponent = amount
	return nil
}

// OnAmbientTexture overwrites the current material's ambient texture.
func (p *parseRunner) OnAmbientTexture(filename string) error {
	return p.onTexture(TextureAmbient, filename)
}

// OnDiffuseTexture overwrites the current material's diffuse texture.
func (p *parseRunner) OnDiffuseTexture(filename string) error {
	return p.onTexture(TextureDiffuse, filename)
}

// OnSpecularTexture overwrites the current material's specular texture.
func (p *parseRunner) OnSpecularTexture(filename string) error {
	return p.onTexture(TextureSpecular, filename)
}

// OnSpecularExponentTexture overwrites the current material's specular exponent texture.
func (p *parseRunner) OnSpecularExponentTexture(filename string) error {
	return p.onTexture(TextureSpecularExponent, filename)
}

// OnDissolveTexture overwrites the current material's dissolve texture.
func (p *parseRunner) OnDissolveTexture(filename string) error {
	return p.onTexture(TextureDissolve, filename)
}

// OnBumpTexture overwrites the current material's bump texture.
func (p *parseRunner) OnBumpTexture(filename string) error {
	return p.onTexture(TextureBump, filename)
}

// OnReflectionTexture overwrites the current material's reflection texture.
func (p *parseRunner) OnReflectionTexture(filename string) error {
	return p.onTexture(TextureReflection, filename)
}

// onTexture assigns a texture slot of the current material.
func (p *parseRunner) onTexture(kind TextureKind, filename string) error {
	if err := p.assertCurrentMaterial(); err != nil {
		return err
	}

	p.current.SetTexture(kind, filename)
	return nil
}

// assertCurrentMaterial enforces the invariant that every property
// statement belongs to a preceding newmtl declaration.
func (p *parseRunner) assertCurrentMaterial() error {
	if p.current == nil {
		return fmt.Errorf("%w: material name has not been defined", ErrCorrupt)
	}

	return nil
}
