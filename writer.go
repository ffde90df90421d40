package mtl

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Encode writes a Library to writer as MTL text.
func Encode(w io.Writer, lib *Library, opt *FormatOptions) error {
	fopt := opt.normalize()
	// Buffered writer reduces syscall overhead and short writes.
	bw := bufio.NewWriter(w)
	wr := &writer{w: bw, prec: fopt.Precision}
	for i, m := range lib.Materials {
		if i > 0 {
			if err := wr.writeString("\n"); err != nil {
				return err
			}
		}
		if err := wr.writeMaterial(m); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// EncodeFile writes a Library to a file.
func EncodeFile(path string, lib *Library, opt *FormatOptions) error {
	b, err := Format(lib, opt)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o600)
}

// Format renders a Library to bytes.
func Format(lib *Library, opt *FormatOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, lib, opt); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// writer writes a Library to a writer.
type writer struct {
	w    io.Writer // Writer to write to
	prec int       // Float precision
}

// writeMaterial writes a single material block.
func (w *writer) writeMaterial(m *Material) error {
	// An unset name cannot be represented as a newmtl statement.
	if m.Name == "" {
		return fmt.Errorf("%w: material name has not been defined", ErrEncode)
	}

	if err := w.writeString("newmtl " + m.Name + "\n"); err != nil {
		return err
	}

	if err := w.writeColor("Ka", m.Ambient); err != nil {
		return err
	}
	if err := w.writeColor("Kd", m.Diffuse); err != nil {
		return err
	}
	if err := w.writeColor("Ks", m.Specular); err != nil {
		return err
	}
	if err := w.writeColor("Tf", m.Transmission); err != nil {
		return err
	}

	if err := w.writeScalar("Ns", m.SpecularExponent); err != nil {
		return err
	}
	if err := w.writeScalar("d", m.Dissolve); err != nil {
		return err
	}
	if err := w.writeScalar("sharpness", m.Sharpness); err != nil {
		return err
	}

	if err := w.writeString("illum " + strconv.Itoa(m.Illumination) + "\n"); err != nil {
		return err
	}

	// Textures are emitted only when set, in canonical statement order.
	for _, kind := range TextureKinds() {
		filename, ok := m.Texture(kind)
		if !ok {
			continue
		}
		if err := w.writeString(textureKeyword(kind) + " " + filename + "\n"); err != nil {
			return err
		}
	}

	return nil
}

// writeColor writes a three-channel color statement.
func (w *writer) writeColor(keyword string, c Color) error {
	if err := w.writeString(keyword); err != nil {
		return err
	}
	for _, v := range c.ToArray() {
		if err := w.writeString(" "); err != nil {
			return err
		}
		if err := w.writeNumber(v); err != nil {
			return err
		}
	}

	return w.writeString("\n")
}

// writeScalar writes a single-value statement.
func (w *writer) writeScalar(keyword string, v float64) error {
	if err := w.writeString(keyword + " "); err != nil {
		return err
	}
	if err := w.writeNumber(v); err != nil {
		return err
	}

	return w.writeString("\n")
}

// writeNumber writes a float64 value to the writer.
func (w *writer) writeNumber(v float64) error {
	var buf [32]byte
	b := strconv.AppendFloat(buf[:0], v, 'g', w.prec, 64)
	_, err := w.w.Write(b)

	return err
}

// writeString writes a string to the writer.
func (w *writer) writeString(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}
