package mtl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ScannerHandler receives decoded MTL statements in document order, one
// callback per statement. Any non-nil error aborts the scan immediately.
type ScannerHandler interface {
	// OnComment is called for each # comment.
	OnComment(comment string) error
	// OnMaterial is called for each newmtl statement.
	OnMaterial(name string) error
	// OnAmbientColor is called for each Ka statement.
	OnAmbientColor(r, g, b float64) error
	// OnDiffuseColor is called for each Kd statement.
	OnDiffuseColor(r, g, b float64) error
	// OnSpecularColor is called for each Ks statement.
	OnSpecularColor(r, g, b float64) error
	// OnTransmissionColor is called for each Tf statement.
	OnTransmissionColor(r, g, b float64) error
	// OnDissolve is called for each d statement.
	OnDissolve(amount float64) error
	// OnSharpness is called for each sharpness statement.
	OnSharpness(amount float64) error
	// OnIllumination is called for each illum statement.
	OnIllumination(amount float64) error
	// OnSpecularExponent is called for each Ns statement.
	OnSpecularExponent(amount float64) error
	// OnAmbientTexture is called for each map_Ka statement.
	OnAmbientTexture(filename string) error
	// OnDiffuseTexture is called for each map_Kd statement.
	OnDiffuseTexture(filename string) error
	// OnSpecularTexture is called for each map_Ks statement.
	OnSpecularTexture(filename string) error
	// OnSpecularExponentTexture is called for each map_Ns statement.
	OnSpecularExponentTexture(filename string) error
	// OnDissolveTexture is called for each map_d statement.
	OnDissolveTexture(filename string) error
	// OnBumpTexture is called for each map_bump or bump statement.
	OnBumpTexture(filename string) error
	// OnReflectionTexture is called for each refl statement.
	OnReflectionTexture(filename string) error
}

// Scan reads MTL statements from r and drives h synchronously until input
// is exhausted or a callback fails. I/O errors are returned unchanged.
func Scan(r io.Reader, h ScannerHandler) error {
	s := &scanner{r: bufio.NewReader(r)}
	return s.scan(h)
}

// scanner reads logical MTL lines and dispatches them as statements.
type scanner struct {
	r    *bufio.Reader // Reader for the input
	line int           // Current line number
}

// scan drives h with one statement per logical line.
func (s *scanner) scan(h ScannerHandler) error {
	for {
		stmt, eof, err := s.readStatement()
		if err != nil {
			return err
		}

		if err := s.dispatch(stmt, h); err != nil {
			return err
		}

		if eof {
			return nil
		}
	}
}

// readStatement reads one logical line, joining lines that end with a
// backslash continuation.
func (s *scanner) readStatement() (string, bool, error) {
	var b strings.Builder
	for {
		line, err := s.r.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", false, err
		}
		eof := err == io.EOF

		s.line++
		if s.line == 1 {
			// Skip UTF-8 BOM if present.
			line = strings.TrimPrefix(line, "\uFEFF")
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasSuffix(trimmed, "\\") {
			b.WriteString(strings.TrimSuffix(trimmed, "\\"))
			b.WriteString(" ")
			if !eof {
				continue
			}
		} else {
			b.WriteString(trimmed)
		}

		return b.String(), eof, nil
	}
}

// dispatch decodes a single statement and invokes the matching callback.
// Unknown directives are skipped.
func (s *scanner) dispatch(stmt string, h ScannerHandler) error {
	stmt = strings.TrimSpace(stmt)
	if stmt == "" {
		return nil
	}

	if strings.HasPrefix(stmt, "#") {
		return h.OnComment(strings.TrimSpace(strings.TrimPrefix(stmt, "#")))
	}

	fields := strings.Fields(stmt)
	args := fields[1:]

	switch fields[0] {
	case "newmtl":
		if len(args) == 0 {
			return s.errorf("newmtl requires a material name")
		}
		return h.OnMaterial(strings.Join(args, " "))

	case "Ka":
		return s.colorStatement(args, h.OnAmbientColor)
	case "Kd":
		return s.colorStatement(args, h.OnDiffuseColor)
	case "Ks":
		return s.colorStatement(args, h.OnSpecularColor)
	case "Tf":
		return s.colorStatement(args, h.OnTransmissionColor)

	case "d":
		return s.scalarStatement(args, h.OnDissolve)
	case "Ns":
		return s.scalarStatement(args, h.OnSpecularExponent)
	case "sharpness":
		return s.scalarStatement(args, h.OnSharpness)
	case "illum":
		return s.scalarStatement(args, h.OnIllumination)

	case "map_Ka":
		return s.textureStatement(args, h.OnAmbientTexture)
	case "map_Kd":
		return s.textureStatement(args, h.OnDiffuseTexture)
	case "map_Ks":
		return s.textureStatement(args, h.OnSpecularTexture)
	case "map_Ns":
		return s.textureStatement(args, h.OnSpecularExponentTexture)
	case "map_d":
		return s.textureStatement(args, h.OnDissolveTexture)
	case "map_bump", "bump":
		return s.textureStatement(args, h.OnBumpTexture)
	case "refl":
		return s.textureStatement(args, h.OnReflectionTexture)

	default:
		// Real-world files carry directives outside the material core
		// (Ke, Ni, map_Ke, decal); those are skipped.
		return nil
	}
}

// colorStatement decodes one or three channel values. The single-value
// form replicates the channel across r, g, and b.
func (s *scanner) colorStatement(args []string, fn func(r, g, b float64) error) error {
	switch len(args) {
	case 1:
		v, err := s.parseFloat(args[0])
		if err != nil {
			return err
		}
		return fn(v, v, v)

	case 3:
		r, err := s.parseFloat(args[0])
		if err != nil {
			return err
		}
		g, err := s.parseFloat(args[1])
		if err != nil {
			return err
		}
		b, err := s.parseFloat(args[2])
		if err != nil {
			return err
		}
		return fn(r, g, b)

	default:
		return s.errorf("expected 1 or 3 color values, got %d", len(args))
	}
}

// scalarStatement decodes the statement value. Option flags such as
// "-halo" may precede it; the value is the final token.
func (s *scanner) scalarStatement(args []string, fn func(amount float64) error) error {
	if len(args) == 0 {
		return s.errorf("expected a value")
	}

	v, err := s.parseFloat(args[len(args)-1])
	if err != nil {
		return err
	}

	return fn(v)
}

// textureStatement passes the statement filename. Option flags such as
// "-blendu" may precede it; the filename is the final token.
func (s *scanner) textureStatement(args []string, fn func(filename string) error) error {
	if len(args) == 0 {
		return s.errorf("expected a filename")
	}

	return fn(args[len(args)-1])
}

// parseFloat decodes a numeric token.
func (s *scanner) parseFloat(tok string) (float64, error) {
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, s.errorf("invalid number %q", tok)
	}

	return f, nil
}

// errorf formats an error message with line context.
func (s *scanner) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at line %d: %s", ErrScan, s.line, fmt.Sprintf(format, args...))
}
