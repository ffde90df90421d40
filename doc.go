/*
Package mtl provides parsing, writing, and validation for Wavefront MTL
material library files.

It focuses on strict, order-sensitive statement handling and deterministic
formatting, extracting the common material fields (ambient/diffuse/specular
colors, dissolve, specular exponent, texture maps). Untrusted input can be
bounded with Limits.

Reader example:

	lib, err := mtl.DecodeFile("materials.mtl", nil)
	if err != nil {
		// handle error
	}

Reader example with limits:

	lib, err := mtl.DecodeFile("materials.mtl", &mtl.Limits{
		MaxMaterialCount: 512,
	})
	if errors.Is(err, mtl.ErrLimit) {
		// input too large to process safely
	}

Writer example:

	out, err := mtl.Format(lib, nil)
	if err != nil {
		// handle error
	}

Validator example:

	issues := mtl.Validate(lib, nil)
	if len(issues) != 0 {
		// handle validation issues
	}

Custom statement handling example:

	// handler implements ScannerHandler and receives one callback
	// per decoded statement, in document order.
	err := mtl.Scan(reader, handler)
*/
package mtl
