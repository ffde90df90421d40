package mtl

import (
	"os"
	"path/filepath"
	"testing"
)

func BenchmarkParse(b *testing.B) {
	data, err := os.ReadFile(filepath.Join("testdata", "multi.mtl"))
	if err != nil {
		b.Fatalf("read: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(data, nil); err != nil {
			b.Fatalf("parse: %v", err)
		}
	}
}

func BenchmarkParseWithLimits(b *testing.B) {
	data, err := os.ReadFile(filepath.Join("testdata", "multi.mtl"))
	if err != nil {
		b.Fatalf("read: %v", err)
	}
	limits := &Limits{MaxMaterialCount: 1024, MaxNameLength: 256, MaxTextureFilenameLength: 4096}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(data, limits); err != nil {
			b.Fatalf("parse: %v", err)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	lib, err := DecodeFile(filepath.Join("testdata", "multi.mtl"), nil)
	if err != nil {
		b.Fatalf("parse: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Format(lib, nil); err != nil {
			b.Fatalf("format: %v", err)
		}
	}
}
