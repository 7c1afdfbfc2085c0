package render

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"

	"github.com/PolarWolf314/sskeys/internal/sanitize"
	"github.com/PolarWolf314/sskeys/internal/secrets"

	"github.com/google/go-cmp/cmp"
)

// generatedFile is the parsed form of a rendered file.
type generatedFile struct {
	pkg       string
	imports   []string
	shared    []byte
	accessors []string
	values    map[string][]byte
	helpers   []string
}

func parseGenerated(t *testing.T, src string) generatedFile {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, FileName, src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, src)
	}

	g := generatedFile{pkg: file.Name.Name, values: make(map[string][]byte)}
	for _, imp := range file.Imports {
		path, _ := strconv.Unquote(imp.Path.Value)
		g.imports = append(g.imports, path)
	}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				g.helpers = append(g.helpers, vs.Names[0].Name)
				g.shared = literalBytes(t, vs.Values[0])
			}
		case *ast.FuncDecl:
			name := d.Name.Name
			if strings.HasPrefix(name, "_") {
				g.helpers = append(g.helpers, name)
				continue
			}
			g.accessors = append(g.accessors, name)
			ast.Inspect(d.Body, func(n ast.Node) bool {
				if lit, ok := n.(*ast.CompositeLit); ok {
					g.values[name] = literalBytes(t, lit)
					return false
				}
				return true
			})
		}
	}
	return g
}

func literalBytes(t *testing.T, expr ast.Expr) []byte {
	t.Helper()
	lit, ok := expr.(*ast.CompositeLit)
	if !ok {
		t.Fatalf("expected a composite literal, got %T", expr)
	}
	out := make([]byte, 0, len(lit.Elts))
	for _, elt := range lit.Elts {
		v, err := strconv.Atoi(elt.(*ast.BasicLit).Value)
		if err != nil || v < 0 || v > 255 {
			t.Fatalf("literal element %v is not a byte", elt)
		}
		out = append(out, byte(v))
	}
	return out
}

func renderKeys(t *testing.T, keys map[string]string, mode secrets.Mode) (string, *secrets.Material) {
	t.Helper()
	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	nameMap, err := sanitize.Sanitize(names)
	if err != nil {
		t.Fatalf("Sanitize failed: %v", err)
	}
	material, err := secrets.Encode(keys, mode)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	out, err := Render(material, nameMap, Options{Package: "secretkeys", GenerationID: "test-id"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return out, material
}

func TestRenderXOREndToEnd(t *testing.T) {
	out, material := renderKeys(t, map[string]string{"COUNT": "42", "API_KEY": "secret1"}, secrets.ModeXOR)
	g := parseGenerated(t, out)

	if diff := cmp.Diff([]string{"API_KEY", "COUNT"}, g.accessors); diff != "" {
		t.Errorf("accessor order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(material.Shared, g.shared); diff != "" {
		t.Errorf("salt mismatch (-want +got):\n%s", diff)
	}

	want := map[string]string{"API_KEY": "secret1", "COUNT": "42"}
	for name, value := range want {
		if got := string(secrets.XOR(g.values[name], g.shared)); got != value {
			t.Errorf("%s decodes to %q, want %q", name, got, value)
		}
	}

	if len(g.imports) != 0 {
		t.Errorf("xor output should import nothing, got %v", g.imports)
	}
	if diff := cmp.Diff([]string{"_salt", "_decode"}, g.helpers); diff != "" {
		t.Errorf("helpers mismatch (-want +got):\n%s", diff)
	}
	for _, forbidden := range []string{"_open", "_key", "aes", "chacha20poly1305"} {
		if strings.Contains(out, forbidden) {
			t.Errorf("xor output contains %q", forbidden)
		}
	}
}

func TestRenderAEADRoundTrip(t *testing.T) {
	tests := []struct {
		mode      secrets.Mode
		imports   []string
		forbidden []string
	}{
		{secrets.ModeAESGCM, []string{"crypto/aes", "crypto/cipher"}, []string{"_salt", "_decode", "chacha20poly1305"}},
		{secrets.ModeChaCha20, []string{"golang.org/x/crypto/chacha20poly1305"}, []string{"_salt", "_decode", "crypto/aes", "NewGCM"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			keys := map[string]string{"api-key": "sk_live_123", "db.password": "hunter2", "EMPTY": ""}
			out, material := renderKeys(t, keys, tt.mode)
			g := parseGenerated(t, out)

			if diff := cmp.Diff(tt.imports, g.imports); diff != "" {
				t.Errorf("imports mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff([]string{"EMPTY", "api_key", "db_password"}, g.accessors); diff != "" {
				t.Errorf("accessor order mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(material.Shared, g.shared); diff != "" {
				t.Errorf("key mismatch (-want +got):\n%s", diff)
			}

			for original, sanitized := range map[string]string{"api-key": "api_key", "db.password": "db_password", "EMPTY": "EMPTY"} {
				plaintext, err := secrets.Open(tt.mode, g.shared, g.values[sanitized])
				if err != nil {
					t.Fatalf("%s: Open failed: %v", sanitized, err)
				}
				if string(plaintext) != keys[original] {
					t.Errorf("%s decrypts to %q, want %q", sanitized, plaintext, keys[original])
				}
			}

			for _, forbidden := range tt.forbidden {
				if strings.Contains(out, forbidden) {
					t.Errorf("%s output contains %q", tt.mode, forbidden)
				}
			}
		})
	}
}

func TestRenderAEADFailsLoudly(t *testing.T) {
	for _, mode := range []secrets.Mode{secrets.ModeAESGCM, secrets.ModeChaCha20} {
		out, _ := renderKeys(t, map[string]string{"K": "v"}, mode)
		if !strings.Contains(out, `panic("secretkeys: embedded value failed authentication: " + err.Error())`) {
			t.Errorf("%s: _open should panic on authentication failure", mode)
		}
		if !strings.Contains(out, `panic("secretkeys: embedded value is malformed")`) {
			t.Errorf("%s: _open should panic on malformed input", mode)
		}
		if strings.Contains(out, `return ""`) {
			t.Errorf("%s: _open must not fall back to an empty string", mode)
		}
	}
}

func TestRenderSortsBySanitizedName(t *testing.T) {
	// "_zeta" sorts first as an original but sanitizes to "zeta".
	out, _ := renderKeys(t, map[string]string{"_zeta": "1", "alpha": "2", "9lives": "3"}, secrets.ModeXOR)
	g := parseGenerated(t, out)
	if diff := cmp.Diff([]string{"alpha", "key_9lives", "zeta"}, g.accessors); diff != "" {
		t.Errorf("accessor order mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderChunksLiterals(t *testing.T) {
	long := strings.Repeat("x", 47)
	out, _ := renderKeys(t, map[string]string{"LONG": long}, secrets.ModeXOR)

	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] < '0' || trimmed[0] > '9' {
			continue
		}
		if n := len(strings.Split(strings.TrimSuffix(trimmed, ","), ",")); n > ChunkSize {
			t.Errorf("literal line has %d values, want at most %d: %q", n, ChunkSize, line)
		}
	}

	g := parseGenerated(t, out)
	if len(g.values["LONG"]) != 47 {
		t.Errorf("LONG has %d bytes, want 47", len(g.values["LONG"]))
	}
}

func TestRenderHeader(t *testing.T) {
	out, _ := renderKeys(t, map[string]string{"K": "v"}, secrets.ModeXOR)

	if !strings.HasPrefix(out, "// Code generated by sskeys. DO NOT EDIT.\n// Generation ID: test-id\n") {
		t.Errorf("unexpected header:\n%s", out[:min(len(out), 200)])
	}
	for _, want := range []string{"SECURITY NOTICE", "XOR-based obfuscation, not a secrets vault", "Use this tool when:", "Do not use this tool when:", "package secretkeys"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if !strings.Contains(out, `returns the value of config key "K"`) {
		t.Error("accessor doc comment should quote the original key name")
	}
}

func TestRenderQuotesHostileKeyNames(t *testing.T) {
	material, err := secrets.Encode(map[string]string{"a\nb */": "v"}, secrets.ModeXOR)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	out, err := Render(material, map[string]string{"a\nb */": "a_b"}, Options{Package: "p"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	g := parseGenerated(t, out)
	if diff := cmp.Diff([]string{"a_b"}, g.accessors); diff != "" {
		t.Errorf("accessors mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderErrors(t *testing.T) {
	material, err := secrets.Encode(map[string]string{"K": "v"}, secrets.ModeXOR)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if _, err := Render(material, map[string]string{}, Options{Package: "p"}); err == nil {
		t.Error("Render should fail when a key has no sanitized name")
	}
	if _, err := Render(material, map[string]string{"K": "K"}, Options{}); err == nil {
		t.Error("Render should fail without a package name")
	}
	if _, err := Render(&secrets.Material{Mode: "rot13"}, nil, Options{Package: "p"}); err == nil {
		t.Error("Render should fail for an unknown mode")
	}
}

func TestRenderCustomPackage(t *testing.T) {
	material, err := secrets.Encode(map[string]string{"K": "v"}, secrets.ModeAESGCM)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	out, err := Render(material, map[string]string{"K": "K"}, Options{Package: "appsecrets"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	g := parseGenerated(t, out)
	if g.pkg != "appsecrets" {
		t.Errorf("package = %q, want %q", g.pkg, "appsecrets")
	}
	if !strings.Contains(out, `panic("appsecrets: embedded value is malformed")`) {
		t.Error("panic messages should carry the package name")
	}
	if strings.Contains(out, "Generation ID") {
		t.Error("empty generation ID should be omitted from the header")
	}
}
