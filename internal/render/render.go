package render

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/PolarWolf314/sskeys/internal/secrets"
)

// ChunkSize is the number of byte values per line of a generated literal.
const ChunkSize = 10

// Options configures Render.
type Options struct {
	// Package is the package clause of the generated file.
	Package string

	// GenerationID is written to the header when non-empty.
	GenerationID string
}

type accessor struct {
	Name     string
	Original string
	Bytes    string
}

type fileData struct {
	GenerationID string
	Notice       string
	Package      string
	Imports      []string
	SharedName   string
	Shared       string
	HelperName   string
	Helper       string
	Accessors    []accessor
}

var fileTmpl = template.Must(template.New("secret_keys").Parse(fileTemplate))

// Render produces the Go source for m. names maps every original key name
// in m.Entries to its sanitized identifier. Accessors are emitted in sorted
// order of the identifier, and only the helpers of m.Mode are included.
func Render(m *secrets.Material, names map[string]string, opts Options) (string, error) {
	if opts.Package == "" {
		return "", fmt.Errorf("package name is required")
	}

	data := fileData{
		GenerationID: opts.GenerationID,
		Package:      opts.Package,
		Shared:       byteLines(m.Shared, 1),
	}

	switch m.Mode {
	case secrets.ModeXOR:
		data.Notice = fmt.Sprintf(securityNotice, "XOR-based obfuscation",
			"The salt is embedded in this file alongside the obfuscated values.")
		data.SharedName = "_salt"
		data.HelperName = "_decode"
		data.Helper = xorHelper
	case secrets.ModeAESGCM:
		data.Notice = fmt.Sprintf(securityNotice, "AES-256-GCM obfuscation",
			"The AES key and nonces are embedded in this file alongside the ciphertext.")
		data.Imports = []string{"crypto/aes", "crypto/cipher"}
		data.SharedName = "_key"
		data.HelperName = "_open"
		setup := fmt.Sprintf(aesGCMSetup, opts.Package)
		data.Helper = fmt.Sprintf(aeadHelper, setup, opts.Package, opts.Package, opts.Package)
	case secrets.ModeChaCha20:
		data.Notice = fmt.Sprintf(securityNotice, "ChaCha20-Poly1305 obfuscation",
			"The ChaCha20 key and nonces are embedded in this file alongside the ciphertext.")
		data.Imports = []string{"golang.org/x/crypto/chacha20poly1305"}
		data.SharedName = "_key"
		data.HelperName = "_open"
		data.Helper = fmt.Sprintf(aeadHelper, chaCha20Setup, opts.Package, opts.Package, opts.Package)
	default:
		return "", fmt.Errorf("unsupported cipher mode %q", m.Mode)
	}

	for original, entry := range m.Entries {
		name, ok := names[original]
		if !ok {
			return "", fmt.Errorf("no sanitized name for key %q", original)
		}
		data.Accessors = append(data.Accessors, accessor{
			Name:     name,
			Original: strconv.Quote(original),
			Bytes:    byteLines(entry, 2),
		})
	}
	sort.Slice(data.Accessors, func(i, j int) bool {
		return data.Accessors[i].Name < data.Accessors[j].Name
	})

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("formatting generated source: %w", err)
	}

	return string(formatted), nil
}

// byteLines writes b as comma separated decimal values, ChunkSize per line,
// each line indented by depth tabs and ending in a comma.
func byteLines(b []byte, depth int) string {
	indent := strings.Repeat("\t", depth)

	var sb strings.Builder
	for start := 0; start < len(b); start += ChunkSize {
		end := min(start+ChunkSize, len(b))
		sb.WriteString(indent)
		for i, v := range b[start:end] {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(int(v)))
		}
		sb.WriteString(",\n")
	}
	return sb.String()
}
