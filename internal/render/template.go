package render

// securityNotice is the fixed header of every generated file. %s is the
// technique description for the active cipher mode.
const securityNotice = `// SECURITY NOTICE
// ===============
// This file uses %s, not a secrets vault.
// %s
// A determined attacker with access to the compiled binary can recover
// the original values.
//
// OWASP MASVS-RESILIENCE context: this technique provides
// obfuscation (MASWE-0089 mitigation class), not cryptographic
// protection. It is NOT a substitute for a secrets manager.
//
// Use this tool when:
//   - Secrets are low-value or short-lived
//   - You need to slow down, not prevent, casual inspection
//
// Do not use this tool when:
//   - Secrets grant access to production systems
//   - Exposure would cause regulatory or financial harm
//   - A secrets manager or runtime injection is feasible
`

const fileTemplate = `// Code generated by sskeys. DO NOT EDIT.
{{- if .GenerationID }}
// Generation ID: {{ .GenerationID }}
{{- end }}
//
{{ .Notice }}
package {{ .Package }}
{{ if .Imports }}
import (
{{- range .Imports }}
	"{{ . }}"
{{- end }}
)
{{ end }}
var {{ .SharedName }} = []byte{
{{ .Shared }}}
{{ range .Accessors }}
// {{ .Name }} returns the value of config key {{ .Original }}.
func {{ .Name }}() string {
	return {{ $.HelperName }}([]byte{
{{ .Bytes }}	})
}
{{ end }}
{{ .Helper }}`

const xorHelper = `func _decode(encoded []byte) string {
	out := make([]byte, len(encoded))
	for i, b := range encoded {
		out[i] = b ^ _salt[i%len(_salt)]
	}
	return string(out)
}
`

// aeadHelper is shared by both AEAD modes; %s builds the cipher.AEAD named
// aead from _key and declares err.
const aeadHelper = `func _open(combined []byte) string {
%s	if err != nil {
		panic("%s: invalid embedded key: " + err.Error())
	}
	if len(combined) < aead.NonceSize()+aead.Overhead() {
		panic("%s: embedded value is malformed")
	}
	plaintext, err := aead.Open(nil, combined[:aead.NonceSize()], combined[aead.NonceSize():], nil)
	if err != nil {
		panic("%s: embedded value failed authentication: " + err.Error())
	}
	return string(plaintext)
}
`

const aesGCMSetup = `	block, err := aes.NewCipher(_key)
	if err != nil {
		panic("%s: invalid embedded key: " + err.Error())
	}
	aead, err := cipher.NewGCM(block)
`

const chaCha20Setup = `	aead, err := chacha20poly1305.New(_key)
`
