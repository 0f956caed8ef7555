package gen

import (
	"bytes"
	"fmt"
	"text/template"
)

// Header marks rendered files as generated.
const Header = "// Code generated by accessor-generator. DO NOT EDIT.\n\n"

var implTemplate = template.Must(template.New("impl").Parse(`{{range .Attrs}}{{.}}
{{end}}impl{{.Generics}} {{.Record}}{{.Arguments}}{{with .Where}} {{.}}{{end}} {
{{- range $i, $f := .Functions}}
{{if $i}}
{{end}}{{range $f.Attrs}}    {{.}}
{{end}}    {{$f.Signature}} {
{{range $f.Assertions}}        {{.}}
{{end}}{{range $f.Statements}}        {{.}}
{{end}}    }
{{- end}}
}
`))

// Render renders impl as source text.
func Render(impl *Impl) ([]byte, error) {
	var buf bytes.Buffer
	if err := implTemplate.Execute(&buf, impl); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderFile renders impl as the content of a source file.
func RenderFile(impl *Impl, header bool) ([]byte, error) {
	body, err := Render(impl)
	if err != nil {
		return nil, err
	}

	if !header {
		return body, nil
	}

	return append([]byte(Header), body...), nil
}
