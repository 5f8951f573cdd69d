package export

import (
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/psas-avionics/telempack/pkg/catalog"
	"github.com/psas-avionics/telempack/pkg/codec"
)

// The generated structs are packed to mirror the wire layout exactly; the
// header struct carries the raw 6-byte timestamp because C has no u48.
var typedefTmpl = template.Must(template.New("typedef").Parse(`/*! \typedef
 * {{.Name}} Data
 */
typedef struct {
{{- range .Members}}
	{{.CType}} {{.Var}};
{{- end}}
} __attribute__((packed)) {{.Name}}Data;

typedef struct {
	char     ID[4];
	uint8_t  timestamp[6];
	uint16_t data_length;
	{{.Name}}Data data;
} __attribute__((packed)) {{.Code}}Message;
`))

type typedefMember struct {
	CType string
	Var   string
}

type typedefData struct {
	Name    string
	Code    string
	Members []typedefMember
}

// Typedef writes the packed C struct declarations for one message type.
func Typedef(w io.Writer, mt *codec.MessageType) error {
	data := typedefData{Name: mt.Name, Code: mt.FourCC.String()}
	for _, f := range mt.Layout.Fields {
		m := typedefMember{CType: f.Type.CType(), Var: strings.ToLower(f.Name)}
		if f.Type == codec.Bytes {
			m.Var += "[" + strconv.Itoa(f.Size) + "]"
		}
		data.Members = append(data.Members, m)
	}
	return typedefTmpl.Execute(w, data)
}

// Typedefs writes declarations for every type in the registry, in
// registration order, so the output is deterministic.
func Typedefs(w io.Writer, reg *catalog.Registry) error {
	for _, mt := range reg.Types() {
		if err := Typedef(w, mt); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
