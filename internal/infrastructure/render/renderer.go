// Package render sustituye los marcadores [[campo]] de una plantilla
// Word/Excel por los valores de una empresa. Los .docx y .xlsx son
// contenedores ZIP con XML adentro: se reescriben únicamente los nodos de
// texto de las entradas relevantes y se vuelve a empaquetar el contenedor.
package render

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/beevik/etree"

	"github.com/jhoicas/gpec-api/internal/domain"
	"github.com/jhoicas/gpec-api/internal/domain/entity"
)

// MIME types de los formatos OOXML generados.
const (
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeXlsx = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Delimitadores [[ ... ]]: elegidos para no chocar con puntuación natural
// de los documentos. Sustitución literal, sin expresiones ni bucles.
var placeholderRe = regexp.MustCompile(`\[\[([^\[\]]*)\]\]`)

// Substitute resuelve todos los marcadores de un texto en una sola pasada de
// izquierda a derecha. Un marcador sin valor correspondiente queda como
// cadena vacía, nunca como el token literal.
func Substitute(text string, values map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(text, func(m string) string {
		key := strings.TrimSpace(m[2 : len(m)-2])
		return values[key]
	})
}

// DocumentRenderer renderiza plantillas docx/xlsx.
type DocumentRenderer struct{}

// NewDocumentRenderer construye el renderizador.
func NewDocumentRenderer() *DocumentRenderer {
	return &DocumentRenderer{}
}

// Render aplica los valores a la plantilla según su tipo y devuelve el
// binario resultante junto con su MIME type. Tipos distintos de docx/xlsx
// devuelven domain.ErrUnsupportedFormat.
func (r *DocumentRenderer) Render(tpl []byte, tipo string, values map[string]string) ([]byte, string, error) {
	switch tipo {
	case entity.TipoDocx:
		out, err := rewriteContainer(tpl, values, isDocxTarget)
		if err != nil {
			return nil, "", err
		}
		return out, MimeDocx, nil
	case entity.TipoXlsx:
		out, err := rewriteContainer(tpl, values, isXlsxTarget)
		if err != nil {
			return nil, "", err
		}
		return out, MimeXlsx, nil
	default:
		return nil, "", domain.ErrUnsupportedFormat
	}
}

// isDocxTarget entradas del .docx con texto visible: el cuerpo del documento
// y sus encabezados/pies de página.
func isDocxTarget(name string) bool {
	if name == "word/document.xml" {
		return true
	}
	if !strings.HasSuffix(name, ".xml") {
		return false
	}
	return strings.HasPrefix(name, "word/header") || strings.HasPrefix(name, "word/footer")
}

// isXlsxTarget entradas del .xlsx con texto de celdas: la tabla de cadenas
// compartidas y las cadenas inline de cada hoja.
func isXlsxTarget(name string) bool {
	if name == "xl/sharedStrings.xml" {
		return true
	}
	return strings.HasPrefix(name, "xl/worksheets/") && strings.HasSuffix(name, ".xml")
}

// rewriteContainer desempaqueta el ZIP, sustituye los marcadores en las
// entradas objetivo y re-empaqueta todo en memoria.
func rewriteContainer(tpl []byte, values map[string]string, target func(string) bool) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(tpl), int64(len(tpl)))
	if err != nil {
		return nil, fmt.Errorf("render: abrir contenedor: %w", err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("render: abrir entrada %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("render: leer entrada %s: %w", f.Name, err)
		}

		if target(f.Name) && bytes.Contains(data, []byte("[[")) {
			data, err = substituteXML(data, values)
			if err != nil {
				return nil, fmt.Errorf("render: sustituir en %s: %w", f.Name, err)
			}
		}

		fw, err := zw.Create(f.Name)
		if err != nil {
			return nil, fmt.Errorf("render: crear entrada %s: %w", f.Name, err)
		}
		if _, err := fw.Write(data); err != nil {
			return nil, fmt.Errorf("render: escribir entrada %s: %w", f.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("render: cerrar contenedor: %w", err)
	}
	return buf.Bytes(), nil
}

// substituteXML reescribe los nodos de texto del XML que contienen "[[".
// Los atributos y la estructura quedan intactos.
func substituteXML(data []byte, values map[string]string) ([]byte, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return data, nil
	}
	substituteElement(root, values)
	mergeSplitMarkers(root, values)
	return doc.WriteToBytes()
}

func substituteElement(el *etree.Element, values map[string]string) {
	if txt := el.Text(); strings.Contains(txt, "[[") {
		el.SetText(Substitute(txt, values))
	}
	for _, child := range el.ChildElements() {
		substituteElement(child, values)
	}
}

// Word reparte el texto de un párrafo en varios runs al editar el documento,
// así que un marcador puede llegar partido entre nodos ("[[nom" + "bre]]");
// lo mismo pasa con el rich text de las celdas xlsx. Tras la pasada por nodo,
// mergeSplitMarkers resuelve los fragmentos restantes: concatena los textos
// del párrafo o del ítem de cadena, sustituye sobre la cadena unida y escribe
// el resultado en el primer nodo, vaciando los demás. Solo actúa dentro de
// contenedores de texto (w:p, si, is) y solo cuando detecta un fragmento,
// para no fusionar runs de párrafos sanos.
func mergeSplitMarkers(el *etree.Element, values map[string]string) {
	for _, child := range el.ChildElements() {
		mergeSplitMarkers(child, values)
	}

	switch el.Tag {
	case "p", "si", "is":
	default:
		return
	}

	leaves := textLeaves(el)
	if len(leaves) < 2 {
		return
	}

	split := false
	var sb strings.Builder
	for _, l := range leaves {
		txt := l.Text()
		if idx := strings.Index(txt, "[["); idx >= 0 && !strings.Contains(txt[idx:], "]]") {
			split = true
		}
		sb.WriteString(txt)
	}
	joined := sb.String()
	if !split || !placeholderRe.MatchString(joined) {
		return
	}

	leaves[0].SetText(Substitute(joined, values))
	for _, l := range leaves[1:] {
		l.SetText("")
	}
}

// textLeaves nodos hoja con texto bajo el elemento, en orden de documento.
func textLeaves(el *etree.Element) []*etree.Element {
	var out []*etree.Element
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		children := e.ChildElements()
		if len(children) == 0 {
			if e.Text() != "" {
				out = append(out, e)
			}
			return
		}
		for _, c := range children {
			walk(c)
		}
	}
	walk(el)
	return out
}
