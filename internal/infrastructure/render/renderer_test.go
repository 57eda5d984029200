package render_test

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gpec-api/internal/domain"
	"github.com/jhoicas/gpec-api/internal/domain/entity"
	"github.com/jhoicas/gpec-api/internal/infrastructure/render"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers: contenedores OOXML mínimos construidos en memoria
// ──────────────────────────────────────────────────────────────────────────────

// buildZip arma un ZIP con las entradas indicadas.
func buildZip(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// readZipEntry devuelve el contenido de una entrada del ZIP resultante.
func readZipEntry(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			content, err := io.ReadAll(rc)
			require.NoError(t, err)
			return string(content)
		}
	}
	t.Fatalf("entrada %s no encontrada en el ZIP", name)
	return ""
}

const docxBody = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Cliente: [[nombre]] NIT [[nit]]</w:t></w:r></w:p>
    <w:p><w:r><w:t>Correo: [[correo]]</w:t></w:r></w:p>
  </w:body>
</w:document>`

const xlsxShared = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<sst xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" count="2" uniqueCount="2">
  <si><t>Empresa [[nombre]] de [[ciudad]]</t></si>
  <si><t>sin marcadores</t></si>
</sst>`

// ──────────────────────────────────────────────────────────────────────────────
// Substitute
// ──────────────────────────────────────────────────────────────────────────────

func TestSubstitute(t *testing.T) {
	values := map[string]string{"nombre": "Acme", "nit": "123"}

	assert.Equal(t, "Cliente: Acme NIT 123",
		render.Substitute("Cliente: [[nombre]] NIT [[nit]]", values))

	// Marcador sin valor → cadena vacía, nunca el token literal.
	assert.Equal(t, "Correo: ",
		render.Substitute("Correo: [[correo]]", values))

	// Espacios alrededor de la clave se ignoran.
	assert.Equal(t, "Acme",
		render.Substitute("[[ nombre ]]", values))

	// Texto sin marcadores queda intacto.
	assert.Equal(t, "sin marcadores",
		render.Substitute("sin marcadores", values))

	// Varios marcadores en la misma cadena, una sola pasada.
	assert.Equal(t, "Acme-Acme-123",
		render.Substitute("[[nombre]]-[[nombre]]-[[nit]]", values))
}

// Un valor que a su vez contiene "[[" no se vuelve a expandir.
func TestSubstitute_ValorConDelimitadores(t *testing.T) {
	values := map[string]string{"a": "[[b]]", "b": "nunca"}
	assert.Equal(t, "[[b]]", render.Substitute("[[a]]", values))
}

// ──────────────────────────────────────────────────────────────────────────────
// Render docx
// ──────────────────────────────────────────────────────────────────────────────

func TestRender_Docx(t *testing.T) {
	tpl := buildZip(t, map[string]string{
		"[Content_Types].xml": `<?xml version="1.0"?><Types/>`,
		"word/document.xml":   docxBody,
	})
	values := map[string]string{"nombre": "Acme", "nit": "123"}

	out, mime, err := render.NewDocumentRenderer().Render(tpl, entity.TipoDocx, values)
	require.NoError(t, err)
	assert.Equal(t, render.MimeDocx, mime)

	doc := readZipEntry(t, out, "word/document.xml")
	assert.Contains(t, doc, "Cliente: Acme NIT 123")
	// correo no tiene valor: el marcador desaparece.
	assert.Contains(t, doc, "Correo: </w:t>")
	assert.NotContains(t, doc, "[[")
}

func TestRender_Docx_Encabezado(t *testing.T) {
	tpl := buildZip(t, map[string]string{
		"word/document.xml": `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body/></w:document>`,
		"word/header1.xml":  `<w:hdr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:p><w:r><w:t>[[nombre]]</w:t></w:r></w:p></w:hdr>`,
	})

	out, _, err := render.NewDocumentRenderer().Render(tpl, entity.TipoDocx, map[string]string{"nombre": "Acme"})
	require.NoError(t, err)

	assert.Contains(t, readZipEntry(t, out, "word/header1.xml"), "Acme")
}

// Word parte el texto en varios runs al editar una plantilla: el marcador
// puede llegar repartido entre nodos w:t y aun así debe resolverse.
func TestRender_Docx_MarcadorPartidoEntreRuns(t *testing.T) {
	body := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Cliente: [[nom</w:t></w:r><w:r><w:t>bre]]</w:t></w:r></w:p>
  </w:body>
</w:document>`
	tpl := buildZip(t, map[string]string{"word/document.xml": body})

	out, _, err := render.NewDocumentRenderer().Render(tpl, entity.TipoDocx, map[string]string{"nombre": "Acme"})
	require.NoError(t, err)

	doc := readZipEntry(t, out, "word/document.xml")
	assert.Contains(t, doc, "Cliente: Acme")
	assert.NotContains(t, doc, "[[")
	assert.NotContains(t, doc, "]]")
}

// Caso extremo: el marcador repartido en tres runs, con texto alrededor.
func TestRender_Docx_MarcadorEnTresRuns(t *testing.T) {
	body := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>NIT [[</w:t></w:r><w:r><w:t>ni</w:t></w:r><w:r><w:t>t]] de la empresa</w:t></w:r></w:p>
  </w:body>
</w:document>`
	tpl := buildZip(t, map[string]string{"word/document.xml": body})

	out, _, err := render.NewDocumentRenderer().Render(tpl, entity.TipoDocx, map[string]string{"nit": "900123"})
	require.NoError(t, err)

	doc := readZipEntry(t, out, "word/document.xml")
	assert.Contains(t, doc, "NIT 900123 de la empresa")
	assert.NotContains(t, doc, "[[")
}

// Un párrafo de varios runs sin marcadores partidos conserva sus runs: la
// fusión solo se dispara cuando hay un fragmento por resolver.
func TestRender_Docx_RunsSanosNoSeFusionan(t *testing.T) {
	body := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Hola </w:t></w:r><w:r><w:t>[[nombre]]</w:t></w:r></w:p>
  </w:body>
</w:document>`
	tpl := buildZip(t, map[string]string{"word/document.xml": body})

	out, _, err := render.NewDocumentRenderer().Render(tpl, entity.TipoDocx, map[string]string{"nombre": "Acme"})
	require.NoError(t, err)

	doc := readZipEntry(t, out, "word/document.xml")
	assert.Contains(t, doc, ">Hola <", "el run previo debe quedar en su propio nodo")
	assert.Contains(t, doc, ">Acme<")
}

// Las entradas que no son objetivo se copian byte a byte.
func TestRender_Docx_EntradasNoObjetivoIntactas(t *testing.T) {
	styles := `<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">[[nombre]]</w:styles>`
	tpl := buildZip(t, map[string]string{
		"word/document.xml": `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body/></w:document>`,
		"word/styles.xml":   styles,
	})

	out, _, err := render.NewDocumentRenderer().Render(tpl, entity.TipoDocx, map[string]string{"nombre": "Acme"})
	require.NoError(t, err)

	assert.Equal(t, styles, readZipEntry(t, out, "word/styles.xml"),
		"styles.xml no es objetivo de sustitución")
}

// ──────────────────────────────────────────────────────────────────────────────
// Render xlsx
// ──────────────────────────────────────────────────────────────────────────────

func TestRender_Xlsx(t *testing.T) {
	tpl := buildZip(t, map[string]string{
		"xl/sharedStrings.xml":  xlsxShared,
		"xl/worksheets/sheet1.xml": `<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"><sheetData><row><c t="inlineStr"><is><t>NIT: [[nit]]</t></is></c></row></sheetData></worksheet>`,
	})
	values := map[string]string{"nombre": "Acme", "ciudad": "Bogotá", "nit": "900123"}

	out, mime, err := render.NewDocumentRenderer().Render(tpl, entity.TipoXlsx, values)
	require.NoError(t, err)
	assert.Equal(t, render.MimeXlsx, mime)

	shared := readZipEntry(t, out, "xl/sharedStrings.xml")
	assert.Contains(t, shared, "Empresa Acme de Bogotá")
	assert.Contains(t, shared, "sin marcadores")

	sheet := readZipEntry(t, out, "xl/worksheets/sheet1.xml")
	assert.Contains(t, sheet, "NIT: 900123")
}

// Las cadenas compartidas con rich text reparten la celda en runs <r><t>;
// el marcador partido entre ellos también debe resolverse.
func TestRender_Xlsx_MarcadorPartidoEnRichText(t *testing.T) {
	shared := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<sst xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" count="1" uniqueCount="1">
  <si><r><t>Ciudad: [[ciu</t></r><r><t>dad]]</t></r></si>
</sst>`
	tpl := buildZip(t, map[string]string{"xl/sharedStrings.xml": shared})

	out, _, err := render.NewDocumentRenderer().Render(tpl, entity.TipoXlsx, map[string]string{"ciudad": "Bogotá"})
	require.NoError(t, err)

	result := readZipEntry(t, out, "xl/sharedStrings.xml")
	assert.Contains(t, result, "Ciudad: Bogotá")
	assert.NotContains(t, result, "[[")
}

// ──────────────────────────────────────────────────────────────────────────────
// Casos de error
// ──────────────────────────────────────────────────────────────────────────────

func TestRender_TipoNoSoportado(t *testing.T) {
	_, _, err := render.NewDocumentRenderer().Render([]byte("lo que sea"), "pdf", nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestRender_ContenedorCorrupto(t *testing.T) {
	_, _, err := render.NewDocumentRenderer().Render([]byte("esto no es un zip"), entity.TipoDocx, nil)
	assert.Error(t, err)
}
