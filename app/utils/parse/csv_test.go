package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFieldsQuotedComma(t *testing.T) {
	fields := SplitFields(`"Taladro, 20V",Truper,Herramientas`)
	assert.Equal(t, []string{"Taladro, 20V", "Truper", "Herramientas"}, fields)
}

func TestSplitFieldsEscapedQuote(t *testing.T) {
	fields := SplitFields(`"Disco ""Diamante"" 7in",Makita,Abrasivos`)
	assert.Equal(t, `Disco "Diamante" 7in`, fields[0])
}

func TestSplitFieldsTrimsWhitespace(t *testing.T) {
	fields := SplitFields(` Olla , Vasconia ,Cocina`)
	assert.Equal(t, []string{"Olla", "Vasconia", "Cocina"}, fields)
}

func TestSplitFieldsEmptyCells(t *testing.T) {
	fields := SplitFields("Olla,,Cocina,,")
	assert.Equal(t, []string{"Olla", "", "Cocina", "", ""}, fields)
}

func TestContentSkipsSparseRows(t *testing.T) {
	content := "Olla,Vasconia,Cocina,5,450.00\nSolo un campo\n,,\nSartén,Tramontina,Cocina"

	rows, skipped := Content(content)

	assert.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Number)
	assert.Equal(t, 4, rows[1].Number)

	assert.Len(t, skipped, 2)
	assert.Equal(t, 2, skipped[0].Number)
	assert.Equal(t, "fewer than 3 populated columns", skipped[0].Reason)
}

func TestContentIgnoresBlankLinesAndCRLF(t *testing.T) {
	content := "Olla,Vasconia,Cocina\r\n\r\n   \r\nSartén,Tramontina,Cocina\r\n"

	rows, skipped := Content(content)

	assert.Len(t, rows, 2)
	assert.Empty(t, skipped)
	assert.Equal(t, []string{"Olla", "Vasconia", "Cocina"}, rows[0].Fields)
}

func TestDecomposeName(t *testing.T) {
	cases := []struct {
		raw  string
		code string
		name string
	}{
		{"OL002 - Olla de Acero", "OL002", "Olla de Acero"},
		{"SKU-99: Martillo", "SKU-99", "Martillo"},
		{"AB12_Cinta Métrica", "AB12", "Cinta Métrica"},
		{"Olla de Acero", "", "Olla de Acero"},
		{"martillo - barato", "", "martillo - barato"},
		{"  OL002 - Olla  ", "OL002", "Olla"},
	}
	for _, tc := range cases {
		code, name := DecomposeName(tc.raw)
		assert.Equal(t, tc.code, code, "raw=%q", tc.raw)
		assert.Equal(t, tc.name, name, "raw=%q", tc.raw)
	}
}

func TestInferTags(t *testing.T) {
	assert.Equal(t, []string{"Oferta"}, InferTags("En OFERTA esta semana"))
	assert.Equal(t, []string{"Descontinuado", "Agotado"}, InferTags("descontinuado y agotado"))
	assert.Nil(t, InferTags("Activo"))
	assert.Nil(t, InferTags(""))
}
