package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSynthesisSinSeguimientos(t *testing.T) {
	// Sin seguimientos el texto es exactamente el mensaje fijo de no iniciado
	text := GenerateSynthesis(0, "N/A")
	assert.Equal(t, SynthesisNotStarted, text)

	// El promedio no altera el mensaje cuando no hay seguimientos
	assert.Equal(t, SynthesisNotStarted, GenerateSynthesis(0, "4.50"))
}

func TestGenerateSynthesisEsDeterminista(t *testing.T) {
	first := GenerateSynthesis(7, "4.20")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, GenerateSynthesis(7, "4.20"))
	}
}

func TestGenerateSynthesisPlanCompletado(t *testing.T) {
	// 10 seguimientos con promedio 4.6: rama de plan completado, rama de
	// calificación sobresaliente y cierre de plan completado, en ese orden
	text := GenerateSynthesis(10, "4.6")

	require.True(t, strings.HasPrefix(text, "El plan de acompañamiento se ha completado"), text)
	assert.Contains(t, text, "sobresalientes (4.6 de 5)")
	assert.Contains(t, text, "Se recomienda cerrar el ciclo con una sesión de retroalimentación final")

	// Orden fijo: apertura, calificaciones, cierre
	openIdx := strings.Index(text, "El plan de acompañamiento")
	ratingIdx := strings.Index(text, "Las calificaciones promedio")
	closeIdx := strings.Index(text, "Se recomienda")
	require.True(t, openIdx < ratingIdx && ratingIdx < closeIdx, text)
}

func TestGenerateSynthesisTramosDeProgreso(t *testing.T) {
	tests := []struct {
		total    int
		fragment string
	}{
		{10, "se ha completado"},
		{12, "se ha completado"},
		{7, "muy avanzado"},
		{5, "supera la mitad"},
		{3, "etapa intermedia"},
		{1, "apenas comienza"},
	}

	for _, tt := range tests {
		text := GenerateSynthesis(tt.total, "N/A")
		assert.Contains(t, text, tt.fragment, "total=%d", tt.total)
	}
}

func TestGenerateSynthesisTramosDeCalificacion(t *testing.T) {
	tests := []struct {
		avg      string
		fragment string
	}{
		{"4.50", "sobresalientes"},
		{"4.00", "muy buenas"},
		{"3.50", "buenas"},
		{"3.00", "aceptables"},
		{"2.99", "bajas"},
	}

	for _, tt := range tests {
		text := GenerateSynthesis(5, tt.avg)
		assert.Contains(t, text, tt.fragment, "avg=%s", tt.avg)
	}
}

func TestGenerateSynthesisOmiteCalificacionNoNumerica(t *testing.T) {
	text := GenerateSynthesis(5, "N/A")
	assert.NotContains(t, text, "Las calificaciones promedio")

	// Aun así conserva apertura y cierre
	assert.Contains(t, text, "El plan de acompañamiento")
	assert.Contains(t, text, "Se recomienda mantener el ritmo actual")
}

func TestGenerateSynthesisCierres(t *testing.T) {
	assert.Contains(t, GenerateSynthesis(10, "N/A"), "cerrar el ciclo")
	assert.Contains(t, GenerateSynthesis(5, "N/A"), "mantener el ritmo actual")
	assert.Contains(t, GenerateSynthesis(2, "N/A"), "mayor frecuencia")
}
