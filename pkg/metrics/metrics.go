package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics contadores Prometheus de la aplicación.
type Metrics struct {
	registry *prometheus.Registry

	// DocumentosGenerados documentos renderizados con éxito, por tipo (docx|xlsx).
	DocumentosGenerados *prometheus.CounterVec
	// ErroresRender fallos al renderizar documentos.
	ErroresRender prometheus.Counter
	// PlantillasSubidas plantillas cargadas al almacenamiento.
	PlantillasSubidas prometheus.Counter
}

// New crea el registro y los contadores de la aplicación.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		DocumentosGenerados: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gpec_documentos_generados_total",
			Help: "Documentos renderizados con éxito, por tipo de plantilla.",
		}, []string{"tipo"}),
		ErroresRender: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gpec_render_errores_total",
			Help: "Errores al renderizar documentos.",
		}),
		PlantillasSubidas: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gpec_plantillas_subidas_total",
			Help: "Plantillas subidas al almacenamiento.",
		}),
	}

	reg.MustRegister(m.DocumentosGenerados, m.ErroresRender, m.PlantillasSubidas)
	return m
}

// Handler devuelve el handler HTTP de /metrics para este registro.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
