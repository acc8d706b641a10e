package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ViewListing  = "listing"
	ViewDetail   = "detail"
	ViewNotFound = "not_found"
)

var (
	PageRenders = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "blog", Name: "page_renders_total", Help: "Number of rendered pages by view."},
		[]string{"view"},
	)
	DocumentsLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: "blog", Name: "documents_loaded", Help: "Number of documents in the content store."},
	)
	ContentReloads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "blog", Name: "content_reloads_total", Help: "Content reloads by result."},
		[]string{"result"},
	)
)

// RegisterCollectors adds the blog collectors to reg.
func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(PageRenders)
	reg.MustRegister(DocumentsLoaded)
	reg.MustRegister(ContentReloads)
}

// ObserveRender counts one render of view.
func ObserveRender(view string) {
	PageRenders.WithLabelValues(view).Inc()
}

// ObserveReload records the outcome of a content reload and the new document count.
func ObserveReload(documents int, err error) {
	if err != nil {
		ContentReloads.WithLabelValues("error").Inc()
		return
	}
	ContentReloads.WithLabelValues("ok").Inc()
	DocumentsLoaded.Set(float64(documents))
}
