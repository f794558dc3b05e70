// Package metrics agrupa los collectors de Prometheus del cliente y del servidor de desarrollo.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "wolfpack"

// Transport mide las llamadas salientes del adaptador HTTP.
type Transport struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewTransport registra los collectors en reg (nil = no registra, útil en tests).
func NewTransport(reg prometheus.Registerer) *Transport {
	t := &Transport{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Outgoing API requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Outgoing API request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	if reg != nil {
		reg.MustRegister(t.Requests, t.Duration)
	}
	return t
}

// Observe registra una llamada. code=0 significa fallo de red ("error").
func (t *Transport) Observe(method, path string, code int, d time.Duration) {
	if t == nil {
		return
	}
	route := Route(path)
	label := "error"
	if code > 0 {
		label = strconv.Itoa(code)
	}
	t.Requests.WithLabelValues(method, route, label).Inc()
	t.Duration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Route reemplaza segmentos numéricos por {id} para acotar la cardinalidad.
func Route(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if p == "" {
			continue
		}
		if _, err := strconv.Atoi(p); err == nil {
			parts[i] = "{id}"
		}
	}
	return strings.Join(parts, "/")
}

// Server mide las requests que atiende el servidor de desarrollo.
type Server struct {
	Requests *prometheus.CounterVec
}

func NewServer(reg prometheus.Registerer) *Server {
	s := &Server{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Handled API requests by method, route pattern and status code.",
		}, []string{"method", "route", "code"}),
	}
	if reg != nil {
		reg.MustRegister(s.Requests)
	}
	return s
}

// Middleware cuenta por patrón de ruta de chi (no por path concreto).
func (s *Server) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.Requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
	})
}
