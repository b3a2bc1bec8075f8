package router

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-range-proxy/pkg/apiErrors"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}

	// WithJSONErrors responde 404 e 405 no mesmo formato de erro da API
	WithJSONErrors = func() ConfigRouter {
		return func(router *Router) {
			router.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "route not found", nil)
			})
			router.router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "method not allowed", nil)
			})
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // Lista de middlewares específicos para esta rota
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) *Router {
	router := &Router{
		router: httprouter.New(),
	}

	for _, config := range configs {
		config(router)
	}

	return router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// Match devolve o caminho registrado que atende a requisição, com os parâmetros
// no formato da rota (/api/v1/cron/:type/run). Usado como rótulo nas métricas HTTP.
func (r *Router) Match(req *http.Request) (string, bool) {
	handle, params, _ := r.router.Lookup(req.Method, req.URL.Path)
	if handle == nil {
		return "", false
	}

	if len(params) == 0 {
		return req.URL.Path, true
	}

	segments := strings.Split(req.URL.Path, "/")
	for _, param := range params {
		for i, segment := range segments {
			if segment == param.Value {
				segments[i] = ":" + param.Key
				break
			}
		}
	}

	return strings.Join(segments, "/"), true
}

// AddRoutes adiciona rotas ao router com seus middlewares específicos
func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		var handler http.Handler = route.Handler

		// Aplicar middlewares específicos da rota, do último para o primeiro
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			middleware := route.Middlewares[i]
			handler = middleware(handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}
