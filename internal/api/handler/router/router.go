package router

import (
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/royalty-manager-api/pkg/apiErrors"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // aplicados na ordem da lista
}

type Router struct {
	router *httprouter.Router
	routes []string
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) *Router {
	r := &Router{
		router: httprouter.New(),
	}

	r.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", nil)
	})
	r.router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = w.Write([]byte(`{"code":"` + apiErrors.ErrInvalidRequest + `","message":"Método não permitido"}`))
	})

	for _, config := range configs {
		config(r)
	}

	logrus.WithField("routes", len(r.routes)).Debug("Rotas registradas")

	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas envolvendo cada handler nos seus middlewares
func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		handler := route.Handler
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
		r.routes = append(r.routes, route.Method+" "+route.Path)
	}
}

// Routes lista "MÉTODO caminho" de todas as rotas registradas, em ordem alfabética
func (r *Router) Routes() []string {
	out := append([]string(nil), r.routes...)
	sort.Strings(out)
	return out
}
