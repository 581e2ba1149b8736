package inspect

import (
	"log/slog"
	"net/http"

	"github.com/0xalexb/hjarta-config/provider"

	"github.com/goccy/go-yaml"
)

// ContentType is the media type of every successful response.
const ContentType = "application/yaml"

// ProviderState is one line of the /providers listing.
type ProviderState struct {
	ID       string `yaml:"id"`
	Resolved bool   `yaml:"resolved"`
}

// Handler serves a provider configuration.
type Handler struct {
	config    *provider.Config
	directory provider.Directory
	resolver  provider.Resolver
	mux       *http.ServeMux
}

// NewHandler creates a Handler for cfg. directory and resolver back the
// /providers listing; either may be nil, in which case the listing is empty
// or reports every identifier as unresolved.
func NewHandler(cfg *provider.Config, directory provider.Directory, resolver provider.Resolver) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	handler := &Handler{
		config:    cfg,
		directory: directory,
		resolver:  resolver,
		mux:       http.NewServeMux(),
	}

	handler.mux.HandleFunc("GET /config", handler.serveConfig)
	handler.mux.HandleFunc("GET /config/{key}", handler.serveKey)
	handler.mux.HandleFunc("GET /providers", handler.serveProviders)
	handler.mux.HandleFunc("POST /reload", handler.serveReload)

	return handler, nil
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) serveConfig(w http.ResponseWriter, _ *http.Request) {
	merged, err := h.config.Load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)

		return
	}

	writeYAML(w, map[string]any(merged))
}

func (h *Handler) serveKey(w http.ResponseWriter, r *http.Request) {
	merged, err := h.config.Load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)

		return
	}

	value, ok := merged[r.PathValue("key")]
	if !ok {
		http.Error(w, "key not found", http.StatusNotFound)

		return
	}

	writeYAML(w, value)
}

func (h *Handler) serveProviders(w http.ResponseWriter, _ *http.Request) {
	states := []ProviderState{}

	if h.directory != nil {
		ids, err := h.directory.Providers()
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)

			return
		}

		for _, id := range ids {
			resolved := false
			if h.resolver != nil {
				_, resolved = h.resolver.Resolve(id)
			}

			states = append(states, ProviderState{ID: id, Resolved: resolved})
		}
	}

	writeYAML(w, states)
}

func (h *Handler) serveReload(w http.ResponseWriter, _ *http.Request) {
	h.config.Clear()

	merged, err := h.config.Load()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)

		return
	}

	slog.Info("provider configs reloaded", "keys", len(merged))

	writeYAML(w, map[string]any{"keys": len(merged)})
}

func writeYAML(w http.ResponseWriter, value any) {
	out, err := yaml.Marshal(value)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)

		return
	}

	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(http.StatusOK)

	_, _ = w.Write(out)
}

func writeError(w http.ResponseWriter, status int, err error) {
	http.Error(w, err.Error(), status)
}
