package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/samber/lo"

	applog "dashkit/internal/log"
	"dashkit/internal/variant"
	"dashkit/internal/views/components"
)

// schemaRegistry is the set of schemas exposed by the API.
var schemaRegistry = components.Schemas

type optionDescription struct {
	Key   string `json:"key"`
	Class string `json:"class"`
}

type axisDescription struct {
	Name    string              `json:"name"`
	Default string              `json:"default"`
	Options []optionDescription `json:"options"`
}

type schemaDescription struct {
	Name string            `json:"name"`
	Base string            `json:"base"`
	Axes []axisDescription `json:"axes"`
}

func describeSchema(s *variant.Schema) schemaDescription {
	return schemaDescription{
		Name: s.Name(),
		Base: s.Base(),
		Axes: lo.Map(s.Axes(), func(axis string, _ int) axisDescription {
			def, _ := s.Default(axis)
			return axisDescription{
				Name:    axis,
				Default: def,
				Options: lo.Map(s.Options(axis), func(key string, _ int) optionDescription {
					class, _ := s.Fragment(axis, key)
					return optionDescription{Key: key, Class: class}
				}),
			}
		}),
	}
}

// APISchemas describes every registered component schema.
func APISchemas(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	reg := schemaRegistry()
	out := make([]schemaDescription, 0, len(reg.Names()))
	for _, name := range reg.Names() {
		s, _ := reg.Lookup(name)
		out = append(out, describeSchema(s))
	}
	writeJSON(r.Context(), w, http.StatusOK, out)
}

type resolveRequest struct {
	Component string `json:"component"`
	// Selection values are option keys. Boolean axes also accept JSON true/false.
	Selection map[string]any `json:"selection"`
	Class     string         `json:"class"`
}

func (req resolveRequest) selection() (variant.Selection, error) {
	sel := make(variant.Selection, len(req.Selection))
	for axis, value := range req.Selection {
		switch v := value.(type) {
		case string:
			sel[axis] = v
		case bool:
			sel[axis] = variant.Flag(v)
		case nil:
			sel[axis] = ""
		default:
			return nil, fmt.Errorf("selection %q must be a string or boolean", axis)
		}
	}
	return sel, nil
}

type resolveResponse struct {
	Class string `json:"class"`
}

type resolveError struct {
	Error  string   `json:"error"`
	Axis   string   `json:"axis,omitempty"`
	Option string   `json:"option,omitempty"`
	Known  []string `json:"known,omitempty"`
}

// APIResolve resolves a component selection into its class string.
func APIResolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req resolveRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		applog.Debug(r.Context(), "invalid resolve request", "error", err)
		writeJSON(r.Context(), w, http.StatusBadRequest, resolveError{Error: "invalid request body"})
		return
	}

	sel, err := req.selection()
	if err != nil {
		writeJSON(r.Context(), w, http.StatusBadRequest, resolveError{Error: err.Error()})
		return
	}

	schema, ok := schemaRegistry().Lookup(req.Component)
	if !ok {
		writeJSON(r.Context(), w, http.StatusNotFound, resolveError{Error: "unknown component " + req.Component})
		return
	}

	class, err := schema.Resolve(sel, req.Class)
	if err != nil {
		var optErr *variant.UnknownOptionError
		var axisErr *variant.UnknownAxisError
		switch {
		case errors.As(err, &optErr):
			writeJSON(r.Context(), w, http.StatusUnprocessableEntity, resolveError{Error: err.Error(), Axis: optErr.Axis, Option: optErr.Option, Known: optErr.Known})
		case errors.As(err, &axisErr):
			writeJSON(r.Context(), w, http.StatusUnprocessableEntity, resolveError{Error: err.Error(), Axis: axisErr.Axis, Known: axisErr.Known})
		default:
			applog.Error(r.Context(), "failed to resolve classes", "error", err, "component", req.Component)
			writeJSON(r.Context(), w, http.StatusInternalServerError, resolveError{Error: "unable to resolve classes"})
		}
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, resolveResponse{Class: class})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		applog.Error(ctx, "failed to encode json response", "error", err)
	}
}
