package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/psas-avionics/telempack/pkg/codec"
)

// TypeInfo describes one catalogue entry over the wire.
type TypeInfo struct {
	FourCC      string      `json:"fourcc"`
	Name        string      `json:"name"`
	Size        int         `json:"size"`
	FixedLength bool        `json:"fixed_length,omitempty"`
	Fields      []FieldInfo `json:"fields"`
}

// FieldInfo describes one field of a message body.
type FieldInfo struct {
	Name  string  `json:"name"`
	CType string  `json:"ctype"`
	Width int     `json:"width"`
	MKS   string  `json:"mks,omitempty"`
	Scale float64 `json:"scale,omitempty"`
	Bias  float64 `json:"bias,omitempty"`
}

func typeInfo(mt *codec.MessageType) TypeInfo {
	info := TypeInfo{
		FourCC:      mt.FourCC.String(),
		Name:        mt.Name,
		Size:        mt.Size(),
		FixedLength: mt.FixedLength,
	}
	for _, f := range mt.Layout.Fields {
		info.Fields = append(info.Fields, FieldInfo{
			Name:  f.Name,
			CType: f.Type.CType(),
			Width: f.Width(),
			MKS:   f.Units.MKS,
			Scale: f.Units.Scale,
			Bias:  f.Units.Bias,
		})
	}
	return info
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHTTPRequest("/api/v1/health")
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"types":  s.reg.Len(),
	})
}

func (s *Server) handleListTypes(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHTTPRequest("/api/v1/types")
	types := s.reg.Types()
	out := make([]TypeInfo, 0, len(types))
	for _, mt := range types {
		out = append(out, typeInfo(mt))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetType(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHTTPRequest("/api/v1/types/{fourcc}")
	fc, err := codec.ParseFourCC(chi.URLParam(r, "fourcc"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	mt, ok := s.reg.Lookup(fc)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown type code")
		return
	}
	writeJSON(w, http.StatusOK, typeInfo(mt))
}

func (s *Server) handleLatestRecords(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHTTPRequest("/api/v1/records/latest")
	s.mu.RLock()
	out := make([]*codec.Record, 0, len(s.latest))
	for _, rec := range s.latest {
		out = append(out, rec)
	}
	s.mu.RUnlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleLatestRecord(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHTTPRequest("/api/v1/records/latest/{fourcc}")
	fc, err := codec.ParseFourCC(chi.URLParam(r, "fourcc"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.mu.RLock()
	rec, ok := s.latest[fc]
	s.mu.RUnlock()
	if !ok {
		writeError(w, http.StatusNotFound, "no record received for type")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
