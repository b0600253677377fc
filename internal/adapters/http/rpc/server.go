// Package rpc exposes the oracle over JSON-RPC 2.0 on a single HTTP POST
// endpoint and declares route registration helpers.
package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/okian/soundproof/internal/oracle"
)

// Dependencies required by the RPC handlers. Using an interface bundle
// keeps the transport layer loosely coupled to the oracle implementation.
type Dependencies interface {
	ResolveForeignCall(ctx context.Context, params any) (*oracle.Result, error)
	StoreKey(ctx context.Context, params any) (string, error)
	DeleteKey(ctx context.Context, params any) (string, error)
}

// JSON-RPC 2.0 error codes used by this transport. Everything the oracle
// itself rejects travels as codeInvalidParams; the two other codes exist
// below the oracle's contract.
const (
	codeParse          = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

type request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type response struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id"`
	Result  any       `json:"result,omitempty"`
	Error   *rpcError `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server wires the JSON-RPC endpoint and the health/metrics route.
type Server struct {
	deps          Dependencies
	healthHandler *HealthHandler
}

// NewServer creates a new RPC server backed by deps.
func NewServer(deps Dependencies) *Server {
	return &Server{
		deps:          deps,
		healthHandler: NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/", LoggingMiddleware(s.handleRPC))
	mux.HandleFunc("/healthz", s.healthHandler.HandleHealth)
}

// handleRPC decodes one JSON-RPC request per POST body and dispatches it.
func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeResponse(w, response{
			JSONRPC: "2.0",
			ID:      nil,
			Error:   &rpcError{Code: codeParse, Message: "parse error"},
		})
		return
	}

	writeResponse(w, s.dispatch(r.Context(), req))
}

// dispatch routes a decoded request to its method handler and wraps the
// outcome in the response envelope.
func (s *Server) dispatch(ctx context.Context, req request) response {
	base := response{JSONRPC: "2.0", ID: req.ID}

	params, err := decodeParams(req.Params)
	if err != nil {
		base.Error = &rpcError{Code: codeParse, Message: "parse error"}
		return base
	}

	switch req.Method {
	case "resolve_foreign_call":
		result, err := s.deps.ResolveForeignCall(ctx, params)
		if err != nil {
			base.Error = invalidParams(err)
			return base
		}
		base.Result = result

	case "store_key":
		id, err := s.deps.StoreKey(ctx, params)
		if err != nil {
			base.Error = invalidParams(err)
			return base
		}
		base.Result = id

	case "delete_key":
		id, err := s.deps.DeleteKey(ctx, params)
		if err != nil {
			base.Error = invalidParams(err)
			return base
		}
		base.Result = id

	default:
		base.Error = &rpcError{Code: codeMethodNotFound, Message: fmt.Sprintf("method not found: %s", req.Method)}
	}
	return base
}

// decodeParams turns the raw params member into the generic value the
// oracle validates. Absent params decode to nil; the oracle rejects the
// shape itself.
func decodeParams(raw json.RawMessage) (any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("failed to decode params: %w", err)
	}
	return v, nil
}

func invalidParams(err error) *rpcError {
	return &rpcError{Code: codeInvalidParams, Message: err.Error()}
}

func writeResponse(w http.ResponseWriter, resp response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}
