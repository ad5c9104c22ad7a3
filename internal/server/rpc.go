package server

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/copyleftdev/benchfn/benchmark"
	errs "github.com/copyleftdev/benchfn/internal/errors"
)

// JSON-RPC 2.0 error codes
const (
	rpcParseError     = -32700
	rpcInvalidRequest = -32600
	rpcMethodNotFound = -32601
	rpcInvalidParams  = -32602
	rpcServerError    = -32000
)

// rpcParams are the parameters shared by every benchmark.* method.
type rpcParams struct {
	Name  string    `json:"name"`
	Dim   *int      `json:"dim,omitempty"`
	Point []float64 `json:"point,omitempty"`
}

// decodeParams accepts params either as an object or as a single-element
// array holding that object. Absent params decode to the zero value.
func decodeParams(raw json.RawMessage) (rpcParams, error) {
	var p rpcParams
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return p, nil
	}

	if raw[0] == '[' {
		var list []rpcParams
		if err := json.Unmarshal(raw, &list); err != nil {
			return p, errs.Wrapf(errBadRequest, "invalid params: %v", err)
		}
		if len(list) != 1 {
			return p, errs.Wrapf(errBadRequest, "expected 1 parameter object, got %d", len(list))
		}
		return list[0], nil
	}

	if err := json.Unmarshal(raw, &p); err != nil {
		return p, errs.Wrapf(errBadRequest, "invalid params: %v", err)
	}
	return p, nil
}

// handleJSONRPC handles JSON-RPC 2.0 requests
func (s *Server) handleJSONRPC(w http.ResponseWriter, r *http.Request) {
	var request struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      interface{}     `json:"id"`
		Method  string          `json:"method"`
		Params  json.RawMessage `json:"params,omitempty"`
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		s.respondWithError(w, rpcParseError, "Parse error", nil, nil)
		return
	}

	// Validate JSON-RPC 2.0 request
	if request.JSONRPC != "2.0" || request.Method == "" {
		s.respondWithError(w, rpcInvalidRequest, "Invalid Request", request.ID, nil)
		return
	}

	params, err := decodeParams(request.Params)
	if err != nil {
		s.respondWithError(w, rpcInvalidParams, "Invalid params", request.ID, rpcErrorData(err))
		return
	}

	// Route to appropriate handler
	var result interface{}

	switch request.Method {
	case "benchmark.list":
		result, err = s.list()
	case "benchmark.describe":
		result, err = s.describe(params.Name, params.Dim)
	case "benchmark.evaluate":
		var v float64
		if v, err = s.evaluate(params.Name, params.Dim, params.Point); err == nil {
			result = map[string]interface{}{"value": v}
		}
	case "benchmark.check_bounds":
		var ok bool
		if ok, err = s.checkBounds(params.Name, params.Dim, params.Point); err == nil {
			result = map[string]interface{}{"within": ok}
		}
	case "benchmark.global_minimum":
		result, err = s.globalMinimum(params.Name, params.Dim)
	default:
		s.respondWithError(w, rpcMethodNotFound, "Method not found", request.ID, nil)
		return
	}

	if err != nil {
		if rpcCode(err) == rpcInvalidParams {
			s.respondWithError(w, rpcInvalidParams, "Invalid params", request.ID, rpcErrorData(err))
		} else {
			s.respondWithError(w, rpcServerError, "Server error", request.ID, rpcErrorData(err))
		}
		return
	}

	// Send successful response
	response := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      request.ID,
		"result":  result,
	}

	s.respondJSON(w, http.StatusOK, response)
}

// rpcCode maps an error kind to a JSON-RPC error code. Errors caused by the
// caller's input are invalid params; everything else is a server error.
func rpcCode(err error) int {
	switch {
	case errs.Is(err, errBadRequest),
		errs.Is(err, benchmark.ErrConfiguration),
		errs.Is(err, benchmark.ErrShape),
		errs.Is(err, benchmark.ErrDomain),
		errs.Is(err, benchmark.ErrUnknownFunction):
		return rpcInvalidParams
	default:
		return rpcServerError
	}
}

func rpcErrorData(err error) map[string]interface{} {
	return map[string]interface{}{
		"kind":   errorKind(err),
		"detail": err.Error(),
	}
}

// respondWithError sends a JSON-RPC 2.0 error response
func (s *Server) respondWithError(w http.ResponseWriter, code int, message string, id interface{}, data interface{}) {
	fields := map[string]interface{}{
		"code":    code,
		"message": message,
	}
	if code == rpcServerError {
		s.logger.Error("Request error", fields)
	} else {
		s.logger.Debug("Request error", fields)
	}

	rpcErr := map[string]interface{}{
		"code":    code,
		"message": message,
	}
	if data != nil {
		rpcErr["data"] = data
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"jsonrpc": "2.0",
		"error":   rpcErr,
		"id":      id,
	})
}
