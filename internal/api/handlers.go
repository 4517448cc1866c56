package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"enercheck/domain/analysis"
	"enercheck/domain/energy"
	"enercheck/domain/research"
	"enercheck/domain/simulation"
	"enercheck/domain/tea"
	"enercheck/domain/workflow"
	"enercheck/internal/benchmark"
	"enercheck/internal/errors"
	"enercheck/internal/facts"
	"enercheck/ports"
)

// simulationsRequest is the body of POST /validate/simulations
type simulationsRequest struct {
	Domain  string              `json:"domain"`
	Results []simulation.Result `json:"results"`
}

// teaRequest is the body of POST /validate/tea
type teaRequest struct {
	Domain  string      `json:"domain"`
	Metrics tea.Metrics `json:"metrics"`
}

// hypothesisRequest is the body of POST /validate/hypothesis
type hypothesisRequest struct {
	Hypothesis research.Hypothesis `json:"hypothesis"`
	Findings   *research.Findings  `json:"findings,omitempty"`
}

// conclusionsRequest is the body of POST /validate/conclusions
type conclusionsRequest struct {
	Domain      string                `json:"domain,omitempty"`
	Conclusions []analysis.Conclusion `json:"conclusions"`
	Simulations []simulation.Result   `json:"simulations,omitempty"`
	Findings    *research.Findings    `json:"findings,omitempty"`
}

func (s *Server) handleValidateSimulations(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	var req simulationsRequest
	if !s.decode(w, r, &req) {
		return
	}

	report, err := s.validator.ValidateSimulations(r.Context(), req.Results, energy.Parse(req.Domain))
	if err != nil {
		s.writeError(w, errors.Wrap(err, "simulation validation failed"))
		return
	}
	s.metrics.observe("simulations", report.Result.IsValid, fatalCount(report), time.Since(started))
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleValidateTEA(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	var req teaRequest
	if !s.decode(w, r, &req) {
		return
	}

	report, err := s.validator.ValidateTEA(r.Context(), req.Metrics, energy.Parse(req.Domain))
	if err != nil {
		s.writeError(w, errors.Wrap(err, "TEA validation failed"))
		return
	}
	s.metrics.observe("tea", report.Result.IsValid, fatalCount(report), time.Since(started))
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleValidateHypothesis(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	var req hypothesisRequest
	if !s.decode(w, r, &req) {
		return
	}

	report, err := s.validator.ValidateHypothesis(r.Context(), req.Hypothesis, req.Findings)
	if err != nil {
		s.writeError(w, errors.Wrap(err, "hypothesis validation failed"))
		return
	}
	s.metrics.observe("hypothesis", report.Result.IsValid, fatalCount(report), time.Since(started))
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleValidateConclusions(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	var req conclusionsRequest
	if !s.decode(w, r, &req) {
		return
	}

	report, err := s.validator.ValidateConclusions(r.Context(), req.Conclusions, req.Simulations, req.Findings)
	if err != nil {
		s.writeError(w, errors.Wrap(err, "conclusion validation failed"))
		return
	}
	s.metrics.observe("conclusions", report.Result.IsValid, fatalCount(report), time.Since(started))
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleValidateWorkflow(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	var wf workflow.Context
	if !s.decode(w, r, &wf) {
		return
	}

	report, err := s.validator.ValidateWorkflow(r.Context(), wf)
	if err != nil {
		s.writeError(w, errors.Wrap(err, "workflow validation failed"))
		return
	}
	s.metrics.observe("workflow", report.Result.IsValid, fatalCount(report), time.Since(started))
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleQuickCheck(w http.ResponseWriter, r *http.Request) {
	parameter := r.URL.Query().Get("parameter")
	if parameter == "" {
		s.writeError(w, errors.InvalidInput("parameter is required"))
		return
	}
	value, err := strconv.ParseFloat(r.URL.Query().Get("value"), 64)
	if err != nil {
		s.writeError(w, errors.InvalidInput("value must be a number"))
		return
	}
	domain := energy.Parse(r.URL.Query().Get("domain"))

	writeJSON(w, http.StatusOK, s.validator.QuickCheck(parameter, value, domain))
}

func (s *Server) handleListBenchmarks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"benchmarks": benchmark.All()})
}

func (s *Server) handleListFacts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"facts": facts.All()})
}

// handleRenderReport validates a workflow context and returns the rendered
// report: markdown by default, HTML when the Accept header asks for it.
func (s *Server) handleRenderReport(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	var wf workflow.Context
	if !s.decode(w, r, &wf) {
		return
	}

	report, err := s.validator.ValidateWorkflow(r.Context(), wf)
	if err != nil {
		s.writeError(w, errors.Wrap(err, "workflow validation failed"))
		return
	}
	s.metrics.observe("report", report.Result.IsValid, fatalCount(report), time.Since(started))

	if strings.Contains(r.Header.Get("Accept"), "text/html") {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(s.renderer.HTML(report))
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(s.renderer.Markdown(report)))
}

// decode reads a JSON body, answering 400 with an AppError code on failure
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		s.writeError(w, errors.DecodeFailed("request body", err))
		return false
	}
	return true
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.CodeInvalidInput, errors.CodeDecodeFailed:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	}
	s.log.Warn("request failed: %s (%s)", err.Error(), code)
	writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: err.Error()}})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func fatalCount(report *ports.Report) int {
	n := 0
	for _, e := range report.Result.Errors {
		if e.Fatal {
			n++
		}
	}
	return n
}
