package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/keywords"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
)

var validate = validator.New()

// AnalysisRequest is the POST /analyses body. Callers send either raw text
// for both documents or pre-extracted keyword lists; mixing is allowed per
// side but each side needs exactly one form.
type AnalysisRequest struct {
	ResumeText     string                `json:"resume_text,omitempty"`
	JobText        string                `json:"job_text,omitempty"`
	ResumeKeywords []types.KeywordRecord `json:"resume_keywords,omitempty"`
	JobKeywords    []types.KeywordRecord `json:"job_keywords,omitempty"`
	FuzzyThreshold *int                  `json:"fuzzy_threshold,omitempty" validate:"omitempty,gte=0,lte=100"`
	Persist        bool                  `json:"persist,omitempty"`
}

// AnalysisResponse wraps the match report with the persisted ID when the
// analysis was stored.
type AnalysisResponse struct {
	ID     *uuid.UUID         `json:"id,omitempty"`
	Report *types.MatchReport `json:"report"`
}

func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	resumeKeywords, err := resolveKeywords(req.ResumeText, req.ResumeKeywords, s.maxKeywords)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume: "+err.Error())
		return
	}
	if len(req.JobKeywords) == 0 && req.JobText != "" {
		if err := keywords.ValidateJobText(req.JobText); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "job: "+err.Error())
			return
		}
	}
	jobKeywords, err := resolveKeywords(req.JobText, req.JobKeywords, s.maxKeywords)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "job: "+err.Error())
		return
	}

	threshold := s.fuzzyThreshold
	if req.FuzzyThreshold != nil {
		threshold = *req.FuzzyThreshold
	}

	report := matching.New(threshold).Match(resumeKeywords, jobKeywords)
	resp := AnalysisResponse{Report: report}

	if req.Persist {
		if s.db == nil {
			s.errorResponse(w, http.StatusServiceUnavailable, "persistence requires a configured database")
			return
		}
		id, err := s.db.SaveAnalysis(r.Context(), "", "", threshold, report)
		if err != nil {
			s.log.Error("failed to save analysis", "error", err)
			s.errorResponse(w, http.StatusInternalServerError, "failed to save analysis")
			return
		}
		resp.ID = &id
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// resolveKeywords picks the keyword source for one side of the analysis:
// explicit keyword records win, otherwise text is run through extraction.
func resolveKeywords(text string, records []types.KeywordRecord, maxKeywords int) ([]types.KeywordRecord, error) {
	if len(records) > 0 {
		return records, nil
	}
	if text == "" {
		return nil, errors.New("either text or keywords must be provided")
	}
	return keywords.NewExtractor(maxKeywords).Extract(text), nil
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "no database configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid analysis ID")
		return
	}

	analysis, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrAnalysisNotFound) {
			s.errorResponse(w, http.StatusNotFound, "analysis not found")
			return
		}
		s.log.Error("failed to get analysis", "id", id, "error", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to get analysis")
		return
	}

	s.jsonResponse(w, http.StatusOK, analysis)
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "no database configured")
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	analyses, err := s.db.ListAnalyses(r.Context(), limit)
	if err != nil {
		s.log.Error("failed to list analyses", "error", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list analyses")
		return
	}
	if analyses == nil {
		analyses = []db.AnalysisSummary{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"analyses": analyses})
}

func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "no database configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid analysis ID")
		return
	}

	if err := s.db.DeleteAnalysis(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrAnalysisNotFound) {
			s.errorResponse(w, http.StatusNotFound, "analysis not found")
			return
		}
		s.log.Error("failed to delete analysis", "id", id, "error", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete analysis")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
