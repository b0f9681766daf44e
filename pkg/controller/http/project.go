package http

import (
	"net/http"

	"github.com/construct-hq/tenderbase/pkg/domain/model"
	"github.com/construct-hq/tenderbase/pkg/utils/errutil"
)

type projectRequest struct {
	Name       string `json:"name"`
	Location   string `json:"location"`
	Reference  string `json:"reference"`
	FolderPath string `json:"folder_path"`
}

type projectResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Location   string `json:"location"`
	Reference  string `json:"reference"`
	FolderPath string `json:"folder_path"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func toProjectResponse(p *model.Project) projectResponse {
	return projectResponse{
		ID:         p.ID.String(),
		Name:       p.Name,
		Location:   p.Location,
		Reference:  p.Reference,
		FolderPath: p.FolderPath,
		CreatedAt:  p.CreatedAt.Format(timeFormat),
		UpdatedAt:  p.UpdatedAt.Format(timeFormat),
	}
}

const timeFormat = "2006-01-02T15:04:05Z07:00"

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeBody(r, &req); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	created, err := s.uc.Project.Create(r.Context(), &model.Project{
		Name:       req.Name,
		Location:   req.Location,
		Reference:  req.Reference,
		FolderPath: req.FolderPath,
	})
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	respondJSON(w, r, http.StatusCreated, toProjectResponse(created))
}

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.uc.Project.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	resp := make([]projectResponse, len(projects))
	for i, p := range projects {
		resp[i] = toProjectResponse(p)
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"projects": resp})
}

func (s *Server) getProject(w http.ResponseWriter, r *http.Request) {
	project, err := s.uc.Project.Get(r.Context(), projectIDParam(r))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toProjectResponse(project))
}

func (s *Server) updateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeBody(r, &req); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	updated, err := s.uc.Project.Update(r.Context(), &model.Project{
		ID:         projectIDParam(r),
		Name:       req.Name,
		Location:   req.Location,
		Reference:  req.Reference,
		FolderPath: req.FolderPath,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toProjectResponse(updated))
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.uc.Project.Delete(r.Context(), projectIDParam(r)); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) refreshKnowledge(w http.ResponseWriter, r *http.Request) {
	kb, err := s.uc.Project.RefreshKnowledge(r.Context(), projectIDParam(r))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, map[string]any{
		"project":              kb.ProjectName,
		"total_documents":      kb.Summary.TotalDocuments,
		"processed_documents":  kb.Summary.Succeeded,
		"failed_documents":     kb.Summary.Failed,
		"total_content_length": kb.Summary.TotalContentLength,
		"document_types":       kb.Summary.DocumentTypes,
	})
}

func (s *Server) clearKnowledge(w http.ResponseWriter, r *http.Request) {
	if err := s.uc.Project.ClearKnowledge(r.Context(), projectIDParam(r)); err != nil {
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) questionHistory(w http.ResponseWriter, r *http.Request) {
	questions, err := s.uc.Project.History(r.Context(), projectIDParam(r))
	if err != nil {
		respondError(w, r, err)
		return
	}

	type questionResponse struct {
		ID         string   `json:"id"`
		Question   string   `json:"question"`
		Answer     string   `json:"answer"`
		Confidence int      `json:"confidence"`
		SourceDocs []string `json:"source_docs"`
		References []string `json:"references"`
		CreatedAt  string   `json:"created_at"`
	}

	resp := make([]questionResponse, len(questions))
	for i, q := range questions {
		resp[i] = questionResponse{
			ID:         q.ID.String(),
			Question:   q.QuestionText,
			Answer:     q.AnswerText,
			Confidence: q.Confidence,
			SourceDocs: q.SourceDocs,
			References: q.References,
			CreatedAt:  q.CreatedAt.Format(timeFormat),
		}
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"questions": resp})
}
