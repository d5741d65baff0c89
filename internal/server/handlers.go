package server

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/temporary-accommodation/tasklist/internal/form"
)

type createRequest struct {
	CRN string `json:"crn"`
}

type applicationResponse struct {
	*form.Application
	Tasks []form.TaskProgress `json:"tasks"`
}

type pageResponse struct {
	TaskID   string    `json:"taskId"`
	PageID   string    `json:"pageId"`
	Title    string    `json:"title"`
	Body     form.Body `json:"body"`
	Previous string    `json:"previous"`
	Next     string    `json:"next"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, err.Error())
		return
	}
	if strings.TrimSpace(req.CRN) == "" {
		badRequest(w, "crn is required")
		return
	}

	app, err := s.store.Create(r.Context(), req.CRN)
	if err != nil {
		writeError(w, s.log, err)
		return
	}
	s.log.WithField("application_id", app.ID).Info("application created")
	writeJSON(w, http.StatusCreated, app)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	app, ok := s.load(w, r)
	if !ok {
		return
	}
	status, err := s.engine.Status(app)
	if err != nil {
		writeError(w, s.requestLog(r), err)
		return
	}
	writeJSON(w, http.StatusOK, applicationResponse{Application: app, Tasks: status})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.store.Delete(r.Context(), id); err != nil {
		writeError(w, s.requestLog(r), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	app, ok := s.load(w, r)
	if !ok {
		return
	}
	review, err := s.engine.Review(app)
	if err != nil {
		writeError(w, s.requestLog(r), err)
		return
	}
	if review == nil {
		review = []form.TaskSummary{}
	}
	writeJSON(w, http.StatusOK, review)
}

func (s *Server) handleShowPage(w http.ResponseWriter, r *http.Request) {
	app, ok := s.load(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	taskID, pageID := vars["task"], vars["page"]

	page, err := s.engine.Page(r.Context(), app, taskID, pageID, nil, nil)
	if err != nil {
		writeError(w, s.requestLog(r), err)
		return
	}
	def, err := s.engine.Registry().Page(taskID, pageID)
	if err != nil {
		writeError(w, s.requestLog(r), err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse{
		TaskID:   taskID,
		PageID:   pageID,
		Title:    def.Title(),
		Body:     page.Body(),
		Previous: page.Previous(),
		Next:     page.Next(),
	})
}

func (s *Server) handleSubmitPage(w http.ResponseWriter, r *http.Request) {
	app, ok := s.load(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)

	var body form.Body
	if err := decodeJSON(r, &body); err != nil {
		badRequest(w, err.Error())
		return
	}

	result, err := s.engine.Submit(r.Context(), app, vars["task"], vars["page"], body)
	if err != nil {
		writeError(w, s.requestLog(r), err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// load fetches the application named in the route, writing the error
// response itself when that fails.
func (s *Server) load(w http.ResponseWriter, r *http.Request) (*form.Application, bool) {
	app, err := s.store.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, s.requestLog(r), err)
		return nil, false
	}
	return app, true
}

func (s *Server) requestLog(r *http.Request) logrus.FieldLogger {
	vars := mux.Vars(r)
	fields := logrus.Fields{"application_id": vars["id"]}
	if task, ok := vars["task"]; ok {
		fields["task"] = task
		fields["page"] = vars["page"]
	}
	return s.log.WithFields(fields)
}
