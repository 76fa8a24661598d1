// Package httpx mounts the spellcheck service behind a small JSON API.
package httpx

import (
	"encoding/json"
	"expvar"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/kepka-app/lib-spellcheck/internal/observability"
	"github.com/kepka-app/lib-spellcheck/internal/service"
)

type Router struct {
	svc *service.Service
}

type healthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

type checkResponse struct {
	Word    string `json:"word"`
	Correct bool   `json:"correct"`
}

type suggestionsResponse struct {
	Word        string   `json:"word"`
	Suggestions []string `json:"suggestions"`
	Count       int      `json:"count"`
}

type languagesRequest struct {
	Languages []string `json:"languages"`
}

type languagesResponse struct {
	Languages []string `json:"languages"`
}

type wordRequest struct {
	Word string `json:"word"`
}

type wordResponse struct {
	Word         string `json:"word"`
	InDictionary bool   `json:"in_dictionary"`
}

type textRequest struct {
	Text string `json:"text"`
}

type misspelledSpan struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Word  string `json:"word"`
}

type textResponse struct {
	Misspelled []misspelledSpan `json:"misspelled"`
	Count      int              `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewRouter(svc *service.Service, log *observability.Logger) http.Handler {
	r := &Router{svc: svc}
	mux := http.NewServeMux()
	mux.HandleFunc("/health", r.handleHealth)
	mux.HandleFunc("/check", r.handleCheck)
	mux.HandleFunc("/suggestions", r.handleSuggestions)
	mux.HandleFunc("/languages", r.handleLanguages)
	mux.HandleFunc("/words", r.handleWords)
	mux.HandleFunc("/words/ignore", r.handleIgnore)
	mux.HandleFunc("/text", r.handleText)
	mux.Handle("/debug/vars", expvar.Handler())

	h := observability.RequestIDMiddleware(mux)
	h = observability.RecoveryMiddleware(log)(h)
	h = observability.LoggingMiddleware(log)(h)
	return h
}

func (r *Router) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Time: time.Now().UTC()})
}

func (r *Router) handleCheck(w http.ResponseWriter, req *http.Request) {
	word := strings.TrimSpace(req.URL.Query().Get("word"))
	if word == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing word"})
		return
	}
	writeJSON(w, http.StatusOK, checkResponse{Word: word, Correct: r.svc.CheckSpelling(word)})
}

func (r *Router) handleSuggestions(w http.ResponseWriter, req *http.Request) {
	word := strings.TrimSpace(req.URL.Query().Get("word"))
	if word == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing word"})
		return
	}
	limit := parseLimit(req.URL.Query().Get("limit"))
	sug := r.svc.Suggestions(word, limit)
	writeJSON(w, http.StatusOK, suggestionsResponse{Word: word, Suggestions: sug, Count: len(sug)})
}

func (r *Router) handleLanguages(w http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, languagesResponse{Languages: r.svc.ActiveLanguages()})
	case http.MethodPut, http.MethodPost:
		var body languagesRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid body"})
			return
		}
		r.svc.UpdateLanguages(body.Languages)
		writeJSON(w, http.StatusOK, languagesResponse{Languages: r.svc.ActiveLanguages()})
	default:
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	}
}

func (r *Router) handleWords(w http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodGet:
		word := strings.TrimSpace(req.URL.Query().Get("word"))
		if word == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing word"})
			return
		}
		writeJSON(w, http.StatusOK, wordResponse{Word: word, InDictionary: r.svc.IsWordInDictionary(word)})
	case http.MethodPost:
		word, ok := decodeWord(w, req)
		if !ok {
			return
		}
		r.svc.AddWord(word)
		writeJSON(w, http.StatusOK, wordResponse{Word: word, InDictionary: r.svc.IsWordInDictionary(word)})
	case http.MethodDelete:
		word := strings.TrimSpace(req.URL.Query().Get("word"))
		if word == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing word"})
			return
		}
		r.svc.RemoveWord(word)
		writeJSON(w, http.StatusOK, wordResponse{Word: word, InDictionary: false})
	default:
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	}
}

func (r *Router) handleIgnore(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}
	word, ok := decodeWord(w, req)
	if !ok {
		return
	}
	r.svc.IgnoreWord(word)
	writeJSON(w, http.StatusOK, wordResponse{Word: word, InDictionary: r.svc.IsWordInDictionary(word)})
}

func (r *Router) handleText(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}
	var body textRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid body"})
		return
	}
	miss := r.svc.CheckText(body.Text, nil)
	spans := make([]misspelledSpan, 0, len(miss))
	for _, sp := range miss {
		spans = append(spans, misspelledSpan{
			Start: sp.Start,
			End:   sp.End,
			Word:  sp.In(body.Text),
		})
	}
	writeJSON(w, http.StatusOK, textResponse{Misspelled: spans, Count: len(spans)})
}

func decodeWord(w http.ResponseWriter, req *http.Request) (string, bool) {
	var body wordRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid body"})
		return "", false
	}
	word := strings.TrimSpace(body.Word)
	if word == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing word"})
		return "", false
	}
	return word, true
}

func parseLimit(v string) int {
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	_ = enc.Encode(payload)
}
