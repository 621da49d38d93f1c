package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/franchise-advisor/internal/dialogue"
	"github.com/jonathan/franchise-advisor/internal/server/middleware"
	"github.com/jonathan/franchise-advisor/internal/session"
	"github.com/jonathan/franchise-advisor/internal/types"
)

// handleCreateSession opens a new conversation and returns its greeting along
// with a bearer token scoped to the session.
func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	sess := s.sessions.Create()

	token, err := s.jwtService.GenerateToken(sess.ID)
	if err != nil {
		s.sessions.Delete(sess.ID)
		s.errorResponse(w, http.StatusInternalServerError, "failed to create session token")
		return
	}

	var greeting string
	sess.Do(func(st *dialogue.State) {
		greeting = s.engine.Greet(st)
	})

	s.jsonResponse(w, http.StatusCreated, types.CreateSessionResponse{
		SessionID: sess.ID,
		Token:     token,
		Greeting:  greeting,
	})
}

// sessionFromRequest resolves the {id} path segment against the session
// store, checking that the bearer token was minted for that same session.
func (s *Server) sessionFromRequest(r *http.Request) (*session.Session, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return nil, &ErrValidation{Field: "id", Message: "must be a valid session UUID"}
	}

	authID, err := middleware.GetSessionID(r)
	if err != nil || authID != id {
		return nil, &ErrSessionMismatch{}
	}

	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, &ErrSessionNotFound{SessionID: id}
	}
	return sess, nil
}

// handleSendMessage runs one full dialogue turn and returns everything the
// assistant said during it.
func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req types.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "text is required and must be at most 2000 characters")
		return
	}

	var resp types.SendMessageResponse
	sess.Do(func(st *dialogue.State) {
		result := s.engine.HandleTurn(r.Context(), st, req.Text)
		resp = types.SendMessageResponse{
			Messages: result.Messages,
			Stage:    string(st.Stage),
			Done:     st.Stage.Terminal(),
		}
	})

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleSendMessageStream runs one dialogue turn and streams each assistant
// message as its own SSE event, followed by a done event with the new stage.
func (s *Server) handleSendMessageStream(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req types.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "text is required and must be at most 2000 characters")
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	sess.Do(func(st *dialogue.State) {
		result := s.engine.HandleTurn(r.Context(), st, req.Text)
		for _, msg := range result.Messages {
			if err := sse.WriteMessage(msg); err != nil {
				return
			}
		}
		sse.WriteDone(string(st.Stage), st.Stage.Terminal())
	})
}

// handleHistory returns the session's full transcript, greeting included.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resp := types.HistoryResponse{SessionID: sess.ID}
	sess.Do(func(st *dialogue.State) {
		resp.Messages = append([]types.Message(nil), st.History...)
	})

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleListings returns the loaded franchise dataset in source row order.
func (s *Server) handleListings(w http.ResponseWriter, _ *http.Request) {
	listings := s.listings
	if listings == nil {
		listings = []types.Listing{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"count":    len(listings),
		"listings": listings,
	})
}
