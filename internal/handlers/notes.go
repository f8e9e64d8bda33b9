package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/notevault/notevault/internal/auth"
	"github.com/notevault/notevault/internal/models"
	"github.com/notevault/notevault/internal/store"
)

type addNoteRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// editNoteRequest uses pointers so that absent fields are
// distinguishable from zero values: only supplied fields change.
type editNoteRequest struct {
	Title    *string  `json:"title"`
	Content  *string  `json:"content"`
	Tags     []string `json:"tags"`
	IsPinned *bool    `json:"isPinned"`
}

type updatePinnedRequest struct {
	IsPinned bool `json:"isPinned"`
}

func AddNoteHandler(st store.Store, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.GetUserIDFromContext(r.Context())

		var req addNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Title and content are required")
			return
		}
		if req.Title == "" || req.Content == "" {
			respondError(w, http.StatusBadRequest, "Title and content are required")
			return
		}

		note := &models.Note{
			UserID:  userID,
			Title:   req.Title,
			Content: req.Content,
			Tags:    req.Tags,
		}
		if err := st.CreateNote(note); err != nil {
			logger.WithError(err).Error("note creation failed")
			respondError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		respondJSON(w, http.StatusOK, envelope{
			"error":   false,
			"note":    note,
			"message": "Note Added Successfully",
		})
	}
}

func EditNoteHandler(st store.Store, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.GetUserIDFromContext(r.Context())

		noteID, err := strconv.Atoi(mux.Vars(r)["noteId"])
		if err != nil {
			respondError(w, http.StatusNotFound, "Note Not Found")
			return
		}

		var req editNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "No content provided")
			return
		}
		if req.Title == nil && req.Content == nil && req.Tags == nil && req.IsPinned == nil {
			respondError(w, http.StatusBadRequest, "No content provided")
			return
		}

		note, err := st.NoteByID(noteID, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "Note Not Found")
				return
			}
			logger.WithError(err).Error("note lookup failed")
			respondError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		if req.Title != nil {
			note.Title = *req.Title
		}
		if req.Content != nil {
			note.Content = *req.Content
		}
		if req.Tags != nil {
			note.Tags = req.Tags
		}
		if req.IsPinned != nil {
			note.IsPinned = *req.IsPinned
		}

		if err := st.UpdateNote(note); err != nil {
			logger.WithError(err).Error("note update failed")
			respondError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		respondJSON(w, http.StatusOK, envelope{
			"error":   false,
			"note":    note,
			"message": "Note updated successfully",
		})
	}
}

func DeleteNoteHandler(st store.Store, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.GetUserIDFromContext(r.Context())

		noteID, err := strconv.Atoi(mux.Vars(r)["noteId"])
		if err != nil {
			respondError(w, http.StatusNotFound, "Note Not Found")
			return
		}

		if err := st.DeleteNote(noteID, userID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "Note Not Found")
				return
			}
			logger.WithError(err).Error("note deletion failed")
			respondError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		respondJSON(w, http.StatusOK, envelope{
			"error":   false,
			"message": "Note deleted successfully",
		})
	}
}

func GetAllNotesHandler(st store.Store, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.GetUserIDFromContext(r.Context())

		notes, err := st.NotesByUser(userID)
		if err != nil {
			logger.WithError(err).Error("notes retrieval failed")
			respondError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		respondJSON(w, http.StatusOK, envelope{
			"error":   false,
			"notes":   notes,
			"message": "Notes retrieved successfully",
		})
	}
}

func UpdateNotePinnedHandler(st store.Store, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.GetUserIDFromContext(r.Context())

		noteID, err := strconv.Atoi(mux.Vars(r)["noteId"])
		if err != nil {
			respondError(w, http.StatusNotFound, "Note Not Found")
			return
		}

		var req updatePinnedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "isPinned is required")
			return
		}

		note, err := st.NoteByID(noteID, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, "Note Not Found")
				return
			}
			logger.WithError(err).Error("note lookup failed")
			respondError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		note.IsPinned = req.IsPinned
		if err := st.UpdateNote(note); err != nil {
			logger.WithError(err).Error("note update failed")
			respondError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		respondJSON(w, http.StatusOK, envelope{
			"error":   false,
			"note":    note,
			"message": "Note pinned status updated",
		})
	}
}
