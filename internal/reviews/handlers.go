package reviews

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/EmpoweredVote/Review-Backend/internal/apperr"
	"github.com/EmpoweredVote/Review-Backend/internal/httputil"
	"github.com/EmpoweredVote/Review-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// ListHandler returns an artist's reviews, newest first.
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.svc.List(r.Context(), chi.URLParam(r, "artistId"))
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, reviews)
}

func (h *Handler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, apperr.Unauthenticated("Not authenticated"))
		return
	}

	var req createRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		httputil.WriteError(w, r, apperr.InvalidInput("Invalid request body"))
		return
	}

	review, err := h.svc.Create(r.Context(), userID, req.toNewReview())
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, review)
}

func (h *Handler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.WriteError(w, r, apperr.Unauthenticated("Not authenticated"))
		return
	}

	if err := h.svc.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.OK)
}

type createRequest struct {
	ArtistID          textField   `json:"artistId"`
	ArtistName        textField   `json:"artistName"`
	ArtistDescription textField   `json:"artistDescription"`
	ArtistPicture     textField   `json:"artistPicture"`
	AlbumTitle        textField   `json:"albumTitle"`
	TrackTitle        textField   `json:"trackTitle"`
	TrackLength       textField   `json:"trackLength"`
	TrackArtwork      textField   `json:"trackArtwork"`
	ReviewTitle       textField   `json:"reviewTitle"`
	ReviewDescription textField   `json:"reviewDescription"`
	StarRating        ratingField `json:"starRating"`
}

func (c createRequest) toNewReview() NewReview {
	return NewReview{
		ArtistID:          string(c.ArtistID),
		ArtistName:        string(c.ArtistName),
		ArtistDescription: string(c.ArtistDescription),
		ArtistPicture:     string(c.ArtistPicture),
		AlbumTitle:        string(c.AlbumTitle),
		TrackTitle:        string(c.TrackTitle),
		TrackLength:       string(c.TrackLength),
		TrackArtwork:      string(c.TrackArtwork),
		ReviewTitle:       string(c.ReviewTitle),
		ReviewDescription: string(c.ReviewDescription),
		StarRating:        string(c.StarRating),
	}
}

// textField accepts a JSON string, number or null. Numbers are kept in their
// shortest decimal form, so 42 becomes "42" and a track length of 3.5 "3.5".
type textField string

func (t *textField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = textField(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	f, err := n.Float64()
	if err != nil {
		return err
	}
	*t = textField(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

// ratingField is lenient: a starRating that is neither a string nor a number
// is read as empty so the rating falls back to its default.
type ratingField string

func (r *ratingField) UnmarshalJSON(data []byte) error {
	var t textField
	if err := t.UnmarshalJSON(data); err != nil {
		*r = ""
		return nil
	}
	*r = ratingField(t)
	return nil
}
