package reviews

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRequestDecoding(t *testing.T) {
	body := `{
		"artistId": 1234,
		"artistName": "Artist",
		"trackTitle": "Track",
		"trackLength": 3.5,
		"albumTitle": null,
		"reviewTitle": "Nice",
		"reviewDescription": "Good song",
		"starRating": "4 stars"
	}`

	var req createRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	in := req.toNewReview()
	assert.Equal(t, "1234", in.ArtistID)
	assert.Equal(t, "3.5", in.TrackLength)
	assert.Equal(t, "", in.AlbumTitle)
	assert.Equal(t, "", in.ArtistPicture)
	assert.Equal(t, 4, ParseStarRating(in.StarRating))
}

func TestCreateRequestNumericRating(t *testing.T) {
	var req createRequest
	require.NoError(t, json.Unmarshal([]byte(`{"starRating": 9}`), &req))
	assert.Equal(t, 5, ParseStarRating(string(req.StarRating)))
}

func TestCreateRequestRejectsObjects(t *testing.T) {
	var req createRequest
	assert.Error(t, json.Unmarshal([]byte(`{"artistId": {"id": 1}}`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"artistName": true}`), &req))
}

func TestCreateRequestUnparseableRatingDefaults(t *testing.T) {
	for _, raw := range []string{`true`, `{}`, `[1]`, `null`, `"great"`} {
		var req createRequest
		require.NoError(t, json.Unmarshal([]byte(`{"artistId": "a", "starRating": `+raw+`}`), &req), raw)

		in := req.toNewReview()
		assert.Equal(t, "a", in.ArtistID, raw)
		assert.Equal(t, DefaultStars, ParseStarRating(in.StarRating), raw)
	}
}
