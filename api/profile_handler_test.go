package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"devfolio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileBeforeCreate(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/profile", nil, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body MessageResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "Profile not found", body.Message)
}

func TestCreateProfile(t *testing.T) {
	router := newTestRouter(t, nil)
	cookie := login(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/profile", map[string]string{
		"name":  "Ada",
		"email": "ada@example.com",
	}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Profile
	decodeBody(t, rec, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Ada", created.Name)
	assert.Equal(t, "ada@example.com", created.Email)

	// Optional fields absent from the request serialize as null, never as
	// empty strings or missing keys.
	var raw map[string]json.RawMessage
	decodeBody(t, rec, &raw)
	for _, field := range []string{"photoUrl", "title", "bio", "location", "phone", "github", "linkedin", "twitter", "website"} {
		value, ok := raw[field]
		require.Truef(t, ok, "field %s missing from response", field)
		assert.Equalf(t, "null", string(value), "field %s", field)
	}

	// The profile is now publicly readable.
	rec = doJSON(t, router, http.MethodGet, "/api/profile", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateProfileValidation(t *testing.T) {
	router := newTestRouter(t, nil)
	cookie := login(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/profile", map[string]string{
		"name": "Ada",
	}, cookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body ValidationErrorResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "Invalid data", body.Message)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "email", body.Errors[0].Field)
}

func TestUpdateProfileFallsBackToCreate(t *testing.T) {
	router := newTestRouter(t, nil)
	cookie := login(t, router)

	// PUT with no existing profile still succeeds.
	rec := doJSON(t, router, http.MethodPut, "/api/profile", map[string]string{
		"name":  "Ada",
		"email": "ada@example.com",
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var first models.Profile
	decodeBody(t, rec, &first)
	require.NotZero(t, first.ID)

	// A second PUT replaces the same row.
	rec = doJSON(t, router, http.MethodPut, "/api/profile", map[string]any{
		"name":  "Grace",
		"email": "grace@example.com",
		"title": "rear admiral",
	}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var second models.Profile
	decodeBody(t, rec, &second)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Grace", second.Name)
	require.NotNil(t, second.Title)
	assert.Equal(t, "rear admiral", *second.Title)
}
