package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jevelon/backend/internal/model"
)

func TestDecodeInput_JSONWithoutContentType(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ana"}`))
	var in model.ContactInput

	fe := decodeInput(httptest.NewRecorder(), req, &in)

	assert.Nil(t, fe)
	assert.Equal(t, "Ana", in.Name)
}

func TestDecodeInput_EmptyBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Content-Type", "application/json")
	var in model.ContactInput

	assert.Nil(t, decodeInput(httptest.NewRecorder(), req, &in))
}

func TestDecodeInput_Multipart(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("name", "Bo"))
	require.NoError(t, mw.WriteField("priority", "high"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	var in model.SupportTicketInput

	require.Nil(t, decodeInput(httptest.NewRecorder(), req, &in))
	assert.Equal(t, "Bo", in.Name)
	require.NotNil(t, in.Priority)
	assert.Equal(t, "high", *in.Priority)
}

func TestDecodeInput_UnsupportedMediaType(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("<xml/>"))
	req.Header.Set("Content-Type", "application/xml")
	var in model.ContactInput

	fe := decodeInput(httptest.NewRecorder(), req, &in)

	require.NotNil(t, fe)
	assert.Len(t, fe[model.NonFieldErrors], 1)
}

func TestDecodeInput_TooLarge(t *testing.T) {
	big := `{"message":"` + strings.Repeat("a", maxBodyBytes+10) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))
	req.Header.Set("Content-Type", "application/json")
	var in model.ContactInput

	fe := decodeInput(httptest.NewRecorder(), req, &in)

	require.NotNil(t, fe)
	assert.Equal(t, []string{"Request body too large."}, fe[model.NonFieldErrors])
}
