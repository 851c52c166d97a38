package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"invitationservice/internal/domain"
)

func TestWriteFieldErrors(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteFieldErrors(rr, http.StatusBadRequest, domain.FieldErrors{"email": "Incorrect email format: x"})

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	require.JSONEq(t, `{"errors":{"email":"Incorrect email format: x"}}`, rr.Body.String())
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteJSON(rr, http.StatusCreated, domain.NewInvitee("John", "john@email.me"))

	require.Equal(t, http.StatusCreated, rr.Code)
	require.JSONEq(t, `{"invitee":"John","email":"john@email.me"}`, rr.Body.String())
}

func TestWriteNoContent(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteNoContent(rr)

	require.Equal(t, http.StatusNoContent, rr.Code)
	require.Empty(t, rr.Body.Bytes())
}
