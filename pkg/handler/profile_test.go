package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"social_wallet_back/models"
	"social_wallet_back/pkg/service"
)

type stubProfiles struct {
	profile models.Profile
	err     error
}

func (s *stubProfiles) GetProfile(int64) (models.Profile, error) {
	return s.profile, s.err
}

type stubTransfers struct {
	review models.ReviewResult
	err    error
}

func (s *stubTransfers) GetDraft(int64) models.TransferDraft {
	return models.TransferDraft{}
}

func (s *stubTransfers) UpdateDraft(int64, models.TransferDraft) models.TransferDraft {
	return models.TransferDraft{}
}

func (s *stubTransfers) Review(context.Context, int64) (models.ReviewResult, error) {
	return s.review, s.err
}

func (s *stubTransfers) Confirm(context.Context, int64) (models.TransferResult, error) {
	return models.TransferResult{}, nil
}

func (s *stubTransfers) GetTransactions(int64) ([]models.Transaction, error) {
	return nil, nil
}

func newTestRouter(svc *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewHandler(svc).InitRoute()
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, out interface{}) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("X-User-ID", "7")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func TestGetProfile_ReturnsRow(t *testing.T) {
	svc := &service.Service{Profiles: &stubProfiles{
		profile: models.Profile{UserID: 7, Username: "alice", AvatarURL: "/a.png"},
	}}
	router := newTestRouter(svc)

	var body struct {
		Profile models.Profile `json:"profile"`
	}
	rec := doJSON(t, router, http.MethodGet, "/api/profile", &body)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "alice", body.Profile.Username)
	require.Equal(t, "/a.png", body.Profile.AvatarURL)
}

func TestGetProfile_NotFound(t *testing.T) {
	svc := &service.Service{Profiles: &stubProfiles{err: sql.ErrNoRows}}
	router := newTestRouter(svc)

	rec := doJSON(t, router, http.MethodGet, "/api/profile", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProfile_RequiresUserHeader(t *testing.T) {
	svc := &service.Service{Profiles: &stubProfiles{}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestReviewTransfer_AnnotatesSenderProfile(t *testing.T) {
	svc := &service.Service{
		Transfers: &stubTransfers{review: models.ReviewResult{State: models.StateConfirming}},
		Profiles:  &stubProfiles{profile: models.Profile{UserID: 7, Username: "alice"}},
	}
	router := newTestRouter(svc)

	var body struct {
		Sender *models.Profile `json:"sender"`
	}
	rec := doJSON(t, router, http.MethodPost, "/api/transfer/review", &body)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, body.Sender)
	require.Equal(t, "alice", body.Sender.Username)
}

func TestReviewTransfer_NoSenderOnMismatch(t *testing.T) {
	svc := &service.Service{
		Transfers: &stubTransfers{review: models.ReviewResult{State: models.StateNetworkMismatch}},
		Profiles:  &stubProfiles{err: sql.ErrNoRows},
	}
	router := newTestRouter(svc)

	var body struct {
		Sender *models.Profile `json:"sender"`
	}
	rec := doJSON(t, router, http.MethodPost, "/api/transfer/review", &body)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Nil(t, body.Sender)
}
