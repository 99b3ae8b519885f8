package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/rate-keeper/internal/adapter"
	"github.com/MKhiriev/rate-keeper/internal/logger"
	"github.com/MKhiriev/rate-keeper/internal/mock"
	"github.com/MKhiriev/rate-keeper/internal/store"
	"github.com/MKhiriev/rate-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAuthSvc — хелпер для создания clientAuthService с моками
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*clientAuthService, *mock.MockServerAdapter, *mock.MockLocalTokenRepository) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockTokens := mock.NewMockLocalTokenRepository(ctrl)

	svc := NewClientAuthService(mockTokens, mockAdapter, logger.Nop()).(*clientAuthService)
	return svc, mockAdapter, mockTokens
}

// ── VerifyCode ───────────────────────────────────────────────────────────────

func TestClientAuthService_VerifyCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	// никаких вызовов адаптера и хранилища не ожидается
	svc, _, _ := newTestAuthSvc(t, ctrl)

	tests := []struct {
		name      string
		profileID int
		code      string
		wantErr   error
	}{
		{name: "exact match", profileID: 1, code: "3221"},
		{name: "surrounding whitespace ignored", profileID: 2, code: "  6969\n"},
		{name: "other profile code", profileID: 1, code: "6969", wantErr: ErrIncorrectCode},
		{name: "empty code", profileID: 3, code: "", wantErr: ErrIncorrectCode},
		{name: "inner whitespace kept", profileID: 4, code: "38 59", wantErr: ErrIncorrectCode},
		{name: "prefix only", profileID: 4, code: "385", wantErr: ErrIncorrectCode},
		{name: "unknown profile", profileID: 5, code: "3221", wantErr: ErrUnknownProfile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.VerifyCode(tt.profileID, tt.code)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
}

// ── CachedSession ────────────────────────────────────────────────────────────

func TestClientAuthService_CachedSession_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockTokens := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockTokens.EXPECT().GetToken(ctx, 3).Return("cached-token", nil)

	session, ok, err := svc.CachedSession(ctx, 3)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.Session{ProfileID: 3, Token: "cached-token"}, session)
}

func TestClientAuthService_CachedSession_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockTokens := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockTokens.EXPECT().GetToken(ctx, 1).Return("", store.ErrTokenNotFound)

	session, ok, err := svc.CachedSession(ctx, 1)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, session.IsZero())
}

func TestClientAuthService_CachedSession_ReadErrorReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockTokens := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	dbErr := errors.New("database is locked")
	mockTokens.EXPECT().GetToken(ctx, 1).Return("", dbErr)

	session, ok, err := svc.CachedSession(ctx, 1)
	assert.False(t, ok)
	assert.True(t, session.IsZero())
	assert.ErrorIs(t, err, ErrTokenCacheUnreadable)
	assert.ErrorIs(t, err, dbErr)
}

// ── Exchange ─────────────────────────────────────────────────────────────────

func TestClientAuthService_Exchange_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// код передаётся на сервер уже очищенным от пробелов
	mockAdapter.EXPECT().ExchangePIN(ctx, 2, "6969").Return("fresh-token", nil).Times(1)

	session, err := svc.Exchange(ctx, 2, " 6969 ")
	require.NoError(t, err)
	assert.Equal(t, models.Session{ProfileID: 2, Token: "fresh-token"}, session)
}

func TestClientAuthService_Exchange_IncorrectCodeSkipsNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Exchange(context.Background(), 2, "0000")
	assert.ErrorIs(t, err, ErrIncorrectCode)
}

func TestClientAuthService_Exchange_AdapterErrorKeepsOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ExchangePIN(ctx, 1, "3221").
		Return("", &adapter.APIError{Outcome: adapter.OutcomeUnavailable, Err: context.DeadlineExceeded})

	_, err := svc.Exchange(ctx, 1, "3221")
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// ── Remember / Activate / Deactivate ─────────────────────────────────────────

func TestClientAuthService_Remember(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, mockTokens := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockTokens.EXPECT().SaveToken(ctx, 4, "tok").Return(nil)
	require.NoError(t, svc.Remember(ctx, models.Session{ProfileID: 4, Token: "tok"}))

	mockTokens.EXPECT().SaveToken(ctx, 4, "tok").Return(errors.New("disk full"))
	err := svc.Remember(ctx, models.Session{ProfileID: 4, Token: "tok"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestClientAuthService_ActivateDeactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _ := newTestAuthSvc(t, ctrl)

	gomock.InOrder(
		mockAdapter.EXPECT().SetToken("tok"),
		mockAdapter.EXPECT().SetToken(""),
	)

	svc.Activate(models.Session{ProfileID: 1, Token: "tok"})
	svc.Deactivate()
}
