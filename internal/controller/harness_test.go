package controller

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/rate-keeper/internal/adapter"
	"github.com/MKhiriev/rate-keeper/internal/config"
	"github.com/MKhiriev/rate-keeper/internal/logger"
	"github.com/MKhiriev/rate-keeper/internal/mock"
	"github.com/MKhiriev/rate-keeper/internal/service"
	"github.com/MKhiriev/rate-keeper/internal/store"
	"github.com/MKhiriev/rate-keeper/internal/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// harness wires a controller to real services talking to the fake API.
// The token cache is a gomock mock so tests state exactly which cache
// reads and writes they expect.
type harness struct {
	t       *testing.T
	ctx     context.Context
	api     *testutil.FakeAPI
	tokens  *mock.MockLocalTokenRepository
	adapter adapter.ServerAdapter
	c       *Controller
}

func newHarness(t *testing.T) *harness {
	return newHarnessWithTimeout(t, 2*time.Second)
}

func newHarnessWithTimeout(t *testing.T, timeout time.Duration) *harness {
	t.Helper()

	api := testutil.NewFakeAPI(t)
	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    api.URL(),
		RequestTimeout: timeout,
	}, logger.Nop())
	require.NoError(t, err)

	tokens := mock.NewMockLocalTokenRepository(gomock.NewController(t))
	services := service.NewClientServices(tokens, serverAdapter, logger.Nop())

	return &harness{
		t:       t,
		ctx:     context.Background(),
		api:     api,
		tokens:  tokens,
		adapter: serverAdapter,
		c:       New(services, logger.Nop()),
	}
}

// do dispatches in and runs every resulting command to completion.
func (h *harness) do(in Intent) {
	h.t.Helper()
	h.drain(h.c.Dispatch(h.ctx, in))
}

func (h *harness) drain(cmd Cmd) {
	h.t.Helper()
	for cmd != nil {
		cmd = h.c.Apply(h.ctx, cmd(h.ctx))
	}
}

// loginCached authenticates profileID through a cached token.
func (h *harness) loginCached(profileID int) {
	h.t.Helper()

	token := h.api.IssueToken(profileID)
	h.tokens.EXPECT().GetToken(gomock.Any(), profileID).Return(token, nil)

	code := profileCode(h.t, profileID)
	h.do(SelectProfile(profileID))
	h.do(SubmitCode(code))
	require.Equal(h.t, ViewItems, h.c.State().View)
}

// expectNoCachedToken makes the token cache miss and accept the new token.
func (h *harness) expectNoCachedToken(profileID int) {
	h.tokens.EXPECT().GetToken(gomock.Any(), profileID).Return("", store.ErrTokenNotFound)
	h.tokens.EXPECT().SaveToken(gomock.Any(), profileID, gomock.Any()).Return(nil).AnyTimes()
}

func (h *harness) notice() string {
	if n := h.c.State().Notice; n != nil {
		return n.Text
	}
	return ""
}
