package controller

import (
	"context"
	"errors"

	"github.com/MKhiriev/rate-keeper/internal/app"
	"github.com/MKhiriev/rate-keeper/internal/service"
	"github.com/MKhiriev/rate-keeper/models"
)

func (c *Controller) selectProfile(_ context.Context, in Intent) Cmd {
	if _, ok := models.LookupProfile(in.ProfileID); !ok {
		c.logger.Warn().Int("profile", in.ProfileID).Msg("unknown profile selected")
		return nil
	}
	if c.state.Login.Exchanging {
		return nil
	}

	c.state.Login = LoginState{Phase: LoginPendingCode, ProfileID: in.ProfileID}
	return nil
}

func (c *Controller) cancelLogin(_ context.Context, _ Intent) Cmd {
	c.state.Login = LoginState{Phase: LoginUnselected}
	return nil
}

// submitCode checks the code locally, then adopts the cached token or
// starts the PIN exchange.
func (c *Controller) submitCode(ctx context.Context, in Intent) Cmd {
	login := c.state.Login
	if login.Phase != LoginPendingCode || login.Exchanging {
		return nil
	}
	c.state.Login.Code = in.Code

	auth := c.services.AuthService
	if err := auth.VerifyCode(login.ProfileID, in.Code); err != nil {
		c.logger.Info().Int("profile", login.ProfileID).Msg("incorrect entry code")
		c.notify(NoticeError, app.MsgIncorrectCode)
		return nil
	}

	session, ok, err := auth.CachedSession(ctx, login.ProfileID)
	if ok {
		c.logger.Info().Int("profile", login.ProfileID).Msg("using cached session")
		return c.authenticate(session)
	}
	if err != nil {
		c.notify(NoticeInfo, app.MsgStoredTokenIgnored)
	}

	c.state.Login.Exchanging = true
	profileID, code := login.ProfileID, in.Code
	return func(ctx context.Context) Result {
		session, err := auth.Exchange(ctx, profileID, code)
		return loginResult{profileID: profileID, session: session, err: err}
	}
}

func (c *Controller) applyLogin(ctx context.Context, res loginResult) Cmd {
	c.state.Login.Exchanging = false

	// the user backed out or picked another profile meanwhile
	login := c.state.Login
	if c.state.View != ViewLogin || login.Phase != LoginPendingCode || login.ProfileID != res.profileID {
		c.logger.Info().Int("profile", res.profileID).Msg("discarding stale login result")
		return nil
	}

	if res.err != nil {
		c.logger.Warn().Err(res.err).Int("profile", res.profileID).Msg("login failed")
		c.state.Login.Code = ""
		switch {
		case errors.Is(res.err, service.ErrIncorrectCode):
			c.notify(NoticeError, app.MsgIncorrectCode)
		default:
			c.notifyError(res.err, app.MsgLoginError)
		}
		return nil
	}

	if err := c.services.AuthService.Remember(ctx, res.session); err != nil {
		c.logger.Err(err).Int("profile", res.session.ProfileID).Msg("session token not cached")
	}
	return c.authenticate(res.session)
}

// authenticate activates session and enters Items.
func (c *Controller) authenticate(session models.Session) Cmd {
	c.epoch++
	c.services.AuthService.Activate(session)
	c.state.Session = session
	c.state.Login = LoginState{Phase: LoginUnselected}

	c.logger.Info().Int("profile", session.ProfileID).Str("subject", session.Subject()).Msg("authenticated")
	return c.enterItems()
}

func (c *Controller) logout(_ context.Context, _ Intent) Cmd {
	c.logger.Info().Int("profile", c.state.Session.ProfileID).Msg("logout")
	c.epoch++
	c.services.AuthService.Deactivate()
	c.resetToLogin()
	return nil
}
