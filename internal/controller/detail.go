package controller

import (
	"context"
	"errors"

	"github.com/MKhiriev/rate-keeper/internal/app"
	"github.com/MKhiriev/rate-keeper/internal/service"
)

func (c *Controller) openItem(_ context.Context, in Intent) Cmd {
	if in.ItemID == "" {
		return nil
	}
	return c.enterDetail(in.ItemID)
}

// enterDetail switches to the detail of itemID and fetches it. The editor
// is reset until the payload arrives.
func (c *Controller) enterDetail(itemID string) Cmd {
	c.state.View = ViewDetail
	c.state.DetailItemID = itemID
	c.state.Detail = nil
	c.state.Editor = NewEditor(nil)

	return c.fetchDetail(itemID)
}

func (c *Controller) fetchDetail(itemID string) Cmd {
	items := c.services.ItemService
	return func(ctx context.Context) Result {
		detail, err := items.Detail(ctx, itemID)
		return detailResult{itemID: itemID, detail: detail, err: err}
	}
}

func (c *Controller) applyDetail(res detailResult) {
	if c.state.View != ViewDetail || c.state.DetailItemID != res.itemID {
		c.logger.Debug().Str("item_id", res.itemID).Msg("discarding detail of another item")
		return
	}

	if res.err != nil {
		c.logger.Err(res.err).Str("item_id", res.itemID).Msg("item detail not loaded")
		c.state.Detail = nil
		c.notifyError(res.err, app.MsgGenericError)
		return
	}

	detail := res.detail
	c.state.Detail = &detail
	c.state.Editor = NewEditor(detail.MyRating)
}

func (c *Controller) selectScore(_ context.Context, in Intent) Cmd {
	c.state.Editor.Select(in.Field)
	return nil
}

func (c *Controller) moveCursor(_ context.Context, in Intent) Cmd {
	if in.Delta > 0 {
		c.state.Editor.Next()
	} else {
		c.state.Editor.Prev()
	}
	return nil
}

func (c *Controller) adjustScore(_ context.Context, in Intent) Cmd {
	c.state.Editor.Adjust(in.Delta)
	return nil
}

func (c *Controller) setScore(_ context.Context, in Intent) Cmd {
	c.state.Editor.Set(in.Field, in.Value)
	return nil
}

func (c *Controller) submitRating(_ context.Context, _ Intent) Cmd {
	itemID := c.state.DetailItemID
	if itemID == "" || c.state.Detail == nil {
		return nil
	}

	ratings := c.services.RatingService
	scores := c.state.Editor.Scores()
	return func(ctx context.Context) Result {
		return ratingResult{itemID: itemID, err: ratings.Submit(ctx, itemID, scores)}
	}
}

func (c *Controller) applyRating(res ratingResult) Cmd {
	if res.err != nil {
		c.logger.Warn().Err(res.err).Str("item_id", res.itemID).Msg("rating not saved")
		if errors.Is(res.err, service.ErrRatingCooldown) {
			c.notify(NoticeError, app.MsgRatingCooldown)
			return nil
		}
		c.notifyError(res.err, app.MsgGenericError)
		return nil
	}

	c.notify(NoticeSuccess, app.MsgSaved)
	if c.state.View != ViewDetail || c.state.DetailItemID != res.itemID {
		return nil
	}
	return c.fetchDetail(res.itemID)
}
