package controller

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/rate-keeper/internal/app"
	"github.com/MKhiriev/rate-keeper/internal/service"
	"github.com/MKhiriev/rate-keeper/models"
)

// enterItems switches to Items and loads the list together with the summary.
func (c *Controller) enterItems() Cmd {
	c.state.View = ViewItems
	c.state.DetailItemID = ""
	c.state.Detail = nil

	items := c.services.ItemService
	return func(ctx context.Context) Result {
		list, summary, err := items.Overview(ctx)
		return itemsResult{items: list, summary: summary, err: err}
	}
}

func (c *Controller) applyItems(res itemsResult) {
	c.state.ItemsLoaded = true
	if res.err != nil {
		c.logger.Err(res.err).Msg("items not loaded")
		c.state.Items = []models.Item{}
		c.state.Summary = models.Summary{}
		c.notifyError(res.err, app.MsgGenericError)
		return
	}

	c.state.Items = res.items
	c.state.Summary = res.summary
	if c.state.Summary == nil {
		c.state.Summary = models.Summary{}
	}
}

func (c *Controller) createItem(_ context.Context, in Intent) Cmd {
	code, name := strings.TrimSpace(in.Code), strings.TrimSpace(in.Name)
	if code == "" {
		c.notify(NoticeError, app.MsgItemCodeRequired)
		return nil
	}

	items := c.services.ItemService
	return func(ctx context.Context) Result {
		item, err := items.Create(ctx, code, name)
		return createResult{item: item, err: err}
	}
}

func (c *Controller) applyCreate(res createResult) Cmd {
	if res.err != nil {
		c.logger.Err(res.err).Msg("item not created")
		if errors.Is(res.err, service.ErrItemCodeRequired) {
			c.notify(NoticeError, app.MsgItemCodeRequired)
			return nil
		}
		c.notifyError(res.err, app.MsgCreateItemError)
		return nil
	}

	c.logger.Info().Str("item_id", res.item.ID).Str("code", res.item.Code).Msg("item created")
	if c.state.View != ViewItems || c.state.Session.Token == "" {
		return nil
	}
	return c.enterDetail(res.item.ID)
}

func (c *Controller) deleteItem(_ context.Context, in Intent) Cmd {
	if in.ItemID == "" {
		return nil
	}

	items := c.services.ItemService
	itemID := in.ItemID
	return func(ctx context.Context) Result {
		return deleteResult{itemID: itemID, err: items.Delete(ctx, itemID)}
	}
}

func (c *Controller) applyDelete(res deleteResult) Cmd {
	if res.err != nil {
		c.logger.Err(res.err).Str("item_id", res.itemID).Msg("item not deleted")
		if errors.Is(res.err, service.ErrAdminOnly) {
			c.notify(NoticeError, app.MsgAdminOnly)
			return nil
		}
		c.notifyError(res.err, app.MsgGenericError)
		return nil
	}

	c.notify(NoticeSuccess, app.MsgItemDeleted)
	if c.state.View != ViewItems {
		return nil
	}
	return c.enterItems()
}
