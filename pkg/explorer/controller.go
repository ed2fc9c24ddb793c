package explorer

import (
	"context"

	"github.com/filetug/ftexplorer/pkg/files"
	"github.com/filetug/ftexplorer/pkg/history"
	"github.com/rs/zerolog"
)

// Listing is what the files panel displays.
type Listing struct {
	Dir     string
	Query   string
	Entries []files.Entry
}

// Controller owns the navigation history and the current listing.
// Every operation runs to completion before returning.
// A failed operation leaves both history and listing as they were.
type Controller struct {
	history   *history.History
	lister    *files.Lister
	activator *files.Activator
	log       zerolog.Logger
	listing   Listing
}

func NewController(start string, lister *files.Lister, activator *files.Activator, logger zerolog.Logger) *Controller {
	return &Controller{
		history:   history.New(start),
		lister:    lister,
		activator: activator,
		log:       logger,
		listing:   Listing{Dir: start},
	}
}

func (c *Controller) History() *history.History {
	return c.history
}

func (c *Controller) Listing() Listing {
	return c.listing
}

func (c *Controller) Current() string {
	return c.history.Current()
}

// IsDir reports whether dirPath is a directory in the listed store.
func (c *Controller) IsDir(ctx context.Context, dirPath string) bool {
	info, err := c.lister.Store().Stat(ctx, dirPath)
	return err == nil && info.IsDir()
}

// Load lists the start directory.
func (c *Controller) Load(ctx context.Context) error {
	return c.list(ctx, c.history.Current(), "")
}

// Open lists dirPath and, only if that succeeds, records it in history.
func (c *Controller) Open(ctx context.Context, dirPath string) error {
	if err := c.list(ctx, dirPath, ""); err != nil {
		return err
	}
	c.history.Visit(dirPath)
	return nil
}

func (c *Controller) Back(ctx context.Context) error {
	dir, err := c.history.Back()
	if err != nil {
		return err
	}
	if err = c.list(ctx, dir, ""); err != nil {
		_, _ = c.history.Forward()
		return err
	}
	return nil
}

func (c *Controller) Forward(ctx context.Context) error {
	dir, err := c.history.Forward()
	if err != nil {
		return err
	}
	if err = c.list(ctx, dir, ""); err != nil {
		_, _ = c.history.Back()
		return err
	}
	return nil
}

// Search re-lists the current directory keeping names that contain query.
func (c *Controller) Search(ctx context.Context, query string) error {
	return c.list(ctx, c.history.Current(), query)
}

func (c *Controller) Refresh(ctx context.Context) error {
	return c.list(ctx, c.history.Current(), c.listing.Query)
}

// Activate navigates into a folder or hands a file to the default handler.
func (c *Controller) Activate(ctx context.Context, name string) (files.Activation, error) {
	activation, err := c.activator.Activate(ctx, c.history.Current(), name)
	if err != nil {
		c.log.Warn().Err(err).Str("path", activation.Path).Msg("activate failed")
		return activation, err
	}
	c.log.Debug().Stringer("action", activation.Action).Str("path", activation.Path).Msg("activated")
	if activation.Action == files.NavigateTo {
		return activation, c.Open(ctx, activation.Path)
	}
	return activation, nil
}

func (c *Controller) list(ctx context.Context, dir, query string) error {
	entries, err := c.lister.List(ctx, dir, files.Filter{Query: query})
	if err != nil {
		c.log.Warn().Err(err).Str("dir", dir).Str("query", query).Msg("list failed")
		return err
	}
	c.listing = Listing{Dir: dir, Query: query, Entries: entries}
	c.log.Debug().Str("dir", dir).Str("query", query).Int("entries", len(entries)).Msg("listed")
	return nil
}
