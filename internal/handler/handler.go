package handler

import (
	"context"

	"github.com/mikebutak/Locastore/internal/account"
	"github.com/mikebutak/Locastore/internal/search"
	"github.com/mikebutak/Locastore/internal/session"
)

// Accounts is the slice of the account service the handlers use.
type Accounts interface {
	Register(ctx context.Context, username, password string) (string, error)
	Verify(ctx context.Context, username, password string) account.VerifyResult
}

// Favorites is the slice of the favorites service the handlers use.
type Favorites interface {
	Save(ctx context.Context, username string, b search.Summary) error
	List(ctx context.Context, username string) ([]search.Summary, error)
}

type Handler struct {
	gateway   search.Searcher
	store     session.Store
	accounts  Accounts
	favorites Favorites
	blacklist search.Blacklist
}

func New(
	gateway search.Searcher,
	store session.Store,
	accounts Accounts,
	favorites Favorites,
	blacklist search.Blacklist,
) *Handler {
	return &Handler{
		gateway:   gateway,
		store:     store,
		accounts:  accounts,
		favorites: favorites,
		blacklist: blacklist,
	}
}
