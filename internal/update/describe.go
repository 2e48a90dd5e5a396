package update

import (
	"errors"

	"github.com/sandeepkv93/todocal/internal/api"
	"github.com/sandeepkv93/todocal/internal/i18n"
	"github.com/sandeepkv93/todocal/internal/model"
	"github.com/sandeepkv93/todocal/internal/session"
	"github.com/sandeepkv93/todocal/internal/state"
)

// Describe picks the message shown for err: a local validation message, the
// server detail, or the localized fallback.
func Describe(cat *i18n.Catalog, err error, fallbackID string) string {
	var nf *state.NotFoundError
	if errors.As(err, &nf) {
		return cat.T(i18n.MsgItemNotFound, "ID", nf.ID)
	}
	if id, ok := validationMessage(err); ok {
		return cat.T(id)
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return cat.Detail(apiErr.Detail, fallbackID)
	}
	if errors.Is(err, api.ErrTransport) {
		return cat.T(i18n.MsgGenericError)
	}
	var bad *badInputError
	if errors.As(err, &bad) {
		return cat.T(i18n.MsgInvalidDate, "Value", bad.Value)
	}
	return cat.T(fallbackID)
}

func validationMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, model.ErrTitleRequired):
		return i18n.MsgTitleRequired, true
	case errors.Is(err, model.ErrStartRequired), errors.Is(err, model.ErrEndRequired):
		return i18n.MsgTimesRequired, true
	case errors.Is(err, model.ErrEndBeforeStart):
		return i18n.MsgEndBeforeStart, true
	case errors.Is(err, model.ErrInvalidPriority):
		return i18n.MsgInvalidPriority, true
	case errors.Is(err, session.ErrCredentialsRequired):
		return i18n.MsgLoginRequired, true
	case errors.Is(err, session.ErrPasswordMismatch):
		return i18n.MsgRegisterMismatch, true
	}
	return "", false
}
