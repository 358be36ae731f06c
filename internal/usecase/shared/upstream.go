package shared

import (
	"wedding-console/internal/infra"
	"wedding-console/internal/pkg/errs"
)

// MarkUpstream tags a marketplace failure with the usecase sentinel the
// handler maps to a status. notFound is used for 404s when the caller has a
// more specific error, otherwise ErrMarketplaceRejected is used.
func MarkUpstream(err error, notFound error) error {
	if err == nil {
		return nil
	}
	switch infra.KindOf(err) {
	case infra.KindNotFound:
		if notFound != nil {
			return errs.Mark(err, notFound)
		}
		return errs.Mark(err, errs.ErrMarketplaceRejected)
	case infra.KindUpstreamUnauthorized:
		return errs.Mark(err, errs.ErrSessionExpired)
	case infra.KindUpstreamForbidden:
		return errs.Mark(err, errs.ErrForbidden)
	case infra.KindUpstreamRejected:
		return errs.Mark(err, errs.ErrMarketplaceRejected)
	default:
		return errs.Mark(err, errs.ErrMarketplaceUnavailable)
	}
}
