package infra

import (
	"errors"
	"log/slog"

	"wedding-console/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr defaults to KindDBFailure when no kind is given.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	if len(kind) > 0 {
		k = kind[0]
	}

	logArgs := []any{
		slog.String("kind", string(k)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	// not-found is a normal outcome for lookups
	if k == KindNotFound {
		slog.Debug("Repository error: "+msg, logArgs...)
	} else {
		slog.Error("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf returns the kind of the first RepositoryError in the chain, or "".
func KindOf(err error) RepositoryErrorKind {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"

	// marketplace API
	KindUpstreamFailure      RepositoryErrorKind = "UPSTREAM_FAILURE"
	KindUpstreamUnauthorized RepositoryErrorKind = "UPSTREAM_UNAUTHORIZED"
	KindUpstreamForbidden    RepositoryErrorKind = "UPSTREAM_FORBIDDEN"
	KindUpstreamRejected     RepositoryErrorKind = "UPSTREAM_REJECTED"

	// redis
	KindCacheFailure RepositoryErrorKind = "CACHE_FAILURE"
)
