package ctxutil

import (
	"context"
	"strconv"
)

type requestDataKey struct{}

// RequestData identifies who a request acts for.
// UserID is 0 when the caller did not identify itself.
type RequestData struct {
	UserID        int64
	Authenticated bool
}

// ScopeKey names the pet state bucket for this request.
func (rd *RequestData) ScopeKey() string {
	if rd == nil {
		return DefaultScope
	}
	return strconv.FormatInt(rd.UserID, 10)
}

const DefaultScope = "0"

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if rd, ok := ctx.Value(requestDataKey{}).(*RequestData); ok {
		return rd
	}
	return nil
}

// Scope returns the pet state scope for ctx, falling back to DefaultScope.
func Scope(ctx context.Context) string {
	return GetRequestData(ctx).ScopeKey()
}
