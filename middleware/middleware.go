// Package middleware provides a generic handler chain and the common middlewares
// used around collection walks.
package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrPanic is returned by [Recover] when the handler panicked.
var ErrPanic = errors.New("panic")

type Handler[T any] func(T) error

type Middleware[T any] func(next Handler[T]) Handler[T]

// Chain creates a single [Middleware] by chaining multiple [Middleware] functions.
// The first one is the outermost.
func Chain[T any](mws ...Middleware[T]) Middleware[T] {
	return func(next Handler[T]) Handler[T] {
		for i := len(mws) - 1; i >= 0; i-- {
			next = mws[i](next)
		}
		return next
	}
}

// Context is a [context.Context] that can be rebuilt around a derived context.
type Context[T any] interface {
	context.Context
	WithContext(context.Context) T
}

// Recover turns a panic of the handler into an error wrapping [ErrPanic].
func Recover[T context.Context](l *slog.Logger) Middleware[T] {
	l = l.With("component", "iterz")
	return func(next Handler[T]) Handler[T] {
		return func(ctx T) (err error) {
			defer func() {
				if r := recover(); r != nil {
					l.ErrorContext(ctx, "recover", "value", r)
					err = fmt.Errorf("%w: %v", ErrPanic, r)
				}
			}()
			return next(ctx)
		}
	}
}

// Logging logs every call at debug level and failures at error level.
func Logging[T context.Context](l *slog.Logger, name func(T) string) Middleware[T] {
	l = l.With("component", "iterz")
	return func(next Handler[T]) Handler[T] {
		return func(ctx T) error {
			start := time.Now()
			err := next(ctx)
			duration := time.Since(start)
			if err != nil {
				l.ErrorContext(ctx, "handle failed", "name", name(ctx), "duration", duration, "err", err)
			} else {
				l.DebugContext(ctx, "handled", "name", name(ctx), "duration", duration)
			}
			return err
		}
	}
}

// Tracing starts a span around every call.
func Tracing[T Context[T]](tracerName string, name func(T) string) Middleware[T] {
	tracer := otel.Tracer(tracerName)
	return func(next Handler[T]) Handler[T] {
		return func(ctx T) error {
			traceCtx, span := tracer.Start(ctx, name(ctx),
				trace.WithSpanKind(trace.SpanKindInternal),
			)
			defer span.End()

			err := next(ctx.WithContext(traceCtx))
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			return err
		}
	}
}
