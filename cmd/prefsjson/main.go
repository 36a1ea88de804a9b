// Command prefsjson converts a Flutter shared-preferences store read from
// standard input into JSON on standard output.
//
//	adb exec-out run-as com.example.app cat shared_prefs/FlutterSharedPreferences.xml | prefsjson
//
// Behaviour is configured through PREFSJSON_* environment variables, which
// may also be placed in a .env file in the working directory. Logs go to
// standard error.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/leofalp/prefsjson/core/prefs"
	"github.com/leofalp/prefsjson/providers/observability"
	"github.com/leofalp/prefsjson/providers/observability/slogobs"
	"github.com/leofalp/prefsjson/providers/render"
	"github.com/leofalp/prefsjson/providers/source/plist"
)

func main() {
	observer := slogobs.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = observability.ContextWithObserver(ctx, observer)

	cfg, err := loadConfig(os.LookupEnv)
	if err == nil {
		err = run(ctx, cfg, os.Stdin, os.Stdout)
	}
	if err != nil {
		observer.Error(ctx, "Conversion failed", observability.Error(err))
		fmt.Fprintf(os.Stderr, "prefsjson: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run converts stdin and writes the rendered result to stdout. Nothing is
// written to stdout unless the whole conversion succeeds.
func run(ctx context.Context, cfg config, stdin io.Reader, stdout io.Writer) error {
	renderer, err := render.New(cfg.outputFormat, render.WithIndent(cfg.indent))
	if err != nil {
		return err
	}

	res, err := convert(ctx, cfg, stdin)
	if err != nil {
		return err
	}

	observer := observerFrom(ctx)
	_, span := observer.StartSpan(ctx, observability.SpanRender,
		observability.String(observability.AttrOutputFormat, string(renderer.Format())))
	defer span.End()

	var buf bytes.Buffer
	if err := renderer.Render(&buf, res); err != nil {
		span.RecordError(err)
		span.SetStatus(observability.StatusError, "render failed")
		return err
	}
	if _, err := stdout.Write(buf.Bytes()); err != nil {
		span.RecordError(err)
		span.SetStatus(observability.StatusError, "write failed")
		return fmt.Errorf("failed to write output: %w", err)
	}
	span.SetStatus(observability.StatusOK, "")

	observer.Info(ctx, "Converted preferences",
		observability.String(observability.AttrInputFormat, cfg.inputFormat),
		observability.String(observability.AttrOutputFormat, string(renderer.Format())),
		observability.Int(observability.AttrKeysCount, res.Len()),
	)
	return nil
}

func convert(ctx context.Context, cfg config, stdin io.Reader) (*prefs.Result, error) {
	conv := prefs.New(cfg.converterOptions()...)
	if cfg.inputFormat != inputPlist {
		return conv.Convert(ctx, stdin)
	}

	observer := observerFrom(ctx)
	readCtx, span := observer.StartSpan(ctx, observability.SpanSourceRead,
		observability.String(observability.AttrInputFormat, inputPlist))
	entries, skipped, err := plist.Read(stdin)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(observability.StatusError, "read failed")
		span.End()
		return nil, err
	}
	for _, key := range skipped {
		observer.Debug(readCtx, "Ignoring non-string value", observability.String(observability.AttrPrefName, key))
	}
	span.SetAttributes(observability.Int(observability.AttrEntriesCount, len(entries)))
	span.SetStatus(observability.StatusOK, "")
	span.End()

	return conv.Build(ctx, entries)
}

func observerFrom(ctx context.Context) observability.Provider {
	if p := observability.ObserverFromContext(ctx); p != nil {
		return p
	}
	return observability.Discard
}
