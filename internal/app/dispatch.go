package app

import (
	"context"
	"errors"
	"fmt"

	"catalog-tool/internal/catalog"
	"catalog-tool/internal/config"
	"catalog-tool/internal/logging"
	"catalog-tool/internal/template"

	"github.com/tidwall/pretty"
)

var (
	errUnknownRoute = errors.New("route not recognized")
	errUnrecognized = errors.New("command not recognized")
)

const createUsage = "catalog-tool POST products <title> <price> <category>"

var commandForms = []string{
	"catalog-tool GET products",
	"catalog-tool GET products/<id>",
	createUsage,
	"catalog-tool DELETE products/<id>",
}

// Dispatch classifies args and runs the matching operation. At most one
// request is sent. Every failure is printed before an error wrapping
// ErrReported is returned.
func (a *AppRunner) Dispatch(ctx context.Context, cfg *config.Config, args []string) error {
	cmd := catalog.Classify(args)
	logging.Logf(logging.Debug, "Classified %q as %s", args, cmd.Op)

	switch cmd.Op {
	case catalog.OpList:
		return a.runList(ctx, cfg)
	case catalog.OpFetch:
		return a.runFetch(ctx, cfg, cmd.ID)
	case catalog.OpCreate:
		return a.runCreate(ctx, cfg, cmd)
	case catalog.OpDelete:
		return a.runDelete(ctx, cfg, cmd.ID)
	case catalog.OpUnknownRoute:
		fmt.Fprintln(a.stdout, "❓ Route not recognized.")
		return fmt.Errorf("%w: %w", ErrReported, errUnknownRoute)
	}

	fmt.Fprintln(a.stdout, "❓ Command not recognized. Use:")
	for _, form := range commandForms {
		fmt.Fprintln(a.stdout, form)
	}
	return fmt.Errorf("%w: %w", ErrReported, errUnrecognized)
}

func (a *AppRunner) runList(ctx context.Context, cfg *config.Config) error {
	line, err := template.Parse("item_format", cfg.Output.ItemFormat)
	if err != nil {
		return a.fail("❌ Error fetching products", err)
	}
	svc, err := a.serviceFactory.New(cfg)
	if err != nil {
		return a.fail("❌ Error fetching products", err)
	}
	resp, err := svc.List(ctx)
	if err != nil {
		return a.fail("❌ Error fetching products", err)
	}

	items := resp.Body.Array()
	rendered := make([]string, 0, len(items))
	for i, item := range items {
		s, err := line.Execute(map[string]string{
			"title": item.Get("title").String(),
			"price": item.Get("price").String(),
		})
		if err != nil {
			return a.fail("❌ Error fetching products", fmt.Errorf("item %d: %w", i, err))
		}
		rendered = append(rendered, s)
	}

	fmt.Fprintln(a.stdout, "📦 Product list:")
	for _, s := range rendered {
		fmt.Fprintln(a.stdout, s)
	}
	logging.Logf(logging.Info, "Listed %d products", len(items))
	return nil
}

func (a *AppRunner) runFetch(ctx context.Context, cfg *config.Config, id string) error {
	prefix := fmt.Sprintf("❌ Error fetching product %s", id)
	svc, err := a.serviceFactory.New(cfg)
	if err != nil {
		return a.fail(prefix, err)
	}
	resp, err := svc.Get(ctx, id)
	if err != nil {
		return a.fail(prefix, err)
	}
	fmt.Fprintln(a.stdout, "📦 Product found:")
	a.printBody(resp)
	return nil
}

func (a *AppRunner) runCreate(ctx context.Context, cfg *config.Config, cmd catalog.Command) error {
	product, err := catalog.BuildNewProduct(cmd.Title, cmd.Price, cmd.Category)
	if err != nil {
		logging.Logf(logging.Debug, "Rejected create: %v", err)
		fmt.Fprintln(a.stderr, "❌ Invalid parameters. Use:")
		fmt.Fprintln(a.stdout, createUsage)
		return fmt.Errorf("%w: %w", ErrReported, err)
	}

	svc, err := a.serviceFactory.New(cfg)
	if err != nil {
		return a.fail("❌ Error creating product", err)
	}
	resp, err := svc.Create(ctx, product)
	if err != nil {
		return a.fail("❌ Error creating product", err)
	}
	fmt.Fprintln(a.stdout, "✅ Product created:")
	a.printBody(resp)
	return nil
}

func (a *AppRunner) runDelete(ctx context.Context, cfg *config.Config, id string) error {
	prefix := fmt.Sprintf("❌ Error deleting product %s", id)
	svc, err := a.serviceFactory.New(cfg)
	if err != nil {
		return a.fail(prefix, err)
	}
	resp, err := svc.Delete(ctx, id)
	if err != nil {
		return a.fail(prefix, err)
	}
	fmt.Fprintf(a.stdout, "🗑 Product with ID %s deleted:\n", id)
	a.printBody(resp)
	return nil
}

// printBody writes the response as indented JSON.
func (a *AppRunner) printBody(resp *catalog.Response) {
	a.stdout.Write(pretty.Pretty(resp.Raw))
}

func (a *AppRunner) fail(prefix string, err error) error {
	fmt.Fprintf(a.stderr, "%s: %v\n", prefix, err)
	return fmt.Errorf("%w: %w", ErrReported, err)
}
