package main

import (
	"fmt"

	"github.com/fwojciec/docsmcp"
	"github.com/fwojciec/docsmcp/docs"
	mcpserver "github.com/fwojciec/docsmcp/mcp"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := mcpserver.NewServer(deps.Service,
		mcpserver.WithLogger(deps.Logger),
		mcpserver.WithImplementation(name, version),
	)

	deps.Logger.Info("serving", "name", name, "version", version, "base_url", deps.Service.BaseURL)
	if err := srv.Run(deps.Ctx, deps.Transport); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	format, err := docs.ParseFormat(c.Format)
	if err != nil {
		return report(deps, err)
	}
	page, err := deps.Service.GetPage(deps.Ctx, c.Path, format)
	if err != nil {
		return report(deps, err)
	}
	fmt.Fprintln(deps.Stdout, deps.Service.FormatPage(page))
	return nil
}

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	r, err := deps.Service.Search(deps.Ctx, c.Query)
	if err != nil {
		return report(deps, err)
	}
	fmt.Fprintln(deps.Stdout, deps.Service.FormatSearch(r))
	return nil
}

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	l, err := deps.Service.ListPages(deps.Ctx)
	if err != nil {
		return report(deps, err)
	}
	fmt.Fprintln(deps.Stdout, deps.Service.FormatPageList(l))
	return nil
}

// Run executes the example command.
func (c *ExampleCmd) Run(deps *Dependencies) error {
	r, err := deps.Service.Example(deps.Ctx, c.Topic)
	if err != nil {
		return report(deps, err)
	}
	fmt.Fprintln(deps.Stdout, deps.Service.FormatExample(r))
	return nil
}

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	r, err := deps.Service.Compare(deps.Ctx, c.Topic)
	if err != nil {
		return report(deps, err)
	}
	fmt.Fprintln(deps.Stdout, deps.Service.FormatComparison(r))
	return nil
}

// Run executes the practices command.
func (c *PracticesCmd) Run(deps *Dependencies) error {
	r, err := deps.Service.BestPractices(deps.Ctx, c.Topic)
	if err != nil {
		return report(deps, err)
	}
	fmt.Fprintln(deps.Stdout, deps.Service.FormatPractices(r))
	return nil
}

func report(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", docsmcp.ErrorMessage(err))
	return err
}
